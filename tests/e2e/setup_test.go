package e2e

import (
	"testing"

	"cloud.google.com/go/spanner"

	accountrepo "github.com/light-bringer/grocery-service/internal/app/account/repo"
	"github.com/light-bringer/grocery-service/internal/app/account/queries/get_profile"
	"github.com/light-bringer/grocery-service/internal/app/account/queries/list_users"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/login"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/logout"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/register_user"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/update_profile"
	"github.com/light-bringer/grocery-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/grocery-service/internal/app/catalog/repo"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/grocery-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/grocery-service/internal/app/order/queries/list_orders"
	orderrepo "github.com/light-bringer/grocery-service/internal/app/order/repo"
	"github.com/light-bringer/grocery-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/committer"
	"github.com/light-bringer/grocery-service/internal/pkg/outbox"
	"github.com/light-bringer/grocery-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct *create_product.Interactor
	UpdateProduct *update_product.Interactor
	DeleteProduct *delete_product.Interactor
	PlaceOrder    *place_order.Interactor
	Register      *register_user.Interactor
	Login         *login.Interactor
	Logout        *logout.Interactor
	UpdateProfile *update_profile.Interactor

	// Queries
	GetProduct   *get_product.Query
	ListProducts *list_products.Query
	GetOrder     *get_order.Query
	ListOrders   *list_orders.Query
	GetProfile   *get_profile.Query
	ListUsers    *list_users.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	// Setup Spanner client with clean database
	client, cleanup := testutil.SetupSpannerTest(t)

	// Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	outboxRepo := outbox.NewRepo(clk)

	// Create repositories and read models
	productRepo := catalogrepo.NewProductRepo(client, clk)
	priceHistoryRepo := catalogrepo.NewPriceHistoryRepo(client)
	catalogReadModel := catalogrepo.NewReadModel(client)

	orderRepo := orderrepo.NewOrderRepo()
	stockReader := orderrepo.NewStockReader()
	orderReadModel := orderrepo.NewReadModel(client)

	userRepo := accountrepo.NewUserRepo(client, clk)
	sessionRepo := accountrepo.NewSessionRepo(client)
	accountReadModel := accountrepo.NewReadModel(client)

	services := &Services{
		CreateProduct: create_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		UpdateProduct: update_product.NewInteractor(productRepo, outboxRepo, priceHistoryRepo, comm, clk),
		DeleteProduct: delete_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		PlaceOrder:    place_order.NewInteractor(orderRepo, stockReader, outboxRepo, comm, clk),
		Register:      register_user.NewInteractor(userRepo, outboxRepo, comm, clk),
		Login:         login.NewInteractor(userRepo, sessionRepo, comm, clk),
		Logout:        logout.NewInteractor(sessionRepo, comm),
		UpdateProfile: update_profile.NewInteractor(userRepo, outboxRepo, comm, clk),

		GetProduct:   get_product.NewQuery(catalogReadModel),
		ListProducts: list_products.NewQuery(catalogReadModel),
		GetOrder:     get_order.NewQuery(orderReadModel),
		ListOrders:   list_orders.NewQuery(orderReadModel),
		GetProfile:   get_profile.NewQuery(accountReadModel),
		ListUsers:    list_users.NewQuery(accountReadModel),

		Clock:  clk,
		Client: client,
	}

	return services, cleanup
}
