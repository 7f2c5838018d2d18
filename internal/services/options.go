package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/app/account/queries/get_profile"
	"github.com/light-bringer/grocery-service/internal/app/account/queries/list_users"
	accountrepo "github.com/light-bringer/grocery-service/internal/app/account/repo"
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
	transport "github.com/light-bringer/grocery-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        http.Handler
}

// Config carries service-level settings.
type Config struct {
	SpannerDB     string
	SecureCookies bool
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	outboxRepo := outbox.NewRepo(clk)

	// 3. Create repositories and read models
	productRepo := catalogrepo.NewProductRepo(spannerClient, clk)
	priceHistoryRepo := catalogrepo.NewPriceHistoryRepo(spannerClient)
	catalogReadModel := catalogrepo.NewReadModel(spannerClient)

	orderRepo := orderrepo.NewOrderRepo()
	stockReader := orderrepo.NewStockReader()
	orderReadModel := orderrepo.NewReadModel(spannerClient)

	userRepo := accountrepo.NewUserRepo(spannerClient, clk)
	sessionRepo := accountrepo.NewSessionRepo(spannerClient)
	accountReadModel := accountrepo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, outboxRepo, priceHistoryRepo, comm, clk)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, outboxRepo, comm, clk)

	placeOrderUseCase := place_order.NewInteractor(orderRepo, stockReader, outboxRepo, comm, clk)

	registerUseCase := register_user.NewInteractor(userRepo, outboxRepo, comm, clk)
	loginUseCase := login.NewInteractor(userRepo, sessionRepo, comm, clk)
	logoutUseCase := logout.NewInteractor(sessionRepo, comm)
	updateProfileUseCase := update_profile.NewInteractor(userRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(catalogReadModel)
	listProductsQuery := list_products.NewQuery(catalogReadModel)
	listOrdersQuery := list_orders.NewQuery(orderReadModel)
	getOrderQuery := get_order.NewQuery(orderReadModel)
	getProfileQuery := get_profile.NewQuery(accountReadModel)
	listUsersQuery := list_users.NewQuery(accountReadModel)

	// 6. Create HTTP handlers and router
	authn := transport.NewAuthenticator(sessionRepo, userRepo, clk)
	catalogHandler := transport.NewCatalogHandler(
		listProductsQuery,
		getProductQuery,
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)
	orderHandler := transport.NewOrderHandler(placeOrderUseCase, listOrdersQuery, getOrderQuery)
	accountHandler := transport.NewAccountHandler(getProfileQuery, updateProfileUseCase, listUsersQuery)
	authHandler := transport.NewAuthHandler(registerUseCase, loginUseCase, logoutUseCase, cfg.SecureCookies)

	router := transport.NewRouter(authn, catalogHandler, orderHandler, accountHandler, authHandler)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        router,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
