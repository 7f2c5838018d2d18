package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}

	if changes.Dirty(domain.FieldUnitPrice) {
		unitPrice := product.UnitPrice()
		if !unitPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("unit price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}
		updates[m_product.UnitPriceNumerator] = unitPrice.Numerator()
		updates[m_product.UnitPriceDenominator] = unitPrice.Denominator()
	}

	if changes.Dirty(domain.FieldStock) {
		updates[m_product.StockQuantity] = product.Stock()
	}

	if len(updates) == 0 {
		return nil, nil
	}

	updates[m_product.UpdatedAt] = r.clock.Now()

	return r.model.UpdateMut(product.ID(), updates), nil
}

// DeleteMut creates a mutation for hard-deleting a product.
// Order history is unaffected: order items carry denormalized snapshots.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data)
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	unitPrice := product.UnitPrice()
	if !unitPrice.IsSafeForStorage() {
		return nil, fmt.Errorf("unit price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	return &m_product.Data{
		ProductID:            product.ID(),
		Name:                 product.Name(),
		Description:          product.Description(),
		Category:             product.Category(),
		UnitPriceNumerator:   unitPrice.Numerator(),
		UnitPriceDenominator: unitPrice.Denominator(),
		StockQuantity:        product.Stock(),
		CreatedAt:            product.CreatedAt(),
		UpdatedAt:            product.UpdatedAt(),
	}, nil
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid unit price: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.Category,
		unitPrice,
		data.StockQuantity,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}
