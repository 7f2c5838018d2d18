package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
	"github.com/light-bringer/grocery-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
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

	return rm.dataToDTO(&data)
}

// ListProducts retrieves products matching the filter, ordered by name
// ascending. With no intervening writes the result order is stable across
// calls.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	builder := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.Name, query.Asc).
		Limit(int64(limit))

	if filter.Search != "" {
		builder = builder.Where(query.ContainsFold(m_product.Name, filter.Search))
	}

	iter := rm.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, limit)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		dto, err := rm.dataToDTO(&data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to DTO: %w", err)
		}

		products = append(products, dto)
	}

	return &contracts.ListResult{
		Products:   products,
		TotalCount: int64(len(products)),
	}, nil
}

// dataToDTO converts database Data to a ProductDTO.
func (rm *ReadModelImpl) dataToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid unit price: %w", err)
	}

	return &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		UnitPrice:   unitPrice.Float64(),
		Price:       unitPrice.String(),
		Stock:       data.StockQuantity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}
