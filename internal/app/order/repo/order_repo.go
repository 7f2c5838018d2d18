package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_order"
	"github.com/light-bringer/grocery-service/internal/models/m_order_item"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	orderModel *m_order.Model
	itemModel  *m_order_item.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo() contracts.OrderRepository {
	return &OrderRepo{
		orderModel: m_order.NewModel(),
		itemModel:  m_order_item.NewModel(),
	}
}

// InsertMuts creates mutations for the order header and all its items.
func (r *OrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	total := order.Total()
	if !total.IsSafeForStorage() {
		return nil, fmt.Errorf("order total exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	muts := make([]*spanner.Mutation, 0, 1+len(order.Items()))

	muts = append(muts, r.orderModel.InsertMut(&m_order.Data{
		OrderID:          order.ID(),
		UserID:           order.UserID(),
		TotalNumerator:   total.Numerator(),
		TotalDenominator: total.Denominator(),
		Status:           order.Status(),
		PlacedAt:         order.PlacedAt(),
	}))

	for _, item := range order.Items() {
		price := item.UnitPrice()
		if !price.IsSafeForStorage() {
			return nil, fmt.Errorf("item price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}

		muts = append(muts, r.itemModel.InsertMut(&m_order_item.Data{
			OrderID:              order.ID(),
			OrderItemID:          item.OrderItemID(),
			ProductID:            item.ProductID(),
			ProductName:          item.ProductName(),
			Quantity:             item.Quantity(),
			UnitPriceNumerator:   price.Numerator(),
			UnitPriceDenominator: price.Denominator(),
		}))
	}

	return muts, nil
}
