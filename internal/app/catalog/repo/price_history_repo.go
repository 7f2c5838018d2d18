package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	"github.com/light-bringer/grocery-service/internal/models/m_price_history"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
	"github.com/light-bringer/grocery-service/internal/pkg/query"
)

// PriceHistoryRepo implements PriceHistoryRepository for Spanner.
type PriceHistoryRepo struct {
	client *spanner.Client
	model  *m_price_history.Model
}

// NewPriceHistoryRepo creates a new PriceHistoryRepo.
func NewPriceHistoryRepo(client *spanner.Client) contracts.PriceHistoryRepository {
	return &PriceHistoryRepo{
		client: client,
		model:  m_price_history.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a price change record.
func (r *PriceHistoryRepo) InsertMut(
	historyID string,
	productID string,
	oldPrice *money.Money,
	newPrice *money.Money,
	changedBy string,
	changedReason string,
	changedAt time.Time,
) (*spanner.Mutation, error) {
	if !newPrice.IsSafeForStorage() {
		return nil, fmt.Errorf("new price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	data := &m_price_history.Data{
		HistoryID:           historyID,
		ProductID:           productID,
		NewPriceNumerator:   newPrice.Numerator(),
		NewPriceDenominator: newPrice.Denominator(),
		ChangedBy:           changedBy,
		ChangedReason:       spanner.NullString{StringVal: changedReason, Valid: changedReason != ""},
		ChangedAt:           changedAt,
	}

	if oldPrice != nil {
		if !oldPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("old price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}
		data.OldPriceNumerator = spanner.NullInt64{Int64: oldPrice.Numerator(), Valid: true}
		data.OldPriceDenominator = spanner.NullInt64{Int64: oldPrice.Denominator(), Valid: true}
	}

	return r.model.InsertMut(data), nil
}

// GetByProductID retrieves price history for a product, most recent first.
func (r *PriceHistoryRepo) GetByProductID(ctx context.Context, productID string, limit int) ([]contracts.PriceHistoryRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	stmt := query.From(m_price_history.TableName).
		Select(m_price_history.Columns...).
		Where(query.Eq(m_price_history.ProductID, productID)).
		OrderBy(m_price_history.ChangedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	records := make([]contracts.PriceHistoryRecord, 0, limit)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate price history: %w", err)
		}

		var data m_price_history.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price history: %w", err)
		}

		record, err := r.dataToRecord(&data)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// dataToRecord converts database Data to a PriceHistoryRecord.
func (r *PriceHistoryRepo) dataToRecord(data *m_price_history.Data) (contracts.PriceHistoryRecord, error) {
	newPrice, err := money.New(data.NewPriceNumerator, data.NewPriceDenominator)
	if err != nil {
		return contracts.PriceHistoryRecord{}, fmt.Errorf("invalid new price: %w", err)
	}

	record := contracts.PriceHistoryRecord{
		HistoryID:     data.HistoryID,
		ProductID:     data.ProductID,
		NewPrice:      newPrice,
		ChangedBy:     data.ChangedBy,
		ChangedReason: data.ChangedReason.StringVal,
		ChangedAt:     data.ChangedAt,
	}

	if data.OldPriceNumerator.Valid && data.OldPriceDenominator.Valid {
		oldPrice, err := money.New(data.OldPriceNumerator.Int64, data.OldPriceDenominator.Int64)
		if err != nil {
			return contracts.PriceHistoryRecord{}, fmt.Errorf("invalid old price: %w", err)
		}
		record.OldPrice = oldPrice
	}

	return record, nil
}
