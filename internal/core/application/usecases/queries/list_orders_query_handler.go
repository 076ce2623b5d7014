package queries

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order rows straight from the database,
// bypassing the aggregate for cheap listings.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	sql := `
		SELECT
			id,
			code,
			state,
			currency_code,
			sub_total,
			sub_total_before_tax,
			shipping,
			placed_at,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.State() != nil {
		sql += ` WHERE state = ?`
		args = append(args, query.State().String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListOrdersQueryResponse
		var id uuid.UUID
		var placedAt *time.Time

		err = rows.Scan(
			&id,
			&row.Code,
			&row.State,
			&row.CurrencyCode,
			&row.SubTotal,
			&row.SubTotalBeforeTax,
			&row.Shipping,
			&placedAt,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.PlacedAt = placedAt
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
