package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// GetUnassignedOrdersQueryHandler reads the home-delivery backlog straight
// from the database, oldest order first.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle returns all pending home-delivery orders without a courier,
// ordered by creation time so the retry job drains the oldest first.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_id,
			shop_domain,
			store_address,
			recipient_street,
			recipient_postcode,
			recipient_city,
			parcels,
			created_at
		FROM orders
		WHERE status = ? AND order_type = ? AND courier_id IS NULL
		ORDER BY created_at
	`, order.Pending, order.HomeDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnassignedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.ExternalOrderID,
			&orderResp.ShopDomain,
			&orderResp.StoreAddress,
			&orderResp.Street,
			&orderResp.Postcode,
			&orderResp.City,
			&orderResp.Parcels,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
