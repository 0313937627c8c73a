package dto

import (
	"time"

	"github.com/feastline/orderd/internal/domain/model"
)

// LineItemPayload mirrors a single order position on the wire.
type LineItemPayload struct {
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
	RestaurantID string `json:"restaurant_id,omitempty"`
}

// CreateOrderRequest is the POST /api/orders payload. Total is accepted for
// wire compatibility with older clients but always recomputed server-side.
type CreateOrderRequest struct {
	Items           []LineItemPayload `json:"items"`
	Total           int64             `json:"total"`
	DeliveryAddress string            `json:"delivery_address"`
}

// UpdateStatusRequest is the PATCH /api/orders/:id/status payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Items           []LineItemPayload `json:"items"`
	Total           int64             `json:"total"`
	Status          string            `json:"status"`
	DeliveryAddress string            `json:"delivery_address"`
	CreatedAt       time.Time         `json:"created_at"`
}

// OrderEnvelope wraps a single order response.
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// OrdersEnvelope wraps a listing response.
type OrdersEnvelope struct {
	Orders []OrderResponse `json:"orders"`
}

// ToLineItems converts wire items to domain line items.
func ToLineItems(items []LineItemPayload) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.LineItem{
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			RestaurantID: item.RestaurantID,
		})
	}
	return out
}

// FromOrder converts a domain order to its wire representation.
func FromOrder(order *model.Order) OrderResponse {
	items := make([]LineItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItemPayload{
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			RestaurantID: item.RestaurantID,
		})
	}
	return OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Total:           order.Total,
		Status:          string(order.Status),
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
	}
}
