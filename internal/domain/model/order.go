package model

import "time"

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusOnTheWay  OrderStatus = "on-the-way"
	OrderStatusDelivered OrderStatus = "delivered"
)

// transitions is the closed set of legal forward steps. Anything outside it,
// including no-ops and reversals, is rejected.
var transitions = map[OrderStatus]OrderStatus{
	OrderStatusPreparing: OrderStatusOnTheWay,
	OrderStatusOnTheWay:  OrderStatusDelivered,
}

// ValidStatus reports whether s belongs to the status enumeration.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusOnTheWay, OrderStatusDelivered:
		return true
	}
	return false
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// Terminal reports whether the status accepts no further transitions.
func Terminal(s OrderStatus) bool {
	return s == OrderStatusDelivered
}

// LineItem is a priced menu position snapshotted into an order.
type LineItem struct {
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
	RestaurantID string `json:"restaurant_id,omitempty"`
}

// Order describes a delivery order placed by a user. Monetary amounts are in
// integer minor units. Every field except Status is immutable after creation.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Items           []LineItem  `json:"items"`
	Total           int64       `json:"total"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	CreatedAt       time.Time   `json:"created_at"`
}
