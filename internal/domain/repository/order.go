package repository

import (
	"context"

	"github.com/feastline/orderd/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Get(ctx context.Context, id string) (*model.Order, error)
	ListIDs(ctx context.Context, userID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}
