package handlers

import (
	"context"

	"github.com/feastline/orderd/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, credential string, items []model.LineItem, deliveryAddress string) (*model.Order, error)
	Order(ctx context.Context, credential, orderID string) (*model.Order, error)
	Orders(ctx context.Context, credential string) ([]model.Order, error)
	AdvanceOrder(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error)
}

// ProfileFacade provides delivery profile operations.
type ProfileFacade interface {
	SaveProfile(ctx context.Context, credential, name, phone, address string) (*model.Profile, error)
	Profile(ctx context.Context, credential string) (*model.Profile, error)
}

// DeliveryFacade aggregates the full set of operations used across handlers.
type DeliveryFacade interface {
	OrderFacade
	ProfileFacade
}
