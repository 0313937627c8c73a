package app

import (
	"context"

	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/usecase"
	"github.com/feastline/orderd/internal/worker"
)

// DeliveryFacade fronts the order and profile services for the HTTP layer and
// enrolls freshly created orders with the courier simulation.
type DeliveryFacade struct {
	orders   *usecase.OrderService
	profiles *usecase.ProfileService
	tracker  *worker.Tracker
	simulate bool
}

// NewDeliveryFacade constructs the application facade. A nil tracker or
// simulate=false disables courier enrollment.
func NewDeliveryFacade(orders *usecase.OrderService, profiles *usecase.ProfileService, tracker *worker.Tracker, simulate bool) *DeliveryFacade {
	return &DeliveryFacade{orders: orders, profiles: profiles, tracker: tracker, simulate: simulate}
}

func (f *DeliveryFacade) CreateOrder(ctx context.Context, credential string, items []model.LineItem, deliveryAddress string) (*model.Order, error) {
	order, err := f.orders.Create(ctx, credential, items, deliveryAddress)
	if err != nil {
		return nil, err
	}
	if f.simulate && f.tracker != nil {
		f.tracker.Track(credential, order.ID)
	}
	return order, nil
}

func (f *DeliveryFacade) Order(ctx context.Context, credential, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, credential, orderID)
}

func (f *DeliveryFacade) Orders(ctx context.Context, credential string) ([]model.Order, error) {
	return f.orders.List(ctx, credential)
}

func (f *DeliveryFacade) AdvanceOrder(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, credential, orderID, status)
}

func (f *DeliveryFacade) SaveProfile(ctx context.Context, credential, name, phone, address string) (*model.Profile, error) {
	return f.profiles.Save(ctx, credential, name, phone, address)
}

func (f *DeliveryFacade) Profile(ctx context.Context, credential string) (*model.Profile, error) {
	return f.profiles.Get(ctx, credential)
}
