package test

import (
	"context"
	"sync"

	"github.com/feastline/orderd/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn  func(context.Context, string, []model.LineItem, string) (*model.Order, error)
	OrderFn   func(context.Context, string, string) (*model.Order, error)
	OrdersFn  func(context.Context, string) ([]model.Order, error)
	AdvanceFn func(context.Context, string, string, model.OrderStatus) (*model.Order, error)
}

// CreateOrder delegates to the override or returns a default preparing order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, credential string, items []model.LineItem, address string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, credential, items, address)
	}
	return &model.Order{ID: "order-1", UserID: "user-1", Items: items, Status: model.OrderStatusPreparing, DeliveryAddress: address}, nil
}

// Order returns the configured order for the id.
func (s OrderFacadeStub) Order(ctx context.Context, credential, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, credential, orderID)
	}
	return &model.Order{ID: orderID, UserID: "user-1", Status: model.OrderStatusPreparing}, nil
}

// Orders returns predefined orders for the caller.
func (s OrderFacadeStub) Orders(ctx context.Context, credential string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, credential)
	}
	return []model.Order{{ID: "order-1", UserID: "user-1"}}, nil
}

// AdvanceOrder executes the configured transition handler.
func (s OrderFacadeStub) AdvanceOrder(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, credential, orderID, status)
	}
	return &model.Order{ID: orderID, UserID: "user-1", Status: status}, nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	SaveFn func(context.Context, string, string, string, string) (*model.Profile, error)
	GetFn  func(context.Context, string) (*model.Profile, error)
}

// SaveProfile delegates to the override or echoes the payload.
func (s ProfileFacadeStub) SaveProfile(ctx context.Context, credential, name, phone, address string) (*model.Profile, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, credential, name, phone, address)
	}
	return &model.Profile{UserID: "user-1", Name: name, Phone: phone, Address: address}, nil
}

// Profile returns the configured profile.
func (s ProfileFacadeStub) Profile(ctx context.Context, credential string) (*model.Profile, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, credential)
	}
	return &model.Profile{UserID: "user-1"}, nil
}

// DeliveryFacadeStub aggregates order and profile stubs behind one facade.
type DeliveryFacadeStub struct {
	OrderFacadeStub
	ProfileFacadeStub
}

// AdvanceCall records an AdvanceStatus invocation on the tracker client stub.
type AdvanceCall struct {
	Credential string
	OrderID    string
	Status     model.OrderStatus
}

// TrackerClientStub mimics the order service as seen by the tracking driver.
type TrackerClientStub struct {
	GetFn     func(context.Context, string, string) (*model.Order, error)
	AdvanceFn func(context.Context, string, string, model.OrderStatus) (*model.Order, error)

	mu       sync.Mutex
	status   model.OrderStatus
	advances []AdvanceCall
	gets     int
}

// Get returns the order in its currently simulated status.
func (s *TrackerClientStub) Get(ctx context.Context, credential, orderID string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, credential, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	status := s.status
	if status == "" {
		status = model.OrderStatusPreparing
	}
	return &model.Order{ID: orderID, UserID: "user-1", Status: status}, nil
}

// AdvanceStatus records the transition and applies it to the simulated order.
func (s *TrackerClientStub) AdvanceStatus(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, credential, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advances = append(s.advances, AdvanceCall{Credential: credential, OrderID: orderID, Status: status})
	s.status = status
	return &model.Order{ID: orderID, UserID: "user-1", Status: status}, nil
}

// Advances returns a copy of the recorded transitions.
func (s *TrackerClientStub) Advances() []AdvanceCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AdvanceCall, len(s.advances))
	copy(out, s.advances)
	return out
}

// Gets returns how many times the order was polled.
func (s *TrackerClientStub) Gets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}
