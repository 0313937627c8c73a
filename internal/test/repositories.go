package test

import (
	"context"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory for use-case tests.
type OrderRepositoryStub struct {
	OrdersByID map[string]*model.Order
	Index      map[string][]string
	Err        error

	CreateFn       func(context.Context, *model.Order) error
	GetFn          func(context.Context, string) (*model.Order, error)
	ListIDsFn      func(context.Context, string) ([]string, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

// NewOrderRepositoryStub constructs a stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		OrdersByID: make(map[string]*model.Order),
		Index:      make(map[string][]string),
	}
}

// Create stores the order and prepends it to the owner's index.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	stored := *order
	s.OrdersByID[order.ID] = &stored
	s.Index[order.UserID] = append([]string{order.ID}, s.Index[order.UserID]...)
	return nil
}

// Get returns a copy of the stored order.
func (s *OrderRepositoryStub) Get(ctx context.Context, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.OrdersByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *order
	return &out, nil
}

// ListIDs returns the owner's index, most recent first.
func (s *OrderRepositoryStub) ListIDs(ctx context.Context, userID string) ([]string, error) {
	if s.ListIDsFn != nil {
		return s.ListIDsFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Index[userID], nil
}

// UpdateStatus applies the transition table to the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.OrdersByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !model.CanTransition(order.Status, status) {
		return nil, domainErrors.ErrIllegalTransition
	}
	order.Status = status
	out := *order
	return &out, nil
}

// ProfileRepositoryStub keeps profiles in memory for use-case tests.
type ProfileRepositoryStub struct {
	Profiles map[string]*model.Profile
	Err      error
}

// NewProfileRepositoryStub constructs a stub with an initialized map.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{Profiles: make(map[string]*model.Profile)}
}

// Save stores a copy of the profile.
func (s *ProfileRepositoryStub) Save(ctx context.Context, profile *model.Profile) error {
	if s.Err != nil {
		return s.Err
	}
	stored := *profile
	s.Profiles[profile.UserID] = &stored
	return nil
}

// Get returns the stored profile.
func (s *ProfileRepositoryStub) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	profile, ok := s.Profiles[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *profile
	return &out, nil
}
