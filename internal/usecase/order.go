package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/domain/repository"
	pkgAuth "github.com/feastline/orderd/internal/pkg/auth"
)

// OrderService implements the order lifecycle. Every entry point verifies the
// caller's credential before touching the repository; ownership equality is
// the only authorization rule.
type OrderService struct {
	gate   pkgAuth.Gate
	orders repository.OrderRepository
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewOrderService constructs OrderService.
func NewOrderService(gate pkgAuth.Gate, orders repository.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		gate:   gate,
		orders: orders,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create validates the line items, prices the order server-side, and persists
// it with the initial status.
func (s *OrderService) Create(ctx context.Context, credential string, items []model.LineItem, deliveryAddress string) (*model.Order, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("empty items: %w", domainErrors.ErrInvalidRequest)
	}
	for _, item := range items {
		if item.Price <= 0 || item.Quantity <= 0 {
			return nil, fmt.Errorf("line item %q: %w", item.Name, domainErrors.ErrInvalidRequest)
		}
	}
	if deliveryAddress == "" {
		return nil, fmt.Errorf("missing delivery address: %w", domainErrors.ErrInvalidRequest)
	}

	order := &model.Order{
		ID:              s.newID(),
		UserID:          userID,
		Items:           items,
		Total:           PriceOrder(items).Total,
		Status:          model.OrderStatusPreparing,
		DeliveryAddress: deliveryAddress,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		slog.String("order", order.ID),
		slog.String("user", userID),
		slog.Int64("total", order.Total),
	)
	return order, nil
}

// Get fetches an order, enforcing ownership.
func (s *OrderService) Get(ctx context.Context, credential, orderID string) (*model.Order, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// List returns the caller's orders, most recent first. Index entries that no
// longer resolve are skipped rather than failing the whole listing.
func (s *OrderService) List(ctx context.Context, credential string) ([]model.Order, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	ids, err := s.orders.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		order, err := s.orders.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				s.logger.Warn("stale index entry skipped", slog.String("order", id), slog.String("user", userID))
				continue
			}
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}

// AdvanceStatus moves an order one step forward through the state machine,
// enforcing ownership first.
func (s *OrderService) AdvanceStatus(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, domainErrors.ErrInvalidRequest)
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status advanced",
		slog.String("order", orderID),
		slog.String("status", string(status)),
	)
	return updated, nil
}
