package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/storage/kv"
)

func orderKey(id string) string          { return "order:" + id }
func userOrdersKey(userID string) string { return "user_orders:" + userID }

// Repository persists orders and the per-user order index in a key-value
// store. The order record is always written before its index entry, so a
// partial failure can orphan an order record but never leave the index
// pointing at a record that was never written. Index entries that still
// fail to resolve are skipped by readers.
//
// The index read-modify-write is not atomic over plain kv.Store. Backends
// implementing kv.IndexStore get an atomic prepend; otherwise a per-user
// mutex serializes concurrent creations within this process.
type Repository struct {
	store  kv.Store
	index  kv.IndexStore
	logger *slog.Logger

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewRepository builds a Repository over the given store, detecting native
// index support.
func NewRepository(store kv.Store, logger *slog.Logger) *Repository {
	index, _ := store.(kv.IndexStore)
	return &Repository{
		store:     store,
		index:     index,
		logger:    logger,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (r *Repository) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.userLocks[userID] = lock
	}
	return lock
}

// Create writes the order record, then prepends its id to the owner's index.
func (r *Repository) Create(ctx context.Context, order *model.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}
	if err := r.store.Set(ctx, orderKey(order.ID), payload); err != nil {
		return fmt.Errorf("store order %s: %w: %w", order.ID, domainErrors.ErrPersistence, err)
	}

	if r.index != nil {
		if err := r.index.PrependIndex(ctx, userOrdersKey(order.UserID), order.ID); err != nil {
			return fmt.Errorf("index order %s: %w: %w", order.ID, domainErrors.ErrPersistence, err)
		}
		return nil
	}

	lock := r.userLock(order.UserID)
	lock.Lock()
	defer lock.Unlock()

	ids, err := r.readIndexFallback(ctx, order.UserID)
	if err != nil {
		return err
	}
	ids = append([]string{order.ID}, ids...)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal index for %s: %w", order.UserID, err)
	}
	if err := r.store.Set(ctx, userOrdersKey(order.UserID), data); err != nil {
		return fmt.Errorf("index order %s: %w: %w", order.ID, domainErrors.ErrPersistence, err)
	}
	return nil
}

// Get fetches a single order by id.
func (r *Repository) Get(ctx context.Context, id string) (*model.Order, error) {
	data, err := r.store.Get(ctx, orderKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("load order %s: %w: %w", id, domainErrors.ErrPersistence, err)
	}
	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decode order %s: %w: %w", id, domainErrors.ErrPersistence, err)
	}
	return &order, nil
}

// ListIDs returns the owner's order ids, most recent first. An absent index
// reads as an empty list.
func (r *Repository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	if r.index != nil {
		ids, err := r.index.ReadIndex(ctx, userOrdersKey(userID))
		if err != nil {
			return nil, fmt.Errorf("read index for %s: %w: %w", userID, domainErrors.ErrPersistence, err)
		}
		return ids, nil
	}
	return r.readIndexFallback(ctx, userID)
}

func (r *Repository) readIndexFallback(ctx context.Context, userID string) ([]string, error) {
	data, err := r.store.Get(ctx, userOrdersKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index for %s: %w: %w", userID, domainErrors.ErrPersistence, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode index for %s: %w: %w", userID, domainErrors.ErrPersistence, err)
	}
	return ids, nil
}

// UpdateStatus applies a status transition, leaving all other fields
// untouched. The transition table is re-checked here as the last line of
// defense.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	order, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, status, domainErrors.ErrIllegalTransition)
	}

	order.Status = status
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order %s: %w", id, err)
	}
	if err := r.store.Set(ctx, orderKey(id), payload); err != nil {
		return nil, fmt.Errorf("store order %s: %w: %w", id, domainErrors.ErrPersistence, err)
	}
	return order, nil
}
