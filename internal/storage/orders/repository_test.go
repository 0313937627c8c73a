package orders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/storage/kv"
	redisstore "github.com/feastline/orderd/internal/storage/redis"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleOrder(id, userID string) *model.Order {
	return &model.Order{
		ID:     id,
		UserID: userID,
		Items: []model.LineItem{
			{Name: "margherita", Price: 240, Quantity: 2, RestaurantID: "rest-1"},
		},
		Total:           606,
		Status:          model.OrderStatusPreparing,
		DeliveryAddress: "1 Main St",
		CreatedAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	ctx := context.Background()

	want := sampleOrder("o1", "u1")
	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	got, err := repo.Get(ctx, "o1")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.ID != want.ID || got.UserID != want.UserID || got.Total != want.Total ||
		got.Status != want.Status || got.DeliveryAddress != want.DeliveryAddress ||
		!got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
	if len(got.Items) != 1 || got.Items[0] != want.Items[0] {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
}

func TestGetUnknownOrder(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListIDsMostRecentFirst(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	ctx := context.Background()

	for _, id := range []string{"o1", "o2", "o3"} {
		if err := repo.Create(ctx, sampleOrder(id, "u1")); err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
	}

	ids, err := repo.ListIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	want := []string{"o3", "o2", "o1"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestListIDsEmptyForUnknownUser(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	ids, err := repo.ListIDs(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty index, got %v", ids)
	}
}

func TestCreateRecordWriteFailureLeavesIndexUntouched(t *testing.T) {
	store := kv.NewMemory()
	repo := NewRepository(store, testLogger())
	ctx := context.Background()

	store.FailSets(errors.New("io error"))
	err := repo.Create(ctx, sampleOrder("o1", "u1"))
	if !errors.Is(err, domainErrors.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	store.FailSets(nil)

	ids, err := repo.ListIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("failed create must not index anything, got %v", ids)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	ctx := context.Background()
	if err := repo.Create(ctx, sampleOrder("o1", "u1")); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	if _, err := repo.UpdateStatus(ctx, "o1", model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition for skip, got %v", err)
	}

	order, err := repo.UpdateStatus(ctx, "o1", model.OrderStatusOnTheWay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusOnTheWay {
		t.Fatalf("expected on-the-way, got %s", order.Status)
	}
	if order.Total != 606 || order.DeliveryAddress != "1 Main St" {
		t.Fatalf("status update must not touch other fields: %+v", order)
	}

	if _, err := repo.UpdateStatus(ctx, "o1", model.OrderStatusDelivered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "o1", model.OrderStatusOnTheWay); !errors.Is(err, domainErrors.ErrIllegalTransition) {
		t.Fatalf("expected terminal state to reject transitions, got %v", err)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repo := NewRepository(kv.NewMemory(), testLogger())
	if _, err := repo.UpdateStatus(context.Background(), "nope", model.OrderStatusOnTheWay); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentCreatesKeepFullIndex(t *testing.T) {
	const m = 32
	repo := NewRepository(kv.NewMemory(), testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, m)
	for i := 0; i < m; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- repo.Create(ctx, sampleOrder(fmt.Sprintf("o-%d", n), "u1"))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
	}

	ids, err := repo.ListIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(ids) != m {
		t.Fatalf("expected %d index entries, got %d (lost update)", m, len(ids))
	}
}

func TestConcurrentCreatesOnIndexStore(t *testing.T) {
	const m = 32
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := NewRepository(redisstore.NewWithClient(client, testLogger()), testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < m; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			order := sampleOrder(fmt.Sprintf("order-%d", n), "u1")
			if err := repo.Create(ctx, order); err != nil {
				t.Errorf("unexpected create error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	ids, err := repo.ListIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(ids) != m {
		t.Fatalf("expected %d index entries, got %d", m, len(ids))
	}
}
