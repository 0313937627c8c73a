package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
)

// OrderClient exposes the subset of order operations required by the tracker.
type OrderClient interface {
	Get(ctx context.Context, credential, orderID string) (*model.Order, error)
	AdvanceStatus(ctx context.Context, credential, orderID string, status model.OrderStatus) (*model.Order, error)
}

// Tracker simulates courier progress for enrolled orders. Each order gets its
// own goroutine that advances the status on a schedule and polls for external
// transitions so it can stop once the order reaches a terminal status.
type Tracker struct {
	client        OrderClient
	pollInterval  time.Duration
	prepDelay     time.Duration
	deliveryDelay time.Duration
	logger        *slog.Logger

	mu      sync.Mutex
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	tracks  map[string]context.CancelFunc
	started bool
}

// NewTracker constructs the courier simulation driver.
func NewTracker(client OrderClient, pollInterval, prepDelay, deliveryDelay time.Duration, logger *slog.Logger) *Tracker {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Tracker{
		client:        client,
		pollInterval:  pollInterval,
		prepDelay:     prepDelay,
		deliveryDelay: deliveryDelay,
		logger:        logger,
		tracks:        make(map[string]context.CancelFunc),
	}
}

// Start accepts enrollments. Orders tracked before Start are scheduled once
// it runs.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.ctx, t.cancel = context.WithCancel(ctx)
	t.started = true
}

// Stop cancels all in-flight tracks and waits for their goroutines.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.started = false
	t.mu.Unlock()

	t.wg.Wait()
}

// Track enrolls an order for simulated courier progress. The credential is
// retained for the lifetime of the track so every advance passes the identity
// gate like any client call. Tracking the same order twice is a no-op.
func (t *Tracker) Track(credential, orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return
	}
	if _, ok := t.tracks[orderID]; ok {
		return
	}

	trackCtx, cancel := context.WithCancel(t.ctx)
	t.tracks[orderID] = cancel
	t.wg.Add(1)
	go t.run(trackCtx, credential, orderID)
}

// Untrack cancels the scheduled progression for an order.
func (t *Tracker) Untrack(orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cancel, ok := t.tracks[orderID]; ok {
		cancel()
		delete(t.tracks, orderID)
	}
}

// Tracked reports how many orders currently have an active track.
func (t *Tracker) Tracked() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tracks)
}

func (t *Tracker) run(ctx context.Context, credential, orderID string) {
	defer t.wg.Done()
	defer t.Untrack(orderID)

	prep := time.NewTimer(t.prepDelay)
	defer prep.Stop()
	delivery := time.NewTimer(t.deliveryDelay)
	defer delivery.Stop()
	poll := time.NewTicker(t.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-prep.C:
			if done := t.advance(ctx, credential, orderID, model.OrderStatusOnTheWay); done {
				return
			}
		case <-delivery.C:
			t.advance(ctx, credential, orderID, model.OrderStatusDelivered)
			return
		case <-poll.C:
			order, err := t.client.Get(ctx, credential, orderID)
			if err != nil {
				if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrAuthenticationFailed) {
					t.logger.Warn("order track abandoned", slog.String("order", orderID), slog.String("error", err.Error()))
					return
				}
				t.logger.Error("order poll failed", slog.String("order", orderID), slog.String("error", err.Error()))
				continue
			}
			if model.Terminal(order.Status) {
				return
			}
		}
	}
}

// advance applies the transition and reports whether tracking should stop.
// A transition raced by an external caller is not an error for the simulation;
// the next poll observes the real status.
func (t *Tracker) advance(ctx context.Context, credential, orderID string, status model.OrderStatus) bool {
	order, err := t.client.AdvanceStatus(ctx, credential, orderID, status)
	if err != nil {
		if errors.Is(err, domainErrors.ErrIllegalTransition) {
			return false
		}
		t.logger.Error("order advance failed", slog.String("order", orderID), slog.String("status", string(status)), slog.String("error", err.Error()))
		return errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrAuthenticationFailed)
	}

	t.logger.Info("order advanced", slog.String("order", orderID), slog.String("status", string(order.Status)))
	return model.Terminal(order.Status)
}
