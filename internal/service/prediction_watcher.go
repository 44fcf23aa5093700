package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/blaisecz/baby-journal/internal/analytics"
	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultPredictionRefreshInterval = 5 * time.Minute
	DefaultCountdownTickInterval     = 60 * time.Second
)

// SnapshotReason says which trigger produced a snapshot.
type SnapshotReason string

const (
	ReasonRefresh    SnapshotReason = "refresh"
	ReasonForeground SnapshotReason = "foreground"
	ReasonTick       SnapshotReason = "tick"
)

// WatchSnapshot is one published view of the prediction. Err is set when a
// refresh failed; Prediction then still holds the last good result, if any.
type WatchSnapshot struct {
	Reason     SnapshotReason
	Prediction *domain.PredictionResponse
	Err        error
}

// PredictionWatcher keeps a baby's next-feed prediction current. A refresh
// task re-reads the journal on its own interval or when Foreground is
// called; a countdown task re-renders the cached prediction every tick
// without touching storage.
type PredictionWatcher struct {
	svc          PredictionService
	babyID       uuid.UUID
	refreshEvery time.Duration
	tickEvery    time.Duration
	now          func() time.Time

	mu     sync.RWMutex
	latest *domain.PredictionResponse

	snapshots  chan WatchSnapshot
	foreground chan struct{}
	stop       chan struct{}
	startOnce  sync.Once
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewPredictionWatcher creates a watcher. Non-positive intervals fall back
// to the defaults.
func NewPredictionWatcher(svc PredictionService, babyID uuid.UUID, refreshEvery, tickEvery time.Duration) *PredictionWatcher {
	if refreshEvery <= 0 {
		refreshEvery = DefaultPredictionRefreshInterval
	}
	if tickEvery <= 0 {
		tickEvery = DefaultCountdownTickInterval
	}
	return &PredictionWatcher{
		svc:          svc,
		babyID:       babyID,
		refreshEvery: refreshEvery,
		tickEvery:    tickEvery,
		now:          time.Now,
		snapshots:    make(chan WatchSnapshot, 16),
		foreground:   make(chan struct{}, 1),
		stop:         make(chan struct{}),
	}
}

// Snapshots is closed once Stop has returned.
func (w *PredictionWatcher) Snapshots() <-chan WatchSnapshot {
	return w.snapshots
}

// Latest returns the most recent successful prediction, or nil.
func (w *PredictionWatcher) Latest() *domain.PredictionResponse {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

// Start runs an initial refresh and both periodic tasks until ctx is done or
// Stop is called.
func (w *PredictionWatcher) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.wg.Add(2)
		go w.refreshLoop(ctx)
		go w.tickLoop(ctx)
	})
}

// Foreground requests an immediate refresh. Calls made while one is already
// pending are coalesced.
func (w *PredictionWatcher) Foreground() {
	select {
	case w.foreground <- struct{}{}:
	default:
	}
}

// Stop cancels both timers and waits for the tasks to exit.
func (w *PredictionWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.wg.Wait()
		close(w.snapshots)
	})
}

func (w *PredictionWatcher) refreshLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.refreshEvery)
	defer ticker.Stop()

	w.refresh(ctx, ReasonRefresh)
	for {
		select {
		case <-ticker.C:
			w.refresh(ctx, ReasonRefresh)
		case <-w.foreground:
			w.refresh(ctx, ReasonForeground)
			ticker.Reset(w.refreshEvery)
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *PredictionWatcher) tickLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *PredictionWatcher) refresh(ctx context.Context, reason SnapshotReason) {
	resp, err := w.svc.Predict(ctx, w.babyID, w.now().UTC())
	if err != nil {
		log.Printf("[feedwatch] refresh for baby %s failed: %v", w.babyID, err)
		w.publish(ctx, WatchSnapshot{Reason: reason, Prediction: w.Latest(), Err: err})
		return
	}

	w.mu.Lock()
	w.latest = resp
	w.mu.Unlock()

	w.publish(ctx, WatchSnapshot{Reason: reason, Prediction: resp})
}

func (w *PredictionWatcher) tick(ctx context.Context) {
	latest := w.Latest()
	if latest == nil {
		return
	}
	now := w.now().UTC()
	view := &domain.PredictionResponse{
		Prediction:  latest.Prediction,
		Countdown:   analytics.CountdownFor(latest.Prediction, now),
		EvaluatedAt: now,
	}
	w.publish(ctx, WatchSnapshot{Reason: ReasonTick, Prediction: view})
}

func (w *PredictionWatcher) publish(ctx context.Context, snap WatchSnapshot) {
	select {
	case w.snapshots <- snap:
	case <-w.stop:
	case <-ctx.Done():
	}
}
