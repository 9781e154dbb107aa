package viewsync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodtodo/taskdeck/domain"
)

// State is the freshness of a view relative to its last fetch.
type State int

const (
	StateStale State = iota
	StateFetching
	StateFresh
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateFresh:
		return "fresh"
	default:
		return "stale"
	}
}

// Fetch loads the view's task list from the server.
type Fetch func(ctx context.Context) ([]domain.Task, error)

// View is one independently fetched task collection. Its snapshot
// always reflects the last known server truth, never a speculative
// local edit.
//
// Invariants: at most one fetch goroutine runs per view, repeated
// invalidations collapse into it, and a fetch started before the
// latest invalidation never has its result applied (last request
// wins, tracked by a per-view sequence number).
type View struct {
	name    string
	fetch   Fetch
	timeout time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	state    State
	seq      uint64
	tasks    []domain.Task
	inflight bool
	done     chan struct{}
}

func newView(name string, fetch Fetch, timeout time.Duration, logger *zap.Logger) *View {
	return &View{
		name:    name,
		fetch:   fetch,
		timeout: timeout,
		logger:  logger.With(zap.String("view", name)),
		state:   StateStale,
	}
}

// Name identifies the view in logs and tests.
func (v *View) Name() string {
	return v.name
}

// Snapshot returns a copy of the last applied task list and the
// current freshness state.
func (v *View) Snapshot() ([]domain.Task, State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	tasks := make([]domain.Task, len(v.tasks))
	copy(tasks, v.tasks)
	return tasks, v.state
}

// State returns the current freshness state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Invalidate marks the view stale and triggers a refetch. If a fetch
// is already in flight the invalidation supersedes it: the in-flight
// result is discarded and the fetch re-run, without spawning a second
// goroutine.
func (v *View) Invalidate() {
	v.mu.Lock()
	v.seq++
	v.state = StateStale
	v.startLocked()
	v.mu.Unlock()
}

// Refresh triggers a fetch when the view is not fresh and waits for
// the in-flight fetch to settle. Refreshing a fresh view is a no-op.
// A fetch failure leaves the view stale with its previous snapshot;
// it is logged, not returned. The only error here is ctx expiry,
// which abandons the wait, not the fetch.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.state == StateFresh && !v.inflight {
		v.mu.Unlock()
		return nil
	}
	v.startLocked()
	v.mu.Unlock()
	return v.Wait(ctx)
}

// Wait blocks until no fetch is in flight or ctx expires.
func (v *View) Wait(ctx context.Context) error {
	v.mu.Lock()
	inflight := v.inflight
	done := v.done
	v.mu.Unlock()
	if !inflight {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startLocked launches the fetch goroutine unless one is running.
// Callers must hold v.mu.
func (v *View) startLocked() {
	if v.inflight {
		return
	}
	v.inflight = true
	v.done = make(chan struct{})
	go v.run()
}

func (v *View) run() {
	for {
		v.mu.Lock()
		seq := v.seq
		v.state = StateFetching
		v.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		tasks, err := v.fetch(ctx)
		cancel()

		v.mu.Lock()
		if seq != v.seq {
			// Superseded mid-flight; the newer invalidation wins.
			v.mu.Unlock()
			continue
		}
		if err != nil {
			v.state = StateStale
			v.logger.Warn("view refresh failed, keeping previous snapshot", zap.Error(err))
		} else {
			v.tasks = tasks
			v.state = StateFresh
		}
		v.inflight = false
		close(v.done)
		v.mu.Unlock()
		return
	}
}
