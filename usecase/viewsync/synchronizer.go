package viewsync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

// Names of the two standard views.
const (
	ViewMine   = "my_tasks"
	ViewPublic = "public_tasks"
)

// Synchronizer coordinates task reads with task mutations. Views
// register as interested in mutation events; every successful mutation
// invalidates all of them and triggers their refetch before the
// operation reports complete. Failed mutations change nothing: the
// error goes back to the caller and the views keep their snapshots.
type Synchronizer struct {
	api     repository.TaskAPI
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	views []*View
}

// New builds a synchronizer over the given task API. timeout bounds
// each background refetch.
func New(api repository.TaskAPI, timeout time.Duration, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Synchronizer{
		api:     api,
		timeout: timeout,
		logger:  logger,
	}
}

// Register subscribes a view to mutation events. Views start stale and
// fetch nothing until refreshed or invalidated.
func (s *Synchronizer) Register(name string, fetch Fetch) *View {
	view := newView(name, fetch, s.timeout, s.logger)
	s.mu.Lock()
	s.views = append(s.views, view)
	s.mu.Unlock()
	return view
}

// RegisterTaskViews registers the two standard views over the task API.
func (s *Synchronizer) RegisterTaskViews() (mine, public *View) {
	mine = s.Register(ViewMine, s.api.ListMine)
	public = s.Register(ViewPublic, s.api.ListPublic)
	return mine, public
}

// Create adds a task and refreshes every registered view.
func (s *Synchronizer) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	task, err := s.api.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.InvalidateAll()
	return task, nil
}

// Update applies a partial field set to a task and refreshes every
// registered view.
func (s *Synchronizer) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.api.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.InvalidateAll()
	return task, nil
}

// ToggleCompleted flips a task's completion flag relative to the
// snapshot the caller acted on.
func (s *Synchronizer) ToggleCompleted(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	completed := !task.Completed
	return s.Update(ctx, task.ID, domain.TaskPatch{Completed: &completed})
}

// TogglePublic flips a task's team visibility, which moves it in or
// out of the public view on the next refresh.
func (s *Synchronizer) TogglePublic(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	public := !task.IsPublic
	return s.Update(ctx, task.ID, domain.TaskPatch{IsPublic: &public})
}

// Delete removes a task and refreshes every registered view.
func (s *Synchronizer) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateAll()
	return nil
}

// InvalidateAll marks every registered view stale and triggers their
// refetch. Concurrent invalidations collapse per view.
func (s *Synchronizer) InvalidateAll() {
	for _, view := range s.snapshot() {
		view.Invalidate()
	}
}

// RefreshAll brings every view up to date, fetching concurrently, and
// waits for the fetches to settle. Per-view failures leave that view
// stale and are not returned; only ctx expiry surfaces.
func (s *Synchronizer) RefreshAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, view := range s.snapshot() {
		g.Go(func() error {
			return view.Refresh(ctx)
		})
	}
	return g.Wait()
}

// Settle waits for all in-flight fetches without triggering new ones.
func (s *Synchronizer) Settle(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, view := range s.snapshot() {
		g.Go(func() error {
			return view.Wait(ctx)
		})
	}
	return g.Wait()
}

func (s *Synchronizer) snapshot() []*View {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*View, len(s.views))
	copy(views, s.views)
	return views
}
