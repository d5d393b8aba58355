package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

const defaultBatchConcurrency = 4

// State of a store's canonical collection.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateMutating
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TaskStore owns the canonical task collection. The collection only changes
// after the transport has confirmed a mutation.
type TaskStore struct {
	transport ports.TaskTransport
	filters   ports.FiltersProvider
	users     ports.UsersProvider
	ticks     ports.TicksProvider

	now         func() time.Time
	concurrency int

	mu       sync.RWMutex
	tasks    []domain.Task
	loaded   bool
	loading  bool
	inFlight int
}

type TaskStoreOption func(*TaskStore)

// WithClock overrides the time source used for derived statuses.
func WithClock(now func() time.Time) TaskStoreOption {
	return func(s *TaskStore) {
		s.now = now
	}
}

// WithBatchConcurrency bounds the number of in-flight transport calls of a
// batch update.
func WithBatchConcurrency(n int) TaskStoreOption {
	return func(s *TaskStore) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewTaskStore(
	transport ports.TaskTransport,
	filters ports.FiltersProvider,
	users ports.UsersProvider,
	ticks ports.TicksProvider,
	opts ...TaskStoreOption,
) *TaskStore {
	s := &TaskStore{
		transport:   transport,
		filters:     filters,
		users:       users,
		ticks:       ticks,
		now:         time.Now,
		concurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.loading:
		return StateLoading
	case !s.loaded:
		return StateEmpty
	case s.inFlight > 0:
		return StateMutating
	default:
		return StateReady
	}
}

// FetchAll replaces the whole collection with the server's list.
func (s *TaskStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	tasks, err := s.transport.FetchTasks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return fmt.Errorf("fetch tasks: %w", err)
	}
	s.tasks = tasks
	s.loaded = true
	return nil
}

// Create appends a new task at the end of its column, the backlog when the
// input has no column. The sort key is the task count of the target column,
// not of the backlog, so a task created in a column lands after its last task.
func (s *TaskStore) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.RLock()
	sortOrder := len(domain.FilterByColumn(input.ColumnID, s.tasks))
	s.mu.RUnlock()

	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		ColumnID:    input.ColumnID,
		UserID:      input.UserID,
		StatusID:    input.StatusID,
		SortOrder:   sortOrder,
		Tags:        input.Tags,
		URL:         input.URL,
	}

	done := s.begin()
	defer done()

	created, err := s.transport.CreateTask(ctx, task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, created)
	s.mu.Unlock()

	return domain.Normalize(created, s.now()), nil
}

// Update sends the task to the server and replaces the local copy with the
// confirmed one. applied is false when the task is not in the collection.
func (s *TaskStore) Update(ctx context.Context, task domain.Task) (domain.Task, bool, error) {
	done := s.begin()
	defer done()

	updated, err := s.transport.UpdateTask(ctx, task)
	if err != nil {
		return domain.Task{}, false, fmt.Errorf("update task %d: %w", task.ID, err)
	}

	applied := s.replace(updated)
	if !applied {
		zap.L().Warn("updated task is not in the local collection", zap.Uint64("task_id", updated.ID))
	}
	return domain.Normalize(updated, s.now()), applied, nil
}

// Delete removes the task on the server, then locally. removed is false when
// the task was not in the collection.
func (s *TaskStore) Delete(ctx context.Context, id uint64) (bool, error) {
	done := s.begin()
	defer done()

	if err := s.transport.DeleteTask(ctx, id); err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := domain.IndexOf(s.tasks, id)
	if !ok {
		return false, nil
	}
	s.tasks = append(s.tasks[:index:index], s.tasks[index+1:]...)
	return true, nil
}

// replace splices task into the collection, resolving its index under the
// write lock.
func (s *TaskStore) replace(task domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := domain.IndexOf(s.tasks, task.ID)
	if !ok {
		return false
	}
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	tasks[index] = task
	s.tasks = tasks
	return true
}

func (s *TaskStore) begin() func() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}
}

func (s *TaskStore) has(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := domain.IndexOf(s.tasks, id)
	return ok
}

// Tasks returns a normalized copy of the canonical collection.
func (s *TaskStore) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.NormalizeAll(s.tasks, s.now())
}

// Filtered applies the current filter criteria to the normalized collection.
func (s *TaskStore) Filtered() []domain.Task {
	tasks := s.Tasks()
	if s.filters == nil {
		return tasks
	}
	return s.filters.Criteria().Apply(tasks)
}

// ByColumn returns the filtered tasks of one column, ordered by sort key.
func (s *TaskStore) ByColumn(columnID uint64) []domain.Task {
	return domain.SortBySortOrder(domain.FilterByColumn(&columnID, s.Filtered()))
}

// Backlog returns the filtered tasks without a column, ordered by sort key.
func (s *TaskStore) Backlog() []domain.Task {
	return domain.SortBySortOrder(domain.FilterByColumn(nil, s.Filtered()))
}

func (s *TaskStore) ByID(id uint64) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index, ok := domain.IndexOf(s.tasks, id)
	if !ok {
		return domain.Task{}, false
	}
	return domain.Normalize(s.tasks[index], s.now()), true
}

// View joins the task with its ticks and owning user as they are now.
func (s *TaskStore) View(id uint64) (domain.TaskView, bool) {
	task, ok := s.ByID(id)
	if !ok {
		return domain.TaskView{}, false
	}

	view := domain.TaskView{Task: task}
	if s.ticks != nil {
		view.Ticks = s.ticks.TicksByTaskID(id)
	}
	if s.users != nil && task.UserID != nil {
		if user, found := s.users.UserByID(*task.UserID); found {
			view.User = &user
		}
	}
	return view, true
}
