package service

import (
	"context"
	"fmt"
	"sync"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// UserStore caches the board members.
type UserStore struct {
	transport ports.UserTransport

	mu    sync.RWMutex
	users []domain.User
}

func NewUserStore(transport ports.UserTransport) *UserStore {
	return &UserStore{transport: transport}
}

func (s *UserStore) FetchAll(ctx context.Context) error {
	users, err := s.transport.FetchUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

func (s *UserStore) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *UserStore) UserByID(id uint64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}

// TickStore caches task checklist items.
type TickStore struct {
	transport ports.TickTransport

	mu    sync.RWMutex
	ticks []domain.Tick
}

func NewTickStore(transport ports.TickTransport) *TickStore {
	return &TickStore{transport: transport}
}

func (s *TickStore) FetchAll(ctx context.Context) error {
	ticks, err := s.transport.FetchTicks(ctx)
	if err != nil {
		return fmt.Errorf("fetch ticks: %w", err)
	}
	s.mu.Lock()
	s.ticks = ticks
	s.mu.Unlock()
	return nil
}

func (s *TickStore) TicksByTaskID(taskID uint64) []domain.Tick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Tick
	for _, tick := range s.ticks {
		if tick.TaskID == taskID {
			out = append(out, tick)
		}
	}
	return out
}

// FilterStore holds the board filter selected by the user.
type FilterStore struct {
	mu       sync.RWMutex
	criteria domain.Criteria
}

func NewFilterStore() *FilterStore {
	return &FilterStore{}
}

func (s *FilterStore) Criteria() domain.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Apply updates one filter dimension: the search text is replaced, user ids
// and status labels are toggled in or out of the selection.
func (s *FilterStore) Apply(entity string, item any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch entity {
	case domain.FilterSearch:
		search, ok := item.(string)
		if !ok {
			return fmt.Errorf("search filter expects a string, got %T", item)
		}
		s.criteria = s.criteria.WithSearch(search)
	case domain.FilterUsers:
		id, ok := item.(uint64)
		if !ok {
			return fmt.Errorf("users filter expects a user id, got %T", item)
		}
		s.criteria = s.criteria.ToggleUser(id)
	case domain.FilterStatuses:
		label, ok := item.(string)
		if !ok {
			return fmt.Errorf("statuses filter expects a label, got %T", item)
		}
		s.criteria = s.criteria.ToggleStatus(label)
	default:
		return fmt.Errorf("unknown filter %q", entity)
	}
	return nil
}

func (s *FilterStore) Reset() {
	s.mu.Lock()
	s.criteria = domain.Criteria{}
	s.mu.Unlock()
}

var (
	_ ports.UsersProvider   = (*UserStore)(nil)
	_ ports.TicksProvider   = (*TickStore)(nil)
	_ ports.FiltersProvider = (*FilterStore)(nil)
)
