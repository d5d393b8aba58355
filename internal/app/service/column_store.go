package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type ColumnStore struct {
	transport    ports.ColumnTransport
	defaultTitle string

	mu      sync.RWMutex
	columns []domain.Column
}

// NewColumnStore creates a store whose new columns are titled defaultTitle
// until renamed.
func NewColumnStore(transport ports.ColumnTransport, defaultTitle string) *ColumnStore {
	return &ColumnStore{transport: transport, defaultTitle: defaultTitle}
}

func (s *ColumnStore) FetchAll(ctx context.Context) error {
	columns, err := s.transport.FetchColumns(ctx)
	if err != nil {
		return fmt.Errorf("fetch columns: %w", err)
	}
	s.mu.Lock()
	s.columns = columns
	s.mu.Unlock()
	return nil
}

// Create adds a column with the default title after the existing ones.
func (s *ColumnStore) Create(ctx context.Context) (domain.Column, error) {
	s.mu.RLock()
	order := len(s.columns)
	s.mu.RUnlock()

	created, err := s.transport.CreateColumn(ctx, domain.Column{Title: s.defaultTitle, Order: order})
	if err != nil {
		return domain.Column{}, fmt.Errorf("create column: %w", err)
	}

	s.mu.Lock()
	s.columns = append(s.columns, created)
	s.mu.Unlock()
	return created, nil
}

func (s *ColumnStore) Update(ctx context.Context, column domain.Column) (domain.Column, bool, error) {
	updated, err := s.transport.UpdateColumn(ctx, column)
	if err != nil {
		return domain.Column{}, false, fmt.Errorf("update column %d: %w", column.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.columns {
		if s.columns[i].ID == updated.ID {
			columns := append([]domain.Column(nil), s.columns...)
			columns[i] = updated
			s.columns = columns
			return updated, true, nil
		}
	}
	return updated, false, nil
}

func (s *ColumnStore) Delete(ctx context.Context, id uint64) (bool, error) {
	if err := s.transport.DeleteColumn(ctx, id); err != nil {
		return false, fmt.Errorf("delete column %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	columns := make([]domain.Column, 0, len(s.columns))
	for _, column := range s.columns {
		if column.ID != id {
			columns = append(columns, column)
		}
	}
	removed := len(columns) != len(s.columns)
	s.columns = columns
	return removed, nil
}

// Columns returns the columns in display order.
func (s *ColumnStore) Columns() []domain.Column {
	s.mu.RLock()
	columns := append([]domain.Column(nil), s.columns...)
	s.mu.RUnlock()

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})
	return columns
}

func (s *ColumnStore) ByID(id uint64) (domain.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, column := range s.columns {
		if column.ID == id {
			return column, true
		}
	}
	return domain.Column{}, false
}
