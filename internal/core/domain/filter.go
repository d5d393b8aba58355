package domain

import (
	"slices"
	"strings"
)

// Filter entities accepted by Criteria.Toggle.
const (
	FilterSearch   = "search"
	FilterUsers    = "users"
	FilterStatuses = "statuses"
)

// Criteria is the composite board filter. The zero value filters nothing.
type Criteria struct {
	Search   string
	Users    []uint64
	Statuses []string
}

func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Search) == "" && len(c.Users) == 0 && len(c.Statuses) == 0
}

// Apply keeps the tasks matching every non-empty dimension. With no criteria
// the input slice itself is returned.
func (c Criteria) Apply(tasks []Task) []Task {
	if c.IsEmpty() {
		return tasks
	}

	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) {
			continue
		}
		if len(c.Users) > 0 && (task.UserID == nil || !slices.Contains(c.Users, *task.UserID)) {
			continue
		}
		if len(c.Statuses) > 0 && !c.matchesStatus(task) {
			continue
		}
		out = append(out, task)
	}
	return out
}

func (c Criteria) matchesStatus(task Task) bool {
	for _, label := range c.Statuses {
		if label == "" {
			continue
		}
		if label == task.Status || label == string(task.TimeStatus) {
			return true
		}
	}
	return false
}

// WithSearch returns a copy with the search text replaced.
func (c Criteria) WithSearch(search string) Criteria {
	c.Search = search
	return c
}

// ToggleUser adds the user to the selection or removes it when present.
func (c Criteria) ToggleUser(id uint64) Criteria {
	c.Users = toggle(c.Users, id)
	return c
}

func (c Criteria) ToggleStatus(label string) Criteria {
	c.Statuses = toggle(c.Statuses, label)
	return c
}

func toggle[T comparable](values []T, item T) []T {
	out := slices.Clone(values)
	if i := slices.Index(out, item); i >= 0 {
		return slices.Delete(out, i, i+1)
	}
	return append(out, item)
}
