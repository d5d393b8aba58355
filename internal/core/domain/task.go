package domain

import "strings"

const tagSeparator = "#"

type Task struct {
	ID          uint64
	Title       string
	Description string
	DueDate     string
	ColumnID    *uint64
	UserID      *uint64
	StatusID    *int
	SortOrder   int
	Tags        string
	URL         string

	// Derived by Normalize, never sent back to the server.
	Status     string
	TimeStatus TimeStatus
}

// InBacklog reports whether the task has no column.
func (t Task) InBacklog() bool {
	return t.ColumnID == nil
}

// InColumn reports whether the task belongs to columnID. A nil columnID
// selects the backlog.
func (t Task) InColumn(columnID *uint64) bool {
	if columnID == nil || t.ColumnID == nil {
		return columnID == nil && t.ColumnID == nil
	}
	return *t.ColumnID == *columnID
}

// TagList splits the raw tag string. The leading separator produces an empty
// first element which is dropped.
func (t Task) TagList() []string {
	if t.Tags == "" {
		return nil
	}
	parts := strings.Split(t.Tags, tagSeparator)
	return parts[1:]
}

// JoinTags builds the raw tag string from individual tags.
func JoinTags(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), tagSeparator))
		if tag == "" {
			continue
		}
		b.WriteString(tagSeparator)
		b.WriteString(tag)
	}
	return b.String()
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	ColumnID    *uint64
	UserID      *uint64
	StatusID    *int
	Tags        string
	URL         string
}

type Column struct {
	ID    uint64
	Title string
	Order int
}

type User struct {
	ID        uint64
	Name      string
	Email     string
	AvatarURL string
	IsAdmin   bool
}

// Tick is a checklist item attached to a task.
type Tick struct {
	ID     uint64
	TaskID uint64
	Text   string
	Done   bool
}

// TaskView is a task joined with its ticks and owning user at read time.
type TaskView struct {
	Task
	Ticks []Tick
	User  *User
}

// Uint64Ptr is a helper for optional ids.
func Uint64Ptr(v uint64) *uint64 {
	return &v
}

func IntPtr(v int) *int {
	return &v
}
