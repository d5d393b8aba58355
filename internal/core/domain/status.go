package domain

import (
	"strings"
	"time"
)

// TimeStatus labels a task by how close its due date is.
type TimeStatus string

const (
	TimeStatusNone        TimeStatus = ""
	TimeStatusApproaching TimeStatus = "time"
	TimeStatusExpired     TimeStatus = "alert"
)

const (
	StatusGreen  = "green"
	StatusOrange = "orange"
	StatusRed    = "red"
)

const Day = 24 * time.Hour

var taskStatuses = map[int]string{
	1: StatusGreen,
	2: StatusOrange,
	3: StatusRed,
}

// StatusLabels is the combined filter vocabulary: display statuses followed by
// time statuses.
var StatusLabels = []string{
	StatusGreen,
	StatusOrange,
	StatusRed,
	string(TimeStatusApproaching),
	string(TimeStatusExpired),
}

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate accepts the formats the board API emits. Zone-less values are
// read as UTC.
func ParseDueDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimeStatusOf never fails: a missing or malformed due date reads as none.
// A due date a full day or more away is none, one at or before now is
// expired.
func TimeStatusOf(dueDate string, now time.Time) TimeStatus {
	due, ok := ParseDueDate(dueDate)
	if !ok {
		return TimeStatusNone
	}
	delta := due.Sub(now)
	if delta >= Day {
		return TimeStatusNone
	}
	if delta <= 0 {
		return TimeStatusExpired
	}
	return TimeStatusApproaching
}

// StatusLabel maps the raw classifier to its display label, or "" when it is
// absent or unknown.
func StatusLabel(statusID *int) string {
	if statusID == nil {
		return ""
	}
	return taskStatuses[*statusID]
}

// Normalize returns a copy of task with its derived fields recomputed.
func Normalize(task Task, now time.Time) Task {
	task.Status = StatusLabel(task.StatusID)
	task.TimeStatus = TimeStatusOf(task.DueDate, now)
	return task
}

func NormalizeAll(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, Normalize(task, now))
	}
	return out
}
