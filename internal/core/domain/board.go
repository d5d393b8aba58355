package domain

import "sort"

// IndexOf returns the position of the task with the given id.
func IndexOf(tasks []Task, id uint64) (int, bool) {
	for i, task := range tasks {
		if task.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FilterByColumn projects tasks onto one column, keeping input order. A nil
// columnID selects the backlog.
func FilterByColumn(columnID *uint64, tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.InColumn(columnID) {
			out = append(out, task)
		}
	}
	return out
}

// SortBySortOrder returns a stably sorted copy.
func SortBySortOrder(tasks []Task) []Task {
	out := append([]Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// Reorder commits a drop of active onto toTask within a column list. The list
// is copied, active is removed if present, the rest is stably sorted by sort
// key and active is inserted before toTask. A nil toTask, or one that is no
// longer in the list (including toTask == active), appends to the end.
func Reorder(active Task, toTask *Task, tasks []Task) []Task {
	rest := make([]Task, 0, len(tasks)+1)
	for _, task := range tasks {
		if task.ID != active.ID {
			rest = append(rest, task)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].SortOrder < rest[j].SortOrder
	})

	if toTask != nil {
		if index, ok := IndexOf(rest, toTask.ID); ok {
			rest = append(rest, Task{})
			copy(rest[index+1:], rest[index:])
			rest[index] = active
			return rest
		}
	}
	return append(rest, active)
}

// Resequence places every task in columnID with a sort key equal to its
// position. It returns the full list and the subset whose column or sort key
// changed and therefore needs to be persisted.
func Resequence(tasks []Task, columnID *uint64) ([]Task, []Task) {
	all := make([]Task, len(tasks))
	var changed []Task
	for i, task := range tasks {
		moved := !task.InColumn(columnID) || task.SortOrder != i
		task.ColumnID = copyID(columnID)
		task.SortOrder = i
		all[i] = task
		if moved {
			changed = append(changed, task)
		}
	}
	return all, changed
}

func copyID(id *uint64) *uint64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
