package mapper

import (
	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToTasks(items []dto.Task) []domain.Task {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, ToTask(item))
	}
	return tasks
}

func ToTask(item dto.Task) domain.Task {
	task := domain.Task{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		SortOrder:   item.SortOrder,
		Tags:        item.Tags,
		URL:         item.URL,
	}

	if item.DueDate != nil {
		task.DueDate = *item.DueDate
	}

	if item.ColumnID != nil {
		value := *item.ColumnID
		task.ColumnID = &value
	}

	if item.UserID != nil {
		value := *item.UserID
		task.UserID = &value
	}

	if item.StatusID != nil {
		value := *item.StatusID
		task.StatusID = &value
	}

	return task
}

// FromTask builds the request body for a task. Derived fields are not sent.
func FromTask(task domain.Task) dto.Task {
	item := dto.Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		ColumnID:    task.ColumnID,
		UserID:      task.UserID,
		StatusID:    task.StatusID,
		SortOrder:   task.SortOrder,
		Tags:        task.Tags,
		URL:         task.URL,
	}

	if task.DueDate != "" {
		value := task.DueDate
		item.DueDate = &value
	}

	return item
}

func ToColumns(items []dto.Column) []domain.Column {
	columns := make([]domain.Column, 0, len(items))
	for _, item := range items {
		columns = append(columns, ToColumn(item))
	}
	return columns
}

func ToColumn(item dto.Column) domain.Column {
	return domain.Column{ID: item.ID, Title: item.Title, Order: item.Order}
}

func FromColumn(column domain.Column) dto.Column {
	return dto.Column{ID: column.ID, Title: column.Title, Order: column.Order}
}

func ToUsers(items []dto.User) []domain.User {
	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		users = append(users, ToUser(item))
	}
	return users
}

func ToUser(item dto.User) domain.User {
	return domain.User{
		ID:        item.ID,
		Name:      item.Name,
		Email:     item.Email,
		AvatarURL: item.AvatarURL,
		IsAdmin:   item.IsAdmin,
	}
}

func ToTicks(items []dto.Tick) []domain.Tick {
	ticks := make([]domain.Tick, 0, len(items))
	for _, item := range items {
		ticks = append(ticks, domain.Tick{
			ID:     item.ID,
			TaskID: item.TaskID,
			Text:   item.Text,
			Done:   item.Done,
		})
	}
	return ticks
}
