package http

import (
	"context"
	"fmt"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// TasksService is the REST transport for tasks.
type TasksService struct {
	client *Client
}

func NewTasksService(client *Client) *TasksService {
	return &TasksService{client: client}
}

func (s *TasksService) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	var items []dto.Task
	if err := s.client.Get(ctx, "/tasks", &items); err != nil {
		return nil, err
	}
	return mapper.ToTasks(items), nil
}

func (s *TasksService) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	body := mapper.FromTask(task)
	body.ID = 0

	var created dto.Task
	if err := s.client.Post(ctx, "/tasks", body, &created); err != nil {
		return domain.Task{}, err
	}
	return mapper.ToTask(created), nil
}

// UpdateTask returns the server's copy. A bodyless success echoes the request.
func (s *TasksService) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var updated *dto.Task
	if err := s.client.Put(ctx, fmt.Sprintf("/tasks/%d", task.ID), mapper.FromTask(task), &updated); err != nil {
		return domain.Task{}, err
	}
	if updated == nil {
		return task, nil
	}
	return mapper.ToTask(*updated), nil
}

func (s *TasksService) DeleteTask(ctx context.Context, id uint64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/tasks/%d", id))
}

var _ ports.TaskTransport = (*TasksService)(nil)
