package tests

import (
	"context"
	"time"

	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type taskTransportMock struct {
	mock.Mock
}

func (m *taskTransportMock) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskTransportMock) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

// UpdateTask echoes the request when the expectation returns nil, like a
// server that confirms the payload it received.
func (m *taskTransportMock) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	if value := args.Get(0); value != nil {
		return value.(domain.Task), args.Error(1)
	}
	return task, args.Error(1)
}

func (m *taskTransportMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type columnTransportMock struct {
	mock.Mock
}

func (m *columnTransportMock) FetchColumns(ctx context.Context) ([]domain.Column, error) {
	args := m.Called(ctx)

	var columns []domain.Column
	if value := args.Get(0); value != nil {
		columns = value.([]domain.Column)
	}
	return columns, args.Error(1)
}

func (m *columnTransportMock) CreateColumn(ctx context.Context, column domain.Column) (domain.Column, error) {
	args := m.Called(ctx, column)
	return args.Get(0).(domain.Column), args.Error(1)
}

func (m *columnTransportMock) UpdateColumn(ctx context.Context, column domain.Column) (domain.Column, error) {
	args := m.Called(ctx, column)
	return args.Get(0).(domain.Column), args.Error(1)
}

func (m *columnTransportMock) DeleteColumn(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type lookupTransportMock struct {
	mock.Mock
}

func (m *lookupTransportMock) FetchUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *lookupTransportMock) FetchTicks(ctx context.Context) ([]domain.Tick, error) {
	args := m.Called(ctx)

	var ticks []domain.Tick
	if value := args.Get(0); value != nil {
		ticks = value.([]domain.Tick)
	}
	return ticks, args.Error(1)
}

type authTransportMock struct {
	mock.Mock
}

func (m *authTransportMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *authTransportMock) WhoAmI(ctx context.Context) (domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authTransportMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type memoryTokens struct {
	token string
}

func (m *memoryTokens) Token() (string, error) { return m.token, nil }

func (m *memoryTokens) SetToken(token string) error {
	m.token = token
	return nil
}

func (m *memoryTokens) RemoveToken() error {
	m.token = ""
	return nil
}

func taskWithID(id uint64) interface{} {
	return mock.MatchedBy(func(task domain.Task) bool { return task.ID == id })
}

func ids(tasks []domain.Task) []uint64 {
	out := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}
