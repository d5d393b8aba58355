package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type TaskTransport interface {
	FetchTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type ColumnTransport interface {
	FetchColumns(ctx context.Context) ([]domain.Column, error)
	CreateColumn(ctx context.Context, column domain.Column) (domain.Column, error)
	UpdateColumn(ctx context.Context, column domain.Column) (domain.Column, error)
	DeleteColumn(ctx context.Context, id uint64) error
}

type UserTransport interface {
	FetchUsers(ctx context.Context) ([]domain.User, error)
}

type TickTransport interface {
	FetchTicks(ctx context.Context) ([]domain.Tick, error)
}

type AuthTransport interface {
	Login(ctx context.Context, email, password string) (string, error)
	WhoAmI(ctx context.Context) (domain.User, error)
	Logout(ctx context.Context) error
}

// FiltersProvider exposes the board filter currently in effect.
type FiltersProvider interface {
	Criteria() domain.Criteria
}

type UsersProvider interface {
	UserByID(id uint64) (domain.User, bool)
}

type TicksProvider interface {
	TicksByTaskID(taskID uint64) []domain.Tick
}

// TokenStore keeps the session token between runs.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	RemoveToken() error
}
