package tests

import (
	"context"
	"testing"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/app/service"
	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/suite"
)

type SessionSuite struct {
	BackendSuiteBase
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) TestLoginWhoAmILogout() {
	s.Require().NoError(s.Tokens.RemoveToken())
	auth := service.NewAuthService(httpadapter.NewAuthService(s.Client), s.Tokens)
	ctx := context.Background()

	s.Require().NoError(auth.Login(ctx, "ada@coffee.lab", "secret"))
	token, _ := s.Tokens.Token()
	s.Require().Equal(validToken, token)

	user, err := auth.WhoAmI(ctx)
	s.Require().NoError(err)
	s.Require().Equal("Ada", user.Name)
	s.Require().NoError(auth.RequireAdmin())

	s.Require().NoError(auth.Logout(ctx))
	s.Require().False(auth.IsAuthenticated())
	token, _ = s.Tokens.Token()
	s.Require().Empty(token)
}

func (s *SessionSuite) TestLoginWrongPassword() {
	s.Require().NoError(s.Tokens.RemoveToken())
	auth := service.NewAuthService(httpadapter.NewAuthService(s.Client), s.Tokens)

	err := auth.Login(context.Background(), "ada@coffee.lab", "nope")

	s.Require().Error(err)
	s.Require().Contains(err.Error(), "wrong credentials")
}

func (s *SessionSuite) TestLookups() {
	ctx := context.Background()
	users := service.NewUserStore(httpadapter.NewUsersService(s.Client))
	ticks := service.NewTickStore(httpadapter.NewTicksService(s.Client))
	tasks := service.NewTaskStore(httpadapter.NewTasksService(s.Client), nil, users, ticks)
	s.Require().NoError(users.FetchAll(ctx))
	s.Require().NoError(ticks.FetchAll(ctx))
	s.Require().NoError(tasks.FetchAll(ctx))

	view, ok := tasks.View(2)
	s.Require().True(ok)
	s.Require().NotNil(view.User)
	s.Require().True(view.User.IsAdmin)
	s.Require().Equal([]domain.Tick{{ID: 1, TaskID: 2, Text: "Palette"}}, view.Ticks)
}

func (s *SessionSuite) TestColumns() {
	ctx := context.Background()
	columns := service.NewColumnStore(httpadapter.NewColumnsService(s.Client), "New column")
	s.Require().NoError(columns.FetchAll(ctx))

	created, err := columns.Create(ctx)
	s.Require().NoError(err)
	s.Require().Equal("New column", created.Title)
	s.Require().Equal(2, created.Order)
	s.Require().Len(columns.Columns(), 3)
}

func (s *SessionSuite) TestHealth() {
	report := s.Client.CheckHealth(context.Background())
	s.Require().Equal(httpadapter.StatusOk, report.Status)
	s.Require().Empty(report.Error)

	s.Server.Close()
	report = s.Client.CheckHealth(context.Background())
	s.Require().Equal(httpadapter.StatusDown, report.Status)
	s.Require().NotEmpty(report.Error)
}
