package tests

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/domain"
	"taskdesk/pkg/apierrors"

	"github.com/stretchr/testify/require"
)

func stubClient(t *testing.T, calls *int, status int, body string) *httpadapter.Client {
	t.Helper()

	client, err := httpadapter.NewClient(httpadapter.Config{
		BaseURL: "http://board.test/api",
		Transport: middleware.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			*calls++
			return &http.Response{
				StatusCode: status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(body)),
				Request:    req,
			}, nil
		}),
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := httpadapter.NewClient(httpadapter.Config{BaseURL: "  "})
	require.ErrorIs(t, err, domain.ErrEmptyBaseURL)
}

func TestClient_RejectsRelativePath(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusOK, "[]")

	err := client.Get(context.Background(), "tasks", nil)

	require.ErrorIs(t, err, domain.ErrInvalidPath)
	require.Zero(t, calls)
}

func TestClient_NoContent(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusNoContent, "")

	var out map[string]any
	require.NoError(t, client.Put(context.Background(), "/tasks/1", map[string]string{"title": "x"}, &out))
	require.Nil(t, out)
	require.Equal(t, 1, calls)
}

func TestClient_EmptySuccessBody(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusOK, "")

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/tasks", &out))
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusBadGateway, "<html>upstream</html>")
	var seen []string
	client.AddInterceptor(func(status int, message string) { seen = append(seen, message) })

	err := client.Get(context.Background(), "/tasks", nil)

	var jsonErr apierrors.JsonErr
	require.ErrorAs(t, err, &jsonErr)
	require.Equal(t, http.StatusBadGateway, jsonErr.ErrDetails.Code)
	require.Equal(t, []string{"Bad Gateway"}, seen)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusOK, "{not json")

	var out []map[string]any
	err := client.Get(context.Background(), "/tasks", &out)

	require.Error(t, err)
	require.Contains(t, err.Error(), "decode GET /tasks")
}

func TestTasksService_UpdateEchoesBodylessSuccess(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusNoContent, "")
	tasks := httpadapter.NewTasksService(client)
	task := domain.Task{ID: 7, Title: "Menu", SortOrder: 3}

	got, err := tasks.UpdateTask(context.Background(), task)

	require.NoError(t, err)
	require.Equal(t, task, got)
}

func TestAuthService_EmptyTokenIsRejected(t *testing.T) {
	var calls int
	client := stubClient(t, &calls, http.StatusOK, `{"token":""}`)

	_, err := httpadapter.NewAuthService(client).Login(context.Background(), "a@b.co", "pw")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
