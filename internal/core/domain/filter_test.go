package domain_test

import (
	"testing"

	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func filterFixture() []domain.Task {
	return domain.NormalizeAll([]domain.Task{
		{ID: 1, Title: "Design Coffee Lab", UserID: domain.Uint64Ptr(1), StatusID: domain.IntPtr(1)},
		{ID: 2, Title: "Order beans", UserID: domain.Uint64Ptr(2), StatusID: domain.IntPtr(3), DueDate: "2026-02-13T15:00:00Z"},
		{ID: 3, Title: "Coffee tasting", UserID: domain.Uint64Ptr(1), DueDate: "2026-02-01"},
		{ID: 4, Title: "Hire barista"},
	}, now)
}

func TestCriteria_EmptyIsIdentity(t *testing.T) {
	tasks := filterFixture()

	got := domain.Criteria{}.Apply(tasks)

	require.Equal(t, tasks, got)
	require.Same(t, &tasks[0], &got[0])
}

func TestCriteria_SearchTrimsAndIgnoresCase(t *testing.T) {
	got := domain.Criteria{Search: " Design "}.Apply(filterFixture())

	require.Equal(t, []uint64{1}, ids(got))

	got = domain.Criteria{Search: "COFFEE"}.Apply(filterFixture())
	require.Equal(t, []uint64{1, 3}, ids(got))
}

func TestCriteria_Users(t *testing.T) {
	got := domain.Criteria{Users: []uint64{1}}.Apply(filterFixture())

	require.Equal(t, []uint64{1, 3}, ids(got))
}

func TestCriteria_StatusMatchesDisplayOrTimeStatus(t *testing.T) {
	got := domain.Criteria{Statuses: []string{domain.StatusRed}}.Apply(filterFixture())
	require.Equal(t, []uint64{2}, ids(got))

	got = domain.Criteria{Statuses: []string{string(domain.TimeStatusApproaching)}}.Apply(filterFixture())
	require.Equal(t, []uint64{2}, ids(got))

	got = domain.Criteria{Statuses: []string{string(domain.TimeStatusExpired), domain.StatusGreen}}.Apply(filterFixture())
	require.Equal(t, []uint64{1, 3}, ids(got))
}

func TestCriteria_CombinesDimensionsWithAnd(t *testing.T) {
	got := domain.Criteria{
		Search:   "coffee",
		Users:    []uint64{1},
		Statuses: []string{string(domain.TimeStatusExpired)},
	}.Apply(filterFixture())

	require.Equal(t, []uint64{3}, ids(got))
}

func TestCriteria_AddingADimensionNeverGrowsTheResult(t *testing.T) {
	tasks := filterFixture()
	steps := []domain.Criteria{
		{},
		{Search: "o"},
		{Search: "o", Users: []uint64{1}},
		{Search: "o", Users: []uint64{1}, Statuses: []string{domain.StatusGreen}},
	}

	previous := len(tasks)
	for _, criteria := range steps {
		got := len(criteria.Apply(tasks))
		require.LessOrEqual(t, got, previous)
		previous = got
	}
}

func TestCriteria_AnotherStatusLabelCanGrowTheResult(t *testing.T) {
	tasks := filterFixture()

	one := domain.Criteria{Statuses: []string{domain.StatusGreen}}.Apply(tasks)
	two := domain.Criteria{Statuses: []string{domain.StatusGreen, string(domain.TimeStatusExpired)}}.Apply(tasks)

	require.Equal(t, []uint64{1}, ids(one))
	require.Equal(t, []uint64{1, 3}, ids(two))
}

func TestCriteria_Toggle(t *testing.T) {
	c := domain.Criteria{}.ToggleUser(3).ToggleUser(4).ToggleStatus("red")
	require.Equal(t, []uint64{3, 4}, c.Users)
	require.Equal(t, []string{"red"}, c.Statuses)

	toggled := c.ToggleUser(3).ToggleStatus("red")
	require.Equal(t, []uint64{4}, toggled.Users)
	require.Empty(t, toggled.Statuses)
	require.Equal(t, []uint64{3, 4}, c.Users)

	require.Equal(t, "lab", c.WithSearch("lab").Search)
}
