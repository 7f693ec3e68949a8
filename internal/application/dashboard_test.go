package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/pkg/nav"
)

func TestStudentDashboardCachesEnrolled(t *testing.T) {
	app := newTestApp(t, jsonHandler(`{
		"enrolledCourses":[{"id":"c1","progress":40}],
		"stats":{"coursesCompleted":2,"leaderboardPosition":3}
	}`))
	app.Auth.SetUser(&entity.User{ID: "u1", Username: "ada", Role: entity.RoleStudent})

	data, err := NewDashboard(app.App).Student(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, data.Stats.CoursesCompleted)
	require.Len(t, app.Courses.State().Enrolled, 1)
	assert.Equal(t, 40, app.Courses.State().Enrolled[0].Progress)
}

func TestDashboardsAreRoleGated(t *testing.T) {
	called := false
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	dashboard := NewDashboard(app.App)

	_, err := dashboard.Student(context.Background())
	assert.ErrorIs(t, err, ErrWrongRole, "logged out")

	app.Auth.SetUser(&entity.User{ID: "u1", Role: entity.RoleMentor})
	_, err = dashboard.Student(context.Background())
	assert.ErrorIs(t, err, ErrWrongRole, "mentor on student dashboard")

	app.Auth.SetUser(&entity.User{ID: "u1", Role: entity.RoleStudent})
	_, err = dashboard.Mentor(context.Background())
	assert.ErrorIs(t, err, ErrWrongRole, "student on mentor dashboard")

	assert.False(t, called, "role gating happens before any request")
}

func TestMentorDashboardCachesCourses(t *testing.T) {
	app := newTestApp(t, jsonHandler(`{
		"courses":[{"id":"c1"},{"id":"c2"}],
		"stats":{"totalStudents":120,"totalRevenue":59900}
	}`))
	app.Auth.SetUser(&entity.User{ID: "u1", Username: "ada", Role: entity.RoleMentor})

	data, err := NewDashboard(app.App).Mentor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, data.Stats.TotalStudents)
	assert.Len(t, app.Courses.State().Catalog, 2)
}

func TestLogoutClearsSessionAndReturnsToRoleSelection(t *testing.T) {
	app := newTestApp(t, jsonHandler(`{}`))
	app.Auth.SetUser(&entity.User{ID: "u1", Username: "ada", Role: entity.RoleStudent})
	app.Auth.SetPendingRole(entity.RoleStudent)
	require.NoError(t, app.Session.SetToken("tok"))

	NewSettings(app.App).Logout()

	auth := app.Auth.State()
	assert.Nil(t, auth.User)
	assert.False(t, auth.IsAuthenticated)
	assert.Empty(t, auth.PendingRole)
	assert.Empty(t, app.Session.Token())
	assert.Equal(t, nav.RouteSelectRole, app.Nav.Last())
}

func TestRequestAccountDeletion(t *testing.T) {
	var gotPath string
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, NewSettings(app.App).RequestAccountDeletion(context.Background()))
	assert.Equal(t, "/account/delete", gotPath)
	require.NotEmpty(t, app.Notices.Notices)
	assert.Equal(t, "Account deletion requested", app.Notices.Notices[len(app.Notices.Notices)-1].Message)
}
