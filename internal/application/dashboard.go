package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

var ErrWrongRole = errors.New("dashboard not available for this role")

// Dashboard drives the role-gated home screens.
type Dashboard struct {
	App *container.App
}

func NewDashboard(app *container.App) *Dashboard {
	return &Dashboard{App: app}
}

// Student fetches the student dashboard and caches the enrolled courses.
func (d *Dashboard) Student(ctx context.Context) (*entity.StudentDashboard, error) {
	user := d.App.Auth.User()
	if user == nil || user.Role != entity.RoleStudent {
		return nil, ErrWrongRole
	}
	var data entity.StudentDashboard
	if err := d.App.API.Get(ctx, "/dashboard/student", &data); err != nil {
		return nil, fmt.Errorf("student dashboard: %w", err)
	}
	d.App.Courses.SetEnrolled(data.EnrolledCourses)
	return &data, nil
}

// Mentor fetches the mentor dashboard and caches the mentor's courses.
func (d *Dashboard) Mentor(ctx context.Context) (*entity.MentorDashboard, error) {
	user := d.App.Auth.User()
	if user == nil || user.Role != entity.RoleMentor {
		return nil, ErrWrongRole
	}
	var data entity.MentorDashboard
	if err := d.App.API.Get(ctx, "/dashboard/mentor", &data); err != nil {
		return nil, fmt.Errorf("mentor dashboard: %w", err)
	}
	d.App.Courses.SetCatalog(data.Courses)
	return &data, nil
}
