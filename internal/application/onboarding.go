// Package application implements the screen-level workflows of the client:
// each service mirrors one screen family of the hosted application,
// reading and mutating the state containers and dispatching API calls.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/pkg/nav"
	"github.com/codementorhq/codementor-go/pkg/validation"
)

var (
	ErrUnknownRole = errors.New("unknown role")
	ErrMissingCode = errors.New("missing authorization code")
	ErrAuthFailed  = errors.New("authentication failed")
)

// Stage is the position in the linear onboarding flow.
type Stage string

const (
	StageUnauthenticated   Stage = "unauthenticated"
	StageRolePending       Stage = "role-pending"
	StageProfileIncomplete Stage = "profile-incomplete"
	StageActive            Stage = "active"
)

// Onboarding drives role selection, the OAuth callback exchange and
// profile completion. There is no rollback path; any auth failure returns
// to role selection.
type Onboarding struct {
	App *container.App
}

func NewOnboarding(app *container.App) *Onboarding {
	return &Onboarding{App: app}
}

// Stage derives the current onboarding position from auth state: a user
// without a username has authenticated but not completed their profile.
func (o *Onboarding) Stage() Stage {
	auth := o.App.Auth.State()
	switch {
	case auth.User == nil && auth.PendingRole == "":
		return StageUnauthenticated
	case auth.User == nil:
		return StageRolePending
	case auth.User.Username == "":
		return StageProfileIncomplete
	default:
		return StageActive
	}
}

// SelectRole records the role chosen before the OAuth handoff.
func (o *Onboarding) SelectRole(role entity.Role) error {
	if !role.Valid() {
		return ErrUnknownRole
	}
	o.App.Auth.SetPendingRole(role)
	return nil
}

type callbackRequest struct {
	Code string      `json:"code"`
	Role entity.Role `json:"role"`
}

type callbackResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// HandleCallback exchanges the OAuth code for a token and the user
// snapshot. Provider errors and failed exchanges both land back on role
// selection, carrying an error parameter.
func (o *Onboarding) HandleCallback(ctx context.Context, code, providerErr string) error {
	if providerErr != "" {
		o.App.Nav.Go(nav.RouteSelectRole + "?error=" + providerErr)
		return fmt.Errorf("%w: %s", ErrAuthFailed, providerErr)
	}
	if code == "" {
		o.App.Nav.Go(nav.RouteSelectRole)
		return ErrMissingCode
	}

	var resp callbackResponse
	req := callbackRequest{Code: code, Role: o.App.Auth.State().PendingRole}
	if err := o.App.API.Post(ctx, "/auth/callback", req, &resp); err != nil {
		o.App.Nav.Go(nav.RouteSelectRole + "?error=authentication_failed")
		return fmt.Errorf("exchange code: %w", err)
	}

	if err := o.App.Session.SetToken(resp.Token); err != nil {
		o.App.Logger.WithError(err).Error("persist token failed")
	}
	o.App.Auth.SetUser(resp.User)
	o.App.Nav.Go(nav.RouteCompleteProfile)
	return nil
}

type usernameCheck struct {
	Available bool `json:"available"`
}

// CheckUsername asks the server whether a username is still free.
func (o *Onboarding) CheckUsername(ctx context.Context, username string) (bool, error) {
	var check usernameCheck
	if err := o.App.API.Get(ctx, "/auth/check-username/"+username, &check); err != nil {
		return false, err
	}
	return check.Available, nil
}

// ProfileForm is the profile-completion input, validated client-side
// before any request goes out.
type ProfileForm struct {
	Username string `json:"username" validate:"required,username"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Bio      string `json:"bio,omitempty" validate:"max=500"`
	Avatar   string `json:"avatar,omitempty"`
}

// CompleteProfile validates the form, uploads the avatar when provided,
// submits the profile and moves the session to the role dashboard.
func (o *Onboarding) CompleteProfile(ctx context.Context, form ProfileForm, avatar io.Reader, avatarName string) error {
	if err := validation.Struct(form); err != nil {
		return err
	}

	if avatar != nil {
		uploaded, err := o.App.API.Upload(ctx, "/upload/avatar", "avatar", avatarName, avatar)
		if err != nil {
			return fmt.Errorf("upload avatar: %w", err)
		}
		form.Avatar = uploaded.URL
	}

	var updated entity.User
	if err := o.App.API.Post(ctx, "/auth/complete-profile", form, &updated); err != nil {
		return fmt.Errorf("complete profile: %w", err)
	}

	o.App.Auth.SetUser(&updated)
	o.App.Notifier.Success("Profile completed successfully!")
	o.App.Nav.Go(nav.RouteDashboard(updated.Role))
	return nil
}
