package application

import (
	"context"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/pkg/nav"
)

// Settings drives the account screen.
type Settings struct {
	App *container.App
}

func NewSettings(app *container.App) *Settings {
	return &Settings{App: app}
}

// Logout clears the auth state, including the persisted session, and
// returns to role selection.
func (s *Settings) Logout() {
	s.App.Auth.Logout()
	s.App.Notifier.Success("Logged out successfully")
	s.App.Nav.Go(nav.RouteSelectRole)
}

// RequestAccountDeletion asks the server to schedule account removal.
func (s *Settings) RequestAccountDeletion(ctx context.Context) error {
	if err := s.App.API.Post(ctx, "/account/delete", nil, nil); err != nil {
		return fmt.Errorf("request account deletion: %w", err)
	}
	s.App.Notifier.Success("Account deletion requested")
	return nil
}
