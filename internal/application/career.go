package application

import (
	"context"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// Career drives the certificates and internship-offer screens.
type Career struct {
	App *container.App
}

func NewCareer(app *container.App) *Career {
	return &Career{App: app}
}

// Certificates fetches the user's earned certificates.
func (c *Career) Certificates(ctx context.Context) ([]entity.Certificate, error) {
	var certs []entity.Certificate
	if err := c.App.API.Get(ctx, "/certificates", &certs); err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// Internships fetches the user's internship offers.
func (c *Career) Internships(ctx context.Context) ([]entity.Internship, error) {
	var offers []entity.Internship
	if err := c.App.API.Get(ctx, "/internships", &offers); err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return offers, nil
}

// Accept accepts a pending internship offer and returns the offer with
// its status patched.
func (c *Career) Accept(ctx context.Context, offer entity.Internship) (entity.Internship, error) {
	if err := c.App.API.Post(ctx, "/internships/"+offer.ID+"/accept", nil, nil); err != nil {
		return offer, fmt.Errorf("accept internship: %w", err)
	}
	offer.Status = entity.InternshipAccepted
	c.App.Notifier.Success("Internship accepted!")
	return offer, nil
}

// Decline declines a pending internship offer and returns the offer with
// its status patched.
func (c *Career) Decline(ctx context.Context, offer entity.Internship) (entity.Internship, error) {
	if err := c.App.API.Post(ctx, "/internships/"+offer.ID+"/decline", nil, nil); err != nil {
		return offer, fmt.Errorf("decline internship: %w", err)
	}
	offer.Status = entity.InternshipDeclined
	c.App.Notifier.Info("Internship declined")
	return offer, nil
}
