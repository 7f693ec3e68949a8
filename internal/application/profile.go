package application

import (
	"context"
	"fmt"
	"io"

	"github.com/codementorhq/codementor-go/internal/api"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/state"
	"github.com/codementorhq/codementor-go/pkg/validation"
)

// Profile drives the profile view and edit screens and the follow graph.
type Profile struct {
	App *container.App
}

func NewProfile(app *container.App) *Profile {
	return &Profile{App: app}
}

// Load fetches a public profile and its threads.
func (p *Profile) Load(ctx context.Context, username string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := p.App.API.Get(ctx, "/profile/"+username, &profile); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.App.Profiles.SetProfile(&profile)
	p.App.Profiles.SetThreads(profile.Threads)
	return &profile, nil
}

// Follow adds the viewed user to the following list optimistically and
// confirms with the server. The profile's follower counter is untouched;
// it is refetched with the profile.
func (p *Profile) Follow(ctx context.Context, username, userID string) error {
	cmd := state.Command{
		Apply:  func() { p.App.Profiles.Follow(userID) },
		Revert: func() { p.App.Profiles.Unfollow(userID) },
		Call: func(ctx context.Context) error {
			return p.App.API.Post(ctx, "/profile/"+username+"/follow", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

// Unfollow removes the viewed user from the following list optimistically
// and confirms with the server.
func (p *Profile) Unfollow(ctx context.Context, username, userID string) error {
	cmd := state.Command{
		Apply:  func() { p.App.Profiles.Unfollow(userID) },
		Revert: func() { p.App.Profiles.Follow(userID) },
		Call: func(ctx context.Context) error {
			return p.App.API.Post(ctx, "/profile/"+username+"/unfollow", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// EditForm is the profile-edit input.
type EditForm struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Bio         string            `json:"bio,omitempty" validate:"max=500"`
	Skills      []string          `json:"skills,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	Avatar      string            `json:"avatar,omitempty"`
	CoverImage  string            `json:"coverImage,omitempty"`
}

// ImageFile is an optional image replacement for Edit.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// Edit validates the form, uploads replaced images and submits the edit.
// The auth store is updated with the returned user.
func (p *Profile) Edit(ctx context.Context, form EditForm, avatar, cover *ImageFile) error {
	if err := validation.Struct(form); err != nil {
		return err
	}

	if avatar != nil {
		uploaded, err := p.App.API.Upload(ctx, api.UploadAvatar, "avatar", avatar.Name, avatar.Reader)
		if err != nil {
			return fmt.Errorf("upload avatar: %w", err)
		}
		form.Avatar = uploaded.URL
	}
	if cover != nil {
		uploaded, err := p.App.API.Upload(ctx, api.UploadCover, "cover", cover.Name, cover.Reader)
		if err != nil {
			return fmt.Errorf("upload cover: %w", err)
		}
		form.CoverImage = uploaded.URL
	}

	var updated entity.User
	if err := p.App.API.Put(ctx, "/profile/edit", form, &updated); err != nil {
		return fmt.Errorf("edit profile: %w", err)
	}
	p.App.Auth.SetUser(&updated)
	p.App.Notifier.Success("Profile updated successfully!")
	return nil
}
