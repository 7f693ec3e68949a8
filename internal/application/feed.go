package application

import (
	"context"
	"fmt"
	"io"

	"github.com/codementorhq/codementor-go/internal/api"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/state"
	"github.com/codementorhq/codementor-go/pkg/nav"
	"github.com/codementorhq/codementor-go/pkg/validation"
)

// Feed drives the social feed and the thread composer.
type Feed struct {
	App *container.App
}

func NewFeed(app *container.App) *Feed {
	return &Feed{App: app}
}

// Load fetches the feed. filter is "all" or "following".
func (f *Feed) Load(ctx context.Context, filter string) error {
	if filter == "" {
		filter = "all"
	}
	var threads []entity.Thread
	if err := f.App.API.Get(ctx, "/feed", &threads, api.WithParam("filter", filter)); err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	f.App.Profiles.SetThreads(threads)
	return nil
}

// ToggleLike flips the viewer's liked flag optimistically and confirms
// with the server, reverting on failure. Unliking decrements the counter,
// floored at zero.
func (f *Feed) ToggleLike(ctx context.Context, threadID string) error {
	thread, ok := f.App.Profiles.Thread(threadID)
	if !ok {
		return fmt.Errorf("thread %q not loaded", threadID)
	}

	liked := !thread.Liked
	likes := thread.Likes
	if liked {
		likes++
	} else if likes > 0 {
		likes--
	}

	prevLiked, prevLikes := thread.Liked, thread.Likes
	cmd := state.Command{
		Apply: func() {
			f.App.Profiles.UpdateThread(threadID, state.ThreadPatch{Liked: &liked, Likes: &likes})
		},
		Revert: func() {
			f.App.Profiles.UpdateThread(threadID, state.ThreadPatch{Liked: &prevLiked, Likes: &prevLikes})
		},
		Call: func(ctx context.Context) error {
			return f.App.API.Post(ctx, "/threads/"+threadID+"/like", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("toggle like: %w", err)
	}
	return nil
}

// ThreadImage is one attachment for a new thread.
type ThreadImage struct {
	Name   string
	Reader io.Reader
}

// ThreadForm is the composer input.
type ThreadForm struct {
	Content string   `json:"content" validate:"required,max=1000"`
	Images  []string `json:"images,omitempty"`
}

// CreateThread validates the content, uploads each image, submits the
// thread and prepends the created thread to the profile store.
func (f *Feed) CreateThread(ctx context.Context, content string, images []ThreadImage) (*entity.Thread, error) {
	form := ThreadForm{Content: content}
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	for _, img := range images {
		uploaded, err := f.App.API.Upload(ctx, api.UploadThreadImage, "image", img.Name, img.Reader)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		form.Images = append(form.Images, uploaded.URL)
	}

	var thread entity.Thread
	if err := f.App.API.Post(ctx, "/threads/create", form, &thread); err != nil {
		f.App.Notifier.Error("Failed to create thread")
		return nil, fmt.Errorf("create thread: %w", err)
	}

	f.App.Profiles.AddThread(thread)
	f.App.Notifier.Success("Thread created successfully!")
	f.App.Nav.Go(nav.RouteFeed)
	return &thread, nil
}
