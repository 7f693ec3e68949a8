package application

import (
	"context"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/state"
)

// Notifications drives the notification tray. The unread badge is derived
// from the store on read.
type Notifications struct {
	App *container.App
}

func NewNotifications(app *container.App) *Notifications {
	return &Notifications{App: app}
}

// Load replaces the cached notifications.
func (n *Notifications) Load(ctx context.Context) error {
	var items []entity.Notification
	if err := n.App.API.Get(ctx, "/notifications", &items); err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	n.App.Notifications.Set(items)
	return nil
}

// MarkRead flags one notification as read, optimistically, and confirms
// with the server.
func (n *Notifications) MarkRead(ctx context.Context, id string) error {
	item, found := n.find(id)
	if !found {
		return fmt.Errorf("notification %q not loaded", id)
	}
	cmd := state.Command{
		Apply: func() { n.App.Notifications.MarkRead(id) },
		Revert: func() {
			if !item.Read {
				n.App.Notifications.MarkUnread(id)
			}
		},
		Call: func(ctx context.Context) error {
			return n.App.API.Post(ctx, "/notifications/"+id+"/read", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead flags every notification as read, optimistically, and
// confirms with the server.
func (n *Notifications) MarkAllRead(ctx context.Context) error {
	prev := n.App.Notifications.State().Items
	cmd := state.Command{
		Apply:  func() { n.App.Notifications.MarkAllRead() },
		Revert: func() { n.App.Notifications.Set(prev) },
		Call: func(ctx context.Context) error {
			return n.App.API.Post(ctx, "/notifications/read-all", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

func (n *Notifications) find(id string) (entity.Notification, bool) {
	for _, item := range n.App.Notifications.State().Items {
		if item.ID == id {
			return item, true
		}
	}
	return entity.Notification{}, false
}
