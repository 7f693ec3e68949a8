package state

import (
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// NotificationsState caches server notifications. The unread count is
// derived on read.
type NotificationsState struct {
	Items []entity.Notification
}

// ReduceSetNotifications replaces the list.
func ReduceSetNotifications(s NotificationsState, items []entity.Notification) NotificationsState {
	s.Items = items
	return s
}

// ReduceAddNotification prepends a new notification.
func ReduceAddNotification(s NotificationsState, n entity.Notification) NotificationsState {
	s.Items = append([]entity.Notification{n}, s.Items...)
	return s
}

// ReduceMarkRead flags one notification as read. Unknown ids are a no-op.
func ReduceMarkRead(s NotificationsState, id string) NotificationsState {
	updated := make([]entity.Notification, len(s.Items))
	copy(updated, s.Items)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Read = true
		}
	}
	s.Items = updated
	return s
}

// ReduceMarkUnread clears the read flag of one notification, undoing an
// optimistic ReduceMarkRead. Unknown ids are a no-op.
func ReduceMarkUnread(s NotificationsState, id string) NotificationsState {
	updated := make([]entity.Notification, len(s.Items))
	copy(updated, s.Items)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Read = false
		}
	}
	s.Items = updated
	return s
}

// ReduceMarkAllRead flags every notification as read.
func ReduceMarkAllRead(s NotificationsState) NotificationsState {
	updated := make([]entity.Notification, len(s.Items))
	copy(updated, s.Items)
	for i := range updated {
		updated[i].Read = true
	}
	s.Items = updated
	return s
}

// Notifications owns the notification state.
type Notifications struct {
	mu    sync.Mutex
	state NotificationsState
}

func NewNotifications() *Notifications { return &Notifications{} }

// State returns a snapshot of the notification state.
func (n *Notifications) State() NotificationsState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// UnreadCount counts the unread entries. Always derived from the list.
func (n *Notifications) UnreadCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, item := range n.state.Items {
		if !item.Read {
			count++
		}
	}
	return count
}

// Set replaces the notification list.
func (n *Notifications) Set(items []entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = ReduceSetNotifications(n.state, items)
}

// Add prepends a notification.
func (n *Notifications) Add(item entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = ReduceAddNotification(n.state, item)
}

// MarkRead flags one notification as read.
func (n *Notifications) MarkRead(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = ReduceMarkRead(n.state, id)
}

// MarkUnread clears the read flag of one notification.
func (n *Notifications) MarkUnread(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = ReduceMarkUnread(n.state, id)
}

// MarkAllRead flags every notification as read.
func (n *Notifications) MarkAllRead() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = ReduceMarkAllRead(n.state)
}
