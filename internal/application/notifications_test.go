package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/state"
)

func TestMarkReadUpdatesBadge(t *testing.T) {
	app := newTestApp(t, jsonHandler(`{}`))
	app.Notifications.Set([]entity.Notification{
		{ID: "n1"},
		{ID: "n2"},
	})
	require.Equal(t, 2, app.Notifications.UnreadCount())

	err := NewNotifications(app.App).MarkRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, 1, app.Notifications.UnreadCount())
}

func TestMarkReadRevertsOnFailure(t *testing.T) {
	app := newTestApp(t, failHandler(http.StatusInternalServerError))
	app.Notifications.Set([]entity.Notification{{ID: "n1"}})

	err := NewNotifications(app.App).MarkRead(context.Background(), "n1")
	require.Error(t, err)
	assert.Equal(t, 1, app.Notifications.UnreadCount(), "failed call restores the unread flag")
}

func TestMarkReadRevertLeavesInterimSnapshotsIntact(t *testing.T) {
	var app *testApp
	var interim state.NotificationsState
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Captured while the optimistic change is applied, before revert.
		interim = app.Notifications.State()
		w.WriteHeader(http.StatusInternalServerError)
	})
	app = newTestApp(t, handler)
	app.Notifications.Set([]entity.Notification{{ID: "n1"}})

	err := NewNotifications(app.App).MarkRead(context.Background(), "n1")
	require.Error(t, err)

	require.Len(t, interim.Items, 1)
	assert.True(t, interim.Items[0].Read, "the revert must not write through snapshots it aliases")
	assert.False(t, app.Notifications.State().Items[0].Read)
}

func TestMarkAllReadRevertsOnFailure(t *testing.T) {
	app := newTestApp(t, failHandler(http.StatusInternalServerError))
	app.Notifications.Set([]entity.Notification{
		{ID: "n1"},
		{ID: "n2", Read: true},
		{ID: "n3"},
	})

	err := NewNotifications(app.App).MarkAllRead(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, app.Notifications.UnreadCount(), "failed call restores the previous list")
}

func TestMarkAllReadClearsBadge(t *testing.T) {
	var gotPath string
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	app.Notifications.Set([]entity.Notification{{ID: "n1"}, {ID: "n2"}})

	require.NoError(t, NewNotifications(app.App).MarkAllRead(context.Background()))
	assert.Equal(t, "/notifications/read-all", gotPath)
	assert.Zero(t, app.Notifications.UnreadCount())
}

func TestMarkReadUnknownNotification(t *testing.T) {
	called := false
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	err := NewNotifications(app.App).MarkRead(context.Background(), "missing")
	require.Error(t, err)
	assert.False(t, called)
}

func TestLoadReplacesNotifications(t *testing.T) {
	app := newTestApp(t, jsonHandler(`[{"id":"n1","read":false},{"id":"n2","read":true}]`))
	require.NoError(t, NewNotifications(app.App).Load(context.Background()))
	assert.Len(t, app.Notifications.State().Items, 2)
	assert.Equal(t, 1, app.Notifications.UnreadCount())
}
