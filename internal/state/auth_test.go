package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/session"
)

func TestAuthenticatedFlagDerivedFromUser(t *testing.T) {
	auth := NewAuth(nil)
	assert.False(t, auth.State().IsAuthenticated)

	auth.SetUser(&entity.User{ID: "u1", Username: "ada"})
	assert.True(t, auth.State().IsAuthenticated)

	auth.SetUser(nil)
	assert.False(t, auth.State().IsAuthenticated)
}

func TestLogoutClearsEverythingTogether(t *testing.T) {
	auth := NewAuth(nil)
	auth.SetUser(&entity.User{ID: "u1", Role: entity.RoleStudent})
	auth.SetPendingRole(entity.RoleStudent)

	auth.Logout()

	got := auth.State()
	assert.Nil(t, got.User)
	assert.False(t, got.IsAuthenticated)
	assert.Empty(t, got.PendingRole)
}

func TestAuthWritesThroughToSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("tok"))

	auth := NewAuth(store)
	auth.SetUser(&entity.User{ID: "u1", Username: "ada", Role: entity.RoleMentor})
	auth.SetPendingRole(entity.RoleMentor)

	reopened, err := session.Open(path)
	require.NoError(t, err)
	restored := NewAuth(reopened)
	assert.True(t, restored.State().IsAuthenticated)
	assert.Equal(t, "ada", restored.User().Username)
	assert.Equal(t, entity.RoleMentor, restored.State().PendingRole)

	auth.Logout()
	assert.Empty(t, store.Token(), "logout must clear the persisted token too")
	assert.Nil(t, store.User())
}
