package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsUnauthenticated(t *testing.T) {
	store := NewStore(t.TempDir())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.KYCVerified)
}

func TestLogin(t *testing.T) {
	store := NewStore(t.TempDir())

	sess, err := store.Login(RoleUser)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, DemoToken, sess.AuthToken)
	assert.Equal(t, RoleUser, sess.Role)

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, RoleUser, reloaded.Role)
}

func TestLogin_UnknownRole(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Login(Role("superuser"))
	require.Error(t, err)
}

func TestLogout_KeepsKYCFlag(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Login(RoleAgent)
	require.NoError(t, err)
	require.NoError(t, store.SetKYCVerified())

	require.NoError(t, store.Logout())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Role)
	assert.True(t, sess.KYCVerified, "verification outlives the session")
}

func TestRelogin_KeepsKYCFlag(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.SetKYCVerified())

	sess, err := store.Login(RoleAdmin)
	require.NoError(t, err)
	assert.True(t, sess.KYCVerified)
}
