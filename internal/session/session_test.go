package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaofg09/nextlevel-cli/internal/api/apitest"
	"github.com/Joaofg09/nextlevel-cli/internal/models"
	"github.com/Joaofg09/nextlevel-cli/internal/session"
)

func tokenFor(t *testing.T, id int, name, profile string) string {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	return srv.IssueToken(id, name, profile)
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return store
}

func TestStoreStartsAnonymous(t *testing.T) {
	store := newStore(t)

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())

	_, err := store.RequireUser()
	assert.ErrorIs(t, err, session.ErrNotSignedIn)
	_, err = store.RequireAdmin()
	assert.ErrorIs(t, err, session.ErrNotSignedIn)
}

func TestSignInDecodesIdentity(t *testing.T) {
	store := newStore(t)
	token := tokenFor(t, 7, "Joana", models.ProfileUser)

	identity, err := store.SignIn(token)
	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, "Joana", identity.Name)
	assert.False(t, identity.Admin())
	assert.Equal(t, token, store.Token())

	_, err = store.RequireUser()
	assert.NoError(t, err)
	_, err = store.RequireAdmin()
	assert.ErrorIs(t, err, session.ErrNotAdmin)
}

func TestAdminGate(t *testing.T) {
	store := newStore(t)
	_, err := store.SignIn(tokenFor(t, 1, "Root", models.ProfileAdmin))
	require.NoError(t, err)

	identity, err := store.RequireAdmin()
	require.NoError(t, err)
	assert.True(t, identity.Admin())
}

func TestSignOutReturnsToAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := session.NewStore(path)
	require.NoError(t, err)

	_, err = store.SignIn(tokenFor(t, 7, "Joana", models.ProfileUser))
	require.NoError(t, err)

	require.NoError(t, store.SignOut())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "token file must be removed")

	// Signing out twice stays legal.
	assert.NoError(t, store.SignOut())
}

func TestStoreResumesFromTokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	first, err := session.NewStore(path)
	require.NoError(t, err)
	_, err = first.SignIn(tokenFor(t, 7, "Joana", models.ProfileUser))
	require.NoError(t, err)

	second, err := session.NewStore(path)
	require.NoError(t, err)
	require.NotNil(t, second.Current())
	assert.Equal(t, "Joana", second.Current().Name)
}

func TestCorruptTokenFileDegradesToAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	store, err := session.NewStore(path)
	require.NoError(t, err)
	assert.Nil(t, store.Current())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt token file is discarded")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := session.Decode("definitely-not-a-jwt")
	assert.Error(t, err)
}
