package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaofg09/nextlevel-cli/internal/api"
	"github.com/Joaofg09/nextlevel-cli/internal/api/apitest"
	"github.com/Joaofg09/nextlevel-cli/internal/models"
	"github.com/Joaofg09/nextlevel-cli/internal/session"
)

func TestNoticeSignsOutOnSessionInvalid(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	tokenFile := filepath.Join(t.TempDir(), "token")
	store, err := session.NewStore(tokenFile)
	require.NoError(t, err)
	_, err = store.SignIn(srv.IssueToken(2, "Player", models.ProfileUser))
	require.NoError(t, err)
	require.NotNil(t, store.Current())

	// A client holding a credential the server no longer accepts; any call
	// through it yields the session-invalid signal.
	stale := api.NewClient(srv.BaseURL(), api.TokenFunc(func() string { return "stale" }), 5*time.Second)
	e := &env{session: store, client: stale}

	_, err = stale.ListGames(context.Background())
	require.ErrorIs(t, err, api.ErrSessionInvalid)

	// The signal is global: the notice clears the stored credential and
	// the session returns to anonymous.
	notice := e.notice(err)
	require.Error(t, notice)
	assert.Contains(t, notice.Error(), "session expired")

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
	_, err = store.RequireUser()
	assert.ErrorIs(t, err, session.ErrNotSignedIn)
}

func TestNoticeLeavesSessionOnOperationFailure(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	token := srv.IssueToken(2, "Player", models.ProfileUser)
	_, err = store.SignIn(token)
	require.NoError(t, err)

	client := api.NewClient(srv.BaseURL(), store, 5*time.Second)
	e := &env{session: store, client: client}

	_, err = client.GetGame(context.Background(), 999)
	require.Error(t, err)

	notice := e.notice(err)
	require.Error(t, notice)
	assert.Equal(t, "game not found", notice.Error())

	// A plain operation failure is local; the credential survives.
	require.NotNil(t, store.Current())
	assert.Equal(t, token, store.Token())
}

func TestCompaniesListRejectsUnknownSort(t *testing.T) {
	orig := companySort
	t.Cleanup(func() { companySort = orig })

	for _, key := range []string{"typo", "price-desc"} {
		companySort = key
		err := runAdminCompaniesList(adminCompaniesListCmd, nil)
		require.Error(t, err, "sort key %q", key)
		assert.Contains(t, err.Error(), "unknown sort key")
	}
}

func TestGamesListParamsRejectUnknownSort(t *testing.T) {
	orig := gameSort
	t.Cleanup(func() { gameSort = orig })

	gameSort = "newest"
	_, err := listParams()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort key")

	gameSort = "price-desc"
	params, err := listParams()
	require.NoError(t, err)
	assert.Equal(t, "price-desc", string(params.Sort))
}
