package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaofg09/nextlevel-cli/internal/api"
	"github.com/Joaofg09/nextlevel-cli/internal/api/apitest"
	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

func newTestClient(t *testing.T) (*api.Client, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	token := srv.IssueToken(2, "Player", models.ProfileUser)
	client := api.NewClient(srv.BaseURL(), api.TokenFunc(func() string { return token }), 5*time.Second)
	return client, srv
}

func TestListGamesAuthenticated(t *testing.T) {
	client, srv := newTestClient(t)

	games, err := client.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, len(srv.Games))
	assert.Equal(t, "The Witcher 3", games[0].Name)
	assert.Equal(t, 3, games[0].CategoryID)
}

func TestPublicGamesNeedNoToken(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.BaseURL(), nil, 5*time.Second)

	games, err := client.ListPublicGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3)
	// Public catalog resolves categories server-side, dirty names included.
	assert.Equal(t, " RPG", games[0].Category)
}

func TestMissingTokenIsSessionInvalid(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.BaseURL(), nil, 5*time.Second)

	_, err := client.ListGames(context.Background())
	require.ErrorIs(t, err, api.ErrSessionInvalid)
}

func TestGarbageTokenIsSessionInvalid(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.BaseURL(), api.TokenFunc(func() string { return "not-a-token" }), 5*time.Second)

	_, err := client.ListGames(context.Background())
	require.ErrorIs(t, err, api.ErrSessionInvalid)
}

func TestOperationFailureCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetGame(context.Background(), 999)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "game not found", apiErr.Message)
}

func TestActiveCartEmptyIsNil(t *testing.T) {
	client, _ := newTestClient(t)

	cart, err := client.ActiveCart(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cart, "204 means no active cart")
}

func TestCartAddShowRemove(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.AddToCart(ctx, 1))
	require.NoError(t, client.AddToCart(ctx, 3))

	bundle, err := client.FetchCart(ctx)
	require.NoError(t, err)
	require.NotNil(t, bundle.Cart)
	require.Len(t, bundle.Cart.Items, 2)
	assert.NotEmpty(t, bundle.Games, "cart join needs the catalog")

	require.NoError(t, client.RemoveFromCart(ctx, 1))
	cart, err := client.ActiveCart(ctx)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
}

func TestCheckoutFlow(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	// Empty cart refuses checkout.
	_, err := client.Checkout(ctx)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "cart is empty", apiErr.Message)

	require.NoError(t, client.AddToCart(ctx, 1))
	require.NoError(t, client.AddToCart(ctx, 2))

	message, err := client.Checkout(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, message)

	// Cart is consumed, a sale is recorded, the library holds keys.
	cart, err := client.ActiveCart(ctx)
	require.NoError(t, err)
	assert.Nil(t, cart)

	sales, err := client.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 2, sales[0].ItemCount)
	assert.InDelta(t, 39.90+29.90, sales[0].Total, 0.001)
	require.Len(t, srv.Sales, 1)

	library, err := client.Library(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, library)
	assert.NotEmpty(t, library[0].ActivationKey)
}

func TestWishlistRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.AddToWishlist(ctx, 2))

	items, err := client.Wishlist(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].GameID)

	require.NoError(t, client.RemoveFromWishlist(ctx, 2))
	items, err = client.Wishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReviewSubmitAndSummary(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SubmitReview(ctx, 1, 5, "masterpiece"))
	require.NoError(t, client.SubmitReview(ctx, 1, 3, "decent"))

	summary, err := client.ReviewSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)
	require.Len(t, summary.Reviews, 2)
	assert.Equal(t, "masterpiece", summary.Reviews[0].Comment)
}

func TestReviewRatingOutOfRange(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.SubmitReview(context.Background(), 1, 6, "too good")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestTopSellersEmptyReportIsEmptySlice(t *testing.T) {
	client, srv := newTestClient(t)

	rows, err := client.TopSellers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows, "204 report decodes to no rows")

	srv.TopSellers = []models.TopSeller{{Name: "The Witcher 3", Company: "CD Projekt", Sold: 12}}
	rows, err = client.TopSellers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].Sold)
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.BaseURL(), nil, 5*time.Second)

	token, err := client.Login(context.Background(), "admin@nextlevel.dev", "whatever")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = client.Login(context.Background(), "nobody@nextlevel.dev", "whatever")
	require.ErrorIs(t, err, api.ErrSessionInvalid)
}

func TestFetchCatalogAllOrNothing(t *testing.T) {
	client, srv := newTestClient(t)

	bundle, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, bundle.Games, len(srv.Games))
	assert.Len(t, bundle.Categories, len(srv.Categories))
	assert.Len(t, bundle.Companies, len(srv.Companies))
}

func TestUsersAndProfiles(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	profiles, err := client.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, models.ProfileAdmin, profiles[0].Name)

	require.NoError(t, client.UpdateUser(ctx, 2, "Renamed", "01/01/1990", 2))
	user, err := client.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "01/01/1990", user.BirthDate)
}
