package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

type gameRef struct {
	GameID int `json:"jogoId"`
}

// ActiveCart returns the current cart, or nil when the server answers with
// an empty-content status (no active cart).
func (c *Client) ActiveCart(ctx context.Context) (*models.Cart, error) {
	var payload struct {
		Cart *models.Cart `json:"carrinho"`
	}
	if err := c.get(ctx, "/carrinho/ativo", &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return payload.Cart, nil
}

func (c *Client) AddToCart(ctx context.Context, gameID int) error {
	return c.post(ctx, "/carrinho/add", gameRef{GameID: gameID}, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, gameID int) error {
	return c.delete(ctx, fmt.Sprintf("/carrinho/%d", gameID), nil, nil)
}

// CartBundle pairs the active cart with the catalog it joins against; prices
// live on the catalog items, not on the cart lines.
type CartBundle struct {
	Cart  *models.Cart
	Games []models.Game
}

// FetchCart fetches the cart and the catalog concurrently, all-or-nothing.
func (c *Client) FetchCart(ctx context.Context) (*CartBundle, error) {
	var bundle CartBundle

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cart, err := c.ActiveCart(ctx)
		bundle.Cart = cart
		return err
	})
	g.Go(func() error {
		games, err := c.ListGames(ctx)
		bundle.Games = games
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Checkout converts the active cart into a sale; the server prices the order
// and issues activation keys. The returned message is the server's receipt
// text.
func (c *Client) Checkout(ctx context.Context) (string, error) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/vendas/checkout", nil, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// ListSales returns the purchase history, oldest records included.
func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := c.get(ctx, "/vendas", &sales); err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	return sales, nil
}

// Library returns the owned games with their activation keys.
func (c *Client) Library(ctx context.Context) ([]models.LibraryEntry, error) {
	var entries []models.LibraryEntry
	if err := c.get(ctx, "/usuarios/my/games", &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch library: %w", err)
	}
	return entries, nil
}

func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := c.get(ctx, "/lista-desejo", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}

func (c *Client) AddToWishlist(ctx context.Context, gameID int) error {
	return c.post(ctx, "/lista-desejo", gameRef{GameID: gameID}, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, gameID int) error {
	return c.delete(ctx, "/lista-desejo", gameRef{GameID: gameID}, nil)
}
