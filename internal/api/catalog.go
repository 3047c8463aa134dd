package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

// ListGames returns the authenticated catalog.
func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := c.get(ctx, "/jogos", &games); err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return games, nil
}

// ListPublicGames returns the unauthenticated catalog, with categories
// resolved to display names server-side.
func (c *Client) ListPublicGames(ctx context.Context) ([]models.PublicGame, error) {
	var games []models.PublicGame
	if err := c.get(ctx, "/public/jogos", &games); err != nil {
		return nil, fmt.Errorf("failed to fetch public games: %w", err)
	}
	return games, nil
}

func (c *Client) GetGame(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	if err := c.get(ctx, fmt.Sprintf("/jogos/%d", id), &game); err != nil {
		return nil, fmt.Errorf("failed to fetch game %d: %w", id, err)
	}
	return &game, nil
}

func (c *Client) CreateGame(ctx context.Context, game models.Game) error {
	return c.post(ctx, "/jogos", game, nil)
}

func (c *Client) UpdateGame(ctx context.Context, game models.Game) error {
	return c.put(ctx, fmt.Sprintf("/jogos/%d", game.ID), game, nil)
}

func (c *Client) DeleteGame(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/jogos/%d", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categorias", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.get(ctx, "/empresas", &companies); err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return companies, nil
}

func (c *Client) CreateCompany(ctx context.Context, company models.Company) error {
	return c.post(ctx, "/empresas", company, nil)
}

func (c *Client) UpdateCompany(ctx context.Context, company models.Company) error {
	return c.put(ctx, fmt.Sprintf("/empresas/%d", company.ID), company, nil)
}

func (c *Client) DeleteCompany(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/empresas/%d", id), nil, nil)
}

// CatalogBundle is the working set of the management screens: games plus the
// two reference lists their foreign keys resolve through.
type CatalogBundle struct {
	Games      []models.Game
	Categories []models.Category
	Companies  []models.Company
}

// FetchCatalog fetches the three collections concurrently with an
// all-or-nothing join; nothing reconciles them until render time.
func (c *Client) FetchCatalog(ctx context.Context) (*CatalogBundle, error) {
	var bundle CatalogBundle

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := c.ListGames(ctx)
		bundle.Games = games
		return err
	})
	g.Go(func() error {
		categories, err := c.ListCategories(ctx)
		bundle.Categories = categories
		return err
	})
	g.Go(func() error {
		companies, err := c.ListCompanies(ctx)
		bundle.Companies = companies
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}
