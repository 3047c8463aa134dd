// Package derive holds the client-side projections computed over data already
// fetched from the marketplace API: the filtered/sorted list views, the
// id->name lookup tables and the cart price join. Everything here is pure and
// synchronous; views are re-derived in full whenever an input changes.
package derive

import (
	"sort"
	"strings"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

// Sort keys accepted by the list views. The set is closed: exactly one key is
// active at a time and there is no multi-key sort.
type Sort string

const (
	SortIDAsc     Sort = "id-asc"
	SortNameAsc   Sort = "name-asc"
	SortPriceDesc Sort = "price-desc"
)

// Params are the user-controlled inputs of a derived-list view.
type Params struct {
	// Search filters by case-insensitive substring match on the name.
	Search string
	// Category is the selected category display name. Both it and each
	// candidate's resolved category name are normalized before comparison,
	// otherwise the duplicate categories in the source data (" RPG" vs
	// "RPG") silently under-match.
	Category string
	Sort     Sort
}

// Fields adapts a record type to the pipeline. Price and Category may be nil
// for collections that lack them; the corresponding filter or sort key then
// does nothing.
type Fields[T any] struct {
	ID       func(T) int
	Name     func(T) string
	Price    func(T) float64
	Category func(T) string
}

// Apply produces the ordered, filtered subset of items for display. The
// input slice is never mutated; ties under every sort key keep their
// relative input order.
func Apply[T any](items []T, p Params, f Fields[T]) []T {
	out := make([]T, 0, len(items))

	query := strings.ToLower(p.Search)
	category := Normalize(p.Category)

	for _, it := range items {
		if query != "" && !strings.Contains(strings.ToLower(f.Name(it)), query) {
			continue
		}
		if category != "" && f.Category != nil && Normalize(f.Category(it)) != category {
			continue
		}
		out = append(out, it)
	}

	switch p.Sort {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return f.Name(out[i]) < f.Name(out[j])
		})
	case SortPriceDesc:
		if f.Price != nil {
			sort.SliceStable(out, func(i, j int) bool {
				return f.Price(out[i]) > f.Price(out[j])
			})
		}
	case SortIDAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return f.ID(out[i]) < f.ID(out[j])
		})
	}
	return out
}

// Games runs the pipeline over the authenticated catalog, where categories
// are foreign keys resolved through the lookup table.
func Games(games []models.Game, p Params, categories map[int]string) []models.Game {
	return Apply(games, p, Fields[models.Game]{
		ID:       func(g models.Game) int { return g.ID },
		Name:     func(g models.Game) string { return g.Name },
		Price:    func(g models.Game) float64 { return g.Price },
		Category: func(g models.Game) string { return categories[g.CategoryID] },
	})
}

// PublicGames runs the pipeline over the public catalog, where the category
// arrives pre-resolved as a display name.
func PublicGames(games []models.PublicGame, p Params) []models.PublicGame {
	return Apply(games, p, Fields[models.PublicGame]{
		ID:       func(g models.PublicGame) int { return g.ID },
		Name:     func(g models.PublicGame) string { return g.Name },
		Price:    func(g models.PublicGame) float64 { return g.Price },
		Category: func(g models.PublicGame) string { return g.Category },
	})
}

// Companies runs the pipeline over the company list (no price, no category).
func Companies(companies []models.Company, p Params) []models.Company {
	return Apply(companies, p, Fields[models.Company]{
		ID:   func(c models.Company) int { return c.ID },
		Name: func(c models.Company) string { return c.Name },
	})
}
