package derive

import "github.com/Joaofg09/nextlevel-cli/internal/models"

// CartLine is a cart entry joined against the catalog index.
type CartLine struct {
	GameID int
	Name   string
	Price  float64
	// Known is false when the referenced game was not present in the
	// catalog fetch; the line then renders with a zero price.
	Known bool
}

// GameIndex builds the id->game map used to resolve cart and wishlist lines.
func GameIndex(games []models.Game) map[int]models.Game {
	index := make(map[int]models.Game, len(games))
	for _, g := range games {
		index[g.ID] = g
	}
	return index
}

// CartSummary resolves every cart line against the game index and totals the
// subtotal. Price lives on the catalog item, not on the line entry, so a
// missing game contributes zero.
func CartSummary(cart *models.Cart, index map[int]models.Game) ([]CartLine, float64) {
	if cart == nil {
		return nil, 0
	}

	lines := make([]CartLine, 0, len(cart.Items))
	var subtotal float64

	for _, item := range cart.Items {
		game, ok := index[item.GameID]
		line := CartLine{GameID: item.GameID, Known: ok}
		if ok {
			line.Name = game.Name
			line.Price = game.Price
			subtotal += game.Price
		}
		lines = append(lines, line)
	}
	return lines, subtotal
}
