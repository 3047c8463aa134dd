package derive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

var testCategories = []models.Category{
	{ID: 3, Name: " RPG"},
	{ID: 14, Name: "RPG"},
	{ID: 5, Name: "Simulação"},
}

var testGames = []models.Game{
	{ID: 1, Name: "The Witcher 3", Price: 39.90, CategoryID: 3},
	{ID: 2, Name: "Dark Souls", Price: 29.90, CategoryID: 14},
	{ID: 3, Name: "Stardew Valley", Price: 14.99, CategoryID: 5},
	{ID: 4, Name: "Witchfire", Price: 39.90, CategoryID: 14},
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{" RPG", "Ação", "  Simulação  ", "rpg", "", "ESTRATÉGIA"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}

func TestNormalizeCollapsesVariants(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"whitespace", " RPG", "RPG"},
		{"case", "rpg", "RPG"},
		{"accents", "Ação", "acao"},
		{"all at once", "  AÇÃO ", "acao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Normalize(tt.a), Normalize(tt.b))
		})
	}
	assert.Equal(t, "rpg", Normalize(" RPG"))
}

func TestApplyEmptyParamsReturnsAll(t *testing.T) {
	categories := LookupTable(testCategories)
	view := Games(testGames, Params{Sort: SortIDAsc}, categories)

	require.Len(t, view, len(testGames))
	for i, g := range view {
		assert.Equal(t, testGames[i].ID, g.ID)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := append([]models.Game(nil), testGames...)
	Games(input, Params{Search: "witch", Sort: SortPriceDesc}, LookupTable(testCategories))

	require.Equal(t, testGames, input)
}

func TestApplySearchIsCaseInsensitiveSubstring(t *testing.T) {
	view := Games(testGames, Params{Search: "WITCH"}, LookupTable(testCategories))

	require.Len(t, view, 2)
	for _, g := range view {
		assert.Contains(t, strings.ToLower(g.Name), "witch")
	}
}

func TestApplyCategoryFilterNormalizesBothSides(t *testing.T) {
	categories := LookupTable(testCategories)

	// Selecting the clean name must match games tagged with either the
	// clean or the dirty duplicate category.
	view := Games(testGames, Params{Category: "RPG"}, categories)
	require.Len(t, view, 3)
	for _, g := range view {
		assert.Contains(t, []int{3, 14}, g.CategoryID)
	}

	// Selecting the dirty variant matches the same set.
	dirty := Games(testGames, Params{Category: " rpg"}, categories)
	assert.Equal(t, view, dirty)
}

func TestApplySortPriceDescKeepsTieOrder(t *testing.T) {
	view := Games(testGames, Params{Sort: SortPriceDesc}, LookupTable(testCategories))

	require.Len(t, view, 4)
	for i := 1; i < len(view); i++ {
		assert.GreaterOrEqual(t, view[i-1].Price, view[i].Price)
	}
	// Games 1 and 4 share a price; the input order must survive.
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 4, view[1].ID)
}

func TestApplySortNameAsc(t *testing.T) {
	view := Games(testGames, Params{Sort: SortNameAsc}, LookupTable(testCategories))

	require.Len(t, view, 4)
	for i := 1; i < len(view); i++ {
		assert.LessOrEqual(t, view[i-1].Name, view[i].Name)
	}
}

func TestLookupTableMapsEveryIdentifier(t *testing.T) {
	table := LookupTable(testCategories)

	require.Len(t, table, len(testCategories))
	for _, c := range testCategories {
		assert.Equal(t, c.Name, table[c.ID])
	}
	_, ok := table[99]
	assert.False(t, ok, "no entries for identifiers absent from the source")
}

func TestDedupeByNameFirstSeenWins(t *testing.T) {
	options := DedupeByName([]models.Category{
		{ID: 3, Name: " RPG"},
		{ID: 14, Name: "RPG"},
	})

	require.Len(t, options, 1)
	assert.Equal(t, 3, options[0].ID)
	assert.Equal(t, "RPG", options[0].Name)
}

func TestDedupeByNameSortsOptions(t *testing.T) {
	options := DedupeByName(testCategories)

	require.Len(t, options, 2)
	assert.Equal(t, "RPG", options[0].Name)
	assert.Equal(t, "Simulação", options[1].Name)
}

func TestCartSummaryJoinsPrices(t *testing.T) {
	cart := &models.Cart{ID: 1, Items: []models.CartItem{
		{ID: 1, GameID: 1},
		{ID: 2, GameID: 3},
		{ID: 3, GameID: 99},
	}}

	lines, subtotal := CartSummary(cart, GameIndex(testGames))

	require.Len(t, lines, 3)
	assert.Equal(t, "The Witcher 3", lines[0].Name)
	assert.True(t, lines[0].Known)
	assert.False(t, lines[2].Known, "unknown game keeps the line with zero price")
	assert.Zero(t, lines[2].Price)
	assert.InDelta(t, 39.90+14.99, subtotal, 0.001)
}

func TestCartSummaryNilCart(t *testing.T) {
	lines, subtotal := CartSummary(nil, GameIndex(testGames))
	assert.Empty(t, lines)
	assert.Zero(t, subtotal)
}

func TestPublicGamesFilterByResolvedCategory(t *testing.T) {
	games := []models.PublicGame{
		{ID: 1, Name: "The Witcher 3", Price: 39.90, Category: " RPG"},
		{ID: 2, Name: "Stardew Valley", Price: 14.99, Category: "Simulação"},
	}

	view := PublicGames(games, Params{Category: "rpg"})
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)

	accented := PublicGames(games, Params{Category: "simulacao"})
	require.Len(t, accented, 1)
	assert.Equal(t, 2, accented[0].ID)
}
