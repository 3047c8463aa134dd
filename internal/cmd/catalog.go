package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
)

var (
	gameSearch   string
	gameCategory string
	gameSort     string
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Browse the game catalog",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games, optionally filtered and sorted",
	Long: `List the catalog. Signed out, the public catalog is used; signed in,
the full catalog with category and publisher references.

The category filter matches by display name and tolerates the accent, case
and whitespace variance present in the store's category data.`,
	RunE: runGamesList,
}

var gamesShowCmd = &cobra.Command{
	Use:   "show <game-id>",
	Short: "Show one game with its review summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runGamesShow,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesShowCmd)

	gamesListCmd.Flags().StringVar(&gameSearch, "search", "", "Filter by name substring")
	gamesListCmd.Flags().StringVar(&gameCategory, "category", "", "Filter by category name")
	gamesListCmd.Flags().StringVar(&gameSort, "sort", string(derive.SortIDAsc),
		"Sort key: id-asc, name-asc or price-desc")
}

func listParams() (derive.Params, error) {
	sortKey := derive.Sort(gameSort)
	switch sortKey {
	case derive.SortIDAsc, derive.SortNameAsc, derive.SortPriceDesc:
	default:
		return derive.Params{}, fmt.Errorf("unknown sort key %q", gameSort)
	}
	return derive.Params{Search: gameSearch, Category: gameCategory, Sort: sortKey}, nil
}

func runGamesList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	params, err := listParams()
	if err != nil {
		return err
	}

	// Hybrid view: the authenticated catalog when signed in, the public one
	// otherwise.
	if e.session.Current() == nil {
		games, err := e.client.ListPublicGames(cmd.Context())
		if err != nil {
			return e.notice(err)
		}

		view := derive.PublicGames(games, params)
		if len(view) == 0 {
			fmt.Println("📭 No games match")
			return nil
		}
		fmt.Printf("🎮 %d game(s):\n", len(view))
		for _, g := range view {
			fmt.Printf("  #%d %-30s $%8.2f  %s\n", g.ID, g.Name, g.Price, strings.TrimSpace(g.Category))
		}
		return nil
	}

	bundle, err := e.client.FetchCatalog(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	categories := derive.LookupTable(bundle.Categories)
	companies := derive.LookupTable(bundle.Companies)

	view := derive.Games(bundle.Games, params, categories)
	if len(view) == 0 {
		fmt.Println("📭 No games match")
		return nil
	}

	fmt.Printf("🎮 %d game(s):\n", len(view))
	for _, g := range view {
		fmt.Printf("  #%d %-30s $%8.2f  %-15s %s\n",
			g.ID, g.Name, g.Price,
			strings.TrimSpace(categories[g.CategoryID]), companies[g.CompanyID])
	}
	return nil
}

func runGamesShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid game id %q", args[0])
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	game, err := e.client.GetGame(cmd.Context(), id)
	if err != nil {
		return e.notice(err)
	}

	fmt.Printf("🎮 %s (#%d)\n", game.Name, game.ID)
	fmt.Printf("   💰 $%.2f | 📅 %d\n", game.Price, game.Year)
	if game.Description != "" {
		fmt.Printf("   📝 %s\n", game.Description)
	}

	summary, err := e.client.ReviewSummary(cmd.Context(), id)
	if err != nil {
		return e.notice(err)
	}

	if summary.Count == 0 {
		fmt.Println("   ⭐ No reviews yet")
		return nil
	}
	fmt.Printf("   ⭐ %.1f average over %d review(s)\n", summary.Average, summary.Count)
	for _, r := range summary.Reviews {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
		fmt.Printf("      %s %q\n", stars, r.Comment)
	}
	return nil
}
