package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
	"github.com/Joaofg09/nextlevel-cli/internal/forms"
	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

var adminGamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage the game catalog",
}

var adminGamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games with resolved category and publisher names",
	RunE:  runAdminGamesList,
}

var (
	gameFormName        string
	gameFormPrice       float64
	gameFormYear        int
	gameFormDescription string
	gameFormCategory    int
	gameFormCompany     int
)

var adminGamesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new game",
	RunE:  runAdminGamesCreate,
}

var adminGamesUpdateCmd = &cobra.Command{
	Use:   "update <game-id>",
	Short: "Update an existing game",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminGamesUpdate,
}

var adminGamesDeleteCmd = &cobra.Command{
	Use:   "delete <game-id>",
	Short: "Remove a game from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminGamesDelete,
}

var adminCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List category filter options (deduplicated)",
	RunE:  runAdminCategories,
}

func init() {
	adminCmd.AddCommand(adminGamesCmd)
	adminCmd.AddCommand(adminCategoriesCmd)
	adminGamesCmd.AddCommand(adminGamesListCmd)
	adminGamesCmd.AddCommand(adminGamesCreateCmd)
	adminGamesCmd.AddCommand(adminGamesUpdateCmd)
	adminGamesCmd.AddCommand(adminGamesDeleteCmd)

	adminGamesListCmd.Flags().StringVar(&gameSearch, "search", "", "Filter by name substring")
	adminGamesListCmd.Flags().StringVar(&gameCategory, "category", "", "Filter by category name")
	adminGamesListCmd.Flags().StringVar(&gameSort, "sort", string(derive.SortIDAsc),
		"Sort key: id-asc, name-asc or price-desc")

	for _, c := range []*cobra.Command{adminGamesCreateCmd, adminGamesUpdateCmd} {
		c.Flags().StringVar(&gameFormName, "name", "", "Game title")
		c.Flags().Float64Var(&gameFormPrice, "price", 0, "Price")
		c.Flags().IntVar(&gameFormYear, "year", 0, "Release year")
		c.Flags().StringVar(&gameFormDescription, "description", "", "Description")
		c.Flags().IntVar(&gameFormCategory, "category-id", 0, "Category identifier")
		c.Flags().IntVar(&gameFormCompany, "company-id", 0, "Publisher identifier")
	}
}

func gameFromFlags(id int) (models.Game, error) {
	form := forms.GameForm{
		Name:        gameFormName,
		Price:       gameFormPrice,
		Year:        gameFormYear,
		Description: gameFormDescription,
		CategoryID:  gameFormCategory,
		CompanyID:   gameFormCompany,
	}
	if err := forms.Check(form); err != nil {
		return models.Game{}, err
	}
	return models.Game{
		ID:          id,
		Name:        gameFormName,
		Price:       gameFormPrice,
		Year:        gameFormYear,
		Description: gameFormDescription,
		CategoryID:  gameFormCategory,
		CompanyID:   gameFormCompany,
	}, nil
}

func runAdminGamesList(cmd *cobra.Command, args []string) error {
	e, err := adminEnv()
	if err != nil {
		return err
	}

	params, err := listParams()
	if err != nil {
		return err
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

	fmt.Printf("🗂  %d game(s):\n", len(view))
	for _, g := range view {
		fmt.Printf("  #%-4d %-30s $%8.2f  %-15s %s\n",
			g.ID, g.Name, g.Price,
			strings.TrimSpace(categories[g.CategoryID]), companies[g.CompanyID])
	}
	return nil
}

func runAdminGamesCreate(cmd *cobra.Command, args []string) error {
	game, err := gameFromFlags(0)
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.CreateGame(cmd.Context(), game); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game %q registered\n", game.Name)
	return nil
}

func runAdminGamesUpdate(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}
	game, err := gameFromFlags(id)
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.UpdateGame(cmd.Context(), game); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game #%d updated\n", id)
	return nil
}

func runAdminGamesDelete(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.DeleteGame(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("🗑  Game #%d deleted\n", id)
	return nil
}

func runAdminCategories(cmd *cobra.Command, args []string) error {
	e, err := adminEnv()
	if err != nil {
		return err
	}

	categories, err := e.client.ListCategories(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	// The raw list carries duplicates differing only by whitespace or
	// accents; the dropdown view collapses them, first identifier wins.
	options := derive.DedupeByName(categories)
	fmt.Printf("🏷  %d categor%s:\n", len(options), pluralizeYies(len(options)))
	for _, opt := range options {
		fmt.Printf("  #%-4d %s\n", opt.ID, opt.Name)
	}
	return nil
}

func pluralizeYies(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
