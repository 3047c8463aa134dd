package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the wishlist",
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List wished games",
	RunE:  runWishlistShow,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <game-id>",
	Short: "Add a game to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistAdd,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <game-id>",
	Short: "Remove a game from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
	wishlistCmd.AddCommand(wishlistShowCmd)
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
}

func runWishlistShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	items, err := e.client.Wishlist(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	if len(items) == 0 {
		fmt.Println("💜 Your wishlist is empty")
		return nil
	}

	// Same price join the cart uses; wishlist lines also carry only the
	// game reference.
	games, err := e.client.ListGames(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	index := derive.GameIndex(games)

	fmt.Printf("💜 %d wished game(s):\n", len(items))
	for _, item := range items {
		if game, ok := index[item.GameID]; ok {
			fmt.Printf("  #%d %-30s $%8.2f\n", game.ID, game.Name, game.Price)
		} else {
			fmt.Printf("  #%d (not in catalog)\n", item.GameID)
		}
	}
	return nil
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	if err := e.client.AddToWishlist(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game #%d added to wishlist\n", id)
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	if err := e.client.RemoveFromWishlist(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game #%d removed from wishlist\n", id)
	return nil
}
