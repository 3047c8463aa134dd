package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the active cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart with resolved names, prices and subtotal",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <game-id>",
	Short: "Add a game to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <game-id>",
	Short: "Remove a game from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into a purchase",
	Long: `Convert the active cart into a sale. The server prices the order,
records it and issues one activation key per game into your library.`,
	RunE: runCheckout,
}

func init() {
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}

func gameIDArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return id, nil
}

func runCartShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	bundle, err := e.client.FetchCart(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	lines, subtotal := derive.CartSummary(bundle.Cart, derive.GameIndex(bundle.Games))
	if len(lines) == 0 {
		fmt.Println("🛒 Your cart is empty")
		return nil
	}

	fmt.Printf("🛒 %d item(s):\n", len(lines))
	for _, line := range lines {
		if !line.Known {
			fmt.Printf("  #%d (not in catalog)\n", line.GameID)
			continue
		}
		fmt.Printf("  #%d %-30s $%8.2f\n", line.GameID, line.Name, line.Price)
	}
	fmt.Printf("💰 Subtotal: $%.2f\n", subtotal)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
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

	if err := e.client.AddToCart(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game #%d added to cart\n", id)
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
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

	if err := e.client.RemoveFromCart(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Game #%d removed from cart\n", id)
	return nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	message, err := e.client.Checkout(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	fmt.Printf("🎉 %s\n", message)
	fmt.Println("💡 See your keys with: nextlevel library")
	return nil
}
