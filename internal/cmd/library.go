package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List owned games and their activation keys",
	RunE:  runLibrary,
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your purchase history",
	RunE:  runOrders,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	entries, err := e.client.Library(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	if len(entries) == 0 {
		fmt.Println("📭 Your library is empty")
		return nil
	}

	fmt.Printf("📚 %d owned game(s):\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  🎮 %-30s 🔑 %s\n", entry.Game.Name, entry.ActivationKey)
	}
	return nil
}

func runOrders(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	sales, err := e.client.ListSales(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	if len(sales) == 0 {
		fmt.Println("📭 No purchases yet")
		return nil
	}

	fmt.Printf("🧾 %d order(s):\n", len(sales))
	for _, sale := range sales {
		fmt.Printf("  #%d %s  %d item(s)  $%.2f\n",
			sale.ID, sale.Date.Local().Format("02/01/2006 15:04"), sale.ItemCount, sale.Total)
	}
	return nil
}
