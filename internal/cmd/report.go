package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Store reports (administrators only)",
}

var topSellersCmd = &cobra.Command{
	Use:   "top-sellers",
	Short: "Best-selling games, aggregated server-side",
	RunE:  runTopSellers,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(topSellersCmd)
}

func runTopSellers(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireAdmin(); err != nil {
		return err
	}

	rows, err := e.client.TopSellers(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	if len(rows) == 0 {
		fmt.Println("📭 No sales recorded yet")
		return nil
	}

	fmt.Printf("📊 Top sellers:\n")
	for i, row := range rows {
		fmt.Printf("  %2d. %-30s %-20s %d sold\n", i+1, row.Name, row.Company, row.Sold)
	}
	return nil
}
