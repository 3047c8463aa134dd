package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/config"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "View and update your own account",
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your account data",
	RunE:  runAccountShow,
}

var (
	accountName      string
	accountBirthDate string
)

var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your display name or birth date",
	RunE:  runAccountUpdate,
}

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the stored UI theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(themeCmd)
	accountCmd.AddCommand(accountShowCmd)
	accountCmd.AddCommand(accountUpdateCmd)

	accountUpdateCmd.Flags().StringVar(&accountName, "name", "", "New display name")
	accountUpdateCmd.Flags().StringVar(&accountBirthDate, "birth-date", "", "Birth date (DD/MM/YYYY)")
	_ = accountUpdateCmd.MarkFlagRequired("name")
}

func runAccountShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	identity, err := e.session.RequireUser()
	if err != nil {
		return err
	}

	user, err := e.client.GetUser(cmd.Context(), identity.ID)
	if err != nil {
		return e.notice(err)
	}

	fmt.Printf("👤 %s\n", user.Name)
	fmt.Printf("   ✉️  %s\n", user.Email)
	if user.BirthDate != "" {
		fmt.Printf("   🎂 %s\n", user.BirthDate)
	}
	fmt.Printf("   🏷️  %s\n", identity.Profile)
	return nil
}

func runAccountUpdate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	identity, err := e.session.RequireUser()
	if err != nil {
		return err
	}

	// The profile reference is kept as-is; only the server may promote.
	user, err := e.client.GetUser(cmd.Context(), identity.ID)
	if err != nil {
		return e.notice(err)
	}

	birthDate := user.BirthDate
	if accountBirthDate != "" {
		birthDate = accountBirthDate
	}

	if err := e.client.UpdateUser(cmd.Context(), identity.ID, accountName, birthDate, user.ProfileID); err != nil {
		return e.notice(err)
	}
	fmt.Println("✅ Account updated")
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("🎨 Theme: %s\n", cfg.UI.Theme)
		return nil
	}

	theme := args[0]
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q, use dark or light", theme)
	}
	if err := config.SaveTheme(theme); err != nil {
		return err
	}
	fmt.Printf("🎨 Theme set to %s\n", theme)
	return nil
}
