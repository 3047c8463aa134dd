package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/derive"
	"github.com/Joaofg09/nextlevel-cli/internal/forms"
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users with resolved profile names",
	RunE:  runAdminUsersList,
}

var (
	userFormName      string
	userFormBirthDate string
	userFormProfile   int
)

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user's name, birth date or profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersUpdate,
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Remove a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersDelete,
}

var profileFormName string

var adminProfilesCreateCmd = &cobra.Command{
	Use:   "create-profile",
	Short: "Create a new access profile",
	RunE:  runAdminProfilesCreate,
}

func init() {
	adminCmd.AddCommand(adminUsersCmd)
	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersUpdateCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)
	adminUsersCmd.AddCommand(adminProfilesCreateCmd)

	adminUsersUpdateCmd.Flags().StringVar(&userFormName, "name", "", "Display name")
	adminUsersUpdateCmd.Flags().StringVar(&userFormBirthDate, "birth-date", "", "Birth date (DD/MM/YYYY)")
	adminUsersUpdateCmd.Flags().IntVar(&userFormProfile, "profile-id", 0, "Profile identifier")
	_ = adminUsersUpdateCmd.MarkFlagRequired("name")
	_ = adminUsersUpdateCmd.MarkFlagRequired("profile-id")

	adminProfilesCreateCmd.Flags().StringVar(&profileFormName, "name", "", "Profile name")
	_ = adminProfilesCreateCmd.MarkFlagRequired("name")
}

func runAdminUsersList(cmd *cobra.Command, args []string) error {
	e, err := adminEnv()
	if err != nil {
		return err
	}

	// Users and profiles are independent fetches reconciled only at render
	// time through the lookup table.
	users, err := e.client.ListUsers(cmd.Context())
	if err != nil {
		return e.notice(err)
	}
	profiles, err := e.client.ListProfiles(cmd.Context())
	if err != nil {
		return e.notice(err)
	}

	profileNames := derive.LookupTable(profiles)
	if len(users) == 0 {
		fmt.Println("📭 No users")
		return nil
	}

	fmt.Printf("👥 %d user(s):\n", len(users))
	for _, u := range users {
		profile := profileNames[u.ProfileID]
		if profile == "" {
			profile = "..."
		}
		fmt.Printf("  #%-4d %-25s %-30s %s\n", u.ID, u.Name, u.Email, profile)
	}
	return nil
}

func runAdminUsersUpdate(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.UpdateUser(cmd.Context(), id, userFormName, userFormBirthDate, userFormProfile); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ User #%d updated\n", id)
	return nil
}

func runAdminUsersDelete(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.DeleteUser(cmd.Context(), id); err != nil {
		return e.notice(err)
	}
	fmt.Printf("🗑  User #%d deleted\n", id)
	return nil
}

func runAdminProfilesCreate(cmd *cobra.Command, args []string) error {
	if err := forms.Check(forms.ProfileForm{Name: profileFormName}); err != nil {
		return err
	}

	e, err := adminEnv()
	if err != nil {
		return err
	}

	if err := e.client.CreateProfile(cmd.Context(), profileFormName); err != nil {
		return e.notice(err)
	}
	fmt.Printf("✅ Profile %q created\n", profileFormName)
	return nil
}
