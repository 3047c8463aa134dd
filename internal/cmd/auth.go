package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/api"
	"github.com/Joaofg09/nextlevel-cli/internal/forms"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the marketplace",
	Long: `Sign in with your marketplace credentials. On success the bearer
token is stored locally and every other command uses it until you log out
or the server rejects it.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored credential",
	RunE:  runLogout,
}

var (
	registerName      string
	registerEmail     string
	registerPassword  string
	registerBirthDate string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a marketplace account",
	RunE:  runRegister,
}

var (
	currentPassword string
	newPassword     string
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your account password",
	RunE:  runChangePassword,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(passwordCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account e-mail")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account e-mail")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&registerBirthDate, "birth-date", "", "Birth date (DD/MM/YYYY)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("birth-date")

	passwordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	passwordCmd.Flags().StringVar(&newPassword, "new", "", "New password")
	_ = passwordCmd.MarkFlagRequired("current")
	_ = passwordCmd.MarkFlagRequired("new")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if err := forms.Check(forms.CredentialsForm{Email: loginEmail, Password: loginPassword}); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	token, err := e.client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		// A 401 here is a rejected credential, not an expired session.
		if errors.Is(err, api.ErrSessionInvalid) {
			return errors.New("invalid e-mail or password")
		}
		return e.notice(err)
	}

	identity, err := e.session.SignIn(token)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Signed in as %s\n", identity.Name)
	if identity.Admin() {
		fmt.Println("🔑 Administrator account, management commands unlocked")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if err := e.session.SignOut(); err != nil {
		return err
	}
	fmt.Println("👋 Signed out")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	form := forms.RegistrationForm{
		Name:      registerName,
		Email:     registerEmail,
		Password:  registerPassword,
		BirthDate: registerBirthDate,
	}
	if err := forms.Check(form); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	message, err := e.client.Register(cmd.Context(), registerName, registerEmail, registerPassword, registerBirthDate)
	if err != nil {
		return e.notice(err)
	}

	fmt.Printf("✅ %s\n", message)
	fmt.Println("💡 Now sign in with: nextlevel login")
	return nil
}

func runChangePassword(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	if err := e.client.ChangePassword(cmd.Context(), currentPassword, newPassword); err != nil {
		return e.notice(err)
	}
	fmt.Println("✅ Password changed")
	return nil
}
