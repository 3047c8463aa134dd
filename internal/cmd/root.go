package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/api"
	"github.com/Joaofg09/nextlevel-cli/internal/config"
	"github.com/Joaofg09/nextlevel-cli/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "nextlevel",
	Short: "NextLevel - game marketplace client",
	Long: `NextLevel is the command-line client for the NextLevel game
marketplace. Browse the catalog, manage your cart and wishlist, check out,
review games and, with an administrator account, manage the store itself.

All state lives on the marketplace server; the client only fetches,
displays and submits.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is the wiring every command needs: config, the session holder and an
// API client reading its bearer token from the session.
type env struct {
	cfg     *config.Config
	session *session.Store
	client  *api.Client
}

func newEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := session.NewStore(cfg.Session.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, store, cfg.API.Timeout)
	return &env{cfg: cfg, session: store, client: client}, nil
}

// notice rewrites API failures into the user-facing message. A
// session-invalid signal additionally clears the stored credential; any
// other failure leaves all state untouched.
func (e *env) notice(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrSessionInvalid) {
		_ = e.session.SignOut()
		return errors.New("your session expired, please run 'nextlevel login' again")
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}
