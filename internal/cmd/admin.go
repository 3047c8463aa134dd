package cmd

import "github.com/spf13/cobra"

// adminCmd groups the management screens; every subcommand requires the
// elevated profile.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Store management (administrators only)",
}

func init() {
	rootCmd.AddCommand(adminCmd)
}

// adminEnv wires the environment and enforces the admin gate in one step.
func adminEnv() (*env, error) {
	e, err := newEnv()
	if err != nil {
		return nil, err
	}
	if _, err := e.session.RequireAdmin(); err != nil {
		return nil, err
	}
	return e, nil
}
