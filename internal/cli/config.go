package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mholloway/uprov/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the uprov configuration",
	Args:  cobra.MinimumNArgs(1),
}

var configSetBackendCmd = &cobra.Command{
	Use:   "set-backend BACKEND",
	Short: "Select the account store: exec or files",
	Args:  cobra.ExactArgs(1),
	RunE:  configSetBackendRunE,
}

func init() {
	configCmd.AddCommand(configSetBackendCmd)
	rootCmd.AddCommand(configCmd)
}

func configSetBackendRunE(cmd *cobra.Command, args []string) error {
	store := config.NewStore(rootConfigPath)
	if err := store.Ensure(); err != nil {
		return err
	}
	if err := store.SetBackend(args[0]); err != nil {
		return err
	}
	fmt.Printf("backend set to %s\n", args[0])
	return nil
}
