package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mholloway/uprov/internal/logger"
	"github.com/mholloway/uprov/internal/privilege"
	"github.com/mholloway/uprov/internal/userenv"
)

var envCmd = &cobra.Command{
	Use:   "env USERNAME",
	Short: "Print a user's login environment",
	Args:  cobra.ExactArgs(1),
	RunE:  envRunE,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func envRunE(cmd *cobra.Command, args []string) error {
	if err := privilege.Root().Require(); err != nil {
		return err
	}

	start := time.Now()
	env, err := userenv.Capture(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	logger.Info("captured %d variables in %s", len(env), time.Since(start))

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, env[k])
	}
	return nil
}
