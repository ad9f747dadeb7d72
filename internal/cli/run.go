package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mholloway/uprov/internal/etcfiles"
	"github.com/mholloway/uprov/internal/hostfs"
	"github.com/mholloway/uprov/internal/logger"
	"github.com/mholloway/uprov/internal/privilege"
	"github.com/mholloway/uprov/internal/userenv"
)

var runCmd = &cobra.Command{
	Use:   "run USERNAME -- COMMAND [ARGS...]",
	Short: "Run a command as a user with their login environment",
	Long: `
Run spawns a command as the given user: the process runs under the user's
UID and GID with an environment cleared to exactly what a login shell for
that user would see. Output is streamed line by line and the exit status is
reported once the command finishes.
`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRunE,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRunE(cmd *cobra.Command, args []string) error {
	if err := privilege.Root().Require(); err != nil {
		return err
	}

	username := args[0]
	argv := args[1:]

	passwdPath, err := hostfs.Path(hostfs.EtcPasswdRel)
	if err != nil {
		return err
	}
	pw, err := etcfiles.LoadPasswd(passwdPath)
	if err != nil {
		return err
	}
	pe := pw.Find(username)
	if pe == nil {
		return fmt.Errorf("user %s does not exist", username)
	}

	start := time.Now()
	env, err := userenv.Capture(cmd.Context(), username)
	if err != nil {
		return err
	}
	logger.Info("captured %d variables in %s", len(env), time.Since(start))

	code, err := userenv.RunAs(cmd.Context(), pe.UID, pe.GID, env, argv, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("finished with status %d in %s\n", code, time.Since(start))
	return nil
}
