package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mholloway/uprov/internal/etcfiles"
	"github.com/mholloway/uprov/internal/hostfs"
	"github.com/mholloway/uprov/internal/privilege"
	"github.com/mholloway/uprov/internal/userenv"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect USERNAME",
	Short: "Show a user's UID, GID, home directory and shell",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectRunE,
}

var inspectPAMSession bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectPAMSession, "pam-session", false,
		"Open a PAM session first so pam_mkhomedir can create a missing home")
	rootCmd.AddCommand(inspectCmd)
}

func inspectRunE(cmd *cobra.Command, args []string) error {
	username := args[0]

	start := time.Now()
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
	fmt.Printf("found %s in %s\n", username, time.Since(start))
	fmt.Printf("uid: %d\n", pe.UID)
	fmt.Printf("gid: %d\n", pe.GID)
	fmt.Printf("home: %s\n", pe.Home)
	fmt.Printf("shell: %s\n", pe.Shell)

	if homeExists(pe.Home) {
		fmt.Printf("home directory exists: %s\n", pe.Home)
		return nil
	}
	fmt.Printf("home directory missing: %s\n", pe.Home)

	if !inspectPAMSession {
		return nil
	}

	// Session modules only run for root callers.
	if err := privilege.Root().Require(); err != nil {
		return err
	}
	start = time.Now()
	if err := userenv.OpenSession(username); err != nil {
		return err
	}
	fmt.Printf("pam session created in %s\n", time.Since(start))
	if homeExists(pe.Home) {
		fmt.Printf("home directory now exists: %s\n", pe.Home)
	} else {
		fmt.Printf("home directory still missing: %s\n", pe.Home)
	}
	return nil
}

func homeExists(home string) bool {
	abs, err := hostfs.Abs(home)
	if err != nil {
		return false
	}
	st, err := os.Stat(abs)
	return err == nil && st.IsDir()
}
