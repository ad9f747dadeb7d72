package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mholloway/uprov/internal/accounts"
	"github.com/mholloway/uprov/internal/config"
	"github.com/mholloway/uprov/internal/etcfiles"
	"github.com/mholloway/uprov/internal/hostfs"
	"github.com/mholloway/uprov/internal/passhash"
	"github.com/mholloway/uprov/internal/provision"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a range of user accounts",
	Args:  cobra.NoArgs,
	RunE:  createRunE,
}

var (
	createStart          int
	createEnd            int
	createUIDBase        int
	createPrefix         string
	createShell          string
	createHomeRoot       string
	createBackend        string
	createHome           bool
	createStrict         bool
	createTimings        bool
	createPasswordPrompt bool
)

func init() {
	f := createCmd.Flags()
	f.IntVar(&createStart, "start", 0, "First index of the range (inclusive)")
	f.IntVar(&createEnd, "end", 0, "End of the range (exclusive)")
	f.IntVar(&createUIDBase, "uid-base", 0, "UID assigned per index is uid-base + index")
	f.StringVar(&createPrefix, "prefix", "user", "Login name assigned per index is prefix + index")
	f.StringVar(&createShell, "shell", "", "Login shell (default from config, then /etc/default/useradd)")
	f.StringVar(&createHomeRoot, "home-root", "", "Record each home directory as home-root/<name>")
	f.BoolVar(&createHome, "create-home", false, "Create home directories on disk")
	f.BoolVar(&createStrict, "strict", false, "Fail the run if any account could not be created")
	f.BoolVar(&createTimings, "timings", false, "Report per-account wall-clock time")
	f.StringVar(&createBackend, "backend", "", "Account store: exec or files (default from config)")
	f.BoolVar(&createPasswordPrompt, "password-prompt", false, "Prompt once for an initial password applied to every account")
	_ = createCmd.MarkFlagRequired("end")
	_ = createCmd.MarkFlagRequired("uid-base")
	rootCmd.AddCommand(createCmd)
}

func createRunE(cmd *cobra.Command, args []string) error {

	defaultsPath, err := hostfs.Path(config.UseraddDefaultsRel)
	if err != nil {
		return err
	}
	defaults, err := config.LoadUseraddDefaults(defaultsPath)
	if err != nil {
		return err
	}

	shell := createShell
	if shell == "" {
		shell = conf.DefaultShell
	}
	if shell == "" {
		shell = defaults.Shell
	}

	store, err := newAccountStore(defaults)
	if err != nil {
		return err
	}

	var hash string
	if createPasswordPrompt {
		pw, err := readPassword("Password for new accounts: ")
		if err != nil {
			return err
		}
		if hash, err = passhash.SHA512(pw); err != nil {
			return err
		}
	}

	p := provision.New(store, os.Stdout)
	return p.Run(cmd.Context(), provision.Params{
		Start:        createStart,
		End:          createEnd,
		UIDBase:      createUIDBase,
		Prefix:       createPrefix,
		Shell:        shell,
		HomeRoot:     createHomeRoot,
		CreateHome:   createHome,
		PasswordHash: hash,
		Strict:       createStrict,
		Timings:      createTimings,
	})
}

func newAccountStore(defaults config.UseraddDefaults) (accounts.Store, error) {
	backend := createBackend
	if backend == "" {
		backend = conf.Backend
	}
	switch backend {
	case config.BackendExec, "":
		return accounts.NewUseraddStore(), nil
	case config.BackendFiles:
		s, err := etcfiles.NewStore()
		if err != nil {
			return nil, err
		}
		s.HomeBase = defaults.Home
		s.DefaultShell = defaults.Shell
		return s, nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", fmt.Errorf("empty password")
	}
	return string(b), nil
}
