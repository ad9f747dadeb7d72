// The package cli implements the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mholloway/uprov/internal/config"
	"github.com/mholloway/uprov/internal/hostfs"
	"github.com/mholloway/uprov/internal/logger"
)

var conf config.Config

var basename string
var rootConfigPath string
var rootShowVersion bool

var rootCmd = &cobra.Command{
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Batch user account provisioning tool.",
	Long: `
uprov creates operating-system user accounts over a contiguous index range:
one account per index, named prefix+index with UID uid-base+index, a fixed
login shell, and an optional home directory under a configured root.
`,
	Run: rootRun,
}

var rootVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version",
	Args:  cobra.NoArgs,
	Run:   rootVersionRun,
}

func rootRun(cmd *cobra.Command, args []string) {
	if rootShowVersion {
		rootVersionRun(cmd, args)
	}

	if len(args) == 0 {
		cmd.Help()
		os.Exit(0)
	}
}

func rootVersionRun(cmd *cobra.Command, args []string) {
	fmt.Printf("%s version %s\n", basename, config.Version)
	os.Exit(0)
}

func init() {
	rootCmd.Use = filepath.Base(os.Args[0])
	rootCmd.Flags().BoolVar(
		&rootShowVersion, "version", false, "Get version information")
	rootCmd.PersistentFlags().StringVar(
		&rootConfigPath, "config", config.DefaultPath(), "Path to the config file")
	rootCmd.AddCommand(rootVersionCmd)
	cobra.OnInitialize(initConfig)
}

// Execute is the main entry point to the CLI. It executes the commands and
// arguments provided in os.Args[1:]
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {

	var err error
	basename = filepath.Base(os.Args[0])

	conf, err = config.NewStore(rootConfigPath).Get()
	if err != nil {
		fmt.Printf("%s: %v\n", basename, err)
		os.Exit(1)
	}

	if conf.HostRoot != "" {
		hostfs.SetRoot(conf.HostRoot)
	}

	logDir := os.Getenv("UPROV_LOG_DIR")
	if logDir == "" {
		logDir = conf.LogDir
	}
	if logDir != "" {
		if err := logger.Init(logDir); err != nil {
			fmt.Fprintf(os.Stderr, "%s: log dir: %v\n", basename, err)
		}
	}
}
