// Package cli implements the cltodo command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cltodo/internal/paths"
	"github.com/dukaforge/cltodo/internal/sqlite"
)

const exitFailure = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	dataDir    string
	global     bool
	verbose    bool
}

var flags rootFlags

// storeDir is the resolved store directory. Set by the root command's
// persistent pre-run hook so every subcommand opens the same location.
var storeDir string

// NewRootCmd creates the top-level "cltodo" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cltodo",
		Short: "A minimal per-project todo tracker",
		Long: `cltodo keeps a small todo list in an embedded SQLite database.

Inside a git repository entries live under <repo-root>/.cltodo, giving
every project its own list; anywhere else (or with --global) they go to
~/.cltodo instead.`,
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: resolveStore,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ~/.cltodo/config.yaml)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "store directory (overrides project detection)")
	root.PersistentFlags().BoolVar(&flags.global, "global", false, "use the global store even inside a repository")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newAddCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newPruneCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with a non-zero status on
// failure. Cobra already prints the error to stderr.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitFailure)
	}
}

// resolveStore is the persistent pre-run hook: it configures logging,
// loads the config file, and resolves the store directory. It does not
// create the directory or open the database; commands do that themselves
// after validating their input, so bad arguments never touch storage.
func resolveStore(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return err
	}

	dataDir := flags.dataDir
	if dataDir == "" {
		dataDir = cfg.GetString(cfgKeyDataDir)
	}
	global := flags.global
	if !cmd.Flags().Changed("global") {
		global = cfg.GetBool(cfgKeyGlobal)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	dir, err := paths.ResolveStoreDir(cwd, dataDir, global)
	if err != nil {
		return err
	}

	storeDir = dir
	slog.Debug("store location resolved", "dir", dir, "global", global)
	return nil
}

// openStore creates the resolved store directory if needed and opens the
// database, printing a notice the first time a store comes into being.
func openStore(cmd *cobra.Command) (*sqlite.Store, error) {
	if err := paths.Ensure(storeDir); err != nil {
		return nil, err
	}

	s, err := sqlite.Open(paths.DBPath(storeDir))
	if err != nil {
		return nil, err
	}
	if s.Created() {
		fmt.Fprintf(cmd.OutOrStdout(), "Created todo store at %s\n", storeDir)
	}
	slog.Debug("store opened", "dir", storeDir, "created", s.Created())
	return s, nil
}
