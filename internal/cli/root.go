// Package cli implements the recipebox command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/recipebox/internal/images"
	"github.com/mesh-intelligence/recipebox/internal/logger"
	"github.com/mesh-intelligence/recipebox/internal/paths"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	v         *viper.Viper
	logger    *slog.Logger
	stderr    io.Writer
}

// NewRootCmd creates the top-level "recipebox" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "recipebox",
		Short: "A single-user recipe catalog",
		Long: "Recipebox keeps a list of recipes (title, category, ingredients, steps\n" +
			"and a photo) in a JSON file and lets you page through, search and\n" +
			"filter them from the command line or over HTTP.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory holding recipes.json and images/ (default: current directory)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newCategoriesCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "recipebox:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves the config directory, loads config.yaml and builds the
// logger.
func (a *app) setup() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}

	level := a.flags.logLevel
	if level == "" {
		level = v.GetString(cfgKeyLogLevel)
	}
	if !logger.ValidLevel(level) {
		return userError(fmt.Errorf("unknown log level %q", level))
	}

	a.configDir = configDir
	a.v = v
	a.logger = logger.NewWithWriter(a.stderr, level, v.GetString(cfgKeyLogFormat))
	return nil
}

// exitError carries the exit code an error should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err onto an exit code. Errors without a code are flag and
// argument mistakes reported by cobra.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// userErrors are the catalog errors caused by bad input.
var userErrors = []error{
	types.ErrIndexOutOfRange,
	types.ErrInvalidTitle,
	types.ErrInvalidCategory,
	types.ErrImageRequired,
	types.ErrUnsupportedImage,
	types.ErrInvalidPageSize,
	types.ErrEmptySearch,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
	types.ErrImageBackendUnknown,
	types.ErrImageBucketEmpty,
	images.ErrNoImage,
}

// classify tags a catalog error with its exit code.
func classify(err error) error {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return userError(err)
		}
	}
	return sysError(err)
}
