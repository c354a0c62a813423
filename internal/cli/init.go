// Init command for the recipebox CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/recipebox/internal/images"
	"github.com/mesh-intelligence/recipebox/internal/jsonstore"
	"github.com/mesh-intelligence/recipebox/internal/paths"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize recipebox storage",
		Long: "Create the configuration and data directories, the image directory and an\n" +
			"empty catalog. When no data directory is given by flag, config.yaml or\n" +
			"RECIPEBOX_DATA_DIR, the per-user data directory is used and recorded in\n" +
			"config.yaml.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	if a.flags.dataDir == "" && a.v.GetString(cfgKeyDataDir) == "" && os.Getenv(paths.EnvDataDir) == "" {
		dir, err := paths.DefaultDataDir()
		if err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
		if err := a.recordDataDir(dir); err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
	}

	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}
	if cfg.ImageBackend == "" || cfg.ImageBackend == types.ImageBackendLocal {
		if _, err := images.NewLocal(cfg.DataDir); err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
	}

	store, err := a.openStore(cfg)
	if err != nil {
		return sysError(fmt.Errorf("init: %w", err))
	}
	defer store.Close()

	if js, ok := store.(*jsonstore.Store); ok {
		if _, err := os.Stat(js.Path()); errors.Is(err, os.ErrNotExist) {
			if err := js.Replace(nil); err != nil {
				return sysError(fmt.Errorf("init: %w", err))
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Recipebox initialized successfully")
	fmt.Fprintln(out, "  config:", a.configDir)
	fmt.Fprintln(out, "  data:  ", cfg.DataDir)
	fmt.Fprintln(out, "  store: ", cfg.Backend)
	return nil
}

// recordDataDir writes dir as data_dir into config.yaml so later commands
// resolve the same directory. Other values in the file are kept.
func (a *app) recordDataDir(dir string) error {
	path := filepath.Join(a.configDir, configFileExt)
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.DataDir = dir
	if err := writeConfigFile(path, cfg); err != nil {
		return err
	}
	a.v.Set(cfgKeyDataDir, dir)
	return nil
}
