// Config loading for the recipebox CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/httpapi"
	"github.com/mesh-intelligence/recipebox/internal/paths"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "RECIPEBOX"

	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyImageBackend = "images.backend"
	cfgKeyImageBucket  = "images.bucket"
	cfgKeyImageRegion  = "images.region"
	cfgKeyLogLevel     = "log.level"
	cfgKeyLogFormat    = "log.format"
	cfgKeyServerAddr   = "server.addr"
	cfgKeyPageSize     = "page_size"
)

// envBound lists the keys that RECIPEBOX_* variables override. data_dir is
// absent: its env variable sits below config.yaml in the directory
// precedence chain and is read by the paths package.
var envBound = []string{
	cfgKeyBackend,
	cfgKeyImageBackend,
	cfgKeyImageBucket,
	cfgKeyImageRegion,
	cfgKeyLogLevel,
	cfgKeyLogFormat,
	cfgKeyServerAddr,
	cfgKeyPageSize,
}

// configFile is the structure of config.yaml.
type configFile struct {
	Backend  string       `yaml:"backend" json:"backend"`
	DataDir  string       `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	Images   imagesConfig `yaml:"images" json:"images"`
	Log      logConfig    `yaml:"log" json:"log"`
	Server   serverConfig `yaml:"server" json:"server"`
	PageSize int          `yaml:"page_size" json:"page_size"`
}

type imagesConfig struct {
	Backend string `yaml:"backend" json:"backend"`
	Bucket  string `yaml:"bucket,omitempty" json:"bucket,omitempty"`
	Region  string `yaml:"region,omitempty" json:"region,omitempty"`
}

type logConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type serverConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// defaultConfig is written to config.yaml on first run.
func defaultConfig() configFile {
	return configFile{
		Backend:  types.BackendJSON,
		Images:   imagesConfig{Backend: types.ImageBackendLocal},
		Log:      logConfig{Level: "info", Format: "text"},
		Server:   serverConfig{Addr: httpapi.DefaultOptions().Addr},
		PageSize: catalog.DefaultPageSize,
	}
}

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	def := defaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyImageBackend, def.Images.Backend)
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFormat, def.Log.Format)
	v.SetDefault(cfgKeyServerAddr, def.Server.Addr)
	v.SetDefault(cfgKeyPageSize, def.PageSize)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envBound {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return writeConfigFile(path, defaultConfig())
}

func writeConfigFile(path string, cfg configFile) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# Recipebox configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// effectiveConfig returns the configuration in force after env overrides
// and directory resolution.
func (a *app) effectiveConfig() (configFile, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return configFile{}, err
	}
	return configFile{
		Backend: a.v.GetString(cfgKeyBackend),
		DataDir: dataDir,
		Images: imagesConfig{
			Backend: a.v.GetString(cfgKeyImageBackend),
			Bucket:  a.v.GetString(cfgKeyImageBucket),
			Region:  a.v.GetString(cfgKeyImageRegion),
		},
		Log: logConfig{
			Level:  a.v.GetString(cfgKeyLogLevel),
			Format: a.v.GetString(cfgKeyLogFormat),
		},
		Server:   serverConfig{Addr: a.v.GetString(cfgKeyServerAddr)},
		PageSize: a.v.GetInt(cfgKeyPageSize),
	}, nil
}

// dataDir follows the precedence --data-dir > config.yaml data_dir >
// RECIPEBOX_DATA_DIR > current directory.
func (a *app) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.v.GetString(cfgKeyDataDir))
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return dir, nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.effectiveConfig()
			if err != nil {
				return sysError(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, map[string]any{
					"config_dir": a.configDir,
					"config":     cfg,
				})
			}
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return sysError(fmt.Errorf("marshal config: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# config dir: %s\n%s", a.configDir, data)
			return nil
		},
	}
}
