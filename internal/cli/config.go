// Config loading for the cltodo CLI.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/dukaforge/cltodo/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys. Each is also readable from the environment with the
	// CLTODO_ prefix (CLTODO_DATA_DIR, CLTODO_GLOBAL); environment values
	// beat the file, flags beat both.
	cfgKeyDataDir = "data_dir"
	cfgKeyGlobal  = "global"

	envPrefix = "CLTODO"
)

// loadConfig reads the optional config file using Viper. By default the
// file is config.yaml in the global store directory; explicitFile
// overrides the location and must then exist. A missing default file is
// not an error, and nothing is ever written on first run.
func loadConfig(explicitFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	dir, err := paths.GlobalDir()
	if err != nil {
		// No home directory means no default config file. Resolution
		// fails later only if the store itself needs the home directory.
		slog.Debug("skipping config file", "err", err)
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Missing config.yaml is not an error.
	}

	return v, nil
}
