package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "romano"
	configFileType = "yaml"
	envPrefix      = "ROMANO"

	// Config keys; each matches the persistent flag of the same name.
	cfgKeyFormat    = "format"
	cfgKeyPrecision = "precision"
	cfgKeyJournal   = "journal"
	cfgKeyVerbose   = "verbose"

	// envConfig names the config file when --config is not given.
	envConfig = envPrefix + "_CONFIG"
)

// loadConfig builds the effective settings. Precedence, highest first:
// flags, ROMANO_* environment, config file, defaults.
//
// An explicit path (--config or $ROMANO_CONFIG) must exist. Otherwise
// romano.yaml is looked up in the user config dir ($XDG_CONFIG_HOME/romano
// or ~/.config/romano) and a missing file is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFormat, "text")
	v.SetDefault(cfgKeyPrecision, -1)
	v.SetDefault(cfgKeyJournal, "")
	v.SetDefault(cfgKeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(envConfig)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(filepath.Join(dir, configFileName))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for _, key := range []string{cfgKeyFormat, cfgKeyPrecision, cfgKeyJournal, cfgKeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	return v, nil
}

// applyConfig copies the effective settings into opts.
func applyConfig(v *viper.Viper, opts *RootOptions) {
	opts.Format = v.GetString(cfgKeyFormat)
	opts.Precision = v.GetInt(cfgKeyPrecision)
	opts.Journal = v.GetString(cfgKeyJournal)
	opts.Verbose = v.GetBool(cfgKeyVerbose)
}
