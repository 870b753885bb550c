package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. AMWS_ORDER_STORE_DRIVER.
const EnvPrefix = "AMWS_ORDER"

// Load reads the config file at path into a Cfg and fills in defaults.
// A missing file is not an error, every setting then comes from defaults
// and the environment.
func Load(v *viper.Viper, path string) (Cfg, error) {
	SetViperDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Cfg{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("reading config")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Cfg{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	} else {
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
	}

	var cfg Cfg
	if err := v.Unmarshal(&cfg); err != nil {
		return Cfg{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Path = path
	if err := SetStoreDefaults(&cfg); err != nil {
		return Cfg{}, err
	}
	return cfg, nil
}
