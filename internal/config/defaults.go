package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caner-cetin/amws-order/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DirName is the directory under $HOME everything lives in by default.
const DirName = ".amws-order"

// SetViperDefaults registers every known key, so that environment overrides
// apply to keys the config file does not mention.
func SetViperDefaults(v *viper.Viper) {
	for _, c := range All {
		v.SetDefault(c.Key, c.Default)
	}
}

// SetStoreDefaults fills in whatever the config file left out of the store section.
func SetStoreDefaults(cfg *Cfg) error {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = STORE_DRIVER.Default
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = STORE_COLLECTION.Default
	}
	if cfg.Store.Path == "" {
		path, err := DefaultStorePath(cfg.Store.Driver, cfg.Store.Collection)
		if err != nil {
			return err
		}
		cfg.Store.Path = path
		log.Debug().Str("path", path).Msg("using default store path")
	}
	switch cfg.Store.Driver {
	case store.DriverYAML, store.DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q, expected %s or %s", cfg.Store.Driver, store.DriverYAML, store.DriverSQLite)
	}
	return nil
}

// DefaultStorePath returns ~/.amws-order/<collection>.yml for yaml and
// ~/.amws-order/amws-order.db for sqlite.
func DefaultStorePath(driver, collection string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if driver == store.DriverSQLite {
		return filepath.Join(home, DirName, "amws-order.db"), nil
	}
	return filepath.Join(home, DirName, collection+".yml"), nil
}

// DefaultPath is the config file used when --config is not given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".amws-order.yaml"), nil
}
