package config

// mapstructure tag is for https://pkg.go.dev/github.com/spf13/viper
// yaml is for https://pkg.go.dev/gopkg.in/yaml.v3

type Cfg struct {
	Store StoreConfig `mapstructure:"store" yaml:"store"`
	Path  string      `yaml:"-"`
}

// StoreConfig selects where the order import settings are kept.
type StoreConfig struct {
	// Driver is yaml or sqlite.
	Driver string `mapstructure:"driver" yaml:"driver"`
	// Path of the settings file (yaml) or the database (sqlite).
	Path string `mapstructure:"path" yaml:"path"`
	// Collection is the configuration object name rows are stored under (sqlite only).
	Collection string `mapstructure:"collection" yaml:"collection"`
}

var Current Cfg
