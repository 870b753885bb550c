package config

// Config is a struct that represents a configuration key-value pair.
// It stores both the key identifier and its default value.
type Config struct {
	// Key is the identifier for the configuration setting
	Key string
	// Default is the value to be used if no override is provided
	Default string
}

var (
	// STORE_DRIVER picks the settings backend, either yaml or sqlite.
	STORE_DRIVER = Config{Key: "store.driver", Default: "yaml"}
	// STORE_PATH is the settings file for the yaml driver, the database file for sqlite.
	// Left empty, it is derived from the driver and the home directory.
	STORE_PATH = Config{Key: "store.path"}
	// STORE_COLLECTION is the name of the configuration object, sqlite only.
	STORE_COLLECTION = Config{Key: "store.collection", Default: "commerce_amws_order.settings"}
)

// All lists every key with a default, see [SetViperDefaults].
var All = []Config{STORE_DRIVER, STORE_PATH, STORE_COLLECTION}
