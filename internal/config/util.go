package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	yaml "gopkg.in/yaml.v3"
)

// SnapshotToDisk writes cfg to cfg.Path.
func SnapshotToDisk(cfg *Cfg) error {
	if cfg.Path == "" {
		return fmt.Errorf("config path not set")
	}
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	if err := os.WriteFile(cfg.Path, yamlData, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	log.Trace().Str("path", cfg.Path).Msg("snapshotted config to disk")
	return nil
}
