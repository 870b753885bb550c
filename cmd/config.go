package cmd

import (
	"fmt"

	"github.com/caner-cetin/amws-order/internal/config"
	"github.com/caner-cetin/amws-order/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Interactive configuration generator",
	Long:  "Generate a configuration file interactively, choosing where the order import settings are stored",
	Run:   generateConfig,
}

func getConfigCmd() *cobra.Command {
	return configCmd
}

func generateConfig(cmd *cobra.Command, args []string) {
	newConfig := config.Cfg{Path: cfg.Path, Store: cfg.Store}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		MarginBottom(1)

	fmt.Printf("%s\n", headerStyle.Render("amws-order Configuration Generator"))
	fmt.Printf("Creating configuration file at: %s\n\n", newConfig.Path)

	if err := configureStore(&newConfig); err != nil {
		log.Error().Err(err).Msg("failed to configure store")
		return
	}

	if err := config.SnapshotToDisk(&newConfig); err != nil {
		log.Error().Err(err).Msg("failed to write config file")
		return
	}

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22C55E")).
		Bold(true)

	fmt.Printf("\n%s\n", successStyle.Render("Configuration generated successfully!"))
	fmt.Printf("Config file: %s\n", newConfig.Path)

	var viewConfig bool
	huh.NewConfirm().
		Title("View generated configuration?").
		Value(&viewConfig).
		Run()

	if viewConfig {
		yamlData, err := yaml.Marshal(newConfig)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal config to yaml")
			return
		}
		fmt.Printf("\n--- Generated Configuration ---\n%s\n", string(yamlData))
	}
}

func configureStore(newConfig *config.Cfg) error {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Bold(true).
		MarginTop(1)

	fmt.Printf("%s\n", headerStyle.Render("Settings Store"))

	if newConfig.Store.Driver == "" {
		newConfig.Store.Driver = store.DriverYAML
	}
	err := huh.NewSelect[string]().
		Title("Driver").
		Description("Where the order import settings are kept").
		Options(
			huh.NewOption("YAML file", store.DriverYAML),
			huh.NewOption("SQLite database", store.DriverSQLite),
		).
		Value(&newConfig.Store.Driver).
		Run()
	if err != nil {
		return err
	}

	collection := newConfig.Store.Collection
	if collection == "" {
		collection = config.STORE_COLLECTION.Default
	}
	defaultPath, err := config.DefaultStorePath(newConfig.Store.Driver, collection)
	if err != nil {
		return err
	}

	var path string
	err = huh.NewInput().
		Title("Path").
		Description("Settings file for yaml, database file for sqlite").
		Value(&path).
		Placeholder(defaultPath).
		Run()
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultPath
	}
	newConfig.Store.Path = path
	newConfig.Store.Collection = collection
	return nil
}
