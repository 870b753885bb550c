package cmd

import (
	"os"

	"github.com/caner-cetin/amws-order/internal/config"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg = &config.Current // i seriously dont want to write config.Config.
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "amws-order",
	Short: "manage the Amazon MWS order import settings",
}

var versionCmd = &cobra.Command{
	Use: "version",
	Run: displayVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	verbosity int
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.amws-order.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (-v: info, -vv: debug, -vvv: trace)")

	rootCmd.AddCommand(getSettingsCmd())
	rootCmd.AddCommand(getAddressCmd())
	rootCmd.AddCommand(getConfigCmd())
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch verbosity {
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case 3:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		cobra.CheckErr(err)
	}

	loaded, err := config.Load(viper.GetViper(), path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		cfg.Path = path
		return
	}
	*cfg = loaded
}

func displayVersion(cmd *cobra.Command, args []string) {
	_, err := color.New(color.Bold).Println("amws-order 0.1.0")
	if err != nil {
		log.Error().Err(err).Send()
	}
}
