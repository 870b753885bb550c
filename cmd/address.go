package cmd

import (
	"fmt"

	"github.com/caner-cetin/amws-order/internal/address"
	"github.com/caner-cetin/amws-order/internal/settings"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	convertStateCmd = &cobra.Command{
		Use:   "convert-state NAME...",
		Short: "convert US state names the way imported shipping addresses are converted",
		Args:  cobra.MinimumNArgs(1),
		Run:   WrapCommandWithResources(convertState, storeResources),
	}

	addressCmd = &cobra.Command{
		Use: "address",
	}
)

func getAddressCmd() *cobra.Command {
	addressCmd.AddCommand(convertStateCmd)
	return addressCmd
}

func convertState(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)
	record := app.Form.Defaults()
	if !record.General.AddressConvertStates {
		log.Warn().Msg("state conversion is disabled, names are kept as they come through")
	}
	for _, name := range convertStates(record, args) {
		fmt.Println(name)
	}
}

func convertStates(record settings.Record, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		converted := record.ImportAddress(address.Address{CountryCode: "US", AdministrativeArea: name})
		if converted.AdministrativeArea == name && record.General.AddressConvertStates {
			log.Debug().Str("name", name).Msg("unknown state name")
		}
		out[i] = converted.AdministrativeArea
	}
	return out
}
