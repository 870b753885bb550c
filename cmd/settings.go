package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caner-cetin/amws-order/internal"
	"github.com/caner-cetin/amws-order/internal/address"
	"github.com/caner-cetin/amws-order/internal/settings"
	"github.com/caner-cetin/amws-order/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

type showSettingsConfig struct {
	Output string
}

type setSettingsConfig struct {
	ConvertStates  bool
	BillingProfile bool
	BillingSource  string
	Address        address.Address
	Cron           bool
	CronLimit      string
}

type importSettingsConfig struct {
	Input string
	Merge bool
}

type resetSettingsConfig struct {
	Yes bool
}

var (
	storeResources = ResourceConfig{Resources: []ResourceType{ResourceStore}}

	showSettingsCmd = &cobra.Command{
		Use:   "show",
		Short: "print the current settings",
		Run:   WrapCommandWithResources(showSettings, storeResources),
	}
	showSettingsCfg showSettingsConfig
	setSettingsCmd  = &cobra.Command{
		Use:   "set",
		Short: "change settings with flags, every flag left out keeps its current value",
		Run:   WrapCommandWithResources(setSettings, storeResources),
	}
	setSettingsCfg    setSettingsConfig
	importSettingsCmd = &cobra.Command{
		Use:   "import",
		Short: "submit a json document of raw form values",
		Run:   WrapCommandWithResources(importSettings, storeResources),
	}
	importSettingsCfg importSettingsConfig
	resetSettingsCmd  = &cobra.Command{
		Use:   "reset",
		Short: "turn every setting off",
		Run:   WrapCommandWithResources(resetSettings, storeResources),
	}
	resetSettingsCfg resetSettingsConfig

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "order import settings",
	}
)

// addressFlags binds the custom billing address flags, flag name -> field.
var addressFlags = []struct {
	name  string
	usage string
	field func(a *address.Address) *string
}{
	{"address-country", "country code in two-character ISO 3166-1 alpha-2 format", func(a *address.Address) *string { return &a.CountryCode }},
	{"address-area", "state or province", func(a *address.Address) *string { return &a.AdministrativeArea }},
	{"address-locality", "city", func(a *address.Address) *string { return &a.Locality }},
	{"address-postal-code", "postal code", func(a *address.Address) *string { return &a.PostalCode }},
	{"address-line1", "street address", func(a *address.Address) *string { return &a.AddressLine1 }},
	{"address-line2", "additional street address information", func(a *address.Address) *string { return &a.AddressLine2 }},
	{"address-organization", "name of the business", func(a *address.Address) *string { return &a.Organization }},
	{"address-given-name", "given name of the contact", func(a *address.Address) *string { return &a.GivenName }},
	{"address-family-name", "family name of the contact", func(a *address.Address) *string { return &a.FamilyName }},
}

func getSettingsCmd() *cobra.Command {
	showSettingsCmd.PersistentFlags().StringVarP(&showSettingsCfg.Output, "output", "o", "", "output format (yaml), optional, settings will be pretty printed if not given")

	flags := setSettingsCmd.PersistentFlags()
	flags.BoolVar(&setSettingsCfg.ConvertStates, "convert-states", false, "convert full US state names in shipping addresses to their 2-digit codes")
	flags.BoolVar(&setSettingsCfg.BillingProfile, "billing-profile", false, "add a billing profile to imported orders")
	flags.StringVar(&setSettingsCfg.BillingSource, "billing-source", "", "billing profile source (shipping_information, custom)")
	for _, f := range addressFlags {
		flags.StringVar(f.field(&setSettingsCfg.Address), f.name, "", "custom billing address: "+f.usage)
	}
	flags.BoolVar(&setSettingsCfg.Cron, "cron", false, "import orders during cron")
	flags.StringVar(&setSettingsCfg.CronLimit, "cron-limit", "", "limit number of orders imported per cron run, empty or 0 imports all")

	importSettingsCmd.PersistentFlags().StringVarP(&importSettingsCfg.Input, "input", "i", "", "submission JSON file, - for stdin")
	importSettingsCmd.MarkPersistentFlagRequired("input")
	importSettingsCmd.PersistentFlags().BoolVar(&importSettingsCfg.Merge, "merge", false, "fields missing from the document keep their current value")

	resetSettingsCmd.PersistentFlags().BoolVarP(&resetSettingsCfg.Yes, "yes", "y", false, "do not ask for confirmation")

	settingsCmd.AddCommand(showSettingsCmd)
	settingsCmd.AddCommand(setSettingsCmd)
	settingsCmd.AddCommand(getEditSettingsCmd())
	settingsCmd.AddCommand(importSettingsCmd)
	settingsCmd.AddCommand(resetSettingsCmd)
	return settingsCmd
}

func showSettings(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)
	record := app.Form.Defaults()
	switch showSettingsCfg.Output {
	case "":
		fmt.Print(renderSettings(record))
		if loc := storeLocation(app.Store); loc != "" {
			fmt.Println(unsetStyle.Render("stored in " + loc))
		}
	case "yaml":
		yamlData, err := yaml.Marshal(record)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to marshal settings to yaml")
		}
		fmt.Print(string(yamlData))
	default:
		log.Fatal().Str("output", showSettingsCfg.Output).Msg("unknown output format")
	}
}

// storeLocation is the path of a file backed store, empty for other backends.
func storeLocation(st store.Store) string {
	if f, ok := st.(*store.File); ok {
		return f.Path()
	}
	return ""
}

func setSettings(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)
	raw := applySetFlags(app.Form.Defaults().Raw(), setSettingsCfg, cmd.Flags().Changed)
	submitSettings(cmd, app, raw)
}

// applySetFlags overlays the flags the user actually passed on raw.
func applySetFlags(raw settings.RawInput, c setSettingsConfig, changed func(name string) bool) settings.RawInput {
	if changed("convert-states") {
		raw[settings.FieldAddressConvertStates] = c.ConvertStates
	}
	if changed("billing-profile") {
		raw[settings.FieldBillingProfileStatus] = c.BillingProfile
	}
	if changed("billing-source") {
		raw[settings.FieldBillingProfileSource] = c.BillingSource
	}
	var addr address.Address
	switch current := raw[settings.FieldCustomAddress].(type) {
	case address.Address:
		addr = current
	case *address.Address:
		if current != nil {
			addr = *current
		}
	}
	var addressChanged bool
	for _, f := range addressFlags {
		if changed(f.name) {
			src := c.Address
			*f.field(&addr) = *f.field(&src)
			addressChanged = true
		}
	}
	if addressChanged {
		raw[settings.FieldCustomAddress] = addr
	}
	if changed("cron") {
		raw[settings.FieldCronStatus] = c.Cron
	}
	if changed("cron-limit") {
		raw[settings.FieldCronLimit] = c.CronLimit
	}
	return raw
}

func importSettings(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)
	data, err := internal.ReadFile(importSettingsCfg.Input)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	submitted, err := settings.ParseRawJSON(data)
	if err != nil {
		log.Fatal().Err(err).Str("path", importSettingsCfg.Input).Send()
	}
	raw := submitted
	if importSettingsCfg.Merge {
		raw = app.Form.Defaults().Raw()
		for k, v := range submitted {
			raw[k] = v
		}
	}
	log.Debug().Int("fields", len(submitted)).Bool("merge", importSettingsCfg.Merge).Msg("parsed submission")
	submitSettings(cmd, app, raw)
}

func resetSettings(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)
	if !resetSettingsCfg.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Reset all order import settings?").
			Description("Billing profiles and cron imports will be turned off.").
			Value(&confirmed).
			Run()
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		if !confirmed {
			return
		}
	}
	submitSettings(cmd, app, settings.RawInput{})
}

// submitSettings saves raw and prints the result. Field errors are printed
// next to their field names and exit with status 1.
func submitSettings(cmd *cobra.Command, app AppCtx, raw settings.RawInput) {
	record, err := app.Form.Submit(cmd.Context(), raw)
	var verrs settings.ValidationErrors
	var perr *settings.PersistenceError
	switch {
	case errors.As(err, &verrs):
		red := color.New(color.FgRed, color.Bold)
		for _, fe := range verrs.Errors() {
			red.Fprintf(os.Stderr, "%s: ", fe.Field)
			fmt.Fprintln(os.Stderr, fe.Message)
		}
		os.Exit(1)
	case errors.As(err, &perr):
		log.Fatal().Err(perr.Err).Msg("failed to save settings")
	case err != nil:
		log.Fatal().Err(err).Send()
	}
	fmt.Print(renderSettings(record))
}

var (
	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)
	labelStyle = lipgloss.NewStyle().
			Width(34)
	unsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
)

func renderSettings(r settings.Record) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(label) + value + "\n")
	}
	onOff := func(v bool) string {
		if v {
			return "enabled"
		}
		return "disabled"
	}

	b.WriteString(groupStyle.Render("General import settings") + "\n")
	row("Convert US states to 2-digit codes", onOff(r.General.AddressConvertStates))

	b.WriteString(groupStyle.Render("Billing profile") + "\n")
	row("Add a billing profile", onOff(r.BillingProfile.Status))
	if r.BillingProfile.Source != nil {
		row("Source", string(*r.BillingProfile.Source))
	}
	if r.BillingProfile.CustomAddress != nil {
		addr := unsetStyle.Render("empty")
		if !r.BillingProfile.CustomAddress.IsZero() {
			addr = r.BillingProfile.CustomAddress.String()
		}
		row("Custom address", addr)
	}

	b.WriteString(groupStyle.Render("Cron") + "\n")
	row("Import orders during cron", onOff(r.Cron.Status))
	if r.Cron.Status {
		limit := unsetStyle.Render("unlimited")
		if r.Cron.Limit != nil {
			limit = strconv.Itoa(*r.Cron.Limit)
		}
		row("Orders per run", limit)
	}
	return b.String()
}
