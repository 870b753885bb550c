package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/caner-cetin/amws-order/internal/address"
	"github.com/caner-cetin/amws-order/internal/settings"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var editSettingsCmd = &cobra.Command{
	Use:   "edit",
	Short: "edit the settings interactively",
	Run:   WrapCommandWithResources(editSettings, storeResources),
}

func getEditSettingsCmd() *cobra.Command {
	return editSettingsCmd
}

// editValues are the form widget values, bound to the huh fields.
type editValues struct {
	ConvertStates  bool
	BillingProfile bool
	BillingSource  string
	Address        address.Address
	Cron           bool
	CronLimit      string
}

func newEditValues(r settings.Record) editValues {
	v := editValues{
		ConvertStates:  r.General.AddressConvertStates,
		BillingProfile: r.BillingProfile.Status,
		BillingSource:  string(settings.SourceShippingInformation),
		Cron:           r.Cron.Status,
	}
	if r.BillingProfile.Source != nil {
		v.BillingSource = string(*r.BillingProfile.Source)
	}
	if r.BillingProfile.CustomAddress != nil {
		v.Address = *r.BillingProfile.CustomAddress
	}
	if r.Cron.Limit != nil {
		v.CronLimit = strconv.Itoa(*r.Cron.Limit)
	}
	return v
}

// raw submits every widget, hidden or not, the same way a browser does.
func (v editValues) raw() settings.RawInput {
	return settings.RawInput{
		settings.FieldAddressConvertStates: v.ConvertStates,
		settings.FieldBillingProfileStatus: v.BillingProfile,
		settings.FieldBillingProfileSource: v.BillingSource,
		settings.FieldCustomAddress:        v.Address,
		settings.FieldCronStatus:           v.Cron,
		settings.FieldCronLimit:            v.CronLimit,
	}
}

func (v *editValues) hideSource() bool {
	return !v.BillingProfile
}

func (v *editValues) hideAddress() bool {
	return v.hideSource() || v.BillingSource != string(settings.SourceCustom)
}

func (v *editValues) hideCronLimit() bool {
	return !v.Cron
}

func buildEditForm(v *editValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("General import settings"),
			huh.NewConfirm().
				Title("Convert US states to their 2-digit codes").
				Description("Amazon usually provides the state of US shipping addresses with its 2-digit code,\n"+
					"but sometimes the full name comes through instead, e.g. NEW MEXICO instead of NM.\n"+
					"When enabled, full state names are converted before addresses are stored.").
				Value(&v.ConvertStates),
		),

		huh.NewGroup(
			huh.NewNote().
				Title("Billing profile"),
			huh.NewConfirm().
				Title("Add a billing profile to the order").
				Value(&v.BillingProfile),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Billing profile source").
				Description("Amazon does not provide detailed billing information for its orders.\n"+
					"Use the shipping information, or enter one billing address used for all orders.").
				Options(
					huh.NewOption("Shipping information", string(settings.SourceShippingInformation)),
					huh.NewOption("Custom information", string(settings.SourceCustom)),
				).
				Value(&v.BillingSource),
		).WithHideFunc(v.hideSource),

		huh.NewGroup(
			huh.NewInput().
				Title("Country Code").
				Description("Two-letter country code").
				Value(&v.Address.CountryCode).
				Placeholder("US"),
			huh.NewInput().
				Title("Company Name").
				Description("Business name (optional)").
				Value(&v.Address.Organization),
			huh.NewInput().
				Title("Given Name").
				Value(&v.Address.GivenName),
			huh.NewInput().
				Title("Family Name").
				Value(&v.Address.FamilyName),
			huh.NewInput().
				Title("Address Line 1").
				Description("Street address").
				Value(&v.Address.AddressLine1),
			huh.NewInput().
				Title("Address Line 2").
				Description("Apartment, suite, etc. (optional)").
				Value(&v.Address.AddressLine2),
			huh.NewInput().
				Title("City").
				Value(&v.Address.Locality),
			huh.NewInput().
				Title("State/Province").
				Value(&v.Address.AdministrativeArea),
			huh.NewInput().
				Title("Postal Code").
				Value(&v.Address.PostalCode),
		).WithHideFunc(v.hideAddress),

		huh.NewGroup(
			huh.NewNote().
				Title("Cron"),
			huh.NewConfirm().
				Title("Enable importing orders during cron").
				Value(&v.Cron),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Limit number of orders to import").
				Description("Limits the orders imported during each cron run.\n"+
					"Leave empty to import all orders provided by Amazon MWS.").
				Value(&v.CronLimit).
				Validate(settings.ValidateCronLimit),
		).WithHideFunc(v.hideCronLimit),
	)
}

func editSettings(cmd *cobra.Command, args []string) {
	app := GetApp(cmd)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		MarginBottom(1)
	fmt.Printf("%s\n", headerStyle.Render("Amazon MWS order settings"))

	values := newEditValues(app.Form.Defaults())
	if err := buildEditForm(&values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			log.Warn().Msg("aborted, settings left unchanged")
			return
		}
		log.Fatal().Err(err).Msg("failed to run settings form")
	}
	submitSettings(cmd, app, values.raw())
}
