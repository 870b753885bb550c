// Package settings holds the order import settings: the raw values a settings
// form submits, the rules that validate them and the normalized record that
// ends up in the configuration store.
package settings

import "github.com/caner-cetin/amws-order/internal/address"

// ConfigName is the name of the configuration object the settings live in.
const ConfigName = "commerce_amws_order.settings"

// Raw input field names, as submitted by the settings form.
const (
	FieldAddressConvertStates = "general_address_convert_states"
	FieldBillingProfileStatus = "billing_profile_status"
	FieldBillingProfileSource = "billing_profile_source"
	FieldCustomAddress        = "billing_profile_custom_address"
	FieldCronStatus           = "cron_status"
	FieldCronLimit            = "cron_limit"
)

// Configuration store keys.
const (
	KeyAddressConvertStates = "general.address_convert_states"
	KeyBillingProfileStatus = "billing_profile.status"
	KeyBillingProfileSource = "billing_profile.source"
	KeyCustomAddress        = "billing_profile.custom_address"
	KeyCronStatus           = "cron.status"
	KeyCronLimit            = "cron.limit"
)

// Keys lists every configuration key in the order they are written.
var Keys = []string{
	KeyAddressConvertStates,
	KeyBillingProfileStatus,
	KeyBillingProfileSource,
	KeyCustomAddress,
	KeyCronStatus,
	KeyCronLimit,
}

// Source is where the billing profile of an imported order comes from.
type Source string

const (
	// SourceShippingInformation copies the shipping address of the order,
	// since Amazon does not provide detailed billing information.
	SourceShippingInformation Source = "shipping_information"
	// SourceCustom uses the same manually entered address for every order.
	SourceCustom Source = "custom"
)

// Sources lists the valid billing profile sources.
var Sources = []Source{SourceShippingInformation, SourceCustom}

func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}

// RawInput maps field names to submitted values: string, bool, integer or
// address. A missing key is an absent value.
type RawInput map[string]any

// Record is the normalized settings record. Nil pointers are absent values.
type Record struct {
	General        General        `yaml:"general" json:"general"`
	BillingProfile BillingProfile `yaml:"billing_profile" json:"billing_profile"`
	Cron           Cron           `yaml:"cron" json:"cron"`
}

type General struct {
	// AddressConvertStates converts full US state names to their 2-digit codes.
	AddressConvertStates bool `yaml:"address_convert_states" json:"address_convert_states"`
}

type BillingProfile struct {
	// Status adds a billing profile to imported orders.
	Status bool `yaml:"status" json:"status"`
	// Source is absent unless Status is set.
	Source *Source `yaml:"source" json:"source"`
	// CustomAddress is absent unless Source is custom.
	CustomAddress *address.Address `yaml:"custom_address" json:"custom_address"`
}

type Cron struct {
	// Status enables importing orders during cron.
	Status bool `yaml:"status" json:"status"`
	// Limit caps the orders imported per cron run. Absent means all of them.
	Limit *int `yaml:"limit" json:"limit"`
}

// Raw re-expresses the record as form input, e.g. to use it as the default
// values of the settings form.
func (r Record) Raw() RawInput {
	raw := RawInput{
		FieldAddressConvertStates: r.General.AddressConvertStates,
		FieldBillingProfileStatus: r.BillingProfile.Status,
		FieldCronStatus:           r.Cron.Status,
	}
	if r.BillingProfile.Source != nil {
		raw[FieldBillingProfileSource] = string(*r.BillingProfile.Source)
	}
	if r.BillingProfile.CustomAddress != nil {
		raw[FieldCustomAddress] = *r.BillingProfile.CustomAddress
	}
	if r.Cron.Limit != nil {
		raw[FieldCronLimit] = *r.Cron.Limit
	}
	return raw
}

// Values returns the record as configuration key/value pairs. Absent fields
// are nil.
func (r Record) Values() map[string]any {
	values := map[string]any{
		KeyAddressConvertStates: r.General.AddressConvertStates,
		KeyBillingProfileStatus: r.BillingProfile.Status,
		KeyBillingProfileSource: nil,
		KeyCustomAddress:        nil,
		KeyCronStatus:           r.Cron.Status,
		KeyCronLimit:            nil,
	}
	if r.BillingProfile.Source != nil {
		values[KeyBillingProfileSource] = string(*r.BillingProfile.Source)
	}
	if r.BillingProfile.CustomAddress != nil {
		values[KeyCustomAddress] = r.BillingProfile.CustomAddress.Map()
	}
	if r.Cron.Limit != nil {
		values[KeyCronLimit] = *r.Cron.Limit
	}
	return values
}

// ImportAddress applies the general import settings to an address coming
// from an Amazon order.
func (r Record) ImportAddress(a address.Address) address.Address {
	if r.General.AddressConvertStates {
		return a.ConvertStates()
	}
	return a
}
