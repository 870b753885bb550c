package address

import (
	"fmt"
	"strings"
)

// Address is a postal address as entered in the custom billing address widget.
// Field names follow the address widget of the settings form.
type Address struct {
	// CountryCode is the country code in two-character ISO 3166-1 alpha-2 format.
	CountryCode string `yaml:"country_code" json:"country_code"`
	// AdministrativeArea is the state or province, e.g. NM.
	AdministrativeArea string `yaml:"administrative_area,omitempty" json:"administrative_area,omitempty"`
	// Locality is... the city.
	Locality          string `yaml:"locality,omitempty" json:"locality,omitempty"`
	DependentLocality string `yaml:"dependent_locality,omitempty" json:"dependent_locality,omitempty"`
	PostalCode        string `yaml:"postal_code,omitempty" json:"postal_code,omitempty"`
	SortingCode       string `yaml:"sorting_code,omitempty" json:"sorting_code,omitempty"`
	AddressLine1      string `yaml:"address_line1,omitempty" json:"address_line1,omitempty"`
	AddressLine2      string `yaml:"address_line2,omitempty" json:"address_line2,omitempty"`
	// Organization is the name of the business.
	Organization   string `yaml:"organization,omitempty" json:"organization,omitempty"`
	GivenName      string `yaml:"given_name,omitempty" json:"given_name,omitempty"`
	AdditionalName string `yaml:"additional_name,omitempty" json:"additional_name,omitempty"`
	FamilyName     string `yaml:"family_name,omitempty" json:"family_name,omitempty"`
}

// fields maps the keys accepted by FromMap to the address fields.
func (a *Address) fields() map[string]*string {
	return map[string]*string{
		"country_code":        &a.CountryCode,
		"country":             &a.CountryCode,
		"administrative_area": &a.AdministrativeArea,
		"locality":            &a.Locality,
		"dependent_locality":  &a.DependentLocality,
		"postal_code":         &a.PostalCode,
		"sorting_code":        &a.SortingCode,
		"address_line1":       &a.AddressLine1,
		"address_line2":       &a.AddressLine2,
		"organization":        &a.Organization,
		"given_name":          &a.GivenName,
		"additional_name":     &a.AdditionalName,
		"family_name":         &a.FamilyName,
	}
}

// FromMap builds an address out of a loosely typed map, as produced by
// YAML/JSON decoding or a raw form submission. Unknown keys and non-string
// values are rejected, so is a "country" alias that disagrees with
// "country_code".
func FromMap(m map[string]any) (Address, error) {
	alias, _ := m["country"].(string)
	code, _ := m["country_code"].(string)
	if alias != "" && code != "" && alias != code {
		return Address{}, fmt.Errorf("conflicting country %q and country_code %q", alias, code)
	}
	var a Address
	fields := a.fields()
	for k, v := range m {
		dst, ok := fields[k]
		if !ok {
			return Address{}, fmt.Errorf("unknown address field %q", k)
		}
		switch val := v.(type) {
		case nil:
		case string:
			if val == "" && dst == &a.CountryCode {
				// an empty alias must not clear the other key
				continue
			}
			*dst = val
		default:
			return Address{}, fmt.Errorf("address field %q must be a string, got %T", k, v)
		}
	}
	return a, nil
}

// FromStringMap is FromMap for maps that are already string typed.
func FromStringMap(m map[string]string) (Address, error) {
	conv := make(map[string]any, len(m))
	for k, v := range m {
		conv[k] = v
	}
	return FromMap(conv)
}

// Map is the inverse of FromMap. Empty fields are left out.
func (a Address) Map() map[string]any {
	out := map[string]any{}
	for k, v := range a.fields() {
		if k == "country" || *v == "" {
			continue
		}
		out[k] = *v
	}
	return out
}

// IsZero reports whether no field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String renders the address on a single line, skipping empty parts.
func (a Address) String() string {
	name := strings.TrimSpace(strings.Join([]string{a.GivenName, a.AdditionalName, a.FamilyName}, " "))
	parts := []string{
		name,
		a.Organization,
		a.AddressLine1,
		a.AddressLine2,
		a.DependentLocality,
		a.Locality,
		strings.TrimSpace(a.AdministrativeArea + " " + a.PostalCode),
		a.CountryCode,
	}
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(strings.Join(strings.Fields(p), " ")); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
