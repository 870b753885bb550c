package settings

import (
	"encoding/json"
	"testing"

	"github.com/caner-cetin/amws-order/internal/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCronLimit(t *testing.T) {
	cases := []struct {
		name  string
		value any
		valid bool
	}{
		{"absent", nil, true},
		{"empty", "", true},
		{"zero", "0", true},
		{"digits", "10", true},
		{"leading zeros", "007", true},
		{"negative", "-5", false},
		{"letters", "abc", false},
		{"decimal", "1.5", false},
		{"plus sign", "+5", false},
		{"padded", " 5 ", false},
		{"overflow", "99999999999999999999999", false},
		{"int", 25, true},
		{"negative int", -1, false},
		{"json number", json.Number("12"), true},
		{"json negative zero", json.Number("-0"), false},
		{"float", 7.0, true},
		{"fractional float", 7.5, false},
		{"float above int range", 1e19, false},
		{"bool", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(RawInput{FieldCronLimit: tc.value})
			if tc.valid {
				assert.Empty(t, errs)
				assert.NoError(t, errs.Field(FieldCronLimit))
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, CronLimitMessage, errs[FieldCronLimit])
		})
	}
}

func TestValidateCronLimitIgnoresCronStatus(t *testing.T) {
	errs := Validate(RawInput{FieldCronStatus: false, FieldCronLimit: "abc"})
	assert.Contains(t, errs, FieldCronLimit)
}

func TestValidateCronLimitString(t *testing.T) {
	assert.NoError(t, ValidateCronLimit(""))
	assert.NoError(t, ValidateCronLimit("42"))

	err := ValidateCronLimit("-5")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldCronLimit, fe.Field)
	assert.Equal(t, CronLimitMessage, fe.Message)
}

func TestValidateBillingProfileSource(t *testing.T) {
	assert.Empty(t, Validate(RawInput{FieldBillingProfileSource: "custom"}))
	assert.Empty(t, Validate(RawInput{FieldBillingProfileSource: "shipping_information"}))
	assert.Empty(t, Validate(RawInput{FieldBillingProfileSource: ""}))
	assert.Empty(t, Validate(RawInput{FieldBillingProfileSource: nil}))

	for _, bad := range []any{"amazon", "CUSTOM", true, 1} {
		errs := Validate(RawInput{FieldBillingProfileSource: bad})
		assert.Equal(t, SourceMessage, errs[FieldBillingProfileSource], "value %v", bad)
	}
}

func TestValidateCustomAddress(t *testing.T) {
	assert.Empty(t, Validate(RawInput{FieldCustomAddress: address.Address{CountryCode: "US"}}))
	assert.Empty(t, Validate(RawInput{FieldCustomAddress: map[string]string{"country": "US"}}))
	assert.Empty(t, Validate(RawInput{FieldCustomAddress: map[string]any{"country_code": "US"}}))

	errs := Validate(RawInput{FieldCustomAddress: "1 Main St"})
	assert.Equal(t, CustomAddressMessage, errs[FieldCustomAddress])
	errs = Validate(RawInput{FieldCustomAddress: map[string]any{"postal_code": 87101}})
	assert.Equal(t, CustomAddressMessage, errs[FieldCustomAddress])
}

func TestValidateCustomAddressConflictingCountry(t *testing.T) {
	raw := RawInput{
		FieldBillingProfileStatus: true,
		FieldBillingProfileSource: "custom",
		FieldCustomAddress:        map[string]any{"country": "US", "country_code": "DE"},
	}
	errs := Validate(raw)
	require.Len(t, errs, 1)
	assert.Equal(t, CustomAddressMessage, errs[FieldCustomAddress])

	raw[FieldCustomAddress] = map[string]string{"country": "US", "country_code": "US"}
	require.Empty(t, Validate(raw))
	for i := 0; i < 50; i++ {
		r := Normalize(raw)
		require.NotNil(t, r.BillingProfile.CustomAddress)
		assert.Equal(t, "US", r.BillingProfile.CustomAddress.CountryCode)
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := Validate(RawInput{FieldCronLimit: "x", FieldBillingProfileSource: "x"})
	require.Len(t, errs, 2)

	fields := errs.Errors()
	assert.Equal(t, FieldBillingProfileSource, fields[0].Field)
	assert.Equal(t, FieldCronLimit, fields[1].Field)
	assert.Equal(t, "invalid settings: "+FieldBillingProfileSource+": "+SourceMessage+"; "+FieldCronLimit+": "+CronLimitMessage, errs.Error())
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{true, "1", "true", "on", 1, json.Number("2")} {
		assert.True(t, truthy(v), "%#v", v)
	}
	for _, v := range []any{nil, false, "", "0", "false", "FALSE", 0, json.Number("0")} {
		assert.False(t, truthy(v), "%#v", v)
	}
}
