package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawJSON(t *testing.T) {
	raw, err := ParseRawJSON([]byte(`{
		"general_address_convert_states": true,
		"billing_profile_status": "1",
		"billing_profile_source": "custom",
		"billing_profile_custom_address": {"country_code": "US", "locality": null},
		"cron_status": false,
		"cron_limit": 20,
		"unused": null
	}`))
	require.NoError(t, err)
	assert.Equal(t, RawInput{
		FieldAddressConvertStates: true,
		FieldBillingProfileStatus: "1",
		FieldBillingProfileSource: "custom",
		FieldCustomAddress:        map[string]any{"country_code": "US"},
		FieldCronStatus:           false,
		FieldCronLimit:            20,
	}, raw)
	assert.Empty(t, Validate(raw))
}

func TestParseRawJSONKeepsBadNumbersInvalid(t *testing.T) {
	raw, err := ParseRawJSON([]byte(`{"cron_status": true, "cron_limit": 1.5}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1.5"), raw[FieldCronLimit])
	assert.Contains(t, Validate(raw), FieldCronLimit)

	for _, doc := range []string{`{"cron_limit": -3}`, `{"cron_limit": -0}`, `{"cron_limit": 1e2}`} {
		raw, err = ParseRawJSON([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, CronLimitMessage, Validate(raw)[FieldCronLimit], doc)
	}

	// the string and number spellings of a limit agree
	raw, err = ParseRawJSON([]byte(`{"cron_limit": "-0"}`))
	require.NoError(t, err)
	assert.Contains(t, Validate(raw), FieldCronLimit)
}

func TestParseRawJSONNegativeZeroIsFalse(t *testing.T) {
	raw, err := ParseRawJSON([]byte(`{"cron_status": -0}`))
	require.NoError(t, err)
	assert.False(t, Normalize(raw).Cron.Status)
}

func TestParseRawJSONErrors(t *testing.T) {
	_, err := ParseRawJSON([]byte(`{"cron_status": `))
	assert.Error(t, err)

	_, err = ParseRawJSON([]byte(`[1, 2]`))
	assert.Error(t, err)
}
