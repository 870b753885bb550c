package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/caner-cetin/amws-order/internal"
	"github.com/caner-cetin/amws-order/internal/address"
)

// Validate checks a raw submission. The returned map is empty when the input
// is valid, otherwise it maps each offending field to its message.
func Validate(raw RawInput) ValidationErrors {
	errs := ValidationErrors{}
	if v, ok := raw[FieldCronLimit]; ok {
		if _, valid := cronLimit(v); !valid {
			errs[FieldCronLimit] = CronLimitMessage
		}
	}
	if v, ok := raw[FieldBillingProfileSource]; ok && v != nil {
		s, isString := v.(string)
		if !isString || (s != "" && !Source(s).Valid()) {
			errs[FieldBillingProfileSource] = SourceMessage
		}
	}
	if v, ok := raw[FieldCustomAddress]; ok {
		if _, err := decodeAddress(v); err != nil {
			errs[FieldCustomAddress] = CustomAddressMessage
		}
	}
	return errs
}

// ValidateCronLimit validates a cron limit typed into a text input.
func ValidateCronLimit(s string) error {
	return Validate(RawInput{FieldCronLimit: s}).Field(FieldCronLimit)
}

// Normalize derives the settings record from a raw submission. Every dependent
// field is recomputed from its governing flag, nothing is carried over from
// earlier submissions. The input must have passed Validate.
func Normalize(raw RawInput) Record {
	var r Record
	r.General.AddressConvertStates = truthy(raw[FieldAddressConvertStates])

	r.BillingProfile.Status = truthy(raw[FieldBillingProfileStatus])
	if r.BillingProfile.Status {
		if s, _ := raw[FieldBillingProfileSource].(string); s != "" {
			r.BillingProfile.Source = internal.Ptr(Source(s))
		}
	}
	if r.BillingProfile.Source != nil && *r.BillingProfile.Source == SourceCustom {
		// decode errors are caught by Validate
		r.BillingProfile.CustomAddress, _ = decodeAddress(raw[FieldCustomAddress])
	}

	r.Cron.Status = truthy(raw[FieldCronStatus])
	// empty and zero both mean import everything
	if r.Cron.Status {
		if n, valid := cronLimit(raw[FieldCronLimit]); valid && n > 0 {
			r.Cron.Limit = internal.Ptr(n)
		}
	}
	return r
}

// truthy follows checkbox semantics: "", "0" and anything strconv reads as
// false are unchecked.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		if val == "" || val == "0" {
			return false
		}
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		return true
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// cronLimit parses a raw cron limit. Absent and empty values are valid and
// yield 0. Strings must be decimal digits only, without sign or whitespace.
func cronLimit(v any) (int, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return 0, true
	case string:
		s = val
	case json.Number:
		s = val.String()
	case int:
		return val, val >= 0
	case int64:
		if val < 0 || val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case float64:
		if val < 0 || val >= 1<<(strconv.IntSize-1) || val != math.Trunc(val) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
	if s == "" {
		return 0, true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// all digits, so the only way out is overflow
		return 0, false
	}
	return n, true
}

func decodeAddress(v any) (*address.Address, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case address.Address:
		return &val, nil
	case *address.Address:
		if val == nil {
			return nil, nil
		}
		a := *val
		return &a, nil
	case map[string]any:
		a, err := address.FromMap(val)
		if err != nil {
			return nil, err
		}
		return &a, nil
	case map[string]string:
		a, err := address.FromStringMap(val)
		if err != nil {
			return nil, err
		}
		return &a, nil
	default:
		return nil, fmt.Errorf("unsupported address value %T", v)
	}
}
