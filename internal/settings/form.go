package settings

import (
	"context"

	"github.com/caner-cetin/amws-order/internal/store"
	"github.com/rs/zerolog/log"
)

// storeFields pairs every configuration key with the form field it is edited by.
var storeFields = map[string]string{
	KeyAddressConvertStates: FieldAddressConvertStates,
	KeyBillingProfileStatus: FieldBillingProfileStatus,
	KeyBillingProfileSource: FieldBillingProfileSource,
	KeyCustomAddress:        FieldCustomAddress,
	KeyCronStatus:           FieldCronStatus,
	KeyCronLimit:            FieldCronLimit,
}

// Load reads the settings record out of the store. Stored values that would
// not pass validation are dropped with a warning, so a hand edited store can
// not produce an inconsistent record.
func Load(st store.Store) Record {
	raw := RawInput{}
	for key, field := range storeFields {
		if v, ok := st.Get(key); ok {
			raw[field] = v
		}
	}
	for _, fe := range Validate(raw).Errors() {
		log.Warn().Str("field", fe.Field).Interface("value", raw[fe.Field]).Msg("ignoring invalid stored setting")
		delete(raw, fe.Field)
	}
	return Normalize(raw)
}

// Form is the settings form: defaults come from the store and valid
// submissions are written back to it.
type Form struct {
	store store.Store
}

func NewForm(st store.Store) *Form {
	return &Form{store: st}
}

// Defaults returns the current settings, used as the default form values.
func (f *Form) Defaults() Record {
	return Load(f.store)
}

// Submit validates raw, normalizes it and replaces the stored settings with
// the result. Validation failures come back as ValidationErrors and leave the
// store untouched; a failed save comes back as *PersistenceError.
func (f *Form) Submit(ctx context.Context, raw RawInput) (Record, error) {
	if errs := Validate(raw); len(errs) > 0 {
		log.Debug().Int("errors", len(errs)).Msg("settings submission rejected")
		return Record{}, errs
	}
	record := Normalize(raw)
	values := record.Values()
	for _, key := range Keys {
		f.store.Set(key, values[key])
	}
	if err := f.store.Save(ctx); err != nil {
		return record, &PersistenceError{Err: err}
	}
	ev := log.Info().
		Bool("convert_states", record.General.AddressConvertStates).
		Bool("billing_profile", record.BillingProfile.Status).
		Bool("cron", record.Cron.Status)
	if record.BillingProfile.Source != nil {
		ev.Str("billing_source", string(*record.BillingProfile.Source))
	}
	if record.Cron.Limit != nil {
		ev.Int("cron_limit", *record.Cron.Limit)
	}
	ev.Msg("saved settings")
	return record, nil
}
