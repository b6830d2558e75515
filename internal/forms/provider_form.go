package forms

import (
	"context"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// ProviderAPI is the slice of the providers service the form needs
type ProviderAPI interface {
	Create(ctx context.Context, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error)
	Update(ctx context.Context, id string, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error)
}

// RegionLookup resolves a pin code to its derived region fields
type RegionLookup interface {
	Lookup(ctx context.Context, pincode string) (*types.PincodeRegion, error)
}

// ProviderForm is the add/edit healthcare provider modal controller.
// City and state are derived from the pin code lookup and are not
// independently editable.
type ProviderForm struct {
	submitState

	service ProviderAPI
	pincode RegionLookup
	logger  *logger.Logger
	mode    Mode
	id      string
	draft   types.HealthcareProvider

	derivedCity  string
	derivedState string
	lookupErr    string
}

// NewProviderForm creates a provider form. A non-nil initial puts the
// form in edit mode; its address seeds the derived region fields.
func NewProviderForm(service ProviderAPI, pincode RegionLookup, initial *types.HealthcareProvider, log *logger.Logger) *ProviderForm {
	form := &ProviderForm{
		service: service,
		pincode: pincode,
		logger:  log,
		mode:    ModeCreate,
	}
	if initial != nil {
		form.mode = ModeEdit
		form.id = initial.ID
		form.draft = *initial
		if initial.Address != nil {
			form.derivedCity = initial.Address.City
			form.derivedState = initial.Address.State
		}
	}
	if form.draft.OperationHours == nil {
		form.draft.OperationHours = types.NewOperationHours()
	}
	return form
}

// Mode returns whether the form creates or edits
func (f *ProviderForm) Mode() Mode {
	return f.mode
}

// Draft returns the mutable draft provider
func (f *ProviderForm) Draft() *types.HealthcareProvider {
	return &f.draft
}

// City returns the derived, read-only city field
func (f *ProviderForm) City() string {
	return f.derivedCity
}

// State returns the derived, read-only state field
func (f *ProviderForm) State() string {
	return f.derivedState
}

// LookupError returns the message from the last failed pincode lookup
func (f *ProviderForm) LookupError() string {
	return f.lookupErr
}

// SetPinCode records the entered pin code. A code of exactly 6 digits
// triggers the region lookup and pre-fills the derived city and state;
// anything shorter clears them.
func (f *ProviderForm) SetPinCode(ctx context.Context, code string) {
	if f.draft.Address == nil {
		f.draft.Address = &types.Address{}
	}
	f.draft.Address.PinCode = code
	f.derivedCity = ""
	f.derivedState = ""
	f.lookupErr = ""
	f.draft.Address.City = ""
	f.draft.Address.State = ""
	f.draft.Address.Region = ""

	if len(code) != 6 {
		return
	}

	region, err := f.pincode.Lookup(ctx, code)
	if err != nil {
		f.lookupErr = messageOf(err)
		return
	}

	f.derivedCity = region.City
	f.derivedState = region.State
	f.draft.Address.City = region.City
	f.draft.Address.State = region.State
	f.draft.Address.Region = region.Region
}

// SetOperationHours replaces one weekday's time ranges. Unknown
// weekdays are ignored.
func (f *ProviderForm) SetOperationHours(day string, ranges []string) {
	if _, ok := f.draft.OperationHours[day]; ok {
		f.draft.OperationHours[day] = ranges
	}
}

// Validate performs field-level required-value validation
func (f *ProviderForm) Validate() FieldErrors {
	errs := FieldErrors{}
	d := &f.draft

	if d.Name == "" {
		errs["name"] = "Facility name is required."
	}
	switch d.Type {
	case types.ProviderHospital, types.ProviderClinic, types.ProviderPharmacy, types.ProviderLaboratory:
	default:
		errs["type"] = "Select a facility type."
	}
	if d.Phone != "" && !ValidPhone(d.Phone) {
		errs["phone"] = "Enter a valid 10-digit phone number."
	}
	if d.Address == nil || d.Address.Line1 == "" {
		errs["address"] = "Address line 1 is required."
	} else {
		if len(d.Address.PinCode) != 6 {
			errs["pinCode"] = "Pin code must be exactly 6 digits."
		} else if f.derivedCity == "" || f.derivedState == "" {
			errs["pinCode"] = "Pin code could not be resolved to a city and state."
		}
	}

	return errs
}

// Submit validates and persists the draft with the shared single-flight
// and callback guarantees
func (f *ProviderForm) Submit(ctx context.Context, onSubmit func(*types.HealthcareProvider), onClose func()) error {
	if errs := f.Validate(); !errs.Empty() {
		return types.NewValidationError(0, errs.First(), nil)
	}

	if !f.begin() {
		return ErrSubmitInFlight
	}
	defer f.end()

	var result *types.Result[*types.HealthcareProvider]
	var err error
	if f.mode == ModeEdit {
		result, err = f.service.Update(ctx, f.id, &f.draft)
	} else {
		result, err = f.service.Create(ctx, &f.draft)
	}
	if err != nil {
		f.setServerError(messageOf(err))
		return err
	}

	if onSubmit != nil {
		onSubmit(result.Data)
	}
	if onClose != nil {
		onClose()
	}
	return nil
}
