package forms

import (
	"context"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// AppointmentAPI is the slice of the appointments service the form
// needs
type AppointmentAPI interface {
	Create(ctx context.Context, apt *types.Appointment) (*types.Result[*types.Appointment], error)
	Update(ctx context.Context, id string, apt *types.Appointment) (*types.Result[*types.Appointment], error)
}

// AppointmentForm is the add/edit appointment modal controller. The
// doctor is either picked from the directory, carrying its catalog
// specializations, or entered as free text, which requires a custom
// specialization instead.
type AppointmentForm struct {
	submitState

	service AppointmentAPI
	logger  *logger.Logger
	mode    Mode
	id      string
	draft   types.Appointment
}

// NewAppointmentForm creates an appointment form. A non-nil initial
// puts the form in edit mode.
func NewAppointmentForm(service AppointmentAPI, initial *types.Appointment, log *logger.Logger) *AppointmentForm {
	form := &AppointmentForm{
		service: service,
		logger:  log,
		mode:    ModeCreate,
	}
	if initial != nil {
		form.mode = ModeEdit
		form.id = initial.ID
		form.draft = *initial
	}
	return form
}

// Mode returns whether the form creates or edits
func (f *AppointmentForm) Mode() Mode {
	return f.mode
}

// Draft returns the mutable draft appointment
func (f *AppointmentForm) Draft() *types.Appointment {
	return &f.draft
}

// SetDoctor selects a directory doctor, replacing any custom doctor and
// custom specialization with the doctor's catalog specializations
func (f *AppointmentForm) SetDoctor(doctorID string, specializations []string) {
	f.draft.DoctorID = doctorID
	f.draft.CustomDoctorName = ""
	f.draft.CustomSpecialization = ""
	f.draft.Specializations = specializations
}

// SetCustomDoctor switches to a free-text doctor. The previously
// selected catalog specializations are cleared; a custom specialization
// must be provided before submit enables.
func (f *AppointmentForm) SetCustomDoctor(name string) {
	f.draft.DoctorID = ""
	f.draft.CustomDoctorName = name
	f.draft.Specializations = nil
}

// SetCustomSpecialization sets the free-text specialization used with a
// custom doctor
func (f *AppointmentForm) SetCustomSpecialization(spec string) {
	f.draft.CustomSpecialization = spec
}

// CanSubmit reports whether the draft passes validation; the submit
// button stays disabled while false
func (f *AppointmentForm) CanSubmit() bool {
	return f.Validate().Empty() && !f.Submitting()
}

// Validate performs field-level required-value validation
func (f *AppointmentForm) Validate() FieldErrors {
	errs := FieldErrors{}
	d := &f.draft

	if d.MemberID == "" {
		errs["memberId"] = "Select a member."
	}
	if d.DoctorID == "" && d.CustomDoctorName == "" {
		errs["doctor"] = "Select a doctor or enter a custom doctor name."
	}
	if d.CustomDoctorName != "" && d.CustomSpecialization == "" {
		errs["specialization"] = "Enter a specialization for the custom doctor."
	}
	if d.Service == "" && d.CustomService == "" {
		errs["service"] = "Select or enter a service."
	}
	if d.DateTime == nil || d.DateTime.IsZero() {
		errs["appointmentDateTime"] = "Pick the appointment date and time."
	}

	return errs
}

// Submit validates and persists the draft, with the same single-flight
// and callback guarantees as the member form. Completed appointments
// are immutable and rejected before any network call.
func (f *AppointmentForm) Submit(ctx context.Context, onSubmit func(*types.Appointment), onClose func()) error {
	if errs := f.Validate(); !errs.Empty() {
		return types.NewValidationError(0, errs.First(), nil)
	}
	if f.mode == ModeEdit && !f.draft.Mutable() {
		return types.NewValidationError(0, "Completed appointments can no longer be edited.", nil)
	}

	if !f.begin() {
		return ErrSubmitInFlight
	}
	defer f.end()

	var result *types.Result[*types.Appointment]
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
