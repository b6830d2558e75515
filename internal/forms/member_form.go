package forms

import (
	"context"
	"errors"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// ErrSubmitInFlight is returned when submit is clicked while a previous
// submit is still running
var ErrSubmitInFlight = errors.New("submit already in flight")

// MemberAPI is the slice of the members service the form needs
type MemberAPI interface {
	Create(ctx context.Context, member *types.Member) (*types.Result[*types.Member], error)
	Update(ctx context.Context, id string, member *types.Member) (*types.Result[*types.Member], error)
}

// MemberForm is the add/edit member modal controller. It holds a single
// draft, validates required fields before submit, and guarantees
// exactly one mutation call per user action.
type MemberForm struct {
	submitState

	service MemberAPI
	logger  *logger.Logger
	mode    Mode
	id      string
	draft   types.Member
}

// NewMemberForm creates a member form. A non-nil initial puts the form
// in edit mode with the draft seeded from the existing member.
func NewMemberForm(service MemberAPI, initial *types.Member, log *logger.Logger) *MemberForm {
	form := &MemberForm{
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
func (f *MemberForm) Mode() Mode {
	return f.mode
}

// Draft returns the mutable draft member
func (f *MemberForm) Draft() *types.Member {
	return &f.draft
}

// Validate performs field-level required-value validation
func (f *MemberForm) Validate() FieldErrors {
	errs := FieldErrors{}
	d := &f.draft

	if d.FirstName == "" {
		errs["firstName"] = "Name is required."
	}
	if d.Email == "" {
		errs["email"] = "Email is required."
	} else if !ValidEmail(d.Email) {
		errs["email"] = "Enter a valid email address."
	}
	if d.Phone == "" {
		errs["phone"] = "Phone number is required."
	} else if !ValidPhone(d.Phone) {
		errs["phone"] = "Enter a valid 10-digit phone number."
	}
	if d.DateOfBirth == "" {
		errs["dob"] = "Date of birth is required."
	}
	switch d.Gender {
	case types.GenderMale, types.GenderFemale, types.GenderOther:
	default:
		errs["gender"] = "Select a gender."
	}

	if d.EmergencyContact != nil && *d.EmergencyContact != (types.EmergencyContact{}) {
		contact := d.EmergencyContact
		if contact.Name == "" || contact.Phone == "" || contact.Relationship == "" {
			errs["emergencyContact"] = "Emergency contact needs a name, phone and relationship."
		} else if !ValidPhone(contact.Phone) {
			errs["emergencyContact"] = "Enter a valid emergency contact phone number."
		}
	}

	if d.IsSubprofile && d.PrimaryMemberID == "" {
		errs["primaryMemberId"] = "Select the primary member this subprofile belongs to."
	}
	if d.IsStudent && (d.StudentDetails == nil || d.StudentDetails.SchoolID == "") {
		errs["schoolId"] = "Select the student's school."
	}

	return errs
}

// Submit validates and persists the draft. On success onSubmit receives
// the server-confirmed member, then onClose fires; neither is ever
// called twice for one user action. On failure the modal stays open
// with the draft intact and ServerError set.
func (f *MemberForm) Submit(ctx context.Context, onSubmit func(*types.Member), onClose func()) error {
	if errs := f.Validate(); !errs.Empty() {
		return types.NewValidationError(0, errs.First(), nil)
	}

	if !f.begin() {
		return ErrSubmitInFlight
	}
	defer f.end()

	var result *types.Result[*types.Member]
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

// messageOf extracts the human-readable message from a service error
func messageOf(err error) string {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
