package forms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

type appointmentAPIStub struct {
	createCalls int
	updateCalls int
}

func (s *appointmentAPIStub) Create(ctx context.Context, apt *types.Appointment) (*types.Result[*types.Appointment], error) {
	s.createCalls++
	created := *apt
	created.ID = "apt-created"
	return &types.Result[*types.Appointment]{Status: types.StatusSuccess, Data: &created}, nil
}

func (s *appointmentAPIStub) Update(ctx context.Context, id string, apt *types.Appointment) (*types.Result[*types.Appointment], error) {
	s.updateCalls++
	updated := *apt
	return &types.Result[*types.Appointment]{Status: types.StatusSuccess, Data: &updated}, nil
}

func validAppointmentDraft(draft *types.Appointment) {
	when := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	draft.MemberID = "m-1"
	draft.DoctorID = "doc-1"
	draft.Specializations = []string{"Cardiology"}
	draft.Service = "consultation"
	draft.DateTime = &when
}

func TestAppointmentForm_DoctorSelectionIsExclusive(t *testing.T) {
	form := NewAppointmentForm(&appointmentAPIStub{}, nil, logger.New("debug"))

	form.SetDoctor("doc-1", []string{"Cardiology", "Internal Medicine"})
	assert.Equal(t, "doc-1", form.Draft().DoctorID)
	assert.Equal(t, []string{"Cardiology", "Internal Medicine"}, form.Draft().Specializations)

	form.SetCustomDoctor("Dr. Mehta")
	assert.Empty(t, form.Draft().DoctorID)
	assert.Equal(t, "Dr. Mehta", form.Draft().CustomDoctorName)
	assert.Nil(t, form.Draft().Specializations, "catalog specializations are cleared with the doctor")

	form.SetDoctor("doc-2", []string{"Orthopedics"})
	assert.Empty(t, form.Draft().CustomDoctorName)
	assert.Empty(t, form.Draft().CustomSpecialization)
}

func TestAppointmentForm_CustomDoctorNeedsSpecialization(t *testing.T) {
	form := NewAppointmentForm(&appointmentAPIStub{}, nil, logger.New("debug"))
	validAppointmentDraft(form.Draft())

	form.SetCustomDoctor("Dr. Mehta")
	assert.Contains(t, form.Validate(), "specialization")
	assert.False(t, form.CanSubmit())

	form.SetCustomSpecialization("Dermatology")
	assert.Empty(t, form.Validate())
	assert.True(t, form.CanSubmit())
}

func TestAppointmentForm_ValidationBlocksSubmit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*types.Appointment)
		field string
	}{
		{"missing member", func(d *types.Appointment) { d.MemberID = "" }, "memberId"},
		{"no doctor at all", func(d *types.Appointment) {
			d.DoctorID = ""
			d.CustomDoctorName = ""
		}, "doctor"},
		{"no service", func(d *types.Appointment) {
			d.Service = ""
			d.CustomService = ""
		}, "service"},
		{"no date", func(d *types.Appointment) { d.DateTime = nil }, "appointmentDateTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &appointmentAPIStub{}
			form := NewAppointmentForm(api, nil, logger.New("debug"))
			validAppointmentDraft(form.Draft())
			tt.setup(form.Draft())

			assert.Contains(t, form.Validate(), tt.field)
			require.Error(t, form.Submit(context.Background(), nil, nil))
			assert.Zero(t, api.createCalls+api.updateCalls)
		})
	}
}

func TestAppointmentForm_CompletedAppointmentRejected(t *testing.T) {
	api := &appointmentAPIStub{}
	initial := &types.Appointment{ID: "apt-1", Status: types.AppointmentCompleted}
	validAppointmentDraft(initial)
	form := NewAppointmentForm(api, initial, logger.New("debug"))

	err := form.Submit(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Zero(t, api.updateCalls, "immutable appointment must not reach the network")
}

func TestAppointmentForm_CreateSucceeds(t *testing.T) {
	api := &appointmentAPIStub{}
	form := NewAppointmentForm(api, nil, logger.New("debug"))
	validAppointmentDraft(form.Draft())

	var submitted *types.Appointment
	err := form.Submit(context.Background(), func(a *types.Appointment) { submitted = a }, nil)

	require.NoError(t, err)
	require.NotNil(t, submitted)
	assert.Equal(t, "apt-created", submitted.ID)
	assert.Equal(t, 1, api.createCalls)
}
