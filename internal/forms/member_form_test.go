package forms

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// memberAPIStub counts mutation calls and can block to simulate a slow
// backend
type memberAPIStub struct {
	mu          sync.Mutex
	createCalls int
	updateCalls int
	lastUpdate  string
	block       chan struct{}
	err         error
}

func (s *memberAPIStub) Create(ctx context.Context, member *types.Member) (*types.Result[*types.Member], error) {
	s.mu.Lock()
	s.createCalls++
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	if s.err != nil {
		return nil, s.err
	}
	created := *member
	created.ID = "m-created"
	return &types.Result[*types.Member]{Status: types.StatusSuccess, Data: &created}, nil
}

func (s *memberAPIStub) Update(ctx context.Context, id string, member *types.Member) (*types.Result[*types.Member], error) {
	s.mu.Lock()
	s.updateCalls++
	s.lastUpdate = id
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	updated := *member
	return &types.Result[*types.Member]{Status: types.StatusSuccess, Data: &updated}, nil
}

func (s *memberAPIStub) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls + s.updateCalls
}

func validMemberDraft(draft *types.Member) {
	draft.FirstName = "Asha"
	draft.LastName = "Rao"
	draft.Email = "asha.rao@example.com"
	draft.Phone = "9876543210"
	draft.DateOfBirth = "1990-04-12"
	draft.Gender = types.GenderFemale
}

func TestMemberForm_ValidationBlocksSubmit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*types.Member)
		field string
	}{
		{"missing name", func(d *types.Member) { d.FirstName = "" }, "firstName"},
		{"bad email", func(d *types.Member) { d.Email = "not-an-email" }, "email"},
		{"short phone", func(d *types.Member) { d.Phone = "12345" }, "phone"},
		{"missing dob", func(d *types.Member) { d.DateOfBirth = "" }, "dob"},
		{"bad gender", func(d *types.Member) { d.Gender = "unknown" }, "gender"},
		{"subprofile without primary", func(d *types.Member) {
			d.IsSubprofile = true
			d.PrimaryMemberID = ""
		}, "primaryMemberId"},
		{"student without school", func(d *types.Member) {
			d.IsStudent = true
			d.StudentDetails = nil
		}, "schoolId"},
		{"partial emergency contact", func(d *types.Member) {
			d.EmergencyContact = &types.EmergencyContact{Name: "Ravi"}
		}, "emergencyContact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &memberAPIStub{}
			form := NewMemberForm(api, nil, logger.New("debug"))
			validMemberDraft(form.Draft())
			tt.setup(form.Draft())

			errs := form.Validate()
			assert.Contains(t, errs, tt.field)

			err := form.Submit(context.Background(), nil, nil)
			require.Error(t, err)
			assert.Zero(t, api.calls(), "invalid draft must not reach the network")
		})
	}
}

func TestMemberForm_PhoneAcceptsCountryPrefix(t *testing.T) {
	api := &memberAPIStub{}
	form := NewMemberForm(api, nil, logger.New("debug"))
	validMemberDraft(form.Draft())
	form.Draft().Phone = "+91 98765 43210"

	assert.NotContains(t, form.Validate(), "phone")
}

func TestMemberForm_CreateFiresCallbacksOnce(t *testing.T) {
	api := &memberAPIStub{}
	form := NewMemberForm(api, nil, logger.New("debug"))
	validMemberDraft(form.Draft())

	var submitted *types.Member
	submits, closes := 0, 0
	err := form.Submit(context.Background(), func(m *types.Member) {
		submitted = m
		submits++
	}, func() {
		closes++
	})

	require.NoError(t, err)
	assert.Equal(t, 1, submits)
	assert.Equal(t, 1, closes)
	require.NotNil(t, submitted)
	assert.Equal(t, "m-created", submitted.ID, "callback receives the server-confirmed record")
	assert.Equal(t, 1, api.createCalls)
	assert.False(t, form.Submitting())
}

func TestMemberForm_EditModeUpdatesByID(t *testing.T) {
	api := &memberAPIStub{}
	initial := &types.Member{ID: "m-7"}
	validMemberDraft(initial)
	form := NewMemberForm(api, initial, logger.New("debug"))

	require.Equal(t, ModeEdit, form.Mode())
	require.NoError(t, form.Submit(context.Background(), nil, nil))
	assert.Equal(t, 1, api.updateCalls)
	assert.Zero(t, api.createCalls)
	assert.Equal(t, "m-7", api.lastUpdate)
}

func TestMemberForm_DoubleSubmitRunsOneMutation(t *testing.T) {
	api := &memberAPIStub{block: make(chan struct{})}
	form := NewMemberForm(api, nil, logger.New("debug"))
	validMemberDraft(form.Draft())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- form.Submit(context.Background(), nil, nil)
	}()

	// Wait for the first submit to reach the backend, then click again.
	require.Eventually(t, form.Submitting, 2*time.Second, time.Millisecond)

	err := form.Submit(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(api.block)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, api.calls(), "second click must not issue a second mutation")
}

func TestMemberForm_ServerErrorKeepsDraft(t *testing.T) {
	api := &memberAPIStub{err: types.NewValidationError(409, "Email already registered", nil)}
	form := NewMemberForm(api, nil, logger.New("debug"))
	validMemberDraft(form.Draft())

	closes := 0
	err := form.Submit(context.Background(), nil, func() { closes++ })

	require.Error(t, err)
	assert.Zero(t, closes, "modal stays open on failure")
	assert.Equal(t, "Email already registered", form.ServerError())
	assert.Equal(t, "Asha", form.Draft().FirstName, "draft survives the failed submit")
	assert.False(t, form.Submitting(), "submit gate is released for a retry")
}
