package resources

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// MemberResource implements the members resource service
type MemberResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewMemberResource creates a new members resource service
func NewMemberResource(client *gateway.Client, log *logger.Logger) *MemberResource {
	return &MemberResource{
		client: client,
		logger: log,
	}
}

// List retrieves members matching the query with server-driven
// pagination
func (r *MemberResource) List(ctx context.Context, query *types.MemberListQuery) (*types.Result[[]types.Member], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "navigatorId", query.NavigatorID)
		setBool(values, "isStudent", query.IsStudent)
		setString(values, "schoolId", query.SchoolID)
		setString(values, "grade", query.Grade)
		setString(values, "section", query.Section)
		setBool(values, "isSubprofile", query.IsSubprofile)
		setString(values, "maritalStatus", query.MaritalStatus)
		setString(values, "educationLevel", query.EducationLevel)
		setString(values, "from_date", query.FromDate)
		setString(values, "to_date", query.ToDate)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/members",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.Member](resp.Body)
}

// GetByID retrieves a single member
func (r *MemberResource) GetByID(ctx context.Context, id string) (*types.Result[*types.Member], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/members/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Member](resp.Body)
}

// Create creates a new member. Phone numbers are canonicalized and
// embedded sub-document ids are pruned before submission.
func (r *MemberResource) Create(ctx context.Context, member *types.Member) (*types.Result[*types.Member], error) {
	payload := prepareMemberPayload(member, false)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/members",
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("members").Info("Created member")
	return decodeOne[types.Member](resp.Body)
}

// Update updates an existing member. Sub-document ids are kept so the
// backend updates nested records in place.
func (r *MemberResource) Update(ctx context.Context, id string, member *types.Member) (*types.Result[*types.Member], error) {
	payload := prepareMemberPayload(member, true)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/members/" + id,
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Member](resp.Body)
}

// Delete removes a member
func (r *MemberResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/members/" + id,
	})
	return err
}

// AssignNavigator assigns a navigator to the member's healthcare team
func (r *MemberResource) AssignNavigator(ctx context.Context, memberID, navigatorID string) error {
	return r.assign(ctx, memberID, "navigator", map[string]string{"navigatorId": navigatorID})
}

// AssignDoctor assigns a doctor to the member's healthcare team
func (r *MemberResource) AssignDoctor(ctx context.Context, memberID, doctorID string) error {
	return r.assign(ctx, memberID, "doctor", map[string]string{"doctorId": doctorID})
}

// AssignNurse assigns a nurse to the member's healthcare team
func (r *MemberResource) AssignNurse(ctx context.Context, memberID, nurseID string) error {
	return r.assign(ctx, memberID, "nurse", map[string]string{"nurseId": nurseID})
}

// assign issues a healthcare team assignment call
func (r *MemberResource) assign(ctx context.Context, memberID, role string, body map[string]string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/members/%s/assign/%s", memberID, role),
		Body:   body,
	})
	return err
}

// BulkUpload uploads a CSV of members and returns the per-row report
func (r *MemberResource) BulkUpload(ctx context.Context, fileName string, csv []byte) (*types.BulkUploadReport, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(csv); err != nil {
		return nil, fmt.Errorf("failed to write upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method:      http.MethodPost,
		Path:        "/members/bulk-upload",
		RawBody:     &buf,
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.BulkUploadReport](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// MembershipCard fetches the member's membership card PDF bytes
func (r *MemberResource) MembershipCard(ctx context.Context, memberID string) ([]byte, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/members/" + memberID + "/membership-card",
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ListNotes retrieves the member's notes, ordered by creation time
func (r *MemberResource) ListNotes(ctx context.Context, memberID string) ([]types.Note, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/members/" + memberID + "/notes",
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeList[types.Note](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateNote adds a note to the member
func (r *MemberResource) CreateNote(ctx context.Context, memberID string, content string) (*types.Note, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/members/" + memberID + "/notes",
		Body:   map[string]string{"content": content},
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.Note](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// UpdateNote edits an existing note
func (r *MemberResource) UpdateNote(ctx context.Context, memberID, noteID string, content string) (*types.Note, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/members/" + memberID + "/notes/" + noteID,
		Body:   map[string]string{"content": content},
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.Note](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// DeleteNote removes a note
func (r *MemberResource) DeleteNote(ctx context.Context, memberID, noteID string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/members/" + memberID + "/notes/" + noteID,
	})
	return err
}

// prepareMemberPayload returns a submission copy of the member. Phone
// fields are canonicalized; on create, ids embedded in optional nested
// objects are pruned so the backend allocates fresh sub-documents.
func prepareMemberPayload(member *types.Member, updating bool) *types.Member {
	payload := *member
	payload.Phone = NormalizePhone(payload.Phone)

	if payload.EmergencyContact != nil {
		contact := *payload.EmergencyContact
		contact.Phone = NormalizePhone(contact.Phone)
		if !updating {
			contact.ID = ""
		}
		if (contact == types.EmergencyContact{}) {
			payload.EmergencyContact = nil
		} else {
			payload.EmergencyContact = &contact
		}
	}

	if len(payload.Addresses) > 0 {
		addresses := make([]types.Address, 0, len(payload.Addresses))
		for _, addr := range payload.Addresses {
			if (addr == types.Address{}) {
				continue
			}
			if !updating {
				addr.ID = ""
			}
			addresses = append(addresses, addr)
		}
		payload.Addresses = addresses
	}

	return &payload
}
