package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// DoctorResource implements the doctors directory resource service
type DoctorResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewDoctorResource creates a new doctors resource service
func NewDoctorResource(client *gateway.Client, log *logger.Logger) *DoctorResource {
	return &DoctorResource{
		client: client,
		logger: log,
	}
}

// List retrieves doctors matching the query
func (r *DoctorResource) List(ctx context.Context, query *types.DoctorListQuery) (*types.Result[[]types.Doctor], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "specialization", query.Specialization)
		setBool(values, "isEmpanelled", query.IsEmpanelled)
		setString(values, "navigatorId", query.NavigatorID)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/doctors",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.Doctor](resp.Body)
}

// GetByID retrieves a single doctor
func (r *DoctorResource) GetByID(ctx context.Context, id string) (*types.Result[*types.Doctor], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/doctors/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Doctor](resp.Body)
}

// Create registers a new doctor in the directory
func (r *DoctorResource) Create(ctx context.Context, doctor *types.Doctor) (*types.Result[*types.Doctor], error) {
	payload := *doctor
	payload.Phone = NormalizePhone(payload.Phone)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/doctors",
		Body:   &payload,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("doctors").Info("Created doctor")
	return decodeOne[types.Doctor](resp.Body)
}

// Update updates an existing doctor
func (r *DoctorResource) Update(ctx context.Context, id string, doctor *types.Doctor) (*types.Result[*types.Doctor], error) {
	payload := *doctor
	payload.Phone = NormalizePhone(payload.Phone)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/doctors/" + id,
		Body:   &payload,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Doctor](resp.Body)
}

// Delete removes a doctor from the directory
func (r *DoctorResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/doctors/" + id,
	})
	return err
}

// AssignNavigator links a navigator to the doctor
func (r *DoctorResource) AssignNavigator(ctx context.Context, doctorID, navigatorID string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/doctors/" + doctorID + "/assign-navigator",
		Body:   map[string]string{"navigatorId": navigatorID},
	})
	return err
}

// ProfilePDF fetches the doctor's generated profile PDF
func (r *DoctorResource) ProfilePDF(ctx context.Context, doctorID string) ([]byte, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/doctors/" + doctorID + "/profile-pdf",
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
