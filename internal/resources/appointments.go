package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// AppointmentResource implements the appointments resource service
type AppointmentResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewAppointmentResource creates a new appointments resource service
func NewAppointmentResource(client *gateway.Client, log *logger.Logger) *AppointmentResource {
	return &AppointmentResource{
		client: client,
		logger: log,
	}
}

// List retrieves appointments matching the query
func (r *AppointmentResource) List(ctx context.Context, query *types.AppointmentListQuery) (*types.Result[[]types.Appointment], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "status", string(query.Status))
		setString(values, "navigatorId", query.NavigatorID)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/appointments",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.Appointment](resp.Body)
}

// GetByID retrieves a single appointment
func (r *AppointmentResource) GetByID(ctx context.Context, id string) (*types.Result[*types.Appointment], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/appointments/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Appointment](resp.Body)
}

// Create creates a new appointment
func (r *AppointmentResource) Create(ctx context.Context, apt *types.Appointment) (*types.Result[*types.Appointment], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/appointments",
		Body:   apt,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("appointments").Info("Created appointment")
	return decodeOne[types.Appointment](resp.Body)
}

// Update updates an existing appointment
func (r *AppointmentResource) Update(ctx context.Context, id string, apt *types.Appointment) (*types.Result[*types.Appointment], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/appointments/" + id,
		Body:   apt,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Appointment](resp.Body)
}

// Delete removes an appointment
func (r *AppointmentResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/appointments/" + id,
	})
	return err
}

// AppointmentPDF fetches the generated appointment PDF artifact
func (r *AppointmentResource) AppointmentPDF(ctx context.Context, id string) ([]byte, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/appointments/" + id + "/pdf",
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
