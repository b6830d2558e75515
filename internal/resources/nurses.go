package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// NurseResource implements the nurses directory resource service
type NurseResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewNurseResource creates a new nurses resource service
func NewNurseResource(client *gateway.Client, log *logger.Logger) *NurseResource {
	return &NurseResource{
		client: client,
		logger: log,
	}
}

// List retrieves nurses matching the query
func (r *NurseResource) List(ctx context.Context, query *types.NurseListQuery) (*types.Result[[]types.Nurse], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "schoolId", query.SchoolID)
		setString(values, "navigatorId", query.NavigatorID)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/nurses",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.Nurse](resp.Body)
}

// GetByID retrieves a single nurse
func (r *NurseResource) GetByID(ctx context.Context, id string) (*types.Result[*types.Nurse], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/nurses/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Nurse](resp.Body)
}

// Create registers a new nurse in the directory
func (r *NurseResource) Create(ctx context.Context, nurse *types.Nurse) (*types.Result[*types.Nurse], error) {
	payload := *nurse
	payload.Phone = NormalizePhone(payload.Phone)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/nurses",
		Body:   &payload,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("nurses").Info("Created nurse")
	return decodeOne[types.Nurse](resp.Body)
}

// Update updates an existing nurse
func (r *NurseResource) Update(ctx context.Context, id string, nurse *types.Nurse) (*types.Result[*types.Nurse], error) {
	payload := *nurse
	payload.Phone = NormalizePhone(payload.Phone)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/nurses/" + id,
		Body:   &payload,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.Nurse](resp.Body)
}

// Delete removes a nurse from the directory
func (r *NurseResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/nurses/" + id,
	})
	return err
}
