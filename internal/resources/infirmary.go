package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// InfirmaryResource implements the school infirmary records resource
// service for the Ahana program
type InfirmaryResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewInfirmaryResource creates a new infirmary records resource service
func NewInfirmaryResource(client *gateway.Client, log *logger.Logger) *InfirmaryResource {
	return &InfirmaryResource{
		client: client,
		logger: log,
	}
}

// List retrieves infirmary visit records matching the query
func (r *InfirmaryResource) List(ctx context.Context, query *types.InfirmaryListQuery) (*types.Result[[]types.InfirmaryVisit], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "schoolId", query.SchoolID)
		setString(values, "memberId", query.MemberID)
		setString(values, "nurseId", query.NurseID)
		setString(values, "from_date", query.FromDate)
		setString(values, "to_date", query.ToDate)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/infirmary",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.InfirmaryVisit](resp.Body)
}

// GetByID retrieves a single infirmary visit record
func (r *InfirmaryResource) GetByID(ctx context.Context, id string) (*types.Result[*types.InfirmaryVisit], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/infirmary/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.InfirmaryVisit](resp.Body)
}

// Create records a new infirmary visit
func (r *InfirmaryResource) Create(ctx context.Context, visit *types.InfirmaryVisit) (*types.Result[*types.InfirmaryVisit], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/infirmary",
		Body:   visit,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("infirmary").Info("Created infirmary visit record")
	return decodeOne[types.InfirmaryVisit](resp.Body)
}

// Update updates an existing infirmary visit record
func (r *InfirmaryResource) Update(ctx context.Context, id string, visit *types.InfirmaryVisit) (*types.Result[*types.InfirmaryVisit], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/infirmary/" + id,
		Body:   visit,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.InfirmaryVisit](resp.Body)
}

// Delete removes an infirmary visit record
func (r *InfirmaryResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/infirmary/" + id,
	})
	return err
}
