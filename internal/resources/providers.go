package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// ProviderResource implements the healthcare provider facilities
// resource service
type ProviderResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewProviderResource creates a new healthcare providers resource
// service
func NewProviderResource(client *gateway.Client, log *logger.Logger) *ProviderResource {
	return &ProviderResource{
		client: client,
		logger: log,
	}
}

// List retrieves provider facilities matching the query
func (r *ProviderResource) List(ctx context.Context, query *types.ProviderListQuery) (*types.Result[[]types.HealthcareProvider], error) {
	values := url.Values{}
	if query != nil {
		values = listQueryValues(&query.ListQuery)
		setString(values, "type", string(query.Type))
		setString(values, "city", query.City)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/hc-providers",
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[types.HealthcareProvider](resp.Body)
}

// GetByID retrieves a single provider facility
func (r *ProviderResource) GetByID(ctx context.Context, id string) (*types.Result[*types.HealthcareProvider], error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/hc-providers/" + id,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.HealthcareProvider](resp.Body)
}

// Create registers a new provider facility. Operation hours are
// completed to the fixed seven weekday entries before submission.
func (r *ProviderResource) Create(ctx context.Context, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error) {
	payload := prepareProviderPayload(p)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/hc-providers",
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("hc-providers").Info("Created healthcare provider")
	return decodeOne[types.HealthcareProvider](resp.Body)
}

// Update updates an existing provider facility
func (r *ProviderResource) Update(ctx context.Context, id string, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error) {
	payload := prepareProviderPayload(p)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/hc-providers/" + id,
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[types.HealthcareProvider](resp.Body)
}

// Delete removes a provider facility
func (r *ProviderResource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/hc-providers/" + id,
	})
	return err
}

// prepareProviderPayload normalizes the provider for submission: phone
// canonicalized and operation hours padded so every weekday key exists.
func prepareProviderPayload(p *types.HealthcareProvider) *types.HealthcareProvider {
	payload := *p
	payload.Phone = NormalizePhone(payload.Phone)

	hours := types.NewOperationHours()
	for day, ranges := range p.OperationHours {
		if _, ok := hours[day]; ok && len(ranges) > 0 {
			hours[day] = ranges
		}
	}
	payload.OperationHours = hours

	return &payload
}
