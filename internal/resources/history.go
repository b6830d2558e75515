package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// MedicalHistoryResource implements the per-member medical history
// resource service. The backend keys the collection by member id in
// the path and the snapshot id in the query string.
type MedicalHistoryResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewMedicalHistoryResource creates a new medical history resource
// service
func NewMedicalHistoryResource(client *gateway.Client, log *logger.Logger) *MedicalHistoryResource {
	return &MedicalHistoryResource{
		client: client,
		logger: log,
	}
}

// GetAll retrieves every history snapshot for the member
func (r *MedicalHistoryResource) GetAll(ctx context.Context, memberID string) ([]types.MedicalHistory, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/medical-history/" + memberID,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeList[types.MedicalHistory](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Get retrieves one history snapshot by id
func (r *MedicalHistoryResource) Get(ctx context.Context, memberID, historyID string) (*types.MedicalHistory, error) {
	values := url.Values{}
	setString(values, "id", historyID)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/medical-history/" + memberID,
		Query:  values,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.MedicalHistory](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Create adds a new history snapshot for the member
func (r *MedicalHistoryResource) Create(ctx context.Context, memberID string, history *types.MedicalHistory) (*types.MedicalHistory, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/medical-history/" + memberID,
		Body:   history,
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("medical-history").Info("Created medical history snapshot")

	result, err := decodeOne[types.MedicalHistory](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Update patches an existing history snapshot
func (r *MedicalHistoryResource) Update(ctx context.Context, memberID, historyID string, patch *types.MedicalHistory) (*types.MedicalHistory, error) {
	values := url.Values{}
	setString(values, "id", historyID)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPatch,
		Path:   "/medical-history/" + memberID,
		Query:  values,
		Body:   patch,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.MedicalHistory](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Delete removes a history snapshot
func (r *MedicalHistoryResource) Delete(ctx context.Context, memberID, historyID string) error {
	values := url.Values{}
	setString(values, "id", historyID)

	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodDelete,
		Path:   "/medical-history/" + memberID,
		Query:  values,
	})
	return err
}
