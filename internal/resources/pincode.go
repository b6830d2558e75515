package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// PincodeResource looks up region information from the external postal
// pincode service. It bypasses the API gateway client because the
// service is public and unauthenticated.
type PincodeResource struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewPincodeResource creates a new pincode lookup service
func NewPincodeResource(cfg *config.PincodeConfig, log *logger.Logger) *PincodeResource {
	return &PincodeResource{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  log,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// pincodeResponse matches the postalpincode.in response: a one-element
// array wrapping a status and the matching post offices.
type pincodeResponse []struct {
	Status     string `json:"Status"`
	Message    string `json:"Message"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
		Region   string `json:"Region"`
	} `json:"PostOffice"`
}

// Lookup resolves a 6-digit pincode to its region. The first post
// office entry is authoritative for the derived city and state fields.
func (r *PincodeResource) Lookup(ctx context.Context, pincode string) (*types.PincodeRegion, error) {
	if !ValidPincode(pincode) {
		return nil, types.NewValidationError(0, "Pincode must be exactly 6 digits.", nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/pincode/%s", r.baseURL, pincode), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pincode request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, types.NewTransportError(types.MsgTransportFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewTransportError(types.MsgTransportFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewServerError(resp.StatusCode, "Pincode lookup failed.")
	}

	var decoded pincodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, types.NewServerError(resp.StatusCode, "Unexpected response from the pincode service.")
	}

	if len(decoded) == 0 || decoded[0].Status != "Success" || len(decoded[0].PostOffice) == 0 {
		return nil, types.NewNotFoundError("No region found for pincode " + pincode + ".")
	}

	office := decoded[0].PostOffice[0]
	return &types.PincodeRegion{
		Pincode:  pincode,
		City:     office.District,
		District: office.District,
		State:    office.State,
		Region:   office.Region,
	}, nil
}

// ValidPincode reports whether s is exactly 6 digits
func ValidPincode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
