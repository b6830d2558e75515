package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/types"
)

func TestProviders_CreatePadsOperationHours(t *testing.T) {
	var sent types.HealthcareProvider

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/hc-providers", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"status":"success","data":{"_id":"hc-1"}}`))
	}).Methods(http.MethodPost)

	svc := NewProviderResource(newTestGateway(t, router), testLogger())

	draft := &types.HealthcareProvider{
		Name:  "Apollo Clinic",
		Type:  types.ProviderClinic,
		Phone: "9876543210",
		OperationHours: types.OperationHours{
			"monday": {"09:00-13:00"},
		},
	}
	_, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.Len(t, sent.OperationHours, len(types.Weekdays), "every weekday key must be present")
	assert.Equal(t, []string{"09:00-13:00"}, sent.OperationHours["monday"])
	assert.Empty(t, sent.OperationHours["sunday"])
	assert.Equal(t, "+919876543210", sent.Phone)

	// Submission never mutates the caller's draft.
	assert.Len(t, draft.OperationHours, 1)
	assert.Equal(t, "9876543210", draft.Phone)
}

func TestProviders_ListQueryIncludesTypeAndCity(t *testing.T) {
	var gotQuery map[string][]string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/hc-providers", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","data":[]}`))
	}).Methods(http.MethodGet)

	svc := NewProviderResource(newTestGateway(t, router), testLogger())

	_, err := svc.List(context.Background(), &types.ProviderListQuery{
		ListQuery: types.ListQuery{Page: 2, Limit: 10},
		Type:      types.ProviderHospital,
		City:      "Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hospital"}, gotQuery["type"])
	assert.Equal(t, []string{"Bengaluru"}, gotQuery["city"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
}
