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

func TestNurses_ListQueryBuilding(t *testing.T) {
	var gotQuery map[string][]string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/nurses", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","data":[{"_id":"nu-1","name":"Sister Mary"}]}`))
	}).Methods(http.MethodGet)

	svc := NewNurseResource(newTestGateway(t, router), testLogger())

	result, err := svc.List(context.Background(), &types.NurseListQuery{
		ListQuery: types.ListQuery{Page: 1, Limit: 10},
		SchoolID:  "sch-1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sch-1"}, gotQuery["schoolId"])
	assert.NotContains(t, gotQuery, "navigatorId", "empty filters stay out of the query string")
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Sister Mary", result.Data[0].Name)
}

func TestNurses_CreateNormalizesPhone(t *testing.T) {
	var sent types.Nurse

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/nurses", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"status":"success","data":{"_id":"nu-1"}}`))
	}).Methods(http.MethodPost)

	svc := NewNurseResource(newTestGateway(t, router), testLogger())

	draft := &types.Nurse{Name: "Sister Mary", Phone: "9876543210"}
	_, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, "+919876543210", sent.Phone)
	assert.Equal(t, "9876543210", draft.Phone, "caller's draft stays untouched")
}

func TestNurses_DeleteNotFoundMapped(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/nurses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Nurse not found"}`))
	}).Methods(http.MethodDelete)

	svc := NewNurseResource(newTestGateway(t, router), testLogger())

	err := svc.Delete(context.Background(), "nu-9")
	assert.True(t, types.IsNotFound(err))
}
