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

func TestInfirmary_ListQueryBuilding(t *testing.T) {
	var gotQuery map[string][]string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/infirmary", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","data":[{"_id":"iv-1","memberId":"m-1","reason":"Fever"}],"pagination":{"total":1,"page":1,"pages":1,"limit":10}}`))
	}).Methods(http.MethodGet)

	svc := NewInfirmaryResource(newTestGateway(t, router), testLogger())

	result, err := svc.List(context.Background(), &types.InfirmaryListQuery{
		ListQuery: types.ListQuery{Page: 1, Limit: 10},
		SchoolID:  "sch-1",
		MemberID:  "m-1",
		FromDate:  "2026-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sch-1"}, gotQuery["schoolId"])
	assert.Equal(t, []string{"m-1"}, gotQuery["memberId"])
	assert.Equal(t, []string{"2026-08-01"}, gotQuery["from_date"])
	assert.NotContains(t, gotQuery, "nurseId")
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Fever", result.Data[0].Reason)
	require.NotNil(t, result.Pagination)
	assert.Equal(t, 1, result.Pagination.Total)
}

func TestInfirmary_CreateAndUpdate(t *testing.T) {
	var sent types.InfirmaryVisit

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/infirmary", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"status":"success","data":{"_id":"iv-1","memberId":"m-1"}}`))
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/infirmary/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"status":"success","data":{"_id":"iv-1","memberId":"m-1","treatment":"Paracetamol"}}`))
	}).Methods(http.MethodPut)

	svc := NewInfirmaryResource(newTestGateway(t, router), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.InfirmaryVisit{MemberID: "m-1", Reason: "Fever"})
	require.NoError(t, err)
	assert.Equal(t, "iv-1", created.Data.ID)
	assert.Equal(t, "Fever", sent.Reason)

	updated, err := svc.Update(ctx, "iv-1", &types.InfirmaryVisit{MemberID: "m-1", Reason: "Fever", Treatment: "Paracetamol"})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", updated.Data.Treatment)
	assert.Equal(t, "Paracetamol", sent.Treatment)
}

func TestInfirmary_GetAndDelete(t *testing.T) {
	var gotMethod string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/infirmary/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"status":"success","data":{"_id":"iv-1","memberId":"m-1"}}`))
		case http.MethodDelete:
			w.Write([]byte(`{"status":"success"}`))
		}
	})

	svc := NewInfirmaryResource(newTestGateway(t, router), testLogger())
	ctx := context.Background()

	visit, err := svc.GetByID(ctx, "iv-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", visit.Data.MemberID)

	require.NoError(t, svc.Delete(ctx, "iv-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
