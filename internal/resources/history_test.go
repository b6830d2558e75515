package resources

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalHistory_SnapshotIDTravelsInQuery(t *testing.T) {
	var gotMethod, gotID string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/medical-history/{memberId}", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotID = r.URL.Query().Get("id")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"status":"success","data":{"_id":"h1","memberId":"m1"}}`))
		case http.MethodPatch:
			w.Write([]byte(`{"status":"success","data":{"_id":"h1"}}`))
		case http.MethodDelete:
			w.Write([]byte(`{"status":"success"}`))
		}
	})

	svc := NewMedicalHistoryResource(newTestGateway(t, router), testLogger())
	ctx := context.Background()

	snapshot, err := svc.Get(ctx, "m1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "h1", snapshot.ID)
	assert.Equal(t, "h1", gotID)

	_, err = svc.Update(ctx, "m1", "h1", snapshot)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "h1", gotID)

	require.NoError(t, svc.Delete(ctx, "m1", "h1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "h1", gotID)
}

func TestMedicalHistory_GetAllToleratesBareArray(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/medical-history/{memberId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"h1"},{"_id":"h2"}]`))
	}).Methods(http.MethodGet)

	svc := NewMedicalHistoryResource(newTestGateway(t, router), testLogger())

	snapshots, err := svc.GetAll(context.Background(), "m1")
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}

func TestNotifications_MarkAllRead(t *testing.T) {
	var gotPath string

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/notifications/mark-all-read", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success"}`))
	}).Methods(http.MethodPatch)

	svc := NewNotificationResource(newTestGateway(t, router), testLogger())

	require.NoError(t, svc.MarkAllRead(context.Background()))
	assert.Equal(t, "/api/v1/notifications/mark-all-read", gotPath)
}
