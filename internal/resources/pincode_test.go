package resources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/types"
)

func newPincodeService(t *testing.T, handler http.Handler) *PincodeResource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewPincodeResource(&config.PincodeConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, testLogger())
}

func TestPincodeLookup_Success(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/pincode/{code}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "560001", mux.Vars(r)["code"])
		w.Write([]byte(`[{"Status":"Success","PostOffice":[{"Name":"Bangalore GPO","District":"Bengaluru","State":"Karnataka","Region":"Bangalore HQ"}]}]`))
	})

	svc := newPincodeService(t, router)

	region, err := svc.Lookup(context.Background(), "560001")
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru", region.City)
	assert.Equal(t, "Karnataka", region.State)
	assert.Equal(t, "Bangalore HQ", region.Region)
}

func TestPincodeLookup_NoMatch(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/pincode/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Status":"Error","Message":"No records found"}]`))
	})

	svc := newPincodeService(t, router)

	_, err := svc.Lookup(context.Background(), "999999")
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestPincodeLookup_RejectsInvalidInput(t *testing.T) {
	svc := newPincodeService(t, mux.NewRouter())

	for _, code := range []string{"", "123", "12345a", "1234567"} {
		_, err := svc.Lookup(context.Background(), code)
		require.Error(t, err, "code %q must be rejected before any network call", code)

		var apiErr *types.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.ErrorKindValidation, apiErr.Kind)
	}
}

func TestValidPincode(t *testing.T) {
	assert.True(t, ValidPincode("560001"))
	assert.False(t, ValidPincode("56000"))
	assert.False(t, ValidPincode("5600011"))
	assert.False(t, ValidPincode("56000a"))
}
