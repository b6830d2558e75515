package resources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/internal/session"
	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/types"
)

// newAuthFixture wires the auth resource against a real file-backed
// session store so login persistence is covered end to end
func newAuthFixture(t *testing.T, handler http.Handler) (*AuthResource, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"), testLogger())
	require.NoError(t, err)

	client := gateway.NewClient(&config.APIConfig{
		BaseURL:        server.URL + "/api/v1",
		TimeoutSeconds: 5,
	}, store, testLogger())

	return NewAuthResource(client, store, testLogger()), store
}

func TestLogin_WrappedEnvelopePersistsSession(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"accessToken":"at-1","refreshToken":"rt-1","user":{"_id":"nav-1","name":"Asha","email":"asha@example.com"}}}`))
	}).Methods(http.MethodPost)

	svc, store := newAuthFixture(t, router)

	login, err := svc.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at-1", login.Token.AccessToken)
	assert.Equal(t, "asha@example.com", login.User.Email)

	assert.True(t, store.IsAuthenticated())
	user, err := store.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "nav-1", user.ID)
}

func TestLogin_FlatEnvelope(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"at-2","refreshToken":"rt-2","user":{"_id":"nav-2","email":"n2@example.com"}}`))
	}).Methods(http.MethodPost)

	svc, store := newAuthFixture(t, router)

	login, err := svc.Login(context.Background(), "n2@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at-2", login.Token.AccessToken)
	assert.True(t, store.IsAuthenticated())
}

func TestLogin_BadCredentialsDoesNotPersist(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}).Methods(http.MethodPost)

	svc, store := newAuthFixture(t, router)

	_, err := svc.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, gateway.LoginRedirect(err))
	assert.False(t, store.IsAuthenticated())
}

func TestUpdateProfile_RefreshesPersistedUser(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"at-3","user":{"_id":"nav-3","name":"Old Name","email":"n3@example.com"}}`))
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/navigators/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"_id":"nav-3","name":"New Name","email":"n3@example.com"}}`))
	}).Methods(http.MethodPut)

	svc, store := newAuthFixture(t, router)
	ctx := context.Background()

	_, err := svc.Login(ctx, "n3@example.com", "secret")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, &types.User{ID: "nav-3", Name: "New Name", Email: "n3@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	user, err := store.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}
