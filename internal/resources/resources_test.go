package resources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// stubSession is a fixed-token session manager for resource tests
type stubSession struct {
	token string
}

func (s *stubSession) Login(token types.AuthToken, user types.User) error { return nil }
func (s *stubSession) Logout() error                                      { return nil }
func (s *stubSession) Token() (string, error)                             { return s.token, nil }
func (s *stubSession) RefreshToken() (string, error)                      { return "", nil }
func (s *stubSession) CurrentUser() (*types.User, error)                  { return &types.User{ID: "nav-1"}, nil }
func (s *stubSession) SetCurrentUser(user types.User) error               { return nil }
func (s *stubSession) IsAuthenticated() bool                              { return true }

// newTestGateway wires a gateway client against a fixture backend
func newTestGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gateway.NewClient(&config.APIConfig{
		BaseURL:        server.URL + "/api/v1",
		TimeoutSeconds: 5,
	}, &stubSession{token: "token-1"}, logger.New("debug"))
}

func testLogger() *logger.Logger {
	return logger.New("debug")
}
