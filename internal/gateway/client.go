package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carebridge/navigator-console/internal/session"
	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/interfaces"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// Client is the single HTTP client wrapper every resource service goes
// through. It attaches bearer auth, correlates requests, and centrally
// intercepts 401/403 responses.
type Client struct {
	baseURL          string
	userAgent        string
	httpClient       *http.Client
	sessionManager   interfaces.SessionManager
	logger           *logger.Logger
	metricsCollector *MetricsCollector
}

// Request describes one backend API call
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	RawBody     io.Reader
	ContentType string
	// SkipAuth suppresses the Authorization header for unauthenticated
	// endpoints (login, forgot/reset password, external lookups).
	SkipAuth bool
}

// Response is the raw outcome of a successful (2xx) backend call
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// NewClient creates a new API gateway client
func NewClient(cfg *config.APIConfig, sessionManager interfaces.SessionManager, log *logger.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		sessionManager: sessionManager,
		logger:         log,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		metricsCollector: NewMetricsCollector(),
	}
}

// Metrics returns the client's request metrics collector
func (c *Client) Metrics() *MetricsCollector {
	return c.metricsCollector
}

// Do issues the request and returns the raw 2xx response. Any non-2xx
// status or transport failure comes back as a *types.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestID := uuid.New().String()
	start := time.Now()

	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metricsCollector.RecordRequest(req.Method, req.Path, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, types.NewTransportError(types.MsgTransportFailure, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, types.NewTransportError(types.MsgTransportFailure, err)
	}

	duration := time.Since(start)
	c.metricsCollector.RecordRequest(req.Method, req.Path, httpResp.StatusCode, duration)
	c.logger.APIRequest(ctx, req.Method, req.Path, httpResp.StatusCode, duration.Milliseconds(), map[string]interface{}{
		"request_id": requestID,
	})

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return &Response{
			StatusCode: httpResp.StatusCode,
			Body:       body,
			RequestID:  requestID,
		}, nil
	}

	return nil, c.errorFromResponse(req, httpResp.StatusCode, body)
}

// DoJSON issues the request and decodes the 2xx response body into out.
// An empty body with a non-nil out is left untouched.
func (c *Client) DoJSON(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return types.NewServerError(resp.StatusCode, "Unexpected response from the server.")
	}
	return nil
}

// buildRequest assembles the outgoing http.Request
func (c *Client) buildRequest(ctx context.Context, req *Request, requestID string) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := req.ContentType
	switch {
	case req.RawBody != nil:
		body = req.RawBody
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if !req.SkipAuth {
		token, err := c.sessionManager.Token()
		if err != nil {
			if errors.Is(err, session.ErrSessionExpired) {
				return nil, types.NewAuthError(0, types.MsgSessionExpired)
			}
			return nil, types.NewAuthError(0, "You are not logged in.")
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

// errorFromResponse maps a non-2xx response to a typed APIError. A 401
// or 403 from an auth endpoint clears the persisted session; from any
// other endpoint the session stays intact so the screen can offer a
// retry affordance.
func (c *Client) errorFromResponse(req *Request, statusCode int, body []byte) error {
	message := extractMessage(body)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		if isAuthPath(req.Path) {
			if err := c.sessionManager.Logout(); err != nil {
				c.logger.WithError(err).Warn("Failed to clear session after auth failure")
			}
			if message == "" {
				message = types.MsgSessionExpired
			}
			return &types.APIError{
				Kind:       types.ErrorKindAuth,
				StatusCode: statusCode,
				Message:    message,
				Details:    map[string]interface{}{"loginRedirect": true},
			}
		}
		if message == "" {
			message = types.MsgSessionExpired
		}
		return types.NewAuthError(statusCode, message)

	case statusCode == http.StatusNotFound:
		if message == "" {
			message = types.MsgNotFound
		}
		return types.NewNotFoundError(message)

	case statusCode >= 400 && statusCode < 500:
		if message == "" {
			message = types.MsgValidationFailed
		}
		return types.NewValidationError(statusCode, message, nil)

	default:
		if message == "" {
			message = types.MsgServerError
		}
		return types.NewServerError(statusCode, message)
	}
}

// LoginRedirect reports whether err requires forcing navigation back to
// the login screen (an auth failure on an auth endpoint).
func LoginRedirect(err error) bool {
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	redirect, _ := apiErr.Details["loginRedirect"].(bool)
	return apiErr.Kind == types.ErrorKindAuth && redirect
}

// isAuthPath reports whether path belongs to the auth endpoints. Only
// the exact "auth" segment counts; sibling resources that merely share
// the prefix must not clear the session.
func isAuthPath(path string) bool {
	trimmed := strings.TrimLeft(path, "/")
	return trimmed == "auth" || strings.HasPrefix(trimmed, "auth/")
}

// extractMessage pulls a human-readable message out of an error
// response body. The backend has historically answered with either
// {"message": ...} or {"error": {"message": ...}}.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error.Message
}
