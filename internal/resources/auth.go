package resources

import (
	"context"
	"net/http"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/interfaces"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// AuthResource implements the auth endpoints and the navigator's own
// profile. Login persists the session through the session manager.
type AuthResource struct {
	client         *gateway.Client
	sessionManager interfaces.SessionManager
	logger         *logger.Logger
}

// NewAuthResource creates a new auth resource service
func NewAuthResource(client *gateway.Client, sessionManager interfaces.SessionManager, log *logger.Logger) *AuthResource {
	return &AuthResource{
		client:         client,
		sessionManager: sessionManager,
		logger:         log,
	}
}

// loginEnvelope tolerates both login response shapes the backend has
// used: a flat token+user object and a {status,data:{...}} wrapper.
type loginEnvelope struct {
	Status string `json:"status"`
	Data   *struct {
		AccessToken  string     `json:"accessToken"`
		RefreshToken string     `json:"refreshToken"`
		User         types.User `json:"user"`
	} `json:"data"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         types.User `json:"user"`
}

// Login authenticates the navigator and persists the session
func (r *AuthResource) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	var envelope loginEnvelope
	err := r.client.DoJSON(ctx, &gateway.Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     map[string]string{"email": email, "password": password},
		SkipAuth: true,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	login := &types.LoginResponse{
		Token: types.AuthToken{
			AccessToken:  envelope.AccessToken,
			RefreshToken: envelope.RefreshToken,
			TokenType:    "Bearer",
		},
		User: envelope.User,
	}
	if envelope.Data != nil {
		login.Token.AccessToken = envelope.Data.AccessToken
		login.Token.RefreshToken = envelope.Data.RefreshToken
		login.User = envelope.Data.User
	}

	if login.Token.AccessToken == "" {
		return nil, types.NewServerError(http.StatusOK, "Login response carried no access token.")
	}

	if err := r.sessionManager.Login(login.Token, login.User); err != nil {
		return nil, err
	}

	return login, nil
}

// ForgotPassword requests a password reset email
func (r *AuthResource) ForgotPassword(ctx context.Context, email string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method:   http.MethodPost,
		Path:     "/auth/forgot-password",
		Body:     map[string]string{"email": email},
		SkipAuth: true,
	})
	return err
}

// ResetPassword sets a new password using a reset token
func (r *AuthResource) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method:   http.MethodPost,
		Path:     "/auth/reset-password",
		Body:     map[string]string{"token": token, "password": newPassword},
		SkipAuth: true,
	})
	return err
}

// Profile retrieves the current navigator's profile
func (r *AuthResource) Profile(ctx context.Context) (*types.User, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/navigators/profile",
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.User](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// UpdateProfile updates the navigator's profile and refreshes the
// persisted user object
func (r *AuthResource) UpdateProfile(ctx context.Context, user *types.User) (*types.User, error) {
	payload := *user
	payload.Phone = NormalizePhone(payload.Phone)

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPut,
		Path:   "/navigators/profile",
		Body:   &payload,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.User](resp.Body)
	if err != nil {
		return nil, err
	}

	if result.Data != nil {
		if err := r.sessionManager.SetCurrentUser(*result.Data); err != nil {
			r.logger.WithError(err).Warn("Failed to refresh persisted user after profile update")
		}
	}

	return result.Data, nil
}
