package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// Storage keys, kept identical to the browser client's local storage
// layout so a session file is portable across both.
const (
	keyAccessToken     = "accessToken"
	keyRefreshToken    = "refreshToken"
	keyUser            = "user"
	keyIsAuthenticated = "isAuthenticated"
)

// ErrNoSession is returned when no session is persisted
var ErrNoSession = fmt.Errorf("no active session")

// ErrSessionExpired is returned when the persisted access token has
// passed its expiry
var ErrSessionExpired = fmt.Errorf("session expired")

// Store is a file-backed session manager. It is the only module that
// touches the persisted session file.
type Store struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates a session store backed by the file at path. An
// existing session file is loaded; a missing one is treated as a
// logged-out state.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: log,
		values: make(map[string]string),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load session store: %w", err)
	}

	return s, nil
}

// Login persists the token pair and current user
func (s *Store) Login(token types.AuthToken, user types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.values[keyAccessToken] = token.AccessToken
	s.values[keyRefreshToken] = token.RefreshToken
	s.values[keyUser] = string(userJSON)
	s.values[keyIsAuthenticated] = "true"

	if err := s.persist(); err != nil {
		return err
	}

	s.logger.Session("login", user.ID, map[string]interface{}{"email": user.Email})
	return nil
}

// Logout clears every persisted session key
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := ""
	if raw, ok := s.values[keyUser]; ok {
		var user types.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			userID = user.ID
		}
	}

	s.values = make(map[string]string)
	if err := s.persist(); err != nil {
		return err
	}

	s.logger.Session("logout", userID, nil)
	return nil
}

// Token returns the persisted access token. It reports ErrNoSession
// when logged out and ErrSessionExpired when the token's exp claim has
// passed, so callers can distinguish the two without a round-trip.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.values[keyAccessToken]
	if !ok || token == "" {
		return "", ErrNoSession
	}

	if expired, err := tokenExpired(token); err == nil && expired {
		return "", ErrSessionExpired
	}

	return token, nil
}

// RefreshToken returns the persisted refresh token
func (s *Store) RefreshToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.values[keyRefreshToken]
	if !ok || token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// CurrentUser returns the persisted user object
func (s *Store) CurrentUser() (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[keyUser]
	if !ok || raw == "" {
		return nil, ErrNoSession
	}

	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode persisted user: %w", err)
	}
	return &user, nil
}

// SetCurrentUser replaces the persisted user object, used after a
// profile refresh
func (s *Store) SetCurrentUser(user types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.values[keyUser] = string(userJSON)
	return s.persist()
}

// IsAuthenticated reports whether a logged-in session is persisted
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[keyIsAuthenticated] == "true" && s.values[keyAccessToken] != ""
}

// load reads the session file into memory
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt session file is equivalent to logged out
		s.logger.WithError(err).Warn("Discarding unreadable session file")
		return nil
	}

	s.values = values
	return nil
}

// persist writes the in-memory values to the session file. Callers
// must hold the write lock.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature. The backend is the authority on validity; this check only
// lets the client fail fast on an obviously dead session.
func tokenExpired(tokenString string) (bool, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}

	return exp.Time.Before(time.Now()), nil
}
