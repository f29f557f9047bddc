package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/internal/pkg/notify"
	"github.com/waumini/sadaka/internal/pkg/tokenstore"
	"github.com/waumini/sadaka/services/auth"
)

// SessionStore owns the session for the lifetime of the process. It is
// constructed once at startup and reset through its methods, never
// reassigned. The mutex is held only around state swaps, not across network
// calls.
type SessionStore struct {
	mu      sync.RWMutex
	token   string
	profile *models.User
	loading bool

	gw       auth.AuthGW
	tokens   tokenstore.Store
	notifier notify.Notifier
}

// NewSessionStore creates the session store. The session starts in the
// loading state until Restore resolves it.
func NewSessionStore(gw auth.AuthGW, tokens tokenstore.Store, notifier notify.Notifier) *SessionStore {
	return &SessionStore{
		loading:  true,
		gw:       gw,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Restore rebuilds the session from the persisted token. Verification or
// profile failures are swallowed into a clean logged-out state; the console
// must come up either way.
func (s *SessionStore) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Load()
	if err != nil {
		logger.Warn("Failed to load persisted token", logger.Err(err))
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.gw.VerifyToken(ctx); err != nil {
		logger.Warn("Persisted token failed verification", logger.Err(err))
		s.Logout()
		return
	}

	if err := s.fetchProfile(ctx); err != nil {
		logger.Warn("Profile fetch failed during restore", logger.Err(err))
	}
}

// Login exchanges credentials for a token, persists it, resolves the profile
// and returns the role-dependent landing route.
func (s *SessionStore) Login(ctx context.Context, creds models.Credentials) (string, error) {
	token, err := s.gw.ExchangeToken(ctx, creds)
	if err != nil {
		s.notifier.Error("Invalid credentials")
		return "", fmt.Errorf("login failed: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.tokens.Save(token); err != nil {
		logger.Warn("Failed to persist token", logger.Err(err))
	}

	if err := s.fetchProfile(ctx); err != nil {
		s.notifier.Error("Failed to load your profile")
		return "", fmt.Errorf("login failed: %w", err)
	}

	s.notifier.Success("Logged in successfully")
	return s.landingRoute(), nil
}

// Logout clears the persisted token and the in-memory session. It always
// succeeds; no network call is involved.
func (s *SessionStore) Logout() {
	if err := s.tokens.Clear(); err != nil {
		logger.Warn("Failed to clear persisted token", logger.Err(err))
	}

	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()
}

// Current returns a snapshot of the session.
func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{
		Token:   s.token,
		Profile: s.profile,
		Loading: s.loading,
	}
}

// Token implements the API client's token source. Every authorized call
// reads the live token through here.
func (s *SessionStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// fetchProfile resolves the caller's user record for the current token. A
// failure means the token is no good, so the session is reset.
func (s *SessionStore) fetchProfile(ctx context.Context) error {
	profile, err := s.gw.GetProfile(ctx)
	if err != nil {
		s.Logout()
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) landingRoute() string {
	if s.Current().IsAdmin() {
		return constants.RouteAdmin
	}
	return constants.RouteTransactions
}
