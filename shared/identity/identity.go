// Package identity carries the signed-in user into the booking core.
package identity

//go:generate go run go.uber.org/mock/mockgen -source=./identity.go -destination=./mocks/identity_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"salonbooking/infras/baas"
	"salonbooking/shared/constant"
)

var ErrNoRefreshToken = errors.New("session has no refresh token")

// Session is the capability the booking core depends on instead of ambient auth state.
type Session interface {
	UserID() string
	ProfileID() string
	Email() string
	AccessToken() string
	Refresh(ctx context.Context) error
}

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*baas.Tokens, error)
}

type sessionImpl struct {
	userID    string
	email     string
	refresher Refresher

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// New builds a session for a verified access token. The profile id equals the user id.
func New(userID, email, accessToken, refreshToken string, refresher Refresher) Session {
	return &sessionImpl{
		userID:       userID,
		email:        email,
		refresher:    refresher,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

func (s *sessionImpl) UserID() string {
	return s.userID
}

func (s *sessionImpl) ProfileID() string {
	return s.userID
}

func (s *sessionImpl) Email() string {
	return s.email
}

func (s *sessionImpl) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accessToken
}

// Refresh swaps in a new access token for the rest of the request.
func (s *sessionImpl) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken == "" || s.refresher == nil {
		return ErrNoRefreshToken
	}

	tokens, err := s.refresher.RefreshSession(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		s.refreshToken = tokens.RefreshToken
	}

	return nil
}

// WithSession stores the session on ctx.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, session)
}

// FromContext returns the session on ctx, if the caller is signed in.
func FromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(constant.ContextKeySession).(Session)

	return session, ok && session != nil
}

// AccessToken returns the bearer for backend calls, or "" for anonymous callers.
func AccessToken(ctx context.Context) string {
	if session, ok := FromContext(ctx); ok {
		return session.AccessToken()
	}

	return ""
}
