package session

import (
	"context"
	"sync"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/pkg/logger"
	"github.com/tmercan/fightnight/internal/store"
)

// State is the resolution status of a browser session. Pages render their
// signed-out affordances only once the state is known; Unknown means the
// identity lookup has not completed and nothing auth-dependent should commit.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateAnonymous
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is a resolved identity snapshot. User is non-nil exactly when State
// is StateAuthenticated.
type Session struct {
	State State
	User  *models.User
}

// IsAuthenticated reports whether the session carries a signed-in user.
func (s Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// Provider resolves bearer tokens to sessions against the hosted auth
// provider, caching results so repeated page loads and overlapping polls do
// not each pay for an identity round trip.
type Provider struct {
	auth *store.AuthClient

	mu    sync.RWMutex
	cache map[string]Session
}

// NewProvider creates a session provider over the store's auth client.
func NewProvider(auth *store.AuthClient) *Provider {
	return &Provider{
		auth:  auth,
		cache: make(map[string]Session),
	}
}

// Current resolves the session for the token carried by ctx.
//
// A missing token and a token whose expiry has already passed both resolve to
// StateAnonymous without touching the network. A definitive rejection from
// the provider also yields StateAnonymous. A transport or backend failure
// yields StateUnknown so callers keep treating the identity as unresolved
// instead of mistaking an outage for a signed-out user.
func (p *Provider) Current(ctx context.Context) Session {
	token := store.TokenFromContext(ctx)
	if token == "" || tokenExpired(token) {
		return Session{State: StateAnonymous}
	}

	p.mu.RLock()
	cached, ok := p.cache[token]
	p.mu.RUnlock()
	if ok {
		return cached
	}

	user, err := p.auth.Me(ctx)
	switch {
	case err == nil:
		resolved := Session{State: StateAuthenticated, User: user}
		p.store(token, resolved)
		return resolved
	case apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrForbidden, apperrors.ErrTokenExpired):
		resolved := Session{State: StateAnonymous}
		p.store(token, resolved)
		return resolved
	default:
		logger.Warn().Err(err).Msg("Identity lookup failed, session stays unresolved")
		return Session{State: StateUnknown}
	}
}

// Invalidate drops the cached session for the token carried by ctx. Call it
// after logout or any mutation the provider rejected as unauthenticated.
func (p *Provider) Invalidate(ctx context.Context) {
	token := store.TokenFromContext(ctx)
	if token == "" {
		return
	}
	p.mu.Lock()
	delete(p.cache, token)
	p.mu.Unlock()
}

// Logout drops the remote session and the local cache entry.
func (p *Provider) Logout(ctx context.Context) error {
	p.Invalidate(ctx)
	return p.auth.Logout(ctx)
}

// LoginURL is the hosted login page; next is the in-app URL to return to.
func (p *Provider) LoginURL(next string) string {
	return p.auth.LoginURL(next)
}

func (p *Provider) store(token string, s Session) {
	p.mu.Lock()
	p.cache[token] = s
	p.mu.Unlock()
}
