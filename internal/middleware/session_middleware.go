package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/store"
)

const sessionContextKey = "session"

// TokenCookie is the cookie the hosted auth provider sets after login.
const TokenCookie = "fn_token"

// SessionMiddleware resolves the browser's bearer token into a tri-state
// session on every request. It never aborts: pages decide for themselves what
// an anonymous or unresolved session renders as.
type SessionMiddleware struct {
	provider *session.Provider
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(provider *session.Provider) *SessionMiddleware {
	return &SessionMiddleware{provider: provider}
}

// Resolve attaches the token to the request context and the resolved session
// to the gin context.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			ctx := store.WithToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}

		sess := m.provider.Current(c.Request.Context())
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session resolved by the middleware. Routes outside
// the middleware see an unresolved session.
func SessionFrom(c *gin.Context) session.Session {
	if value, exists := c.Get(sessionContextKey); exists {
		if sess, ok := value.(session.Session); ok {
			return sess
		}
	}
	return session.Session{State: session.StateUnknown}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
