package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercan/fightnight/internal/config"
	"github.com/tmercan/fightnight/internal/store"
)

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestProvider(t *testing.T, handler http.Handler) (*Provider, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.AppID = "test-app"
	cfg.Backend.Timeout = "5s"

	client := store.NewClient(cfg, zerolog.Nop())
	return NewProvider(store.NewAuthClient(client)), &calls
}

func TestCurrentWithoutTokenIsAnonymous(t *testing.T) {
	provider, calls := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	sess := provider.Current(context.Background())
	assert.Equal(t, StateAnonymous, sess.State)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCurrentWithExpiredTokenSkipsNetwork(t *testing.T) {
	provider, calls := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ctx := store.WithToken(context.Background(), signedToken(t, time.Now().Add(-time.Hour)))
	sess := provider.Current(ctx)
	assert.Equal(t, StateAnonymous, sess.State)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCurrentResolvesAndCachesIdentity(t *testing.T) {
	provider, calls := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u1","email":"ali@example.com","role":"fighter"}`))
	}))

	ctx := store.WithToken(context.Background(), signedToken(t, time.Now().Add(time.Hour)))

	sess := provider.Current(ctx)
	require.True(t, sess.IsAuthenticated())
	assert.Equal(t, "u1", sess.User.ID)

	provider.Current(ctx)
	assert.Equal(t, int32(1), calls.Load(), "second resolution must be served from cache")
}

func TestCurrentRejectedTokenIsAnonymous(t *testing.T) {
	provider, _ := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := store.WithToken(context.Background(), signedToken(t, time.Now().Add(time.Hour)))
	sess := provider.Current(ctx)
	assert.Equal(t, StateAnonymous, sess.State)
	assert.Nil(t, sess.User)
}

func TestCurrentBackendFailureStaysUnknown(t *testing.T) {
	provider, calls := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ctx := store.WithToken(context.Background(), signedToken(t, time.Now().Add(time.Hour)))
	sess := provider.Current(ctx)
	assert.Equal(t, StateUnknown, sess.State)

	before := calls.Load()
	provider.Current(ctx)
	assert.Greater(t, calls.Load(), before, "an unresolved session must not be cached")
}

func TestInvalidateDropsCacheEntry(t *testing.T) {
	provider, calls := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u1","email":"ali@example.com"}`))
	}))

	ctx := store.WithToken(context.Background(), signedToken(t, time.Now().Add(time.Hour)))
	provider.Current(ctx)
	provider.Invalidate(ctx)
	provider.Current(ctx)

	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenExpiredScreening(t *testing.T) {
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Minute))))
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Minute))))
	assert.False(t, tokenExpired("not-a-jwt"), "malformed tokens are left for the provider to judge")
}
