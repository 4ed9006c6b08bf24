package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercan/fightnight/internal/config"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.AppID = "test-app"
	cfg.Backend.APIKey = "test-key"
	cfg.Backend.Timeout = "5s"
	cfg.Backend.RetryReads = true
	return cfg
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(testConfig(server.URL), zerolog.Nop()), server
}

func TestFilterSendsPredicateAndSort(t *testing.T) {
	var gotQuery, gotSort, gotAPIKey, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apps/test-app/entities/Event", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotSort = r.URL.Query().Get("sort")
		gotAPIKey = r.Header.Get("api_key")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[{"id":"e1"},{"id":"e2"}]`))
	}))

	records, err := client.Filter(context.Background(), KindEvent, Predicate{"status": "published"}, "-created_date")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.JSONEq(t, `{"status":"published"}`, gotQuery)
	assert.Equal(t, "-created_date", gotSort)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.NotEmpty(t, gotRequestID)
}

func TestFilterNoMatchesIsEmptyNotError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	records, err := client.Filter(context.Background(), KindRSVP, Predicate{"event_id": "none"}, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListDecodesResultsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":"u1"}]}`))
	}))

	records, err := client.List(context.Background(), KindUser)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrUnauthenticated},
		{"forbidden", http.StatusForbidden, apperrors.ErrUnauthenticated},
		{"bad request", http.StatusBadRequest, apperrors.ErrValidation},
		{"unprocessable", http.StatusUnprocessableEntity, apperrors.ErrValidation},
		{"server error", http.StatusInternalServerError, apperrors.ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			}))

			_, err := client.Filter(context.Background(), KindEvent, nil, "")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.sentinel))
		})
	}
}

func TestReadsRetryOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":"e1"}]`))
	}))

	records, err := client.Filter(context.Background(), KindEvent, nil, "")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCreateNeverRetries(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Create(context.Background(), KindMessage, map[string]string{"body": "hello"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrRemote))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateReturnsPersistedRecord(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payload["id"] = "m1"
		json.NewEncoder(w).Encode(payload)
	}))

	raw, err := client.Create(context.Background(), KindMessage, map[string]string{"body": "hello"})
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, "m1", record["id"])
	assert.Equal(t, "hello", record["body"])
}

func TestBearerTokenTravelsFromContext(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	ctx := WithToken(context.Background(), "session-token")
	_, err := client.Filter(ctx, KindEvent, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestValidationErrorCarriesBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"title is required"}`))
	}))

	_, err := client.Create(context.Background(), KindEvent, map[string]string{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "title is required")
}
