package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/config"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/pkg/helpers"
)

// Kind names an entity collection in the remote store.
type Kind string

const (
	KindUser    Kind = "User"
	KindFighter Kind = "Fighter"
	KindEvent   Kind = "Event"
	KindBout    Kind = "Bout"
	KindRSVP    Kind = "RSVP"
	KindWaiver  Kind = "Waiver"
	KindMessage Kind = "Message"
)

// Predicate is an exact-match filter over named fields.
type Predicate map[string]interface{}

// Client is the generic facade over the hosted entity store. Every record the
// application shows or creates goes through Filter, List or Create; the client
// owns no storage of its own.
type Client struct {
	http       *http.Client
	baseURL    string
	appID      string
	apiKey     string
	retryReads bool
	logger     zerolog.Logger
}

// NewClient builds a store client from the backend configuration.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		http: &http.Client{
			Timeout:   helpers.ParseDuration(cfg.Backend.Timeout, 10*time.Second),
			Transport: transport,
		},
		baseURL:    strings.TrimSuffix(cfg.Backend.BaseURL, "/"),
		appID:      cfg.Backend.AppID,
		apiKey:     cfg.Backend.APIKey,
		retryReads: cfg.Backend.RetryReads,
		logger:     logger.With().Str("component", "store").Logger(),
	}
}

type tokenContextKey struct{}

// WithToken returns a context carrying the caller's bearer token. Requests made
// with that context act as the user instead of the anonymous application.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// Filter returns all records of kind matching the exact-match predicate,
// optionally sorted by a field name where a leading '-' means descending.
// No matches is an empty slice, not an error.
func (c *Client) Filter(ctx context.Context, kind Kind, predicate Predicate, sort string) ([]json.RawMessage, error) {
	query := url.Values{}
	if len(predicate) > 0 {
		encoded, err := json.Marshal(predicate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unencodable predicate for %s: %v", kind, err))
		}
		query.Set("q", string(encoded))
	}
	if sort != "" {
		query.Set("sort", sort)
	}

	body, err := c.do(ctx, http.MethodGet, c.entityPath(kind), query, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(kind, body)
}

// List returns every record of kind, unfiltered.
func (c *Client) List(ctx context.Context, kind Kind) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, c.entityPath(kind), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(kind, body)
}

// Create persists a new record. The store assigns id and created_date and
// returns the persisted record.
func (c *Client) Create(ctx context.Context, kind Kind, record interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unencodable %s record: %v", kind, err))
	}
	return c.do(ctx, http.MethodPost, c.entityPath(kind), nil, payload)
}

func (c *Client) entityPath(kind Kind) string {
	return fmt.Sprintf("/api/apps/%s/entities/%s", c.appID, kind)
}

// do performs one request against the store and maps failures onto the error
// taxonomy. Reads get a single retry on transport failure or 5xx when enabled;
// writes are never retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	attempts := 1
	if method == http.MethodGet && c.retryReads {
		attempts = 2
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		body, retryable, err := c.doOnce(ctx, method, path, query, payload)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, payload []byte) (body []byte, retryable bool, err error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, false, apperrors.NewRemoteError("building store request failed", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("api_key", c.apiKey)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("requestID", requestID).Str("path", path).Msg("Store request transport failure")
		return nil, true, apperrors.NewRemoteError("entity store request failed", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, apperrors.NewRemoteError("reading store response failed", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, false, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, false, apperrors.NewAuthError("entity store rejected the session")
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, false, apperrors.NewValidationError(backendMessage(body))
	default:
		c.logger.Debug().Int("status", resp.StatusCode).Str("requestID", requestID).Str("path", path).Msg("Store request failed")
		return nil, resp.StatusCode >= 500, apperrors.NewRemoteError(fmt.Sprintf("entity store returned status %d", resp.StatusCode), nil)
	}
}

// decodeRecords accepts either a bare JSON array or the {"results": [...]}
// envelope some store deployments use.
func decodeRecords(kind Kind, body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, apperrors.NewRemoteError(fmt.Sprintf("undecodable %s listing", kind), err)
		}
		return records, nil
	}

	var envelope struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, apperrors.NewRemoteError(fmt.Sprintf("undecodable %s listing", kind), err)
	}
	return envelope.Results, nil
}

// backendMessage pulls the human-readable message out of a store error body,
// falling back to a generic string when the body is opaque.
func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return "the entity store rejected the payload"
}
