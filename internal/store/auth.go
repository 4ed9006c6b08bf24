package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
)

// AuthClient talks to the hosted auth provider attached to the entity store.
// Login itself is a redirect to the provider's page; this client only resolves
// and drops sessions.
type AuthClient struct {
	client *Client
}

// NewAuthClient wraps a store client for auth operations.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Me resolves the identity behind the bearer token carried by ctx.
// An unauthenticated session returns ErrUnauthenticated, which callers treat
// as a valid terminal state rather than a failure.
func (a *AuthClient) Me(ctx context.Context) (*models.User, error) {
	body, err := a.client.do(ctx, http.MethodGet, a.path("me"), nil, nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, apperrors.NewRemoteError("undecodable identity response", err)
	}
	if user.ID == "" {
		return nil, apperrors.NewAuthError("auth provider returned no identity")
	}
	return &user, nil
}

// Logout invalidates the session behind the bearer token carried by ctx.
func (a *AuthClient) Logout(ctx context.Context) error {
	_, err := a.client.do(ctx, http.MethodPost, a.path("logout"), nil, nil)
	if err != nil && !apperrors.Is(err, apperrors.ErrUnauthenticated) {
		return err
	}
	return nil
}

// LoginURL is the hosted login page; next is the in-app URL to return to.
func (a *AuthClient) LoginURL(next string) string {
	query := url.Values{}
	if next != "" {
		query.Set("from_url", next)
	}
	target := a.client.baseURL + a.path("login")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (a *AuthClient) path(op string) string {
	return fmt.Sprintf("/api/apps/%s/auth/%s", a.client.appID, op)
}
