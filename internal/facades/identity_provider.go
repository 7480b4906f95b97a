package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// ErrInvalidIdentity is returned when the provider rejects the token or
// the assertion lacks a user id.
var ErrInvalidIdentity = errors.New("invalid external identity")

type providerUser struct {
	ID           string `json:"id"`
	PrimaryEmail string `json:"primary_email"`
	DisplayName  string `json:"display_name"`
}

// IdentityProviderFacade resolves a provider access token into an identity.
type IdentityProviderFacade struct {
	client  *http.Client
	baseURL string
}

func NewIdentityProviderFacade(baseURL string, timeout time.Duration) *IdentityProviderFacade {
	return &IdentityProviderFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Enabled reports whether a provider endpoint is configured.
func (f *IdentityProviderFacade) Enabled() bool {
	return f.baseURL != ""
}

// Verify asks the provider who owns token.
func (f *IdentityProviderFacade) Verify(ctx context.Context, token string) (*models.ExternalIdentity, error) {
	if token == "" {
		return nil, ErrInvalidIdentity
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/users/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("identity provider unreachable", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidIdentity
	case resp.StatusCode/100 != 2:
		logger.Log.Errorw("identity provider error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if u.ID == "" {
		return nil, ErrInvalidIdentity
	}

	return &models.ExternalIdentity{
		UserID:   u.ID,
		Email:    strings.ToLower(strings.TrimSpace(u.PrimaryEmail)),
		Username: strings.TrimSpace(u.DisplayName),
	}, nil
}
