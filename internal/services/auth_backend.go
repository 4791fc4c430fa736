package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
)

// mockAuthenticator checks credentials against the local user directory,
// after a simulated network delay.
type mockAuthenticator struct {
	users   UserServicer
	latency time.Duration
}

// NewMockAuthenticator creates an Authenticator backed by the directory.
func NewMockAuthenticator(users UserServicer, latency time.Duration) Authenticator {
	return &mockAuthenticator{users: users, latency: latency}
}

// Authenticate resolves exactly once: either an identity or an error.
func (a *mockAuthenticator) Authenticate(ctx context.Context, username, password string) (*access.Identity, error) {
	if a.latency > 0 {
		timer := time.NewTimer(a.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	user, err := a.users.GetUserByUsername(username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !a.users.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	identity := user.Identity()
	return &identity, nil
}

// remoteAuthenticator delegates to a remote CRM backend.
type remoteAuthenticator struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemoteAuthenticator creates an Authenticator that posts credentials
// to {baseURL}/auth/login.
func NewRemoteAuthenticator(baseURL string, httpClient *http.Client) Authenticator {
	return &remoteAuthenticator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type remoteLoginResponse struct {
	Token string          `json:"token"`
	User  access.Identity `json:"user"`
}

// Authenticate performs a single login request; there is no retry.
func (a *remoteAuthenticator) Authenticate(ctx context.Context, username, password string) (*access.Identity, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, fmt.Errorf("posting login: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, fmt.Errorf("posting login: unexpected status %d", resp.StatusCode))
	}

	var result remoteLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, fmt.Errorf("decoding login response: %w", err))
	}
	if result.User.ID == "" || !result.User.Role.Valid() {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, fmt.Errorf("login response carries no usable identity"))
	}
	if result.User.AllowedCategories == nil {
		result.User.AllowedCategories = []string{}
	}
	return &result.User, nil
}
