package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"learnloop-backend/internal/config"
)

// ProviderClient talks to the hosted auth provider's REST API. All credential
// and session validation lives on the provider side; this client only shapes
// requests and responses.
type ProviderClient struct {
	baseURL    string
	anonKey    string
	serviceKey string
	client     *http.Client
}

func NewProviderClient(cfg config.AuthConfig) *ProviderClient {
	return &ProviderClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// User is the provider's view of an account.
type User struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

// DisplayName pulls the display name out of the provider metadata, if set.
func (u *User) DisplayName() string {
	if u.UserMetadata == nil {
		return ""
	}
	if name, ok := u.UserMetadata["display_name"].(string); ok {
		return name
	}
	return ""
}

// Session is the provider's reply to a code exchange.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// ExchangeCode trades an authorization code for a session.
func (p *ProviderClient) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	body := map[string]string{"auth_code": code}

	var session Session
	err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=authorization_code", p.anonKey, "", body, &session)
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("provider returned no access token")
	}
	return &session, nil
}

// GetUser resolves an access token back to the account it belongs to.
func (p *ProviderClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	err := p.do(ctx, http.MethodGet, "/auth/v1/user", p.anonKey, accessToken, nil, &user)
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("provider returned no user")
	}
	return &user, nil
}

// AdminCreateUser registers a confirmed account through the provider's admin
// API using the service key.
func (p *ProviderClient) AdminCreateUser(ctx context.Context, email, password, displayName string) (*User, error) {
	body := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]string{"display_name": displayName},
	}

	var user User
	err := p.do(ctx, http.MethodPost, "/auth/v1/admin/users", p.serviceKey, p.serviceKey, body, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *ProviderClient) do(ctx context.Context, method, path, apiKey, bearer string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("auth provider: %s", providerErrorMessage(data, resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("invalid response from auth provider: %w", err)
		}
	}
	return nil
}

// providerErrorMessage digs the human-readable message out of the provider's
// error body, falling back to the status code.
func providerErrorMessage(data []byte, status int) string {
	var parsed struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		switch {
		case parsed.Msg != "":
			return parsed.Msg
		case parsed.Message != "":
			return parsed.Message
		case parsed.ErrorDescription != "":
			return parsed.ErrorDescription
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
