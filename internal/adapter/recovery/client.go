// Package recovery talks to the remote password-recovery service. All calls
// go through httpcall so failures carry the uniform diagnostic messages.
package recovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/httpcall"
)

// Fallback strings used when the remote omits the field on success.
const (
	defaultRecoverMessage = "Recovery code sent"
	defaultResetToken     = "OK"
)

// Client exposes password recovery operations.
type Client interface {
	RecoverPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
}

// HTTPClient implements Client against the remote recovery API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type recoverRequest struct {
	Email string `json:"email"`
}

type recoverResponse struct {
	Message string `json:"message"`
}

type resetRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

type resetResponse struct {
	Token string `json:"token"`
}

// NewHTTPClient creates a recovery client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse recovery url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("recovery url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// RecoverPassword asks the remote to send a recovery code and returns the
// confirmation message.
func (c *HTTPClient) RecoverPassword(ctx context.Context, email string) (string, error) {
	resp, err := post[recoverResponse](ctx, c, "/api/auth/recover", recoverRequest{Email: email})
	if err != nil {
		c.logger.Error("password recovery failed", slog.String("error", err.Error()))
		return "", err
	}
	if resp.Message == "" {
		return defaultRecoverMessage, nil
	}
	return resp.Message, nil
}

// ResetPassword exchanges the recovery code for a new password and returns
// the session token issued by the remote.
func (c *HTTPClient) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	resp, err := post[resetResponse](ctx, c, "/api/auth/reset", resetRequest{Email: email, Code: code, Password: newPassword})
	if err != nil {
		c.logger.Error("password reset failed", slog.String("error", err.Error()))
		return "", err
	}
	if resp.Token == "" {
		return defaultResetToken, nil
	}
	return resp.Token, nil
}

func post[T any](ctx context.Context, c *HTTPClient, endpoint string, payload any) (*T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return httpcall.Do[T](ctx, c.httpClient, req)
}
