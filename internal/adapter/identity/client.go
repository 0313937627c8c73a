package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
)

// HTTPGate verifies bearer credentials against a remote identity provider.
type HTTPGate struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload of the provider's userinfo endpoint.
type response struct {
	UserID string `json:"user_id"`
}

// NewHTTPGate creates an HTTP identity gate with a default timeout.
func NewHTTPGate(baseURL string, logger *slog.Logger) (*HTTPGate, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("identity provider url must be absolute")
	}
	return &HTTPGate{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Verify exchanges the bearer credential for a user identity.
func (g *HTTPGate) Verify(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", domainErrors.ErrAuthenticationFailed
	}

	endpoint := *g.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/userinfo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return "", fmt.Errorf("decode identity response: %w", err)
		}
		if data.UserID == "" {
			return "", domainErrors.ErrAuthenticationFailed
		}
		return data.UserID, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", domainErrors.ErrAuthenticationFailed
	default:
		body, _ := io.ReadAll(resp.Body)
		g.logger.Error("identity request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("identity provider error: %s", resp.Status)
	}
}
