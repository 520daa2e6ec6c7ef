package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/go-resty/resty/v2"
)

// HTTPBridgeConfig configures the HTTP implementation of [AutofillBridge].
type HTTPBridgeConfig struct {
	// BaseURL is the runtime's local endpoint, e.g. "http://127.0.0.1:18427".
	BaseURL string
	// SignKey is the shared HMAC key used to sign the bearer token presented
	// on every request.
	SignKey string
	// TokenIssuer identifies this agent in the token's iss claim.
	TokenIssuer string
	// TokenTTL bounds the lifetime of each issued bearer token.
	TokenTTL time.Duration
	// Timeout bounds each bridge call.
	Timeout time.Duration
}

// httpBridge talks to the autofill runtime's device-local HTTP endpoint.
// Every call posts a small JSON body and carries a short-lived signed
// bearer token.
type httpBridge struct {
	client *resty.Client
	cfg    HTTPBridgeConfig

	logger *logger.Logger
}

// NewHTTPBridge constructs an HTTP/JSON implementation of [AutofillBridge].
func NewHTTPBridge(cfg HTTPBridgeConfig, logger *logger.Logger) (AutofillBridge, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("empty bridge base url")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Minute
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = "go-pass-autofill"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBridge{client: cli, cfg: cfg, logger: logger}, nil
}

// IsSupported implements [AutofillBridge].
func (b *httpBridge) IsSupported(ctx context.Context) (bool, error) {
	return b.getFlag(ctx, "/api/autofill/supported")
}

// IsEnabled implements [AutofillBridge].
func (b *httpBridge) IsEnabled(ctx context.Context) (bool, error) {
	return b.getFlag(ctx, "/api/autofill/enabled")
}

// RequestEnable implements [AutofillBridge].
func (b *httpBridge) RequestEnable(ctx context.Context) error {
	return b.post(ctx, "/api/autofill/enable", nil)
}

// RequestDisable implements [AutofillBridge].
func (b *httpBridge) RequestDisable(ctx context.Context) error {
	return b.post(ctx, "/api/autofill/disable", nil)
}

// PrepareCredentials implements [AutofillBridge].
func (b *httpBridge) PrepareCredentials(ctx context.Context, credentials []models.CredentialEnvelope) error {
	return b.post(ctx, "/api/autofill/credentials", credentials)
}

// UpdateSettings implements [AutofillBridge].
func (b *httpBridge) UpdateSettings(ctx context.Context, policy models.SettingsPolicy) error {
	return b.post(ctx, "/api/autofill/settings", policy)
}

// ClearCache implements [AutofillBridge].
func (b *httpBridge) ClearCache(ctx context.Context) error {
	return b.post(ctx, "/api/autofill/clear-cache", nil)
}

// StoreDecryptedPasswordForAutofill implements [AutofillBridge].
func (b *httpBridge) StoreDecryptedPasswordForAutofill(ctx context.Context, credentialID, plaintext string) error {
	body := map[string]string{"credentialId": credentialID, "password": plaintext}
	return b.post(ctx, "/api/autofill/decrypted-password", body)
}

// UpdateDecryptResult implements [AutofillBridge].
func (b *httpBridge) UpdateDecryptResult(ctx context.Context, result models.DecryptResult) error {
	return b.post(ctx, "/api/autofill/decrypt-result", result)
}

func (b *httpBridge) post(ctx context.Context, path string, body any) error {
	token, err := utils.GenerateBridgeToken(b.cfg.TokenIssuer, b.cfg.TokenTTL, b.cfg.SignKey)
	if err != nil {
		return fmt.Errorf("sign bridge token: %w", err)
	}

	req := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBridgeUnavailable, err)
	}

	return mapBridgeError(resp)
}

func (b *httpBridge) getFlag(ctx context.Context, path string) (bool, error) {
	token, err := utils.GenerateBridgeToken(b.cfg.TokenIssuer, b.cfg.TokenTTL, b.cfg.SignKey)
	if err != nil {
		return false, fmt.Errorf("sign bridge token: %w", err)
	}

	var out struct {
		Value bool `json:"value"`
	}
	resp, err := b.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBridgeUnavailable, err)
	}
	if err = mapBridgeError(resp); err != nil {
		return false, err
	}

	return out.Value, nil
}

func mapBridgeError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("bridge responded %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
}
