package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
)

// SessionClaims is the subset of the bearer token's JWT claims the daemon
// cares about: who it authenticated as, which tenant the session is scoped
// to, and when the session expires.
type SessionClaims struct {
	Subject   string
	TenantID  string
	ExpiresAt time.Time
}

type tokenClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

type httpRemoteAPI struct {
	client    *resty.Client
	probePath string
	logger    *logger.Logger

	mu     sync.RWMutex
	token  string
	claims SessionClaims
	active bool
}

// NewHTTPRemoteAPI constructs the resty-backed [RemoteAPI] implementation
// pointed at cfg.BaseURL.
func NewHTTPRemoteAPI(cfg config.Remote, log *logger.Logger) (RemoteAPI, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote base URL is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	probePath := cfg.ProbePath
	if probePath == "" {
		probePath = "/api/health"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpRemoteAPI{
		client:    cli,
		probePath: probePath,
		logger:    log,
	}, nil
}

func (h *httpRemoteAPI) Login(ctx context.Context, login, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": login, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	claims, err := parseSessionClaims(token)
	if err != nil {
		return fmt.Errorf("login parse session claims: %w", err)
	}

	h.mu.Lock()
	h.token = token
	h.claims = claims
	h.active = true
	h.mu.Unlock()

	h.logger.Info().
		Str("func", "httpRemoteAPI.Login").
		Str("subject", claims.Subject).
		Str("tenant_id", claims.TenantID).
		Time("expires_at", claims.ExpiresAt).
		Msg("remote session established")

	return nil
}

func (h *httpRemoteAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteAPI) Claims() (SessionClaims, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.claims, h.active
}

func (h *httpRemoteAPI) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.probePath)
	if err != nil {
		return fmt.Errorf("probe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAPI) SaveTransaction(ctx context.Context, payload json.RawMessage) error {
	return h.save(ctx, "/api/transactions/save", payload)
}

func (h *httpRemoteAPI) DeleteTransaction(ctx context.Context, entityID string) error {
	return h.delete(ctx, "/api/transactions/delete", entityID)
}

func (h *httpRemoteAPI) SaveInvoice(ctx context.Context, payload json.RawMessage) error {
	return h.save(ctx, "/api/invoices/save", payload)
}

func (h *httpRemoteAPI) DeleteInvoice(ctx context.Context, entityID string) error {
	return h.delete(ctx, "/api/invoices/delete", entityID)
}

func (h *httpRemoteAPI) SaveContact(ctx context.Context, payload json.RawMessage) error {
	return h.save(ctx, "/api/contacts/save", payload)
}

func (h *httpRemoteAPI) DeleteContact(ctx context.Context, entityID string) error {
	return h.delete(ctx, "/api/contacts/delete", entityID)
}

func (h *httpRemoteAPI) SaveUser(ctx context.Context, payload json.RawMessage) error {
	return h.save(ctx, "/api/users/save", payload)
}

func (h *httpRemoteAPI) DeleteUser(ctx context.Context, entityID string) error {
	return h.delete(ctx, "/api/users/delete", entityID)
}

func (h *httpRemoteAPI) save(ctx context.Context, path string, payload json.RawMessage) error {
	token := h.Token()
	if token == "" {
		return ErrNoSession
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody([]byte(payload)).
		Post(path)
	if err != nil {
		return fmt.Errorf("save request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAPI) delete(ctx context.Context, path, entityID string) error {
	token := h.Token()
	if token == "" {
		return ErrNoSession
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(map[string]string{"id": entityID}).
		Post(path)
	if err != nil {
		return fmt.Errorf("delete request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func parseBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("authorization header missing bearer token")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", errors.New("empty bearer token")
	}

	return token, nil
}

// parseSessionClaims decodes the token without verifying the signature.
// Signature verification happens on the remote side.
func parseSessionClaims(token string) (SessionClaims, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return SessionClaims{}, fmt.Errorf("parse jwt claims: %w", err)
	}

	parsed := SessionClaims{
		Subject:  claims.Subject,
		TenantID: claims.TenantID,
	}
	if claims.ExpiresAt != nil {
		parsed.ExpiresAt = claims.ExpiresAt.Time
	}

	return parsed, nil
}
