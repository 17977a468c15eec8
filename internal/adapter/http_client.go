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

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

type httpRemoteStore struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// createResponse is the body the remote store returns for a successful
// create: the permanent identifier it assigned to the record.
type createResponse struct {
	ID string `json:"id"`
}

func NewHTTPRemoteStore(cfg config.ClientRemote, log *logger.Logger) (RemoteStore, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote store base URL is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	store := &httpRemoteStore{client: cli, logger: log}
	if cfg.AuthToken != "" {
		store.SetToken(cfg.AuthToken)
	}

	return store, nil
}

func (h *httpRemoteStore) SetToken(token string) {
	token = strings.TrimSpace(token)

	if subject, expired := inspectToken(token); subject != "" {
		if expired {
			h.logger.Warn().
				Str("func", "httpRemoteStore.SetToken").
				Str("subject", subject).
				Msg("bearer token is already expired; requests will be rejected")
		} else {
			h.logger.Debug().
				Str("func", "httpRemoteStore.SetToken").
				Str("subject", subject).
				Msg("bearer token updated")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health/ping")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Apply(ctx context.Context, op models.Operation) (string, error) {
	switch op.Type {
	case models.OperationCreate:
		return h.create(ctx, op)
	case models.OperationUpdate:
		return "", h.update(ctx, op)
	case models.OperationDelete:
		return "", h.delete(ctx, op)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperation, op.Type)
	}
}

func (h *httpRemoteStore) create(ctx context.Context, op models.Operation) (string, error) {
	resp, err := h.authedRequest(ctx, op).
		SetBody(op.Payload).
		Post("/api/" + op.Collection + "/")
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created createResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create response carries no record id")
	}

	return created.ID, nil
}

func (h *httpRemoteStore) update(ctx context.Context, op models.Operation) error {
	resp, err := h.authedRequest(ctx, op).
		SetBody(op.Payload).
		Put("/api/" + op.Collection + "/" + op.RecordID)
	if err != nil {
		return fmt.Errorf("%w: update request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) delete(ctx context.Context, op models.Operation) error {
	resp, err := h.authedRequest(ctx, op).
		Delete("/api/" + op.Collection + "/" + op.RecordID)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context, op models.Operation) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Idempotency-Key", op.OperationID)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// inspectToken extracts the subject claim and expiry state from a JWT
// without verifying the signature; verification happens server-side, the
// client only wants the claims for diagnostics.
func inspectToken(tokenString string) (subject string, expired bool) {
	if tokenString == "" {
		return "", false
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	subject, _ = claims.GetSubject()

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return subject, false
	}

	return subject, exp.Before(time.Now())
}
