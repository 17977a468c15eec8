package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

func newTestStore(t *testing.T, handler http.Handler) RemoteStore {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewHTTPRemoteStore(config.ClientRemote{
		BaseURL:        server.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return store
}

func testOperation(opType models.OperationType) models.Operation {
	return models.Operation{
		OperationID: "op-123",
		Type:        opType,
		Collection:  "medications",
		RecordID:    "rec-1",
		Payload:     models.Payload{"name": "Amoxicillin"},
	}
}

// ── Конструктор ──

func TestNewHTTPRemoteStore_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPRemoteStore(config.ClientRemote{}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPRemoteStore_TokenRoundTrip(t *testing.T) {
	store, err := NewHTTPRemoteStore(config.ClientRemote{BaseURL: "http://localhost:1"}, logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, store.Token())
	store.SetToken("  my-token  ")
	assert.Equal(t, "my-token", store.Token())
}

// ── Ping ──

func TestHTTPRemoteStore_Ping(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	assert.NoError(t, store.Ping(context.Background()))
}

func TestHTTPRemoteStore_PingUnreachable(t *testing.T) {
	store, err := NewHTTPRemoteStore(config.ClientRemote{
		BaseURL:        "http://127.0.0.1:1",
		RequestTimeout: 200 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Ping(context.Background()), ErrUnavailable)
}

// ── Apply: create ──

func TestHTTPRemoteStore_Create(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/medications/", r.URL.Path)
		assert.Equal(t, "op-123", r.Header.Get("Idempotency-Key"))

		var payload models.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, models.Payload{"name": "Amoxicillin"}, payload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "rec-42"}`))
	}))

	assignedID, err := store.Apply(context.Background(), testOperation(models.OperationCreate))
	require.NoError(t, err)
	assert.Equal(t, "rec-42", assignedID)
}

func TestHTTPRemoteStore_CreateSendsBearerToken(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "rec-42"}`))
	}))
	store.SetToken("my-token")

	_, err := store.Apply(context.Background(), testOperation(models.OperationCreate))
	require.NoError(t, err)
}

func TestHTTPRemoteStore_CreateWithoutAssignedID(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := store.Apply(context.Background(), testOperation(models.OperationCreate))
	assert.Error(t, err)
}

// ── Apply: update и delete ──

func TestHTTPRemoteStore_Update(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/medications/rec-1", r.URL.Path)
		assert.Equal(t, "op-123", r.Header.Get("Idempotency-Key"))
		w.WriteHeader(http.StatusOK)
	}))

	assignedID, err := store.Apply(context.Background(), testOperation(models.OperationUpdate))
	require.NoError(t, err)
	assert.Empty(t, assignedID)
}

func TestHTTPRemoteStore_Delete(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/medications/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	_, err := store.Apply(context.Background(), testOperation(models.OperationDelete))
	require.NoError(t, err)
}

func TestHTTPRemoteStore_UnsupportedOperation(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := store.Apply(context.Background(), testOperation("upsert"))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

// ── Классификация ошибок по статусам ──

func TestHTTPRemoteStore_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrValidation},
		{name: "unprocessable entity", status: http.StatusUnprocessableEntity, wantErr: ErrValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrPermission},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantErr: ErrUnavailable},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: ErrUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
			}))

			_, err := store.Apply(context.Background(), testOperation(models.OperationUpdate))
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}

// Таймаут ответа — это не тихий успех: операция остаётся в очереди
// и будет повторена с тем же идемпотентным ключом.
func TestHTTPRemoteStore_TimeoutIsUnavailable(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := store.Apply(ctx, testOperation(models.OperationUpdate))
	assert.ErrorIs(t, err, ErrUnavailable)
}
