// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote health store.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrValidation] for 400/422, [ErrPermission] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote
// health store. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The remote store offers per-collection create/update/delete with no
// cross-operation transactionality; a create returns the permanent
// server-assigned record identifier.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Called by the application shell after sign-in
	// and on token rotation.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping performs a lightweight reachability probe against the remote
	// store's health endpoint. Returns nil when the store is reachable.
	// Used by the network monitor; must be cheap and side-effect free.
	Ping(ctx context.Context) error

	// Apply executes a single mutation against the remote store. The
	// operation's id is sent as the idempotency key so at-least-once
	// retries can be deduplicated server-side.
	//
	// For creates the returned string is the permanent record identifier
	// assigned by the store; for updates and deletes it is empty.
	// A response timeout is never a silent success: it surfaces as
	// [ErrUnavailable] and the attempt counts as transient.
	Apply(ctx context.Context, op models.Operation) (string, error)
}
