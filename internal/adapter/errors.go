package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. The sync engine
// classifies them into retryable and permanent outcomes.
var (
	// ErrUnavailable covers everything transient: connection failures,
	// timeouts, and 5xx/502/503/504 responses. Always retryable.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrValidation is a 400/422 rejection of the payload itself.
	// Retrying the same payload cannot succeed.
	ErrValidation = errors.New("remote store rejected payload")

	// ErrPermission is a 403 denial. Not retryable from the engine's
	// perspective; an alternate authorized write path is a domain-service
	// concern.
	ErrPermission = errors.New("remote store denied permission")

	// ErrUnauthorized is a 401: the bearer token is missing or expired.
	// The engine treats it as permanent; the application shell owns token
	// refresh.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is a 404 for updates/deletes targeting records the store
	// does not know.
	ErrNotFound = errors.New("remote record not found")

	// ErrUnsupportedOperation is returned for operation types the adapter
	// cannot route. Indicates a programming error, never retried.
	ErrUnsupportedOperation = errors.New("unsupported operation type")
)
