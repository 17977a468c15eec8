package service

import (
	"errors"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
)

// isRetryableRemoteError classifies a remote apply failure. Payload
// rejections, permission denials, expired tokens and missing-record errors
// cannot be fixed by retrying the identical request; everything else,
// including errors the adapter could not map, is treated as transient.
// Favoring retry over data loss is deliberate: a wrongly retried operation
// is deduplicated by its idempotency key, a wrongly discarded one is gone.
func isRetryableRemoteError(err error) bool {
	switch {
	case errors.Is(err, adapter.ErrValidation),
		errors.Is(err, adapter.ErrPermission),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrUnsupportedOperation):
		return false
	default:
		return true
	}
}
