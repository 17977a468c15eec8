package models

import (
	"strings"
	"time"
)

// OperationType enumerates the mutation kinds the write queue accepts.
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
)

// OperationStatus reflects where a queued operation is in its lifecycle.
// Completed operations are removed from the queue, so there is no "done"
// status persisted on disk.
type OperationStatus string

const (
	OperationPending  OperationStatus = "pending"
	OperationInFlight OperationStatus = "in_flight"
	OperationFailed   OperationStatus = "failed"
)

// Payload is the opaque key/value body of a domain record. The sync engine
// never interprets its contents beyond scanning string values for temporary
// record identifiers during reconciliation.
type Payload map[string]any

// Operation is a single durable queued mutation.
//
// Seq is assigned by the local store on insert and fixes the strict
// per-collection FIFO order. OperationID is a client-generated UUIDv7, so
// identifiers are unique and time-ordered across restarts; it doubles as the
// idempotency key sent with every remote apply attempt.
type Operation struct {
	Seq          int64           `json:"seq"`
	OperationID  string          `json:"operation_id"`
	Type         OperationType   `json:"type"`
	Collection   string          `json:"collection"`
	RecordID     string          `json:"record_id,omitempty"`
	Payload      Payload         `json:"payload,omitempty"`
	EnqueuedAt   time.Time       `json:"enqueued_at"`
	AttemptCount int             `json:"attempt_count"`
	LastError    string          `json:"last_error,omitempty"`
	Status       OperationStatus `json:"status"`
}

// OperationDescriptor is what domain services hand to the engine when they
// queue a write. RecordID is required for updates and deletes and must be
// empty for creates (the create's identifier does not exist yet).
type OperationDescriptor struct {
	Type       OperationType `json:"type"`
	Collection string        `json:"collection"`
	RecordID   string        `json:"record_id,omitempty"`
	Data       Payload       `json:"data,omitempty"`
}

// tempIDPrefix marks record identifiers assigned locally before the remote
// store has issued a permanent one. The remote store never produces ids with
// this shape.
const tempIDPrefix = "offline_"

// TempRecordID builds the temporary record identifier for an operation.
func TempRecordID(operationID string) string {
	return tempIDPrefix + operationID
}

// IsTempRecordID reports whether recordID is a locally assigned placeholder.
func IsTempRecordID(recordID string) bool {
	return strings.HasPrefix(recordID, tempIDPrefix)
}
