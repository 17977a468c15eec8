package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOperationNotFound is returned when a queue query targets an
	// operation id that does not exist, or when NextPending finds no pending
	// operation for the requested collection.
	ErrOperationNotFound = errors.New("operation was not found")

	// ErrOperationNotSaved is returned when an INSERT into the operations
	// table completes without error but the number of affected rows is zero,
	// indicating that the mutation was not actually persisted. The enqueue
	// must not be acknowledged to the caller in that case.
	ErrOperationNotSaved = errors.New("operation was not saved")

	// ErrRecordNotFound is returned when a cache query or rename targets a
	// (collection, record_id) pair that is not present in the cache.
	ErrRecordNotFound = errors.New("cached record was not found")

	// ErrInvalidStatusTransition is returned when a status mutation is
	// attempted on an operation whose current status does not permit it
	// (e.g. marking a pending operation done without it ever being picked
	// up by a drain pass).
	ErrInvalidStatusTransition = errors.New("invalid operation status transition")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingPayload is returned when a record payload cannot be encoded
	// to or decoded from its JSON column representation.
	ErrEncodingPayload = errors.New("failed to encode payload")
)
