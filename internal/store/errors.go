package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQueueItemNotFound is returned when an operation targets a queue
	// item id that does not exist in the local database.
	ErrQueueItemNotFound = errors.New("queue item was not found")

	// ErrLockNotFound is returned when no offline lock record exists for the
	// requested tenant.
	ErrLockNotFound = errors.New("offline lock was not found")

	// ErrInvalidPayload is returned when an enqueued payload is empty or not
	// valid JSON. The queue never silently drops a mutation; a payload the
	// engine could not even dispatch is rejected up front.
	ErrInvalidPayload = errors.New("invalid queue item payload")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied. They are the durable-storage failure kind of the
// queue's error taxonomy: the queue never retries its own persistence.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. unsupported argument type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
