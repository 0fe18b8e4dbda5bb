package storage

import (
	"errors"

	"enricher/pkg/serrors"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrNotInitialized is the kind of errors caused by a missing schema
	// (tables not created yet). Storage.EnsureSchema remediates it.
	ErrNotInitialized = serrors.NewKind("STORE_NOT_INITIALIZED")
	// ErrJobsUnsupported is returned by backends without a job queue.
	ErrJobsUnsupported = errors.New("background jobs are not supported by this storage")
)
