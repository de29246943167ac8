package domain

import "errors"

var (
	// ErrValidation marks bad input rejected before any storage access.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when a referenced unit, account or record is absent.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrConflict is returned when an atomic batch could not commit because of a
	// concurrent modification. The batch had no partial effect; callers may retry.
	ErrConflict = errors.New("concurrent modification")

	// ErrStorageUnavailable is returned on transient storage failures. The batch
	// had no partial effect; callers should retry with backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnitHasTransactions blocks hard deletion of a unit with ledger history.
	ErrUnitHasTransactions = errors.New("unit has ledger transactions")
)
