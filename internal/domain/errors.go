package domain

import "errors"

// Storage-level sentinels shared between repositories and services.
var (
	// ErrDuplicateActiveOrder is returned when an insert loses the race on
	// the one-active-order-per-(user, workshop) unique index.
	ErrDuplicateActiveOrder = errors.New("active order already exists for user and workshop")

	// ErrDuplicateTransaction is returned when a ledger insert collides on
	// (user_id, reference_id, type); callers treat it as "already applied".
	ErrDuplicateTransaction = errors.New("reward transaction already recorded for reference")

	// ErrInsufficientBalance is returned when a debit would push the
	// available balance below zero. The debit is rejected before commit.
	ErrInsufficientBalance = errors.New("insufficient reward balance")
)
