package services

import "errors"

var (
	// ErrInsufficientFunds is returned when a balance or frozen-balance
	// mutation would take the field negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletSuspended is returned when a mutating operation targets a
	// wallet that is not active.
	ErrWalletSuspended = errors.New("wallet suspended")

	// ErrAlreadySettled is returned on a second release/refund attempt for
	// the same order. It indicates a caller bug and is never silently
	// ignored.
	ErrAlreadySettled = errors.New("escrow already settled")

	// ErrMatchNotFound is returned by confirm/reject when no match record
	// exists for the order. Benign: the match was already resolved or
	// expired.
	ErrMatchNotFound = errors.New("match not found")

	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotMatched is returned when a settlement is requested for an
	// order that never reached the matched state.
	ErrOrderNotMatched = errors.New("order not matched")

	// ErrConcurrentClaimLost is the retriable loss of a compare-and-swap
	// claim; the matching engine retries against the next candidate.
	ErrConcurrentClaimLost = errors.New("concurrent claim lost")

	// ErrUnknownOutcome is returned by Settle for an outcome other than
	// release or refund.
	ErrUnknownOutcome = errors.New("unknown settlement outcome")
)
