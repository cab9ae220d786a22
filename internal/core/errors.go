package core

import "errors"

var (
	// ErrStoreUnavailable means the history store cannot be reached. The
	// main flow recovers by proceeding without background context.
	ErrStoreUnavailable = errors.New("history store unavailable")

	// ErrDimensionMismatch means a stored embedding does not match the
	// query embedding's length. The record cannot be scored.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrRateLimited and ErrInvalidModel classify completion API failures.
	// Neither is recovered locally; the current invocation aborts.
	ErrRateLimited  = errors.New("rate limited by completion api")
	ErrInvalidModel = errors.New("unknown completion model")
)
