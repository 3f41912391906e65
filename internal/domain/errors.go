package domain

import "errors"

// Error kinds shared across modules. Handlers map these to HTTP status
// codes; repositories and services never pick status codes themselves.
var (
	ErrNotFound  = errors.New("not_found")
	ErrForbidden = errors.New("forbidden")

	// ErrStoreUnavailable covers backing-store faults. The underlying
	// driver error is logged where it occurs and must never reach a
	// response body.
	ErrStoreUnavailable = errors.New("store_unavailable")
)
