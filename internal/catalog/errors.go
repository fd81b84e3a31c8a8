package catalog

import "errors"

// Failure kinds surfaced by the catalog services. Every error returned by a
// service or store wraps exactly one of these, so callers classify with
// errors.Is and map to a transport status.
var (
	// ErrNotFound means an identifier did not resolve to a stored document.
	// Stores also report malformed identifiers as ErrNotFound rather than
	// failing, so a bad id behaves like a missing one.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is a unique-key collision on the category name.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidReference means a cross-entity identifier on a product or
	// stock write does not resolve to an existing document.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrStore is any failure of the store itself. Transient and permanent
	// failures are not distinguished; there is no retry logic.
	ErrStore = errors.New("store failure")
)
