package ingest

import "errors"

var (
	// ErrInvalidEnum marks a status or origin token outside the known set.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrMalformedRecord marks a row with the wrong field count or a
	// field that fails numeric coercion.
	ErrMalformedRecord = errors.New("malformed record")
)
