// Package errs defines the sentinel errors surfaced by the fpc core and its
// collaborator packages. Callers should check these with errors.Is rather
// than comparing error strings.
package errs

import "errors"

var (
	// ErrConfig is returned when a table size is zero or not a power of two.
	// It is raised synchronously before any buffer is touched.
	ErrConfig = errors.New("fpc: invalid table size")

	// ErrMalformedBlock is returned during decode when the residual runs out
	// of bytes while a value still needs to be read. Values already written
	// to the caller's output buffer before this error surfaces must be
	// treated as invalid.
	ErrMalformedBlock = errors.New("fpc: malformed compressed block")

	// ErrMalformedFraming is returned by the framing package when a
	// serialized buffer is shorter than the lengths it declares. It is
	// distinct from ErrMalformedBlock: a truncated serialized buffer and a
	// block whose header/residual accounting disagrees are different
	// failures, and callers should not conflate them.
	ErrMalformedFraming = errors.New("fpc: malformed framed block")
)
