// Package version exposes the embedded engine's version metadata as
// derived strings.
//
// This file defines sentinel errors and the error wrapper for
// classifying metadata failures. These enable callers to use
// errors.Is/errors.As for typed assertions rather than string matching.
package version

import (
	"errors"
	"fmt"
)

// Sentinel errors for metadata failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
//
// Both conditions mean the embedding build is broken: the engine was
// built or linked with corrupt version metadata. There is no transient
// cause, so neither is ever worth retrying.
var (
	// ErrMalformedBuffer indicates the raw version buffer has no nul
	// terminator, or the terminator is not the final byte.
	ErrMalformedBuffer = errors.New("malformed version buffer")

	// ErrInvalidEncoding indicates the bytes before the terminator are
	// not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid version encoding")
)

// MetadataError wraps an underlying cause with metadata classification.
// It preserves the cause in the chain for inspection via errors.As.
type MetadataError struct {
	// Kind is the sentinel error for classification (e.g., ErrMalformedBuffer).
	Kind error
	// Op is the operation that failed (e.g., "full_version").
	Op string
	// Err is the underlying cause, if any.
	Err error
}

func (e *MetadataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap returns the underlying cause for errors.Is/As chain traversal.
func (e *MetadataError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *MetadataError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// newMetadataError creates a classified metadata error.
func newMetadataError(kind error, op string, err error) *MetadataError {
	return &MetadataError{
		Kind: kind,
		Op:   op,
		Err:  err,
	}
}
