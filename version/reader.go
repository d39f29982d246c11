package version

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/pyrite-io/assay/native"
)

// Reader derives version strings from an engine's version metadata.
//
// A Reader holds read-only views of the metadata it was constructed
// with and never mutates them. All methods are pure reads of immutable
// data; a single Reader is safe for use from any number of goroutines
// without coordination.
type Reader struct {
	raw   []byte
	major uint32
	minor uint32
	patch uint32
}

// NewReader creates a Reader over the given raw version buffer and
// release components. The buffer is borrowed, not copied; it must stay
// immutable for the Reader's lifetime.
func NewReader(raw []byte, major, minor, patch uint32) *Reader {
	return &Reader{
		raw:   raw,
		major: major,
		minor: minor,
		patch: patch,
	}
}

// defaultReader is bound to the embedded engine's process-wide
// constants. The constants are immutable for the process lifetime, so
// the binding needs no initialization order beyond package init.
var defaultReader = NewReader(
	native.RawVersion(),
	native.VersionMajor(),
	native.VersionMinor(),
	native.VersionPatch(),
)

// Default returns the Reader bound to the embedded engine.
func Default() *Reader {
	return defaultReader
}

// FullVersion returns the engine's full version string: the raw buffer
// content minus exactly the trailing nul terminator.
//
// Errors:
//   - ErrMalformedBuffer: the buffer is empty, has no nul terminator,
//     or contains a nul before the final position. More than one
//     terminator makes the buffer's interpretation ambiguous, so it is
//     rejected rather than truncated at the first nul.
//   - ErrInvalidEncoding: the content before the terminator is not
//     valid UTF-8.
//
// Both errors mean the embedding build stamped corrupt version
// metadata. They are configuration errors, not run-time faults; callers
// should surface them as fatal rather than retry.
func (r *Reader) FullVersion() (string, error) {
	const op = "full_version"

	if len(r.raw) == 0 {
		return "", newMetadataError(ErrMalformedBuffer, op, fmt.Errorf("empty buffer"))
	}

	nul := bytes.IndexByte(r.raw, 0)
	if nul < 0 {
		return "", newMetadataError(ErrMalformedBuffer, op,
			fmt.Errorf("no nul terminator in %d bytes", len(r.raw)))
	}
	if nul != len(r.raw)-1 {
		return "", newMetadataError(ErrMalformedBuffer, op,
			fmt.Errorf("interior nul at offset %d of %d bytes", nul, len(r.raw)))
	}

	content := r.raw[:nul]
	if !utf8.Valid(content) {
		return "", newMetadataError(ErrInvalidEncoding, op, nil)
	}

	return string(content), nil
}

// SemvVersion returns the engine's release as "MAJOR.MINOR.PATCH".
//
// The result is a freshly allocated string on every call; it is never
// cached, so two calls return independently owned equal values. There
// is no error path.
func (r *Reader) SemvVersion() string {
	return fmt.Sprintf("%d.%d.%d", r.major, r.minor, r.patch)
}

// Components returns the engine's release components.
func (r *Reader) Components() (major, minor, patch uint32) {
	return r.major, r.minor, r.patch
}

// Raw returns the raw version buffer the Reader was constructed with,
// terminator included. The slice is borrowed; callers must treat it as
// read-only. Diagnostic surfaces use this to report on the buffer
// itself rather than its decoded content.
func (r *Reader) Raw() []byte {
	return r.raw
}

// FullVersion returns the embedded engine's full version string.
// See Reader.FullVersion for the error contract.
func FullVersion() (string, error) {
	return defaultReader.FullVersion()
}

// SemvVersion returns the embedded engine's release as "MAJOR.MINOR.PATCH".
func SemvVersion() string {
	return defaultReader.SemvVersion()
}

// MustFullVersion is like FullVersion but panics on malformed metadata.
// Use it where a corrupt engine build should abort the process outright
// instead of propagating an error.
func MustFullVersion() string {
	v, err := FullVersion()
	if err != nil {
		panic(err)
	}
	return v
}
