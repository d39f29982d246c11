// Package native is the boundary with the embedded engine build.
//
// The engine's build stamps its version metadata into the binary as
// process-wide constants: a nul-terminated raw version buffer and three
// numeric release components. The values here mirror the engine's
// generated version header and are fixed for the lifetime of the
// process. This package only exposes read access; it never constructs,
// mutates, or frees any of the values.
package native

// rawVersion is the engine's full version string, nul-terminated,
// exactly as it appears in the engine's version header. The trailing
// nul is part of the buffer, not of the version text.
var rawVersion = []byte("0.8.2-rc.5-1-g809c746\x00")

// Engine release components, matching the numeric constants in the
// engine's version header.
const (
	versionMajor uint32 = 0
	versionMinor uint32 = 8
	versionPatch uint32 = 2
)

// RawVersion returns the engine's raw version buffer, including the
// trailing nul terminator.
//
// The returned slice aliases the process-wide backing storage and is
// valid for the entire process lifetime; no copy is made. Callers must
// treat it as read-only.
func RawVersion() []byte {
	return rawVersion
}

// VersionMajor returns the engine's major release component.
func VersionMajor() uint32 { return versionMajor }

// VersionMinor returns the engine's minor release component.
func VersionMinor() uint32 { return versionMinor }

// VersionPatch returns the engine's patch release component.
func VersionPatch() uint32 { return versionPatch }
