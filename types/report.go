package types

// ReportVersion is the version report contract version.
// Lockstep with Version: embedding hosts that decode report frames pin
// against this constant.
const ReportVersion = "0.1.0"

// ProbeStatus describes the outcome of probing the engine's version
// metadata.
type ProbeStatus string

// Probe status constants.
const (
	// ProbeStatusOK means the raw buffer is well formed and decodable.
	ProbeStatusOK ProbeStatus = "ok"
	// ProbeStatusMalformed means the raw buffer lacks a proper terminator.
	ProbeStatusMalformed ProbeStatus = "malformed"
	// ProbeStatusBadEncoding means the buffer content is not valid UTF-8.
	ProbeStatusBadEncoding ProbeStatus = "bad_encoding"
)

// Healthy returns true if the probe found decodable metadata.
func (s ProbeStatus) Healthy() bool {
	return s == ProbeStatusOK
}

// VersionReport is the wire envelope for engine version metadata.
// All fields use msgpack tags to match the host SDK wire format; json
// tags serve the CLI render surface.
type VersionReport struct {
	// ReportVersion is the semantic version of the report contract.
	ReportVersion string `msgpack:"report_version" json:"report_version"`
	// FullVersion is the engine's full version string. Empty when the
	// probe failed.
	FullVersion string `msgpack:"full_version" json:"full_version"`
	// SemvVersion is the engine's release as "MAJOR.MINOR.PATCH".
	SemvVersion string `msgpack:"semv_version" json:"semv_version"`
	// Major, Minor, Patch are the engine's release components.
	Major uint32 `msgpack:"major" json:"major"`
	Minor uint32 `msgpack:"minor" json:"minor"`
	Patch uint32 `msgpack:"patch" json:"patch"`
	// BufferLen is the raw buffer length in bytes, terminator included.
	BufferLen int `msgpack:"buffer_len" json:"buffer_len"`
	// Status is the probe verdict for the raw buffer.
	Status ProbeStatus `msgpack:"status" json:"status"`
	// Detail is the diagnostic for an unhealthy status, included when known.
	Detail *string `msgpack:"detail,omitempty" json:"detail,omitempty"`
}
