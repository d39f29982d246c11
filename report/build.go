package report

import (
	"errors"

	"github.com/pyrite-io/assay/types"
	"github.com/pyrite-io/assay/version"
)

// Build assembles a VersionReport from a reader's metadata.
//
// A malformed buffer does not make Build fail: the report's Status and
// Detail fields carry the probe verdict so hosts see the corruption
// diagnosis instead of a missing report. The semver path never fails,
// so the components are always populated.
func Build(r *version.Reader) *types.VersionReport {
	major, minor, patch := r.Components()
	rep := &types.VersionReport{
		ReportVersion: types.ReportVersion,
		SemvVersion:   r.SemvVersion(),
		Major:         major,
		Minor:         minor,
		Patch:         patch,
		BufferLen:     len(r.Raw()),
		Status:        types.ProbeStatusOK,
	}

	full, err := r.FullVersion()
	if err != nil {
		rep.Status = classify(err)
		detail := err.Error()
		rep.Detail = &detail
		return rep
	}

	rep.FullVersion = full
	return rep
}

// classify maps a metadata error to a probe status.
func classify(err error) types.ProbeStatus {
	switch {
	case errors.Is(err, version.ErrInvalidEncoding):
		return types.ProbeStatusBadEncoding
	case errors.Is(err, version.ErrMalformedBuffer):
		return types.ProbeStatusMalformed
	default:
		return types.ProbeStatusMalformed
	}
}
