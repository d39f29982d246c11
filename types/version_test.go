package types

import (
	"regexp"
	"testing"
)

func TestVersion_Format(t *testing.T) {
	// Version should be a valid semver
	semverRegex := regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not a valid semver", Version)
	}
}

func TestReportVersion_MatchesVersion(t *testing.T) {
	// Per lockstep versioning, ReportVersion must equal Version
	if ReportVersion != Version {
		t.Errorf("ReportVersion %q != Version %q (lockstep versioning violated)", ReportVersion, Version)
	}
}

func TestProbeStatus_Healthy(t *testing.T) {
	tests := []struct {
		status ProbeStatus
		want   bool
	}{
		{ProbeStatusOK, true},
		{ProbeStatusMalformed, false},
		{ProbeStatusBadEncoding, false},
	}

	for _, tt := range tests {
		if got := tt.status.Healthy(); got != tt.want {
			t.Errorf("%q.Healthy() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
