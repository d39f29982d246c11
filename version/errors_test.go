package version

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMetadataError_Message(t *testing.T) {
	cause := fmt.Errorf("no nul terminator in 5 bytes")
	err := newMetadataError(ErrMalformedBuffer, "full_version", cause)

	msg := err.Error()
	if !strings.Contains(msg, "full_version") {
		t.Errorf("message %q missing operation", msg)
	}
	if !strings.Contains(msg, "malformed version buffer") {
		t.Errorf("message %q missing classification", msg)
	}
	if !strings.Contains(msg, "no nul terminator") {
		t.Errorf("message %q missing cause", msg)
	}
}

func TestMetadataError_MessageWithoutCause(t *testing.T) {
	err := newMetadataError(ErrInvalidEncoding, "full_version", nil)

	msg := err.Error()
	if !strings.Contains(msg, "invalid version encoding") {
		t.Errorf("message %q missing classification", msg)
	}
}

func TestMetadataError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := newMetadataError(ErrMalformedBuffer, "full_version", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the underlying cause through Unwrap")
	}
}

func TestMetadataError_IsSentinel(t *testing.T) {
	err := newMetadataError(ErrInvalidEncoding, "full_version", nil)

	if !errors.Is(err, ErrInvalidEncoding) {
		t.Error("errors.Is should match the Kind sentinel")
	}
	if errors.Is(err, ErrMalformedBuffer) {
		t.Error("errors.Is must not match a different sentinel")
	}
}
