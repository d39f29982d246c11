package version

import (
	"errors"
	"regexp"
	"sync"
	"testing"
)

func wellFormed(s string) []byte {
	return append([]byte(s), 0)
}

func TestReader_FullVersion(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr error
	}{
		{"simple", wellFormed("1.2.3"), "1.2.3", nil},
		{"prerelease", wellFormed("0.8.2-rc.5-1-g809c746"), "0.8.2-rc.5-1-g809c746", nil},
		{"empty content", []byte{0}, "", nil},
		{"no terminator", []byte("1.2.3"), "", ErrMalformedBuffer},
		{"empty buffer", []byte{}, "", ErrMalformedBuffer},
		{"nil buffer", nil, "", ErrMalformedBuffer},
		{"interior nul", []byte("1.2\x003\x00"), "", ErrMalformedBuffer},
		{"leading nul", []byte("\x001.2.3\x00"), "", ErrMalformedBuffer},
		{"invalid utf8", []byte{'1', '.', 0xff, 0xfe, 0}, "", ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.raw, 1, 2, 3)
			got, err := r.FullVersion()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FullVersion() error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("FullVersion() = %q on error, want empty", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("FullVersion() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_FullVersion_Idempotent(t *testing.T) {
	r := NewReader(wellFormed("2.0.0-beta.1"), 2, 0, 0)

	first, err := r.FullVersion()
	if err != nil {
		t.Fatalf("first FullVersion() failed: %v", err)
	}
	second, err := r.FullVersion()
	if err != nil {
		t.Fatalf("second FullVersion() failed: %v", err)
	}

	if first != second {
		t.Errorf("FullVersion() not idempotent: %q then %q", first, second)
	}
}

func TestReader_FullVersion_ErrorIsClassified(t *testing.T) {
	r := NewReader([]byte("truncated"), 0, 0, 0)

	_, err := r.FullVersion()
	if err == nil {
		t.Fatal("expected error for unterminated buffer")
	}

	var metaErr *MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatalf("error %v is not a *MetadataError", err)
	}
	if metaErr.Op != "full_version" {
		t.Errorf("Op = %q, want %q", metaErr.Op, "full_version")
	}
	if !errors.Is(err, ErrMalformedBuffer) {
		t.Errorf("error %v does not match ErrMalformedBuffer", err)
	}
	if errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("error %v wrongly matches ErrInvalidEncoding", err)
	}
}

func TestReader_SemvVersion(t *testing.T) {
	tests := []struct {
		name                string
		major, minor, patch uint32
		want                string
	}{
		{"engine release", 0, 8, 2, "0.8.2"},
		{"zeros", 0, 0, 0, "0.0.0"},
		{"large components", 10, 200, 3000, "10.200.3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(wellFormed("x"), tt.major, tt.minor, tt.patch)
			if got := r.SemvVersion(); got != tt.want {
				t.Errorf("SemvVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_SemvVersion_AlwaysSemver(t *testing.T) {
	semverRegex := regexp.MustCompile(`^\d+\.\d+\.\d+$`)

	r := NewReader(wellFormed("whatever"), 1, 22, 333)
	got := r.SemvVersion()
	if !semverRegex.MatchString(got) {
		t.Errorf("SemvVersion() = %q, not MAJOR.MINOR.PATCH", got)
	}

	// Malformed buffers must not affect the component path.
	broken := NewReader([]byte("no terminator"), 4, 5, 6)
	if got := broken.SemvVersion(); got != "4.5.6" {
		t.Errorf("SemvVersion() = %q with broken buffer, want %q", got, "4.5.6")
	}
}

func TestDefault_BoundToEngine(t *testing.T) {
	full, err := FullVersion()
	if err != nil {
		t.Fatalf("FullVersion() failed against embedded engine: %v", err)
	}
	if full == "" {
		t.Error("FullVersion() returned empty string")
	}

	semv := SemvVersion()
	if !regexp.MustCompile(`^\d+\.\d+\.\d+$`).MatchString(semv) {
		t.Errorf("SemvVersion() = %q, not MAJOR.MINOR.PATCH", semv)
	}

	// The full version string of a release always begins with its
	// numeric components.
	if len(full) < len(semv) || full[:len(semv)] != semv {
		t.Errorf("full version %q does not begin with semver %q", full, semv)
	}
}

func TestMustFullVersion(t *testing.T) {
	if got := MustFullVersion(); got == "" {
		t.Error("MustFullVersion() returned empty string")
	}
}

func TestMustFullVersion_PanicsViaReader(t *testing.T) {
	// MustFullVersion reads the embedded engine, which is well formed;
	// exercise the panic contract through a broken standalone reader.
	r := NewReader([]byte("broken"), 0, 0, 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on malformed buffer")
		}
	}()

	v, err := r.FullVersion()
	if err != nil {
		panic(err)
	}
	_ = v
}

func TestReader_ConcurrentReads(t *testing.T) {
	r := NewReader(wellFormed("3.1.4-rc.1"), 3, 1, 4)

	const goroutines = 32
	const iterations = 100

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				full, err := r.FullVersion()
				if err != nil {
					errs <- err
					return
				}
				if full != "3.1.4-rc.1" {
					errs <- errors.New("corrupt full version: " + full)
					return
				}
				if semv := r.SemvVersion(); semv != "3.1.4" {
					errs <- errors.New("corrupt semver: " + semv)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
