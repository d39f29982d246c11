package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pyrite-io/assay/types"
	"github.com/pyrite-io/assay/version"
)

// VersionResponse is the response for the version command.
// Reports the assay project version alongside the embedded engine's
// version metadata.
type VersionResponse struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	EngineFull  string `json:"engine_full_version"`
	EngineSemv  string `json:"engine_semv_version"`
	EngineMajor uint32 `json:"engine_major"`
	EngineMinor uint32 `json:"engine_minor"`
	EnginePatch uint32 `json:"engine_patch"`
}

// buildVersionResponse assembles the response from the embedded engine.
// A metadata error here means the embedding build stamped corrupt
// version metadata; it is propagated, never masked with a partial
// response.
func buildVersionResponse(commit string) (VersionResponse, error) {
	r := version.Default()

	full, err := r.FullVersion()
	if err != nil {
		return VersionResponse{}, err
	}

	major, minor, patch := r.Components()
	return VersionResponse{
		Version:     types.Version,
		Commit:      commit,
		EngineFull:  full,
		EngineSemv:  r.SemvVersion(),
		EngineMajor: major,
		EngineMinor: minor,
		EnginePatch: patch,
	}, nil
}

// VersionCommand returns the version command.
// It reads only process-wide constants and never touches the engine
// beyond that.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show assay and engine version information",
		Flags:  ReadOnlyFlags(),
		Action: versionAction(commit),
	}
}

func versionAction(commit string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Bool("tui") {
			return cli.Exit("--tui is not supported for version command", 1)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		r, err := newRenderer(c, cfg)
		if err != nil {
			return err
		}

		resp, err := buildVersionResponse(commit)
		if err != nil {
			return cli.Exit("corrupt engine version metadata (misbuilt engine): "+err.Error(), 1)
		}

		return r.Render(resp)
	}
}
