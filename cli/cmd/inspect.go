package cmd

import (
	"bytes"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/pyrite-io/assay/log"
	"github.com/pyrite-io/assay/report"
	"github.com/pyrite-io/assay/types"
	"github.com/pyrite-io/assay/version"
)

// InspectResponse is the response for the inspect command: raw buffer
// diagnostics plus the probe verdict. Unlike version, inspect never
// fails on corrupt metadata; the corruption is the output.
type InspectResponse struct {
	BufferLen        int               `json:"buffer_len"`
	TerminatorOffset *int              `json:"terminator_offset,omitempty"`
	TerminatorFinal  bool              `json:"terminator_final"`
	ValidUTF8        bool              `json:"valid_utf8"`
	Status           types.ProbeStatus `json:"status"`
	Detail           *string           `json:"detail,omitempty"`
}

// buildInspectResponse probes the reader's raw buffer.
func buildInspectResponse(r *version.Reader) InspectResponse {
	raw := r.Raw()
	rep := report.Build(r)

	resp := InspectResponse{
		BufferLen: len(raw),
		Status:    rep.Status,
		Detail:    rep.Detail,
	}

	nul := bytes.IndexByte(raw, 0)
	if nul >= 0 {
		resp.TerminatorOffset = &nul
		resp.TerminatorFinal = nul == len(raw)-1
		resp.ValidUTF8 = utf8.Valid(raw[:nul])
	}

	return resp
}

// InspectCommand returns the inspect command.
// Exit codes:
//   - 0: metadata healthy
//   - 2: metadata corrupt (engine misbuild)
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:   "inspect",
		Usage:  "Probe the engine's raw version buffer",
		Flags:  ReadOnlyFlags(),
		Action: inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for inspect command", 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	r, err := newRenderer(c, cfg)
	if err != nil {
		return err
	}

	resp := buildInspectResponse(version.Default())
	if err := r.Render(resp); err != nil {
		return err
	}

	if !resp.Status.Healthy() {
		log.NewLoggerAt("cli", cfg.LogLevel).Sugar().Warnf("engine version metadata corrupt: %s", resp.Status)
		return cli.Exit("", 2)
	}
	return nil
}
