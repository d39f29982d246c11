package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pyrite-io/assay/iox"
	"github.com/pyrite-io/assay/log"
	"github.com/pyrite-io/assay/report"
	"github.com/pyrite-io/assay/types"
	"github.com/pyrite-io/assay/version"
)

// OutFlag selects the report output path. Empty means stdout.
var OutFlag = &cli.StringFlag{
	Name:    "out",
	Aliases: []string{"o"},
	Usage:   "Write the report frame to a file instead of stdout",
}

// ReportCommand returns the report command.
// It emits one length-prefixed msgpack report frame for consumption by
// embedding hosts. A corrupt buffer still produces a frame; the probe
// verdict travels inside it.
func ReportCommand() *cli.Command {
	return &cli.Command{
		Name:   "report",
		Usage:  "Emit a machine-readable version report frame",
		Flags:  append(ReadOnlyFlags(), OutFlag),
		Action: reportAction,
	}
}

func reportAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for report command", 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = cfg.Report.Out
	}

	rep := report.Build(version.Default())

	if out == "" {
		return report.WriteFrame(os.Stdout, rep)
	}

	if err := writeReportFile(out, rep); err != nil {
		return err
	}
	log.NewLoggerAt("cli", cfg.LogLevel).Sugar().Infof("wrote version report frame to %s", out)
	return nil
}

// writeReportFile writes a single report frame to path.
// The close error matters for a file sink; it is only discarded on the
// write-error path where the frame is already lost.
func writeReportFile(path string, rep *types.VersionReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file %q: %w", path, err)
	}

	if err := report.WriteFrame(f, rep); err != nil {
		iox.DiscardClose(f)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot finalize report file %q: %w", path, err)
	}
	return nil
}
