// Package cmd provides CLI commands for the assay binary.
package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pyrite-io/assay/cli/config"
	"github.com/pyrite-io/assay/cli/render"
)

// Shared flags for all commands. Every assay command is read-only: the
// engine's version metadata cannot be written through this tool.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// NoColorFlag disables colored output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}

	// ConfigFlag points at an assay.yaml file with flag defaults.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to assay.yaml config file",
	}

	// TUIFlag exists so commands can reject it with an explicit message
	// instead of a generic "flag not defined" error. Version metadata is
	// two static strings; there is no interactive view of it.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Enable interactive TUI mode (not supported)",
	}
)

// ReadOnlyFlags returns the shared flags for all commands.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		NoColorFlag,
		ConfigFlag,
		TUIFlag,
	}
}

// loadConfig loads the config file named by --config.
// No flag means no config; commands fall back to built-in defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

// newRenderer builds a renderer from flags with config file fallback.
// Flag values win over config values; an unset format falls back to the
// TTY-based default.
func newRenderer(c *cli.Context, cfg *config.Config) (*render.Renderer, error) {
	formatStr := c.String("format")
	if formatStr == "" {
		formatStr = cfg.Format
	}

	format, err := render.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = render.DefaultFormat()
	}

	noColor := c.Bool("no-color") || cfg.NoColor
	return render.NewRendererWithWriter(format, noColor, os.Stdout), nil
}
