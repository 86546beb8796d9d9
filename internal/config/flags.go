package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlags registers all CLI flags to a cobra command.
func RegisterFlags(cmd *cobra.Command) {
	configureFlags(cmd.Flags())
}

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dtnplot",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	// Input/output flags
	flags.String("reports", "reports", "Directory containing MessageStatsReport files")
	flags.String("out", "charts", "Directory to write rendered charts to")

	// Chart flags
	flags.StringSlice("metric", nil, "Metric to render, repeatable: delivery|overhead|latency|d_by_l|d_by_o|d_by_lo (default all)")
	flags.Float64("width", 8, "Chart width in inches")
	flags.Float64("height", 5, "Chart height in inches")

	// Output flags
	flags.Bool("json-output", false, "Emit JSON formatted summary")
	flags.String("html-output", "", "Generate HTML report to the specified file path")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// applyFlagOverrides applies command-line flag values to the config,
// overriding values from the config file.
func applyFlagOverrides(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed("reports") {
		val, err := fs.GetString("reports")
		if err != nil {
			return err
		}
		cfg.ReportsDir = strings.TrimSpace(val)
	}
	if fs.Changed("out") {
		val, err := fs.GetString("out")
		if err != nil {
			return err
		}
		cfg.OutputDir = strings.TrimSpace(val)
	}
	if fs.Changed("metric") {
		val, err := fs.GetStringSlice("metric")
		if err != nil {
			return err
		}
		cfg.Metrics = val
	}
	if fs.Changed("width") {
		val, err := fs.GetFloat64("width")
		if err != nil {
			return err
		}
		cfg.Width = val
	}
	if fs.Changed("height") {
		val, err := fs.GetFloat64("height")
		if err != nil {
			return err
		}
		cfg.Height = val
	}
	if fs.Changed("json-output") {
		val, err := fs.GetBool("json-output")
		if err != nil {
			return err
		}
		cfg.JSONOutput = val
	}
	if fs.Changed("html-output") {
		val, err := fs.GetString("html-output")
		if err != nil {
			return err
		}
		cfg.HTMLOutput = strings.TrimSpace(val)
	}

	return nil
}
