package config

import (
	"fmt"
	"strings"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

// Config holds everything a dtnplot run needs: where to find the report
// files, where to write charts, which metrics to render, and the optional
// summary outputs.
type Config struct {
	ReportsDir string   `mapstructure:"reports"`
	OutputDir  string   `mapstructure:"out"`
	Metrics    []string `mapstructure:"metrics"`
	Width      float64  `mapstructure:"width"`
	Height     float64  `mapstructure:"height"`
	JSONOutput bool     `mapstructure:"json_output"`
	HTMLOutput string   `mapstructure:"html_output"`
	ConfigFile string   `mapstructure:"-"`
}

type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

func (c Config) Validate() error {
	var issues []string

	if strings.TrimSpace(c.ReportsDir) == "" {
		issues = append(issues, "reports directory is required")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		issues = append(issues, "output directory is required")
	}
	if c.Width <= 0 {
		issues = append(issues, "width must be > 0")
	}
	if c.Height <= 0 {
		issues = append(issues, "height must be > 0")
	}
	for _, name := range c.Metrics {
		if _, err := metrics.Parse(name); err != nil {
			issues = append(issues, err.Error())
		}
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}
	return nil
}

// SelectedMetrics resolves the configured metric names. An empty selection
// means all six metrics, in render order.
func (c Config) SelectedMetrics() ([]metrics.Metric, error) {
	if len(c.Metrics) == 0 {
		return metrics.All(), nil
	}
	selected := make([]metrics.Metric, 0, len(c.Metrics))
	for _, name := range c.Metrics {
		m, err := metrics.Parse(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, m)
	}
	return selected, nil
}
