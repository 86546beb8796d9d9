// Package output renders run summaries: console text, JSON, a standalone
// HTML report, and the YAML manifest written next to the charts.
package output

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

// Summary aggregates what one dtnplot run extracted and produced.
type Summary struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	ReportsDir  string            `json:"reports_dir" yaml:"reports_dir"`
	OutputDir   string            `json:"output_dir" yaml:"output_dir"`
	Protocols   []ProtocolSummary `json:"protocols" yaml:"protocols"`
	Charts      []string          `json:"charts" yaml:"charts"`
	Skipped     int               `json:"skipped_files" yaml:"skipped_files"`
}

// ProtocolSummary describes one extracted protocol series.
type ProtocolSummary struct {
	Name       string                 `json:"name" yaml:"name"`
	Variant    bool                   `json:"variant" yaml:"variant"`
	Base       string                 `json:"base,omitempty" yaml:"base,omitempty"`
	NodeCounts []int                  `json:"node_counts" yaml:"node_counts"`
	Samples    map[int]metrics.Sample `json:"samples" yaml:"samples"`
}

// NewRunID returns a fresh ULID identifying one run. It is stamped into the
// manifest and the HTML report so chart sets can be told apart.
func NewRunID() string {
	return ulid.Make().String()
}

// NewSummary assembles the run summary from the extracted catalog and the
// chart files written.
func NewSummary(runID, reportsDir, outputDir string, catalog metrics.Catalog, charts []string, skipped int) Summary {
	bases, _ := catalog.Split()

	protocols := make([]ProtocolSummary, 0, len(catalog))
	for _, name := range catalog.Protocols() {
		ps := ProtocolSummary{
			Name:       name,
			Variant:    metrics.IsVariant(name),
			NodeCounts: catalog[name].NodeCounts(),
			Samples:    catalog[name],
		}
		if ps.Variant {
			if base, ok := metrics.MatchBase(name, bases); ok {
				ps.Base = base
			}
		}
		protocols = append(protocols, ps)
	}

	return Summary{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		ReportsDir:  reportsDir,
		OutputDir:   outputDir,
		Protocols:   protocols,
		Charts:      charts,
		Skipped:     skipped,
	}
}
