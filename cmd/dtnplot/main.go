package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/dtnlab/dtnplot/internal/chart"
	"github.com/dtnlab/dtnplot/internal/config"
	"github.com/dtnlab/dtnplot/internal/output"
	"github.com/dtnlab/dtnplot/internal/report"
)

// lockFileName guards the output directory against concurrent runs
// interleaving chart writes.
const lockFileName = ".dtnplot.lock"

// stderrWarnLogger emits diagnostics for skipped files and dropped points
// and counts them for the run summary.
type stderrWarnLogger struct {
	mu    sync.Mutex
	count int
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected, err := cfg.SelectedMetrics()
	if err != nil {
		return err
	}

	logger := &stderrWarnLogger{}

	catalog, err := report.Scan(cfg.ReportsDir, logger)
	if err != nil {
		return err
	}
	skipped := logger.Count()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("locking output directory: %w", err)
	}
	if !locked {
		return fmt.Errorf("output directory %s is in use by another run", cfg.OutputDir)
	}
	defer lock.Unlock()

	renderer := chart.New(cfg.Width, cfg.Height, logger)
	charts := make([]string, 0, len(selected))
	for _, metric := range selected {
		name, err := renderer.Render(catalog, metric, cfg.OutputDir)
		if err != nil {
			return err
		}
		charts = append(charts, name)
	}

	summary := output.NewSummary(output.NewRunID(), cfg.ReportsDir, cfg.OutputDir, catalog, charts, skipped)

	if err := output.WriteManifest(filepath.Join(cfg.OutputDir, output.ManifestName), summary); err != nil {
		return err
	}

	if cfg.HTMLOutput != "" {
		f, err := os.Create(cfg.HTMLOutput)
		if err != nil {
			return fmt.Errorf("creating HTML report: %w", err)
		}
		if err := output.GenerateHTMLReport(f, summary); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if cfg.JSONOutput {
		return output.PrintJSONReport(os.Stdout, summary)
	}
	output.PrintReport(os.Stdout, summary)
	return nil
}

func (l *stderrWarnLogger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
	fmt.Fprintf(os.Stderr, "[dtnplot] "+format+"\n", args...)
}

func (l *stderrWarnLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
