package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

// Scan reads every recognized report file under dir and builds the catalog.
// Skipped files produce one diagnostic each via logger (which may be nil);
// only an unreadable directory is a fatal error.
//
// Entries are processed in os.ReadDir order, which is sorted by filename.
// When duplicate (protocol, node count) files exist the lexicographically
// last one wins.
func Scan(dir string, logger Logger) (metrics.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading reports directory: %w", err)
	}

	catalog := metrics.Catalog{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, reportSuffix) {
			warn(logger, "skipping %s: not a message stats report", name)
			continue
		}
		protocol, nodes, reason, ok := parseFileName(name)
		if !ok {
			warn(logger, "skipping %s: %s", name, reason)
			continue
		}
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			warn(logger, "skipping %s: %v", name, err)
			continue
		}
		sample, reason, ok := extractSample(body)
		if !ok {
			warn(logger, "skipping %s: %s", name, reason)
			continue
		}
		catalog.Insert(protocol, nodes, sample)
	}

	return catalog, nil
}
