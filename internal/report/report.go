// Package report extracts routing metrics from ONE simulator message stats
// reports. It scans a directory, filters filenames to the recognized
// MessageStatsReport shape, and pattern-matches the three labeled fields
// out of each file's freeform text.
package report

// Logger interface for diagnostic output.
type Logger interface {
	Warn(format string, args ...interface{})
}

func warn(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Warn(format, args...)
	}
}
