package report

import (
	"math"
	"strconv"
	"strings"
)

// parseStatus classifies the outcome of a numeric conversion. The extractor
// treats NotANumber and IsNaN identically (both reject the file), but they
// are kept distinct so diagnostics can name the actual failure.
type parseStatus int

const (
	parseOK parseStatus = iota
	parseNotANumber
	parseIsNaN
)

func (s parseStatus) String() string {
	switch s {
	case parseOK:
		return "ok"
	case parseNotANumber:
		return "not a number"
	case parseIsNaN:
		return "value is NaN"
	}
	return "unknown"
}

// parseNumber converts a matched field literal to a float64. A literal that
// parses but evaluates to NaN is a failure; infinities are kept as values.
func parseNumber(raw string) (float64, parseStatus) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, parseNotANumber
	}
	if math.IsNaN(v) {
		return 0, parseIsNaN
	}
	return v, parseOK
}
