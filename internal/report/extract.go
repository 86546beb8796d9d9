package report

import (
	"fmt"
	"regexp"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

// numberPattern accepts an optional sign, digits with an optional decimal
// point, an optional exponent, or the NaN/Inf literals. The enclosing
// field patterns apply (?i), which also covers the literal tokens.
const numberPattern = `([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|nan|inf)`

var (
	deliveryPattern = regexp.MustCompile(`(?i)delivery_prob\s*:\s*` + numberPattern)
	overheadPattern = regexp.MustCompile(`(?i)overhead_ratio\s*:\s*` + numberPattern)
	latencyPattern  = regexp.MustCompile(`(?i)latency_avg\s*:\s*` + numberPattern)
)

// extractSample pulls the three labeled fields out of a report body. Fields
// may appear anywhere in the text, in any order. Acceptance is
// all-or-nothing: a missing, malformed, or NaN field rejects the file and
// reason names the offending field.
func extractSample(body []byte) (sample metrics.Sample, reason string, ok bool) {
	fields := []struct {
		label   string
		pattern *regexp.Regexp
		dst     *float64
	}{
		{"delivery_prob", deliveryPattern, &sample.Delivery},
		{"overhead_ratio", overheadPattern, &sample.Overhead},
		{"latency_avg", latencyPattern, &sample.Latency},
	}

	for _, field := range fields {
		match := field.pattern.FindSubmatch(body)
		if match == nil {
			return metrics.Sample{}, fmt.Sprintf("field %s not found", field.label), false
		}
		value, status := parseNumber(string(match[1]))
		if status != parseOK {
			return metrics.Sample{}, fmt.Sprintf("field %s: %s", field.label, status), false
		}
		*field.dst = value
	}

	return sample, "", true
}
