package metrics

import (
	"fmt"
	"strings"
)

// Metric identifies one chartable quantity.
type Metric string

const (
	MetricDelivery Metric = "delivery"
	MetricOverhead Metric = "overhead"
	MetricLatency  Metric = "latency"

	// Derived composites, computed per sample from the raw fields.
	MetricDeliveryPerLatency         Metric = "d_by_l"
	MetricDeliveryPerOverhead        Metric = "d_by_o"
	MetricDeliveryPerLatencyOverhead Metric = "d_by_lo"
)

// All returns every metric in render order: raw metrics first, then the
// derived composites.
func All() []Metric {
	return []Metric{
		MetricDelivery,
		MetricOverhead,
		MetricLatency,
		MetricDeliveryPerLatency,
		MetricDeliveryPerOverhead,
		MetricDeliveryPerLatencyOverhead,
	}
}

// Parse converts a user-supplied metric name to a Metric.
func Parse(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case MetricDelivery, MetricOverhead, MetricLatency,
		MetricDeliveryPerLatency, MetricDeliveryPerOverhead, MetricDeliveryPerLatencyOverhead:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// Title returns the chart title for the metric.
func (m Metric) Title() string {
	switch m {
	case MetricDelivery:
		return "Nodes vs Delivery Ratio"
	case MetricOverhead:
		return "Nodes vs Overhead Ratio"
	case MetricLatency:
		return "Nodes vs Average Latency"
	case MetricDeliveryPerLatency:
		return "Nodes vs Delivery per Latency"
	case MetricDeliveryPerOverhead:
		return "Nodes vs Delivery per Overhead"
	case MetricDeliveryPerLatencyOverhead:
		return "Nodes vs Delivery per (Latency x Overhead)"
	}
	return string(m)
}

// YLabel returns the y-axis label for the metric. The x-axis is always
// "Number of Nodes".
func (m Metric) YLabel() string {
	switch m {
	case MetricDelivery:
		return "Delivery Ratio"
	case MetricOverhead:
		return "Overhead Ratio"
	case MetricLatency:
		return "Average Latency (ms)"
	case MetricDeliveryPerLatency:
		return "Delivery Ratio / Latency (1/ms)"
	case MetricDeliveryPerOverhead:
		return "Delivery Ratio / Overhead Ratio"
	case MetricDeliveryPerLatencyOverhead:
		return "Delivery Ratio / (Latency x Overhead)"
	}
	return string(m)
}

// Value computes the metric for one sample. For derived metrics a zero
// divisor makes the point undefined and ok is false; raw metrics are
// always defined.
func (m Metric) Value(s Sample) (value float64, ok bool) {
	switch m {
	case MetricDelivery:
		return s.Delivery, true
	case MetricOverhead:
		return s.Overhead, true
	case MetricLatency:
		return s.Latency, true
	case MetricDeliveryPerLatency:
		if s.Latency == 0 {
			return 0, false
		}
		return s.Delivery / s.Latency, true
	case MetricDeliveryPerOverhead:
		if s.Overhead == 0 {
			return 0, false
		}
		return s.Delivery / s.Overhead, true
	case MetricDeliveryPerLatencyOverhead:
		if s.Latency == 0 || s.Overhead == 0 {
			return 0, false
		}
		return s.Delivery / (s.Latency * s.Overhead), true
	}
	return 0, false
}
