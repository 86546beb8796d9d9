package metrics

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := map[string]Metric{
		"delivery": MetricDelivery,
		"OVERHEAD": MetricOverhead,
		" latency": MetricLatency,
		"d_by_l":   MetricDeliveryPerLatency,
		"d_by_o":   MetricDeliveryPerOverhead,
		"D_BY_LO":  MetricDeliveryPerLatencyOverhead,
	}
	for input, want := range cases {
		got, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("throughput"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestAll_Order(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 metrics, got %d", len(all))
	}
	if all[0] != MetricDelivery || all[5] != MetricDeliveryPerLatencyOverhead {
		t.Errorf("unexpected render order: %v", all)
	}
}

func TestValue_Raw(t *testing.T) {
	s := Sample{Delivery: 0.5, Overhead: 1.0, Latency: 100}

	if v, ok := MetricDelivery.Value(s); !ok || v != 0.5 {
		t.Errorf("delivery = %v, %v; want 0.5, true", v, ok)
	}
	if v, ok := MetricOverhead.Value(s); !ok || v != 1.0 {
		t.Errorf("overhead = %v, %v; want 1.0, true", v, ok)
	}
	if v, ok := MetricLatency.Value(s); !ok || v != 100 {
		t.Errorf("latency = %v, %v; want 100, true", v, ok)
	}
}

func TestValue_Derived(t *testing.T) {
	s := Sample{Delivery: 0.5, Overhead: 1.0, Latency: 100}

	if v, ok := MetricDeliveryPerOverhead.Value(s); !ok || v != 0.5 {
		t.Errorf("d_by_o = %v, %v; want 0.5, true", v, ok)
	}
	if v, ok := MetricDeliveryPerLatency.Value(s); !ok || v != 0.005 {
		t.Errorf("d_by_l = %v, %v; want 0.005, true", v, ok)
	}
	if v, ok := MetricDeliveryPerLatencyOverhead.Value(s); !ok || v != 0.005 {
		t.Errorf("d_by_lo = %v, %v; want 0.005, true", v, ok)
	}
}

func TestValue_ZeroDivisor(t *testing.T) {
	zeroLatency := Sample{Delivery: 0.5, Overhead: 2.0, Latency: 0}
	zeroOverhead := Sample{Delivery: 0.5, Overhead: 0, Latency: 100}

	if _, ok := MetricDeliveryPerLatency.Value(zeroLatency); ok {
		t.Error("d_by_l with zero latency should be undefined")
	}
	if _, ok := MetricDeliveryPerOverhead.Value(zeroOverhead); ok {
		t.Error("d_by_o with zero overhead should be undefined")
	}
	if _, ok := MetricDeliveryPerLatencyOverhead.Value(zeroLatency); ok {
		t.Error("d_by_lo with zero latency should be undefined")
	}
	if _, ok := MetricDeliveryPerLatencyOverhead.Value(zeroOverhead); ok {
		t.Error("d_by_lo with zero overhead should be undefined")
	}

	// Raw metrics stay defined even when a field is zero.
	if _, ok := MetricLatency.Value(zeroLatency); !ok {
		t.Error("raw latency should always be defined")
	}
}

func TestLabels(t *testing.T) {
	if MetricDelivery.Title() != "Nodes vs Delivery Ratio" {
		t.Errorf("unexpected delivery title: %q", MetricDelivery.Title())
	}
	if MetricLatency.YLabel() != "Average Latency (ms)" {
		t.Errorf("unexpected latency label: %q", MetricLatency.YLabel())
	}
}
