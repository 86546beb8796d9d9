package config

import (
	"strings"
	"testing"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

func validConfig() Config {
	return Config{
		ReportsDir: "reports",
		OutputDir:  "charts",
		Width:      8,
		Height:     5,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Issues(t *testing.T) {
	cfg := Config{Metrics: []string{"bogus"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	issues := strings.Join(verr.Issues(), "; ")
	for _, want := range []string{"reports directory", "output directory", "width", "height", "bogus"} {
		if !strings.Contains(issues, want) {
			t.Errorf("issues %q missing %q", issues, want)
		}
	}
}

func TestSelectedMetrics_DefaultAll(t *testing.T) {
	selected, err := validConfig().SelectedMetrics()
	if err != nil {
		t.Fatal(err)
	}
	if len(selected) != 6 {
		t.Errorf("expected all 6 metrics, got %d", len(selected))
	}
}

func TestSelectedMetrics_Explicit(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics = []string{"delivery", "d_by_o"}
	selected, err := cfg.SelectedMetrics()
	if err != nil {
		t.Fatal(err)
	}
	if len(selected) != 2 || selected[0] != metrics.MetricDelivery || selected[1] != metrics.MetricDeliveryPerOverhead {
		t.Errorf("unexpected selection: %v", selected)
	}
}

func TestSelectedMetrics_Unknown(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics = []string{"throughput"}
	if _, err := cfg.SelectedMetrics(); err == nil {
		t.Error("expected error for unknown metric")
	}
}
