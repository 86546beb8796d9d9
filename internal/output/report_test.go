package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintReport(t *testing.T) {
	summary := NewSummary("RUN1", "reports", "charts", testCatalog(), []string{"delivery.png", "overhead.png"}, 1)

	var buf bytes.Buffer
	PrintReport(&buf, summary)
	out := buf.String()

	for _, want := range []string{
		"Run ID:          RUN1",
		"Files skipped:   1",
		"Charts written:  2",
		"A-EMRT (variant of A)",
		"delivery.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPrintReport_EmptyCatalog(t *testing.T) {
	summary := NewSummary("RUN1", "reports", "charts", nil, nil, 0)

	var buf bytes.Buffer
	PrintReport(&buf, summary)

	if strings.Contains(buf.String(), "Protocols:\n  -") {
		t.Error("empty catalog should not list protocols")
	}
}

func TestPrintJSONReport(t *testing.T) {
	summary := NewSummary("RUN1", "reports", "charts", testCatalog(), []string{"latency.png"}, 0)

	var buf bytes.Buffer
	if err := PrintJSONReport(&buf, summary); err != nil {
		t.Fatal(err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.RunID != "RUN1" || len(decoded.Protocols) != 3 || len(decoded.Charts) != 1 {
		t.Errorf("unexpected decoded summary: %+v", decoded)
	}
	if decoded.Protocols[0].Samples[50].Delivery != 0.5 {
		t.Errorf("sample lost in round trip: %+v", decoded.Protocols[0])
	}
}
