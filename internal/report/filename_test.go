package report

import "testing"

func TestParseFileName_Valid(t *testing.T) {
	cases := []struct {
		name     string
		protocol string
		nodes    int
	}{
		{"EBR_50_scenario_MessageStatsReport.txt", "EBR", 50},
		{"A-EMRT_50_x_MessageStatsReport.txt", "A-EMRT", 50},
		{"DBRP_250_MessageStatsReport.txt", "DBRP", 250},
		{"SprayAndWait_100_run3_extra_MessageStatsReport.txt", "SprayAndWait", 100},
		{"Epidemic_0_x_MessageStatsReport.txt", "Epidemic", 0},
	}
	for _, tc := range cases {
		protocol, nodes, reason, ok := parseFileName(tc.name)
		if !ok {
			t.Errorf("parseFileName(%q) rejected: %s", tc.name, reason)
			continue
		}
		if protocol != tc.protocol || nodes != tc.nodes {
			t.Errorf("parseFileName(%q) = %q, %d; want %q, %d", tc.name, protocol, nodes, tc.protocol, tc.nodes)
		}
	}
}

func TestParseFileName_Rejected(t *testing.T) {
	// Wrong suffix, non-numeric/negative/non-integer node counts, and
	// names without enough underscore-separated fields are all rejected.
	cases := []string{
		"EBR_50_scenario_MessageStatsReport.log",
		"EBR_abc_scenario_MessageStatsReport.txt",
		"EBR_-5_scenario_MessageStatsReport.txt",
		"EBR_1.5_scenario_MessageStatsReport.txt",
		"MessageStatsReport.txt",
		"EBR_MessageStatsReport.txt",
		"notes.txt",
	}
	for _, name := range cases {
		if _, _, _, ok := parseFileName(name); ok {
			t.Errorf("parseFileName(%q) accepted, want rejection", name)
		}
	}
}
