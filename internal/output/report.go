package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintReport outputs a human-readable summary of the run.
func PrintReport(w io.Writer, summary Summary) {
	fmt.Fprintln(w, "\n--- DTN Routing Charts ---")
	fmt.Fprintf(w, "Run ID:          %s\n", summary.RunID)
	fmt.Fprintf(w, "Reports Dir:     %s\n", summary.ReportsDir)
	fmt.Fprintf(w, "Output Dir:      %s\n", summary.OutputDir)
	fmt.Fprintf(w, "Protocols:       %d\n", len(summary.Protocols))
	fmt.Fprintf(w, "Files skipped:   %d\n", summary.Skipped)
	fmt.Fprintf(w, "Charts written:  %d\n", len(summary.Charts))

	if len(summary.Protocols) > 0 {
		fmt.Fprintln(w, "\nProtocols:")
		for _, p := range summary.Protocols {
			label := p.Name
			if p.Variant {
				if p.Base != "" {
					label = fmt.Sprintf("%s (variant of %s)", p.Name, p.Base)
				} else {
					label = fmt.Sprintf("%s (variant, unmatched)", p.Name)
				}
			}
			fmt.Fprintf(w, "  - %s: nodes=%v\n", label, p.NodeCounts)
		}
	}

	if len(summary.Charts) > 0 {
		fmt.Fprintln(w, "\nCharts:")
		for _, chart := range summary.Charts {
			fmt.Fprintf(w, "  - %s\n", chart)
		}
	}
}

// PrintJSONReport outputs a JSON-formatted summary.
func PrintJSONReport(w io.Writer, summary Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
