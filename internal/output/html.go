package output

import (
	"fmt"
	"html/template"
	"io"
	"path"
	"time"
)

// GenerateHTMLReport generates a standalone HTML report with the run
// metadata, the extracted catalog, and links to the rendered charts. Chart
// image paths are resolved relative to the summary's output directory.
func GenerateHTMLReport(w io.Writer, summary Summary) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format(time.RFC3339)
		},
		"formatFloat": func(f float64) string {
			return fmt.Sprintf("%.4f", f)
		},
		"chartPath": func(name string) string {
			return path.Join(summary.OutputDir, name)
		},
	}).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(w, summary); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>DTN Routing Charts — {{.RunID}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; margin-top: 0.5rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: right; }
th { background: #f0f0f0; }
td.name, th.name { text-align: left; }
.variant { color: #666; font-style: italic; }
img { max-width: 100%; border: 1px solid #ddd; margin-top: 0.5rem; }
.meta { color: #555; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>DTN Routing Protocol Comparison</h1>
<p class="meta">
Run {{.RunID}} · generated {{formatTime .GeneratedAt}} ·
reports from <code>{{.ReportsDir}}</code> ·
{{.Skipped}} file(s) skipped
</p>

<h2>Extracted Results</h2>
<table>
<tr>
  <th class="name">Protocol</th><th>Nodes</th>
  <th>Delivery</th><th>Overhead</th><th>Latency (ms)</th>
</tr>
{{range $p := .Protocols}}{{range $n := $p.NodeCounts}}{{$s := index $p.Samples $n}}
<tr{{if $p.Variant}} class="variant"{{end}}>
  <td class="name">{{$p.Name}}{{if $p.Base}} (base: {{$p.Base}}){{end}}</td>
  <td>{{$n}}</td>
  <td>{{formatFloat $s.Delivery}}</td>
  <td>{{formatFloat $s.Overhead}}</td>
  <td>{{formatFloat $s.Latency}}</td>
</tr>
{{end}}{{end}}
</table>

<h2>Charts</h2>
{{range .Charts}}
<div><img src="{{chartPath .}}" alt="{{.}}"></div>
{{else}}
<p>No charts were rendered.</p>
{{end}}
</body>
</html>
`
