// Package chart renders comparative line charts from a metrics catalog.
//
// Each chart plots one metric against node count: base protocols as solid
// lines with circular markers, colored from a deterministic cycle, and
// variant protocols as dotted, faded lines reusing the matched base's
// color. Charts are written as PNG files.
package chart

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dtnlab/dtnplot/internal/metrics"
)

// Logger interface for diagnostic output.
type Logger interface {
	Warn(format string, args ...interface{})
}

// Renderer draws one chart per metric from a catalog.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
	Logger Logger
}

// New returns a Renderer producing charts of the given size in inches.
// logger may be nil to suppress diagnostics.
func New(widthInches, heightInches float64, logger Logger) *Renderer {
	return &Renderer{
		Width:  vg.Length(widthInches) * vg.Inch,
		Height: vg.Length(heightInches) * vg.Inch,
		Logger: logger,
	}
}

// Render builds the chart for metric and writes it into outDir as
// <metric>.png, returning the file name.
func (r *Renderer) Render(catalog metrics.Catalog, metric metrics.Metric, outDir string) (string, error) {
	p, err := r.Build(catalog, metric)
	if err != nil {
		return "", err
	}
	name := string(metric) + ".png"
	if err := p.Save(r.Width, r.Height, filepath.Join(outDir, name)); err != nil {
		return "", fmt.Errorf("saving %s chart: %w", metric, err)
	}
	return name, nil
}

// Build assembles the plot for one metric without saving it. An empty
// catalog yields a valid chart with no series.
func (r *Renderer) Build(catalog metrics.Catalog, metric metrics.Metric) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = metric.Title()
	p.X.Label.Text = "Number of Nodes"
	p.Y.Label.Text = metric.YLabel()
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	bases, variants := catalog.Split()

	// Base protocols draw first so their color assignments are fixed
	// before any variant looks one up.
	colors := map[string]color.Color{}
	for i, name := range bases {
		pts := r.seriesPoints(catalog[name], metric, name)
		if len(pts) == 0 {
			r.warn("skipping %s: no %s data points", name, metric)
			continue
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("building %s series for %s: %w", metric, name, err)
		}
		c := plotutil.SoftColors[i%len(plotutil.SoftColors)]
		line.Color = c
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add(name, line, scatter)
		colors[name] = c
	}

	for _, name := range variants {
		pts := r.seriesPoints(catalog[name], metric, name)
		if len(pts) == 0 {
			r.warn("skipping %s: no %s data points", name, metric)
			continue
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("building %s series for %s: %w", metric, name, err)
		}
		line.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		// Unmatched variants keep the plotter default color.
		if base, ok := metrics.MatchBase(name, bases); ok {
			if c, drawn := colors[base]; drawn {
				f := faded(c)
				line.Color = f
				scatter.GlyphStyle.Color = f
			}
		}
		p.Add(line, scatter)
		p.Legend.Add(name, line, scatter)
	}

	return p, nil
}

// seriesPoints converts a series to plot points in ascending node-count
// order, dropping points the metric cannot compute (zero divisors).
func (r *Renderer) seriesPoints(series metrics.Series, metric metrics.Metric, protocol string) plotter.XYs {
	var pts plotter.XYs
	for _, n := range series.NodeCounts() {
		v, ok := metric.Value(series[n])
		if !ok {
			r.warn("skipping %s point for %s at %d nodes: zero divisor", metric, protocol, n)
			continue
		}
		pts = append(pts, plotter.XY{X: float64(n), Y: v})
	}
	return pts
}

// faded returns the color at reduced opacity for variant lines.
func faded(c color.Color) color.NRGBA {
	cr, cg, cb, _ := c.RGBA()
	return color.NRGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: 0xa0}
}

func (r *Renderer) warn(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Warn(format, args...)
	}
}
