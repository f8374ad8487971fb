// Package scanplot renders scan representations to PNG for offline
// inspection of range smoothing.
package scanplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/navscan/internal/scan"
)

var (
	rawColor      = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	smoothedColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	pointColor    = color.RGBA{R: 30, G: 90, B: 200, A: 255}
)

// Options controls plot titles and output size.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 14 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}
	return w, h
}

// Stats summarises the radii of a polar scan.
type Stats struct {
	Count      int
	MinRadius  float64
	MaxRadius  float64
	MeanRadius float64
}

// Summarize computes radius statistics. The zero Stats is returned for an
// empty scan.
func Summarize(points []scan.PolarPoint) Stats {
	if len(points) == 0 {
		return Stats{}
	}
	r := make([]float64, len(points))
	for i, p := range points {
		r[i] = float64(p.Radius)
	}
	return Stats{
		Count:      len(r),
		MinRadius:  floats.Min(r),
		MaxRadius:  floats.Max(r),
		MeanRadius: floats.Sum(r) / float64(len(r)),
	}
}

// RangeProfile writes a PNG plotting radius against bearing for the raw and
// smoothed polar points. Either series may be empty, but not both.
func RangeProfile(path string, raw, smoothed []scan.PolarPoint, opts Options) error {
	if len(raw) == 0 && len(smoothed) == 0 {
		return fmt.Errorf("no points to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Scan range profile"
	}
	p.X.Label.Text = "Bearing (rad)"
	p.Y.Label.Text = "Range (m)"

	if len(raw) > 0 {
		rawLine, err := plotter.NewLine(polarXYs(raw))
		if err != nil {
			return fmt.Errorf("raw series: %w", err)
		}
		rawLine.Color = rawColor
		rawLine.Width = vg.Points(1)
		p.Add(rawLine)
		p.Legend.Add("raw", rawLine)
	}

	if len(smoothed) > 0 {
		smoothLine, err := plotter.NewLine(polarXYs(smoothed))
		if err != nil {
			return fmt.Errorf("smoothed series: %w", err)
		}
		smoothLine.Color = smoothedColor
		smoothLine.Width = vg.Points(1)
		p.Add(smoothLine)
		p.Legend.Add("smoothed", smoothLine)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return save(p, path, opts)
}

// Footprint writes a PNG scatter of the scan in sensor-frame x/y.
func Footprint(path string, points []scan.CartesianPoint, opts Options) error {
	if len(points) == 0 {
		return fmt.Errorf("no points to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Scan footprint"
	}
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: float64(pt.X), Y: float64(pt.Y)}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("footprint series: %w", err)
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(scatter)

	return save(p, path, opts)
}

func polarXYs(points []scan.PolarPoint) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: float64(pt.Theta), Y: float64(pt.Radius)}
	}
	return xys
}

func save(p *plot.Plot, path string, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	w, h := opts.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
