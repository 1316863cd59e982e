package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	earthColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	waterFill  = color.RGBA{R: 0, G: 191, B: 255, A: 140}
	waterLine  = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	alertColor = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// ExportCrossSection exports the channel cross-section to an image file
func ExportCrossSection(data CrossSectionData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Hydraulic Cross-Section: %s", data.BasinName)
	p.X.Label.Text = "Channel Width (m)"
	p.Y.Label.Text = "Elevation (m)"
	p.Add(plotter.NewGrid())

	b, z, h := data.BottomWidth, data.SideSlope, data.bankHeight()

	// Left bank top, left toe, right toe, right bank top
	bank := plotter.XYs{
		{X: -b/2 - z*h, Y: h},
		{X: -b / 2, Y: 0},
		{X: b / 2, Y: 0},
		{X: b/2 + z*h, Y: h},
	}
	bed, err := plotter.NewLine(bank)
	if err != nil {
		return err
	}
	bed.LineStyle.Width = vg.Points(3)
	bed.LineStyle.Color = color.Black

	// Flow area
	d := data.Depth
	water, err := plotter.NewPolygon(plotter.XYs{
		{X: -b / 2, Y: 0},
		{X: b / 2, Y: 0},
		{X: b/2 + z*d, Y: d},
		{X: -b/2 - z*d, Y: d},
	})
	if err != nil {
		return err
	}
	water.Color = waterFill
	water.LineStyle.Width = 0
	p.Add(water, bed)

	surface, err := plotter.NewLine(plotter.XYs{
		{X: -b/2 - z*d, Y: d},
		{X: b/2 + z*d, Y: d},
	})
	if err != nil {
		return err
	}
	surface.LineStyle.Width = vg.Points(2)
	surface.LineStyle.Color = waterLine
	p.Add(surface)
	p.Legend.Add(fmt.Sprintf("Water Level (%.2fm)", d), surface)
	p.Legend.Add("River Bed", bed)

	if data.Threshold > 0 {
		t := data.Threshold
		thr, err := plotter.NewLine(plotter.XYs{
			{X: -b/2 - z*t, Y: t},
			{X: b/2 + z*t, Y: t},
		})
		if err != nil {
			return err
		}
		thr.LineStyle.Color = alertColor
		thr.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(thr)
		p.Legend.Add(fmt.Sprintf("Threshold (%.2fm)", t), thr)
	}
	p.Legend.Top = true

	return save(p, 10*vg.Inch, 6*vg.Inch, filename)
}

// HistogramData holds Monte Carlo discharge samples and their summary lines
type HistogramData struct {
	Title   string
	Samples []float64
	Bins    int
	Mean    float64
	P95     float64
}

// ExportHistogram exports a histogram of discharge samples with the mean and
// 95th percentile marked
func ExportHistogram(data HistogramData, filename string) error {
	if len(data.Samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}
	bins := data.Bins
	if bins <= 0 {
		bins = 30
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Monte Carlo Discharge Distribution"
	}
	p.X.Label.Text = "Discharge (m³/s)"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(data.Samples), bins)
	if err != nil {
		return err
	}
	hist.FillColor = waterFill
	hist.LineStyle.Color = waterLine
	p.Add(hist)

	var peak float64
	for _, bin := range hist.Bins {
		peak = max(peak, bin.Weight)
	}

	marks := []struct {
		x     float64
		label string
		c     color.Color
	}{
		{data.Mean, fmt.Sprintf("Mean (%.2f)", data.Mean), earthColor},
		{data.P95, fmt.Sprintf("P95 (%.2f)", data.P95), alertColor},
	}
	for _, m := range marks {
		l, err := plotter.NewLine(plotter.XYs{{X: m.x, Y: 0}, {X: m.x, Y: peak}})
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = m.c
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
		p.Legend.Add(m.label, l)
	}
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes p in the format implied by the extension, defaulting to PNG
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
