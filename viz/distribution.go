// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Distribution plots a histogram of a numeric column, with optional
// mean and median reference lines and a kernel density estimate.
//
// X is the only required field. All other fields have reasonable
// default zero values.
type Distribution struct {
	// X is the name of the numeric column to plot.
	X string

	// Bins is the number of equal-width bins spanning the range
	// of X. If Bins is 0, 15 bins are used. Negative values are
	// an error.
	Bins int

	// Color is the bar fill color. The default is light coral.
	Color color.Color

	// KDE overlays a kernel density estimate scaled to the
	// histogram's counts.
	KDE bool

	// NoMean and NoMedian suppress the solid mean line and the
	// dashed median line.
	NoMean, NoMedian bool
}

// kdePoints is the number of points the density estimate is sampled
// at.
const kdePoints = 200

// Plot returns a histogram of column d.X of t.
func (d Distribution) Plot(t *table.Table) (*Figure, error) {
	xs, err := floatColumn(t, d.X)
	if err != nil {
		return nil, err
	}
	xs = dropNaN(xs)
	if len(xs) == 0 {
		return nil, fmt.Errorf("column %q has no numeric data: %w", d.X, ErrNotNumeric)
	}
	bins := d.Bins
	if bins == 0 {
		bins = 15
	} else if bins < 0 {
		return nil, fmt.Errorf("bin count %d is not positive", bins)
	}
	fill := d.Color
	if fill == nil {
		fill = defaultHistColor
	}

	fig := newFigure(10*vg.Inch, 6*vg.Inch)
	p := fig.Plot
	name := Humanize(d.X)
	fig.setTitle("Distribution of "+name, 16, true)
	fig.setAxisLabels(name, "Frequency")

	edges, counts := histogram(xs, bins)
	width := edges[1] - edges[0]
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, bins),
		Width:     width,
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Color = color.Black
	top := 0.0
	for i := range h.Bins {
		h.Bins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: counts[i]}
		top = max(top, counts[i])
	}
	p.Add(h)

	if d.KDE {
		if curve := density(xs, float64(len(xs))*width); curve != nil {
			line, err := plotter.NewLine(curve)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Color = fill
			line.LineStyle.Width = vg.Points(1.5)
			p.Add(line)
			for _, pt := range curve {
				top = max(top, pt.Y)
			}
		}
	}
	top *= 1.05

	sample := stats.Sample{Xs: append([]float64(nil), xs...)}
	sample.Sort()
	if !d.NoMean {
		mean := sample.Mean()
		if err := fig.refLine(mean, top, fmt.Sprintf("Mean: %.2f", mean), defaultMeanColor, nil); err != nil {
			return nil, err
		}
	}
	if !d.NoMedian {
		median := sample.Quantile(0.5)
		dashes := []vg.Length{vg.Points(6), vg.Points(3)}
		if err := fig.refLine(median, top, fmt.Sprintf("Median: %.2f", median), defaultMedianColor, dashes); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(12)

	p.Y.Min, p.Y.Max = 0, top
	return fig, nil
}

// refLine draws a labeled vertical line at x from 0 to top.
func (f *Figure) refLine(x, top float64, label string, c color.Color, dashes []vg.Length) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = dashes
	f.Plot.Add(line)
	f.Plot.Legend.Add(label, line)
	f.Legend = append(f.Legend, label)
	return nil
}

// histogram divides [min(xs), max(xs)] into n equal-width bins and
// counts the elements of xs in each. Every bin is half-open except
// the last, which also includes its upper edge. If all xs are equal,
// the range is widened to a unit interval around them.
func histogram(xs []float64, n int) (edges, counts []float64) {
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges = vec.Linspace(lo, hi, n+1)
	counts = make([]float64, n)
	width := (hi - lo) / float64(n)
	for _, x := range xs {
		i := int((x - lo) / width)
		// Correct for rounding against the computed edges.
		for i > 0 && (i >= n || x < edges[i]) {
			i--
		}
		for i < n-1 && x >= edges[i+1] {
			i++
		}
		counts[i]++
	}
	return
}

// density samples a Gaussian kernel density estimate of xs across
// the range of xs, multiplied by scale. It returns nil if xs has no
// spread.
func density(xs []float64, scale float64) plotter.XYs {
	sample := stats.Sample{Xs: xs}
	lo, hi := sample.Bounds()
	if !(hi > lo) {
		return nil
	}
	kde := stats.KDE{
		Sample:    sample,
		Bandwidth: stats.BandwidthScott(sample),
	}
	ss := vec.Linspace(lo, hi, kdePoints)
	curve := make(plotter.XYs, len(ss))
	for i, x := range ss {
		curve[i] = plotter.XY{X: x, Y: kde.PDF(x) * scale}
	}
	return curve
}
