// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Share plots each category's share of a summed numeric column as a
// donut chart.
//
// Value and Category are required.
type Share struct {
	// Value is the name of the numeric column to sum.
	Value string

	// Category is the name of the column to group rows by.
	Category string

	// Title overrides the generated "<Value> Distribution by
	// <Category>" title.
	Title string

	// Width and Height give the figure size. The default is 10x8
	// inches.
	Width, Height vg.Length

	// Format is the fmt format of each wedge's percentage label.
	// The default is "%1.1f%%".
	Format string

	// Colors gives the wedge colors, cycling if there are more
	// wedges than colors. The default is the ColorBrewer Set1
	// palette.
	Colors []color.Color
}

const (
	// shareStart is the angle of the first wedge's leading edge.
	shareStart = 140 * math.Pi / 180

	// shareHole is the radius of the donut hole relative to the
	// outer radius.
	shareHole = 0.7

	// shareLegendRoom is how far right of the donut, in units of
	// its radius, the data area must extend to fit the legend.
	shareLegendRoom = 0.9

	wedgeSteps = 180
)

type shareGroup struct {
	label string
	key   float64
	sum   float64
}

// Plot returns a donut chart of column s.Value of t summed by column
// s.Category.
func (s Share) Plot(t *table.Table) (*Figure, error) {
	vals, err := floatColumn(t, s.Value)
	if err != nil {
		return nil, err
	}
	col, err := column(t, s.Category)
	if err != nil {
		return nil, err
	}
	groups := groupSums(col, vals)

	width, height := s.Width, s.Height
	if width == 0 {
		width = 10 * vg.Inch
	}
	if height == 0 {
		height = 8 * vg.Inch
	}
	format := s.Format
	if format == "" {
		format = "%1.1f%%"
	}

	fig := newFigure(width, height)
	p := fig.Plot
	title := s.Title
	if title == "" {
		title = Humanize(s.Value) + " Distribution by " + Humanize(s.Category)
	}
	fig.setTitle(title, 16, false)
	p.HideAxes()

	total := 0.0
	sums := make([]float64, len(groups))
	for i, g := range groups {
		if g.sum < 0 {
			return nil, fmt.Errorf("category %q of column %q sums to %v: shares cannot be negative", g.label, s.Value, g.sum)
		}
		sums[i] = g.sum
		total += g.sum
	}
	colors := palette(len(groups), s.Colors)

	var (
		at    plotter.XYs
		texts []string
	)
	angles := wedgeAngles(sums, total)
	for i, g := range groups {
		fig.Categories = append(fig.Categories, g.label)
		a0, a1 := angles[i], angles[i+1]
		if !(a1 > a0) {
			continue
		}
		poly, err := plotter.NewPolygon(wedge(a0, a1))
		if err != nil {
			return nil, err
		}
		poly.Color = colors[i]
		poly.LineStyle.Color = color.White
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)

		mid, r := (a0+a1)/2, (1+shareHole)/2
		at = append(at, plotter.XY{X: r * math.Cos(mid), Y: r * math.Sin(mid)})
		texts = append(texts, fmt.Sprintf(format, g.sum/total*100))
	}
	if len(texts) > 0 {
		lab, err := plotter.NewLabels(plotter.XYLabels{XYs: at, Labels: texts})
		if err != nil {
			return nil, err
		}
		for i := range lab.TextStyle {
			lab.TextStyle[i].XAlign = text.XCenter
			lab.TextStyle[i].YAlign = text.YCenter
			lab.TextStyle[i].Font.Size = vg.Points(11)
		}
		p.Add(lab)
		fig.Labels = texts
	}

	// The legend has no title of its own, so lead with a text-only
	// entry.
	fig.LegendTitle = Humanize(s.Category)
	p.Legend.Add(fig.LegendTitle)
	for i, g := range groups {
		p.Legend.Add(g.label, swatch{colors[i]})
		fig.Legend = append(fig.Legend, g.label)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	fig.squareRanges()
	return fig, nil
}

// squareRanges sets the data ranges so one data unit is the same
// length along both axes, the donut fits, and there is room for the
// legend on the right.
func (f *Figure) squareRanges() {
	p := f.Plot
	dataW := f.Width
	dataH := f.Height - p.Title.TextStyle.Height(p.Title.Text) - p.Title.Padding
	const r = 1.1
	needW := 2*r + shareLegendRoom
	xspan, yspan := float64(dataW)*2*r/float64(dataH), 2*r
	if xspan < needW {
		xspan, yspan = needW, needW*float64(dataH)/float64(dataW)
	}
	p.X.Min, p.X.Max = -r, -r+xspan
	p.Y.Min, p.Y.Max = -yspan/2, yspan/2
}

// wedgeAngles returns the wedge boundaries for sums, in radians,
// running counterclockwise from shareStart. Wedge i spans angles[i]
// to angles[i+1]. Zero sums, or a non-positive total, give empty
// wedges.
func wedgeAngles(sums []float64, total float64) []float64 {
	angles := make([]float64, len(sums)+1)
	angles[0] = shareStart
	for i, sum := range sums {
		angles[i+1] = angles[i]
		if total > 0 && sum > 0 {
			angles[i+1] += sum / total * 2 * math.Pi
		}
	}
	return angles
}

// wedge returns the outline of the ring segment between angles a0
// and a1, running along the outer edge and back along the hole.
func wedge(a0, a1 float64) plotter.XYs {
	n := int(math.Ceil((a1-a0)/(2*math.Pi)*wedgeSteps)) + 1
	pts := make(plotter.XYs, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, plotter.XY{X: math.Cos(a), Y: math.Sin(a)})
	}
	for i := n; i >= 0; i-- {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, plotter.XY{X: shareHole * math.Cos(a), Y: shareHole * math.Sin(a)})
	}
	return pts
}

// groupSums sums vals by the category label of each row, skipping
// rows with a missing category. A missing value counts as zero, so a
// category whose values are all missing still forms a group. Groups
// are ordered by category: numerically if col is numeric, otherwise
// by label.
func groupSums(col interface{}, vals []float64) []shareGroup {
	labs, keys, ok := labels(col)
	var cats []string
	var vs, ks []float64
	for i, l := range labs {
		if !ok[i] {
			continue
		}
		v := vals[i]
		if math.IsNaN(v) {
			v = 0
		}
		cats, vs = append(cats, l), append(vs, v)
		if keys != nil {
			ks = append(ks, keys[i])
		}
	}
	if len(cats) == 0 {
		return nil
	}

	b := new(table.Builder).Add("category", cats).Add("value", vs)
	if keys != nil {
		// Each label has one key, so Agg carries the key column
		// through as a per-group constant.
		b.Add("key", ks)
	}
	agg := table.Flatten(ggstat.Agg("category")(ggstat.AggSum("value")).F(b.Done()))
	var names []string
	var sums []float64
	slice.Convert(&names, agg.MustColumn("category"))
	slice.Convert(&sums, agg.MustColumn("sum value"))
	groups := make([]shareGroup, len(names))
	for i := range groups {
		groups[i] = shareGroup{label: names[i], sum: sums[i]}
	}
	if keys != nil {
		var gkeys []float64
		slice.Convert(&gkeys, agg.MustColumn("key"))
		for i := range groups {
			groups[i].key = gkeys[i]
		}
	}

	numeric := keys != nil
	sort.Slice(groups, func(i, j int) bool {
		if numeric {
			return groups[i].key < groups[j].key
		}
		return groups[i].label < groups[j].label
	})
	return groups
}

// swatch is a legend thumbnail filled with a solid color.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonY(pts))
}
