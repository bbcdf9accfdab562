// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Counts plots the number of occurrences of each distinct value of a
// categorical column as bars, most frequent first.
//
// X is the only required field.
type Counts struct {
	// X is the name of the categorical column.
	X string

	// Title, XLabel and YLabel override the generated title and
	// axis labels. By default the title is "<X> Distribution",
	// the category axis is labeled with X and the count axis is
	// labeled "Count".
	Title, XLabel, YLabel string

	// Color is the bar color. The default is Tableau blue.
	Color color.Color

	// Width and Height give the figure size. The default is 8x6
	// inches.
	Width, Height vg.Length

	// Annotate labels every bar with its count.
	Annotate bool

	// Horizontal lays the bars out along the Y axis, most
	// frequent at the top.
	Horizontal bool
}

// Plot returns a count plot of column c.X of t.
func (c Counts) Plot(t *table.Table) (*Figure, error) {
	col, err := column(t, c.X)
	if err != nil {
		return nil, err
	}
	labs, _, ok := labels(col)
	cats, counts := valueCounts(labs, ok)
	if len(cats) == 0 {
		return nil, fmt.Errorf("column %q has no values", c.X)
	}

	width, height := c.Width, c.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}
	fig := newFigure(width, height)
	fig.Categories = cats
	p := fig.Plot

	name := Humanize(c.X)
	title := c.Title
	if title == "" {
		title = name + " Distribution"
	}
	fig.setTitle(title, 14, false)
	catLabel, countLabel := name, "Count"
	xlabel, ylabel := catLabel, countLabel
	if c.Horizontal {
		xlabel, ylabel = countLabel, catLabel
	}
	if c.XLabel != "" {
		xlabel = c.XLabel
	}
	if c.YLabel != "" {
		ylabel = c.YLabel
	}
	fig.setAxisLabels(xlabel, ylabel)

	// Bars are drawn at positions 0..n-1. Horizontal bars count
	// up from the bottom, so reverse them to put the most
	// frequent category on top.
	n := len(cats)
	pos := func(i int) int {
		if c.Horizontal {
			return n - 1 - i
		}
		return i
	}
	vals := make(plotter.Values, n)
	names := make([]string, n)
	for i := range cats {
		vals[pos(i)] = float64(counts[i])
		names[pos(i)] = cats[i]
	}

	span := width
	if c.Horizontal {
		span = height
	}
	bars, err := plotter.NewBarChart(vals, barWidth(span, n))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = c.Horizontal
	bars.Color = c.Color
	if bars.Color == nil {
		bars.Color = defaultCountColor
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	if c.Horizontal {
		p.NominalY(names...)
	} else {
		p.NominalX(names...)
	}

	top := 0.0
	for _, v := range vals {
		top = max(top, v)
	}
	top *= 1.1
	if c.Horizontal {
		p.X.Min, p.X.Max = 0, top
	} else {
		p.Y.Min, p.Y.Max = 0, top
	}

	if c.Annotate {
		xys := make(plotter.XYs, n)
		texts := make([]string, n)
		for i := range cats {
			v, at := float64(counts[i]), float64(pos(i))
			if c.Horizontal {
				xys[i] = plotter.XY{X: v, Y: at}
			} else {
				xys[i] = plotter.XY{X: at, Y: v}
			}
			texts[i] = strconv.Itoa(counts[i])
		}
		lab, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return nil, err
		}
		for i := range lab.TextStyle {
			sty := &lab.TextStyle[i]
			sty.Font.Size = vg.Points(12)
			sty.Color = color.Black
			if c.Horizontal {
				sty.XAlign, sty.YAlign = text.XLeft, text.YCenter
			} else {
				sty.XAlign, sty.YAlign = text.XCenter, text.YBottom
			}
		}
		if c.Horizontal {
			lab.Offset = vg.Point{X: vg.Points(3)}
		} else {
			lab.Offset = vg.Point{Y: vg.Points(2)}
		}
		p.Add(lab)
		fig.Labels = texts
	}
	return fig, nil
}

// barWidth returns the width of each of n bars sharing span.
func barWidth(span vg.Length, n int) vg.Length {
	// Leave room for the axis and title, and a gap between bars.
	w := (span - 1.5*vg.Inch) / vg.Length(n) * 0.8
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	return w
}

// valueCounts counts the occurrences of each distinct label for
// which ok is true. The result is ordered by decreasing count, with
// ties in order of first appearance.
func valueCounts(labels []string, ok []bool) (cats []string, counts []int) {
	var present []string
	for i, l := range labels {
		if ok[i] {
			present = append(present, l)
		}
	}
	if len(present) == 0 {
		return nil, nil
	}

	// Agg groups in order of first appearance.
	tab := new(table.Builder).Add("category", present).Done()
	agg := table.Flatten(ggstat.Agg("category")(ggstat.AggCount("count")).F(tab))
	slice.Convert(&cats, agg.MustColumn("category"))
	slice.Convert(&counts, agg.MustColumn("count"))

	order := make([]int, len(cats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	sortedCats, sortedCounts := make([]string, len(cats)), make([]int, len(cats))
	for i, j := range order {
		sortedCats[i], sortedCounts[i] = cats[j], counts[j]
	}
	return sortedCats, sortedCounts
}
