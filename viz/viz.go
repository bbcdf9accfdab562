// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz renders quick-look charts from tabular data.
//
// Each chart kind is described by a struct whose zero-valued fields
// select reasonable defaults, in the style of ggstat. Calling Plot
// with a table returns a new Figure; nothing is drawn until the
// caller renders the figure. Figures share no state with each other,
// so independent figures may be built and rendered concurrently.
//
//	fig, err := viz.Distribution{X: "units_sold", KDE: true}.Plot(tab)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fig.Render(os.Stdout, "svg")
//
// The input table is never modified or retained.
package viz

import (
	"errors"
	"io"
	"strings"
	"unicode"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrEmpty is returned when the table has no rows.
	ErrEmpty = errors.New("empty table")

	// ErrUnknownColumn is returned when a named column does not
	// exist in the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNotNumeric is returned when a column that must hold
	// numbers holds something else, or holds no numbers at all.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrNotFinite is returned when a numeric column holds an
	// infinite value.
	ErrNotFinite = errors.New("column has infinite values")
)

// A Figure is a fully assembled chart and what was drawn on it.
type Figure struct {
	// Plot holds every mark of the chart.
	Plot *plot.Plot

	// Width and Height are the size Render draws at.
	Width, Height vg.Length

	// LegendTitle heads the legend, if any.
	LegendTitle string

	// Legend lists the legend entries in order. It is empty if
	// the figure has no legend.
	Legend []string

	// Labels lists the text annotations attached to marks, in
	// mark order.
	Labels []string

	// Categories lists the categories of a categorical chart in
	// their logical order.
	Categories []string
}

func newFigure(width, height vg.Length) *Figure {
	return &Figure{Plot: plot.New(), Width: width, Height: height}
}

// Render draws f to w in the given format. format may be any format
// accepted by gonum's plot.WriterTo, such as "svg", "png" or "pdf".
func (f *Figure) Render(w io.Writer, format string) error {
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// setTitle sets the figure title at the given point size.
func (f *Figure) setTitle(title string, size float64, bold bool) {
	f.Plot.Title.Text = title
	f.Plot.Title.TextStyle.Font.Size = vg.Points(size)
	if bold {
		f.Plot.Title.TextStyle.Font.Weight = xfont.WeightBold
	}
}

func (f *Figure) setAxisLabels(x, y string) {
	f.Plot.X.Label.Text = x
	f.Plot.X.Label.TextStyle.Font.Size = vg.Points(12)
	f.Plot.Y.Label.Text = y
	f.Plot.Y.Label.TextStyle.Font.Size = vg.Points(12)
}

// Humanize turns a column name into a display label. Underscores
// become spaces and every run of letters is capitalized: the first
// letter is upper case and the rest are lower case. Thus
// "units_sold" becomes "Units Sold".
func Humanize(name string) string {
	var b strings.Builder
	inWord := false
	for _, r := range name {
		if r == '_' {
			r = ' '
		}
		if unicode.IsLetter(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
