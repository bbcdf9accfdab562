// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

func TestHistogram(t *testing.T) {
	for _, test := range []struct {
		xs         []float64
		n          int
		wantEdges  []float64
		wantCounts []float64
	}{
		{[]float64{0, 1, 2, 3, 4}, 2, []float64{0, 2, 4}, []float64{2, 3}},
		{[]float64{0, 1, 2, 3, 4}, 4, []float64{0, 1, 2, 3, 4}, []float64{1, 1, 1, 2}},
		{[]float64{5, 5, 5}, 2, []float64{4.5, 5, 5.5}, []float64{0, 3}},
		{[]float64{1}, 1, []float64{0.5, 1.5}, []float64{1}},
	} {
		edges, counts := histogram(test.xs, test.n)
		if diff := cmp.Diff(test.wantEdges, edges); diff != "" {
			t.Errorf("histogram(%v, %d) edges mismatch (-want +got):\n%s", test.xs, test.n, diff)
		}
		if diff := cmp.Diff(test.wantCounts, counts); diff != "" {
			t.Errorf("histogram(%v, %d) counts mismatch (-want +got):\n%s", test.xs, test.n, diff)
		}
	}
}

func TestHistogramTotal(t *testing.T) {
	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = math.Sin(float64(i)) * 3.7
	}
	_, counts := histogram(xs, 15)
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != float64(len(xs)) {
		t.Errorf("bin counts sum to %v, want %d", total, len(xs))
	}
}

func TestDistributionLines(t *testing.T) {
	tab := new(table.Builder).Add("units_sold", []int{1, 2, 3, 4, 10}).Done()

	fig, err := Distribution{X: "units_sold"}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mean: 4.00", "Median: 3.00"}
	if diff := cmp.Diff(want, fig.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
	if got, want := fig.Plot.Title.Text, "Distribution of Units Sold"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := fig.Plot.X.Label.Text, "Units Sold"; got != want {
		t.Errorf("x label = %q, want %q", got, want)
	}
	if got, want := fig.Plot.Y.Label.Text, "Frequency"; got != want {
		t.Errorf("y label = %q, want %q", got, want)
	}

	fig, err = Distribution{X: "units_sold", NoMedian: true}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Mean: 4.00"}, fig.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
}

func TestDistributionRounding(t *testing.T) {
	col := []float64{1, math.NaN(), 2, 2, 3.005}
	tab := new(table.Builder).Add("x", col).Done()
	fig, err := Distribution{X: "x"}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	if col[2] != 2 || !math.IsNaN(col[1]) {
		t.Errorf("Plot modified its input: %v", col)
	}
	// Mean of 1, 2, 2, 3.005 is 2.00125; the median is 2.
	want := []string{"Mean: 2.00", "Median: 2.00"}
	if diff := cmp.Diff(want, fig.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
}

func TestDistributionNoLegend(t *testing.T) {
	tab := new(table.Builder).Add("x", []float64{1, 2, 3}).Done()
	fig, err := Distribution{X: "x", NoMean: true, NoMedian: true, KDE: true}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Legend) != 0 {
		t.Errorf("want no legend, got %q", fig.Legend)
	}
}

func TestDistributionKDEConstant(t *testing.T) {
	// A column with no spread has no density estimate, but
	// still plots.
	tab := new(table.Builder).Add("x", []float64{7, 7, 7}).Done()
	if _, err := (Distribution{X: "x", KDE: true}).Plot(tab); err != nil {
		t.Fatal(err)
	}
	if density([]float64{7, 7}, 1) != nil {
		t.Error("density of constant sample should be nil")
	}
}

func TestDensityScale(t *testing.T) {
	xs := []float64{-2, -1, -0.5, 0, 0, 0.5, 1, 2}
	curve := density(xs, 10)
	if len(curve) != kdePoints {
		t.Fatalf("len(curve) = %d, want %d", len(curve), kdePoints)
	}
	if math.Abs(curve[0].X+2) > 1e-9 || math.Abs(curve[len(curve)-1].X-2) > 1e-9 {
		t.Errorf("curve spans [%v, %v], want [-2, 2]", curve[0].X, curve[len(curve)-1].X)
	}
	// The scaled density integrates to a bit under 10 over the
	// sample range.
	area := 0.0
	for i := 1; i < len(curve); i++ {
		area += (curve[i].X - curve[i-1].X) * (curve[i].Y + curve[i-1].Y) / 2
	}
	if area <= 5 || area > 10 {
		t.Errorf("scaled density area = %v, want in (5, 10]", area)
	}
}

func TestDistributionErrors(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("s", []string{"a", "b", "c"}).
		Add("nan", []float64{math.NaN(), math.NaN(), math.NaN()}).
		Add("inf", []float64{1, 2, math.Inf(1)}).
		Add("neginf", []float64{math.Inf(-1), 2, 3}).
		Done()
	empty := new(table.Builder).Add("x", []float64{}).Done()

	for _, test := range []struct {
		name string
		tab  *table.Table
		d    Distribution
		want error
	}{
		{"empty", empty, Distribution{X: "x"}, ErrEmpty},
		{"missing", tab, Distribution{X: "y"}, ErrUnknownColumn},
		{"strings", tab, Distribution{X: "s"}, ErrNotNumeric},
		{"all NaN", tab, Distribution{X: "nan"}, ErrNotNumeric},
		{"+Inf", tab, Distribution{X: "inf"}, ErrNotFinite},
		{"-Inf", tab, Distribution{X: "neginf", KDE: true}, ErrNotFinite},
		{"negative bins", tab, Distribution{X: "x", Bins: -1}, nil},
	} {
		_, err := test.d.Plot(test.tab)
		if err == nil {
			t.Errorf("%s: want error", test.name)
		} else if test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, err)
		}
	}
}

func TestDistributionEvenMedian(t *testing.T) {
	// An even-length sample interpolates between the middle pair.
	tab := new(table.Builder).Add("x", []int{10, 1, 3, 2}).Done()
	fig, err := Distribution{X: "x"}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mean: 4.00", "Median: 2.50"}
	if diff := cmp.Diff(want, fig.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
}
