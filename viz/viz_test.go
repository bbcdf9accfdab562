// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestHumanize(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"units_sold", "Units Sold"},
		{"REVENUE", "Revenue"},
		{"sales_method", "Sales Method"},
		{"years_as_customer", "Years As Customer"},
		{"nb_site_visits", "Nb Site Visits"},
		{"x2y", "X2Y"},
		{"", ""},
	} {
		if got := Humanize(test.in); got != test.want {
			t.Errorf("Humanize(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestRender(t *testing.T) {
	tab := new(table.Builder).
		Add("revenue", []float64{10, 20, 20, 35, 50}).
		Add("method", []string{"Email", "Call", "Email", "Call", "Email"}).
		Done()

	for _, test := range []struct {
		name string
		plot func(*table.Table) (*Figure, error)
	}{
		{"distribution", Distribution{X: "revenue", KDE: true}.Plot},
		{"counts", Counts{X: "method", Annotate: true}.Plot},
		{"counts horizontal", Counts{X: "method", Horizontal: true}.Plot},
		{"share", Share{Value: "revenue", Category: "method"}.Plot},
	} {
		fig, err := test.plot(tab)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		var buf bytes.Buffer
		if err := fig.Render(&buf, "svg"); err != nil {
			t.Errorf("%s: rendering: %v", test.name, err)
			continue
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Errorf("%s: output is not SVG", test.name)
		}
	}
}

func TestRenderBadFormat(t *testing.T) {
	tab := new(table.Builder).Add("x", []int{1, 2, 3}).Done()
	fig, err := Distribution{X: "x"}.Plot(tab)
	if err != nil {
		t.Fatal(err)
	}
	if err := fig.Render(new(bytes.Buffer), "bogus"); err == nil {
		t.Fatal("want error for unknown format")
	}
}
