// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/aclements/go-dataviz/viz"
)

var histFlags = flag.NewFlagSet("hist", flag.ExitOnError)

var hist struct {
	output
	bins     int
	color    colorFlag
	kde      bool
	noMean   bool
	noMedian bool
}

func init() {
	f := histFlags
	f.Usage = usage(f, "<data> <column>")
	hist.output.register(f)
	f.IntVar(&hist.bins, "bins", 15, "divide the range into `N` bins")
	f.Var(&hist.color, "color", "fill bars with `color` (default lightcoral)")
	f.BoolVar(&hist.kde, "kde", false, "overlay a kernel density estimate")
	f.BoolVar(&hist.noMean, "no-mean", false, "omit the mean line")
	f.BoolVar(&hist.noMedian, "no-median", false, "omit the median line")
	registerSubcommand("hist", "[flags] <data> <column> - plot a histogram", cmdHist, f)
}

func cmdHist(f *flag.FlagSet) error {
	a := args(f, 2)
	if hist.bins <= 0 {
		return fmt.Errorf("-bins must be positive, got %d", hist.bins)
	}
	tab, err := hist.load(a[0])
	if err != nil {
		return err
	}
	fig, err := viz.Distribution{
		X:        a[1],
		Bins:     hist.bins,
		Color:    hist.color.c,
		KDE:      hist.kde,
		NoMean:   hist.noMean,
		NoMedian: hist.noMedian,
	}.Plot(tab)
	if err != nil {
		return err
	}
	return hist.render(fig)
}
