// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/aclements/go-dataviz/viz"
)

var countFlags = flag.NewFlagSet("count", flag.ExitOnError)

var count struct {
	output
	title, xlabel, ylabel string
	color                 colorFlag
	size                  sizeFlag
	annotate              bool
	horizontal            bool
}

func init() {
	f := countFlags
	f.Usage = usage(f, "<data> <column>")
	count.output.register(f)
	f.StringVar(&count.title, "title", "", "set the plot `title`")
	f.StringVar(&count.xlabel, "xlabel", "", "set the X axis `label`")
	f.StringVar(&count.ylabel, "ylabel", "", "set the Y axis `label`")
	f.Var(&count.color, "color", "fill bars with `color` (default tab:blue)")
	f.Var(&count.size, "size", "figure size as `WxH` inches (default 8x6)")
	f.BoolVar(&count.annotate, "annotate", false, "label each bar with its count")
	f.BoolVar(&count.horizontal, "horizontal", false, "draw horizontal bars")
	registerSubcommand("count", "[flags] <data> <column> - plot category counts", cmdCount, f)
}

func cmdCount(f *flag.FlagSet) error {
	a := args(f, 2)
	tab, err := count.load(a[0])
	if err != nil {
		return err
	}
	fig, err := viz.Counts{
		X:          a[1],
		Title:      count.title,
		XLabel:     count.xlabel,
		YLabel:     count.ylabel,
		Color:      count.color.c,
		Width:      count.size.w,
		Height:     count.size.h,
		Annotate:   count.annotate,
		Horizontal: count.horizontal,
	}.Plot(tab)
	if err != nil {
		return err
	}
	return count.render(fig)
}
