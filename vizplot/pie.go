// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/aclements/go-dataviz/viz"
)

var pieFlags = flag.NewFlagSet("pie", flag.ExitOnError)

var pie struct {
	output
	title  string
	pct    string
	colors paletteFlag
	size   sizeFlag
}

func init() {
	f := pieFlags
	f.Usage = usage(f, "<data> <value column> <category column>")
	pie.output.register(f)
	f.StringVar(&pie.title, "title", "", "set the plot `title`")
	f.StringVar(&pie.pct, "pct", "%1.1f%%", "format percentages with fmt `format`")
	f.Var(&pie.colors, "colors", "color wedges from the space-separated `list` (default ColorBrewer Set1)")
	f.Var(&pie.size, "size", "figure size as `WxH` inches (default 10x8)")
	registerSubcommand("pie", "[flags] <data> <value column> <category column> - plot category shares", cmdPie, f)
}

func cmdPie(f *flag.FlagSet) error {
	a := args(f, 3)
	tab, err := pie.load(a[0])
	if err != nil {
		return err
	}
	fig, err := viz.Share{
		Value:    a[1],
		Category: a[2],
		Title:    pie.title,
		Width:    pie.size.w,
		Height:   pie.size.h,
		Format:   pie.pct,
		Colors:   pie.colors.cs,
	}.Plot(tab)
	if err != nil {
		return err
	}
	return pie.render(fig)
}
