// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vizplot draws quick-look charts of tabular data.
//
// Usage:
//
//	vizplot hist  [flags] <data> <column>
//	vizplot count [flags] <data> <column>
//	vizplot pie   [flags] <data> <value column> <category column>
//
// <data> is a CSV file, an Excel workbook (.xlsx or .xlsm), or "-" to
// read CSV from standard input. The first row names the columns.
//
// hist draws a histogram of a numeric column with mean and median
// lines. count draws a bar chart of how often each value of a
// column occurs. pie sums a numeric column by category and draws
// each category's share as a donut chart.
//
// The chart is written to standard output, or to the file given by
// -o, as SVG unless -format or the extension of -o says otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/go-dataviz/internal/tabload"
	"github.com/aclements/go-dataviz/viz"
	"github.com/aclements/go-gg/table"
)

type subcommand struct {
	desc  string
	cmd   func(*flag.FlagSet) error
	flags *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, cmd func(*flag.FlagSet) error, flags *flag.FlagSet) {
	subcommands[name] = &subcommand{desc, cmd, flags}
}

func main() {
	log.SetPrefix("vizplot: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] <args...>\n\n", os.Args[0])
		names := make([]string, 0, len(subcommands))
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
		fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	if err := sub.cmd(sub.flags); err != nil {
		log.Fatal(err)
	}
}

// output holds the flags shared by every subcommand.
type output struct {
	path   string
	format string
	sheet  string
}

func (o *output) register(f *flag.FlagSet) {
	f.StringVar(&o.path, "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&o.format, "format", "", "output `format`: svg, png, pdf, eps, jpg or tiff (default from -o, else svg)")
	f.StringVar(&o.sheet, "sheet", "", "read Excel data from `sheet` (default: first sheet)")
}

// usage returns a FlagSet usage function for a subcommand taking
// the given arguments.
func usage(f *flag.FlagSet, args string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] %s\n", os.Args[0], f.Name(), args)
		f.PrintDefaults()
	}
}

// args checks that f has exactly n arguments and returns them.
func args(f *flag.FlagSet, n int) []string {
	if f.NArg() != n {
		f.Usage()
		os.Exit(2)
	}
	return f.Args()
}

func (o *output) load(path string) (*table.Table, error) {
	return tabload.File(path, o.sheet)
}

// formatFor returns the output format to use given the -format and
// -o flags.
func (o *output) formatFor() string {
	if o.format != "" {
		return o.format
	}
	if ext := strings.TrimPrefix(filepath.Ext(o.path), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "svg"
}

func (o *output) render(fig *viz.Figure) error {
	f := os.Stdout
	if o.path != "" {
		var err error
		f, err = os.Create(o.path)
		if err != nil {
			return err
		}
	}
	err := fig.Render(f, o.formatFor())
	if o.path != "" {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
