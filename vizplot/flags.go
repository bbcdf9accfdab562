// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-dataviz/viz"
	"github.com/kballard/go-shellquote"
	"gonum.org/v1/plot/vg"
)

// sizeFlag is a figure size given as WxH in inches. The zero value
// selects the chart's default size.
type sizeFlag struct {
	w, h vg.Length
}

func (s *sizeFlag) String() string {
	if s.w == 0 && s.h == 0 {
		return ""
	}
	return fmt.Sprintf("%gx%g", s.w/vg.Inch, s.h/vg.Inch)
}

func (s *sizeFlag) Set(v string) error {
	ws, hs, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return fmt.Errorf("size must be WxH")
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return err
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size must be positive")
	}
	s.w, s.h = vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch
	return nil
}

// colorFlag is a single color. The zero value selects the chart's
// default color.
type colorFlag struct {
	c    color.Color
	name string
}

func (c *colorFlag) String() string { return c.name }

func (c *colorFlag) Set(v string) error {
	col, err := viz.ParseColor(v)
	if err != nil {
		return err
	}
	c.c, c.name = col, v
	return nil
}

// paletteFlag is a list of colors written as a shell-quoted,
// space-separated list, such as "red 'tab:blue' #00ff00".
type paletteFlag struct {
	cs  []color.Color
	raw string
}

func (p *paletteFlag) String() string { return p.raw }

func (p *paletteFlag) Set(v string) error {
	words, err := shellquote.Split(v)
	if err != nil {
		return err
	}
	cs := make([]color.Color, 0, len(words))
	for _, w := range words {
		c, err := viz.ParseColor(w)
		if err != nil {
			return err
		}
		cs = append(cs, c)
	}
	p.cs, p.raw = cs, v
	return nil
}
