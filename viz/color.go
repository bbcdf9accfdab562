// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
	"golang.org/x/image/colornames"
)

// Tableau 10, the default categorical colors of many plotting
// packages.
var tableau = map[string]color.RGBA{
	"tab:blue":   {0x1f, 0x77, 0xb4, 0xff},
	"tab:orange": {0xff, 0x7f, 0x0e, 0xff},
	"tab:green":  {0x2c, 0xa0, 0x2c, 0xff},
	"tab:red":    {0xd6, 0x27, 0x28, 0xff},
	"tab:purple": {0x94, 0x67, 0xbd, 0xff},
	"tab:brown":  {0x8c, 0x56, 0x4b, 0xff},
	"tab:pink":   {0xe3, 0x77, 0xc2, 0xff},
	"tab:gray":   {0x7f, 0x7f, 0x7f, 0xff},
	"tab:grey":   {0x7f, 0x7f, 0x7f, 0xff},
	"tab:olive":  {0xbc, 0xbd, 0x22, 0xff},
	"tab:cyan":   {0x17, 0xbe, 0xcf, 0xff},
}

var (
	defaultHistColor   color.Color = colornames.Lightcoral
	defaultCountColor  color.Color = tableau["tab:blue"]
	defaultMeanColor   color.Color = colornames.Red
	defaultMedianColor color.Color = colornames.Blue
)

// ParseColor parses a color given as a CSS color name ("lightcoral"),
// a Tableau color name ("tab:blue"), or a hex triple ("#f08080" or
// "#f88").
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := tableau[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// palette returns n colors drawn in order from colors, cycling if
// there are fewer than n. If colors is empty, it uses the ColorBrewer
// Set1 qualitative palette.
func palette(n int, colors []color.Color) []color.Color {
	if len(colors) == 0 {
		colors = brewer.Set1_9
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}
