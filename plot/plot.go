// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders statistical charts from a table.Table as SVG
// documents.
//
// Each chart kind is a configuration struct (Histogram, Scatter,
// Hexbin, Joint, Box, Swarm, Violin, Count, FacetGrid, PairGrid)
// enumerating the options that kind recognizes. A Renderer consumes a
// chart and a table and produces the artifact; it owns only figure
// size and output, never the data semantics.
//
// Continuous-variable charts are built on go-gg plots. The kinds gg
// has no layer vocabulary for (box, swarm, violin, count) are drawn
// directly with svgo, using go-moremath scales for their axes.
// Multi-panel charts nest independently rendered SVG panels in one
// enclosing document.
package plot

import (
	"bytes"
	"image/color"
	"io"
	"os"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

// A Chart describes one renderable chart kind and its options.
type Chart interface {
	render(r *Renderer, t *table.Table, w io.Writer) error
}

// A Renderer renders charts over a table into SVG documents.
type Renderer struct {
	// Width and Height are the pixel size of a single-panel
	// figure. Zero values mean 500x350. Multi-panel charts scale
	// these by their panel counts.
	Width, Height int
}

func (r *Renderer) size() (w, h int) {
	w, h = r.Width, r.Height
	if w == 0 {
		w = 500
	}
	if h == 0 {
		h = 350
	}
	return
}

// Render renders c over t and returns the SVG document.
func (r *Renderer) Render(t *table.Table, c Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.render(r, t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile renders c over t into the file at path and returns path
// as the artifact handle.
func (r *Renderer) RenderFile(path string, t *table.Table, c Chart) (string, error) {
	doc, err := r.Render(t, c)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, doc, 0666); err != nil {
		return "", err
	}
	return path, nil
}

// defaultFill is the default mark color (matplotlib's C0 blue).
var defaultFill = color.RGBA{0x1f, 0x77, 0xb4, 0xff}

// Red is a named fill for callers that want to override a chart's
// default color.
var Red = color.RGBA{0xff, 0x00, 0x00, 0xff}

// set2 is the ColorBrewer Set2 qualitative palette, used to color the
// grouped categorical charts.
var set2 = []color.RGBA{
	{0x66, 0xc2, 0xa5, 0xff},
	{0xfc, 0x8d, 0x62, 0xff},
	{0x8d, 0xa0, 0xcb, 0xff},
	{0xe7, 0x8a, 0xc3, 0xff},
	{0xa6, 0xd8, 0x54, 0xff},
	{0xff, 0xd9, 0x2f, 0xff},
	{0xe5, 0xc4, 0x94, 0xff},
	{0xb3, 0xb3, 0xb3, 0xff},
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
