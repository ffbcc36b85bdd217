// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	ggtable "github.com/aclements/go-gg/table"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

// Histogram plots the distribution of a numeric column as equal-width
// binned counts.
type Histogram struct {
	// Col names the numeric column to bin.
	Col string

	// Bins is the bin count. Zero means 10.
	Bins int

	// Color is the bar fill. Nil means the default fill.
	Color color.Color
}

func (h Histogram) render(r *Renderer, t *table.Table, w io.Writer) error {
	bins, err := t.Bins(h.Col, orDefault(h.Bins, 10))
	if err != nil {
		return err
	}
	fill := h.Color
	if fill == nil {
		fill = defaultFill
	}
	wpx, hpx := r.size()
	return histPlot(bins, h.Col, fill).WriteSVG(w, wpx, hpx)
}

// histPlot builds the histogram silhouette: the area under a step
// outline through the bin counts, down to zero.
func histPlot(bins []table.Bin, col string, fill color.Color) *gg.Plot {
	xs := make([]float64, 0, 2*len(bins))
	ys := make([]float64, 0, 2*len(bins))
	for _, b := range bins {
		xs = append(xs, b.Lo, b.Hi)
		ys = append(ys, float64(b.Count), float64(b.Count))
	}
	tab := new(ggtable.Builder).Add(col, xs).Add("count", ys).Done()
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerArea{X: col, Upper: "count", Fill: p.Const(fill)})
	p.Add(gg.AxisLabel("y", "count"))
	return p
}

// stepTable doubles each bin edge so a path through the points in
// order traces the bin outline: a flat run across each bin, joined by
// jumps along the count axis at the shared edges. If flip is set, the
// value axis is Y and the count axis is X, for use as a vertical
// marginal.
func stepTable(bins []table.Bin, col string, flip bool) *ggtable.Table {
	vs := make([]float64, 0, 2*len(bins))
	cs := make([]float64, 0, 2*len(bins))
	for _, b := range bins {
		vs = append(vs, b.Lo, b.Hi)
		cs = append(cs, float64(b.Count), float64(b.Count))
	}
	b := new(ggtable.Builder)
	if flip {
		return b.Add("count", cs).Add(col, vs).Done()
	}
	return b.Add(col, vs).Add("count", cs).Done()
}

// Scatter plots two numeric columns against each other, one point per
// complete observation.
type Scatter struct {
	X, Y string
}

func (s Scatter) render(r *Renderer, t *table.Table, w io.Writer) error {
	data, err := ggData(t, s.X, s.Y)
	if err != nil {
		return err
	}
	if data.Len() == 0 {
		return errEmpty(s.X, s.Y)
	}
	p := gg.NewPlot(data)
	p.Add(gg.LayerPoints{X: s.X, Y: s.Y})
	wpx, hpx := r.size()
	return p.WriteSVG(w, wpx, hpx)
}

// Hexbin plots the joint density of two numeric columns as a grid of
// cells shaded by observation count. The cells are rectangular rather
// than hexagonal; the binned-density semantics are the same.
type Hexbin struct {
	X, Y string

	// GridSize is the cell count along each axis. Zero means 10.
	GridSize int
}

func (h Hexbin) render(r *Renderer, t *table.Table, w io.Writer) error {
	xs, ys, err := paired(t, h.X, h.Y)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return errEmpty(h.X, h.Y)
	}
	p := heatPlot(xs, ys, h.X, h.Y, orDefault(h.GridSize, 10))
	wpx, hpx := r.size()
	return p.WriteSVG(w, wpx, hpx)
}

// heatPlot bins (xs, ys) onto a grid x grid lattice and shades each
// occupied cell by its count.
func heatPlot(xs, ys []float64, xcol, ycol string, grid int) *gg.Plot {
	xmin, xmax := minMax(xs)
	ymin, ymax := minMax(ys)
	xw := (xmax - xmin) / float64(grid)
	yw := (ymax - ymin) / float64(grid)
	counts := make(map[[2]int]int)
	for i := range xs {
		counts[[2]int{cellOf(xs[i], xmin, xw, grid), cellOf(ys[i], ymin, yw, grid)}]++
	}
	var cx, cy, cn []float64
	for cell, n := range counts {
		cx = append(cx, xmin+(float64(cell[0])+0.5)*xw)
		cy = append(cy, ymin+(float64(cell[1])+0.5)*yw)
		cn = append(cn, float64(n))
	}
	tab := new(ggtable.Builder).Add(xcol, cx).Add(ycol, cy).Add("count", cn).Done()
	p := gg.NewPlot(tab)
	p.Add(gg.LayerTiles{X: xcol, Y: ycol, Fill: "count"})
	return p
}

// cellOf returns the bin index of v on an axis starting at min with
// the given cell width, clamped to the final closed cell.
func cellOf(v, min, width float64, grid int) int {
	if width <= 0 {
		return grid - 1
	}
	i := int((v - min) / width)
	if i > grid-1 {
		i = grid - 1
	}
	return i
}

// Joint draws the joint distribution of two numeric columns: a
// central scatter flanked by the marginal distribution of each
// variable, as one composite figure.
type Joint struct {
	X, Y string

	// Bins is the bin count of the marginal histograms. Zero
	// means 20.
	Bins int
}

func (j Joint) render(r *Renderer, t *table.Table, w io.Writer) error {
	complete := t.Filter(func(row table.Row) bool {
		return !row.Missing(j.X) && !row.Missing(j.Y)
	})
	if complete.Len() == 0 {
		return errEmpty(j.X, j.Y)
	}
	nbins := orDefault(j.Bins, 20)
	xbins, err := complete.Bins(j.X, nbins)
	if err != nil {
		return err
	}
	ybins, err := complete.Bins(j.Y, nbins)
	if err != nil {
		return err
	}
	data, err := ggData(complete, j.X, j.Y)
	if err != nil {
		return err
	}

	wpx, hpx := r.size()
	mw, mh := wpx/4, hpx/4

	main := gg.NewPlot(data)
	main.Add(gg.LayerPoints{X: j.X, Y: j.Y})

	top := gg.NewPlot(stepTable(xbins, j.X, false))
	top.SetScale("y", gg.NewLinearScaler().Include(0))
	top.Add(gg.LayerPaths{X: j.X, Y: "count"})

	right := gg.NewPlot(stepTable(ybins, j.Y, true))
	right.SetScale("x", gg.NewLinearScaler().Include(0))
	right.Add(gg.LayerPaths{X: "count", Y: j.Y})

	var topDoc, mainDoc, rightDoc bytes.Buffer
	if err := top.WriteSVG(&topDoc, wpx-mw, mh); err != nil {
		return err
	}
	if err := main.WriteSVG(&mainDoc, wpx-mw, hpx-mh); err != nil {
		return err
	}
	if err := right.WriteSVG(&rightDoc, mw, hpx-mh); err != nil {
		return err
	}
	return composite(w, wpx, hpx, []panel{
		{0, 0, topDoc.Bytes()},
		{0, mh, mainDoc.Bytes()},
		{wpx - mw, mh, rightDoc.Bytes()},
	})
}
