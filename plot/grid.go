// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"io"

	"github.com/aclements/go-gg/gg"
	ggtable "github.com/aclements/go-gg/table"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

// FacetGrid draws a histogram of a numeric column in side-by-side
// panels, one panel per distinct value of a discrete column. Bins are
// computed per panel; the panels share axis scales.
type FacetGrid struct {
	// Facet names the discrete column that splits the panels.
	Facet string

	// Col names the numeric column to bin.
	Col string

	// Bins is the bin count per panel. Zero means 10.
	Bins int
}

func (fg FacetGrid) render(r *Renderer, t *table.Table, w io.Writer) error {
	gs, err := t.GroupBy(fg.Facet)
	if err != nil {
		return err
	}
	var xs, ys []float64
	var fs []string
	npanels := 0
	for _, g := range gs {
		bins, err := g.Table.Bins(fg.Col, orDefault(fg.Bins, 10))
		if err != nil {
			var empty *table.EmptyColumnError
			if errors.As(err, &empty) {
				continue
			}
			return err
		}
		for _, b := range bins {
			xs = append(xs, b.Lo, b.Hi)
			ys = append(ys, float64(b.Count), float64(b.Count))
			fs = append(fs, g.Key, g.Key)
		}
		npanels++
	}
	if npanels == 0 {
		return errEmpty(fg.Facet, fg.Col)
	}
	tab := new(ggtable.Builder).
		Add(fg.Col, xs).
		Add("count", ys).
		Add(fg.Facet, fs).
		Done()
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.FacetX{Col: fg.Facet})
	p.Add(gg.LayerArea{X: fg.Col, Upper: "count", Fill: p.Const(defaultFill)})
	p.Add(gg.AxisLabel("y", "count"))
	wpx, hpx := r.size()
	return p.WriteSVG(w, wpx*npanels, hpx)
}

// PairGrid draws the pairwise relationships among numeric columns as
// an n x n matrix of panels: a histogram of each column on the
// diagonal and binned-density cells off it, with the panel at (row i,
// column j) plotting column j against column i.
type PairGrid struct {
	// Cols names the numeric columns to pair. At least two are
	// required.
	Cols []string

	// Bins is the bin count per axis. Zero means 10.
	Bins int
}

func (pg PairGrid) render(r *Renderer, t *table.Table, w io.Writer) error {
	if len(pg.Cols) < 2 {
		return errEmpty(pg.Cols...)
	}
	nbins := orDefault(pg.Bins, 10)
	wpx, hpx := r.size()
	cw, ch := wpx/2, hpx/2
	n := len(pg.Cols)

	var panels []panel
	for i, ycol := range pg.Cols {
		for j, xcol := range pg.Cols {
			var p *gg.Plot
			if i == j {
				bins, err := t.Bins(xcol, nbins)
				if err != nil {
					return err
				}
				p = histPlot(bins, xcol, defaultFill)
			} else {
				xs, ys, err := paired(t, xcol, ycol)
				if err != nil {
					return err
				}
				if len(xs) == 0 {
					return errEmpty(xcol, ycol)
				}
				p = heatPlot(xs, ys, xcol, ycol, nbins)
			}
			var doc bytes.Buffer
			if err := p.WriteSVG(&doc, cw, ch); err != nil {
				return err
			}
			panels = append(panels, panel{j * cw, i * ch, doc.Bytes()})
		}
	}
	return composite(w, n*cw, n*ch, panels)
}
