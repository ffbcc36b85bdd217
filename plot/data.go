// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	ggtable "github.com/aclements/go-gg/table"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

// ggData converts the named columns of t into a go-gg table. Rows
// with a missing cell in any of the named columns are dropped, which
// is what the charts want of incomplete observations.
func ggData(t *table.Table, cols ...string) (*ggtable.Table, error) {
	cs := make([]*table.Column, len(cols))
	for i, name := range cols {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	var rows []int
	for i := 0; i < t.Len(); i++ {
		complete := true
		for _, c := range cs {
			if c.Missing(i) {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, i)
		}
	}
	b := new(ggtable.Builder)
	for _, c := range cs {
		switch {
		case c.Type().Numeric():
			vs := make([]float64, len(rows))
			for j, i := range rows {
				vs[j], _ = c.Float(i)
			}
			b.Add(c.Name(), vs)
		case c.Type() == table.Bool:
			vs := make([]bool, len(rows))
			for j, i := range rows {
				vs[j], _ = c.Bool(i)
			}
			b.Add(c.Name(), vs)
		default:
			vs := make([]string, len(rows))
			for j, i := range rows {
				vs[j], _ = c.Str(i)
			}
			b.Add(c.Name(), vs)
		}
	}
	return b.Done(), nil
}

// floats returns the non-missing values of a numeric column, in row
// order.
func floats(t *table.Table, name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.Type().Numeric() {
		return nil, &table.TypeError{Column: name, Op: "plot", Type: c.Type()}
	}
	vs := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if v, ok := c.Float(i); ok {
			vs = append(vs, v)
		}
	}
	return vs, nil
}

// paired returns the rows of two numeric columns where both cells are
// present.
func paired(t *table.Table, x, y string) (xs, ys []float64, err error) {
	cx, err := t.Column(x)
	if err != nil {
		return nil, nil, err
	}
	cy, err := t.Column(y)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range []*table.Column{cx, cy} {
		if !c.Type().Numeric() {
			return nil, nil, &table.TypeError{Column: c.Name(), Op: "plot", Type: c.Type()}
		}
	}
	for i := 0; i < t.Len(); i++ {
		xv, ok := cx.Float(i)
		if !ok {
			continue
		}
		yv, ok := cy.Float(i)
		if !ok {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys, nil
}

// errEmpty reports that no complete observations remain for a chart.
func errEmpty(cols ...string) error {
	return fmt.Errorf("plot: no complete observations in columns %q", cols)
}

func minMax(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}
