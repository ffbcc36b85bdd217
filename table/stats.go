// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Summary holds descriptive statistics for a numeric column,
// computed over its non-missing values.
type Summary struct {
	Count                          int
	Mean, Min, Q1, Median, Q3, Max float64
}

// Describe summarizes the named numeric column. Quartiles use linear
// interpolation between adjacent order statistics (the "type 7"
// estimate, as in NumPy and R's default), so results are
// deterministic across implementations. Describe returns a
// *TypeError if the column is not numeric and an *EmptyColumnError if
// every cell is missing.
func (t *Table) Describe(name string) (Summary, error) {
	xs, err := t.numeric(name, "Describe")
	if err != nil {
		return Summary{}, err
	}
	if len(xs) == 0 {
		return Summary{}, &EmptyColumnError{name}
	}
	sort.Float64s(xs)
	return Summary{
		Count:  len(xs),
		Mean:   stats.Mean(xs),
		Min:    xs[0],
		Q1:     quantile(xs, 0.25),
		Median: quantile(xs, 0.5),
		Q3:     quantile(xs, 0.75),
		Max:    xs[len(xs)-1],
	}, nil
}

// quantile returns the pth quantile of sorted xs by linear
// interpolation between adjacent order statistics.
func quantile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// A Bin is one histogram interval. The interval is [Lo, Hi), except
// for a column's final bin, which is [Lo, Hi].
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Bins partitions the observed range of the named numeric column into
// n equal-width intervals spanning [min, max] of its non-missing
// values and counts the values falling in each. Missing cells are
// counted nowhere. If every value is equal, all values land in the
// single degenerate final bin.
func (t *Table) Bins(name string, n int) ([]Bin, error) {
	if n <= 0 {
		return nil, fmt.Errorf("table: bin count %d out of range", n)
	}
	xs, err := t.numeric(name, "Bins")
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, &EmptyColumnError{name}
	}
	min, max := xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	width := (max - min) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = min + float64(i)*width
		bins[i].Hi = min + float64(i+1)*width
	}
	bins[n-1].Hi = max
	for _, x := range xs {
		i := n - 1
		if width > 0 && x < max {
			i = int((x - min) / width)
			if i > n-1 {
				i = n - 1
			}
		}
		bins[i].Count++
	}
	return bins, nil
}

// numeric returns the non-missing values of the named numeric column,
// in row order.
func (t *Table) numeric(name, op string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.typ.Numeric() {
		return nil, &TypeError{Column: name, Op: op, Type: c.typ}
	}
	xs := make([]float64, 0, t.n)
	for i := 0; i < t.n; i++ {
		if v, ok := c.Float(i); ok {
			xs = append(xs, v)
		}
	}
	return xs, nil
}
