// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides an immutable, column-oriented table of typed
// values with selection, filtering, grouping, and descriptive
// statistics.
//
// A Table is constructed once, from a CSV source or from prepared
// columns, and never mutated in place. Tables derived by Select and
// Filter own independent copies of their column buffers, so a Table
// and anything derived from it may be read from multiple goroutines
// without synchronization.
//
// Any cell of a column may be missing. Missing cells are excluded
// from grouping and from all statistics; they are never silently
// treated as zero values.
package table

import (
	"fmt"
	"math"
	"strconv"
)

// A Type tags the representation of a column.
type Type int

const (
	// Categorical columns hold strings drawn from a small set of
	// discrete values.
	Categorical Type = iota

	// Float columns hold continuous numeric values.
	Float

	// Int columns hold discrete numeric values.
	Int

	// Bool columns hold truth values.
	Bool
)

func (t Type) String() string {
	switch t {
	case Categorical:
		return "categorical"
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Numeric reports whether t is a numeric type.
func (t Type) Numeric() bool {
	return t == Float || t == Int
}

// A Column is a named, typed sequence of values. Exactly one of the
// value buffers is in use, according to the column's type. A
// validity mask tracks missing cells.
type Column struct {
	name  string
	typ   Type
	fs    []float64
	is    []int
	ss    []string
	bs    []bool
	valid []bool
}

// Floats returns a Float column over a copy of vals. NaN cells are
// missing.
func Floats(name string, vals []float64) Column {
	valid := make([]bool, len(vals))
	for i, v := range vals {
		valid[i] = !math.IsNaN(v)
	}
	return Column{name: name, typ: Float, fs: append([]float64(nil), vals...), valid: valid}
}

// Ints returns an Int column over a copy of vals. Int columns have no
// missing sentinel, so every cell is present.
func Ints(name string, vals []int) Column {
	return Column{name: name, typ: Int, is: append([]int(nil), vals...), valid: trues(len(vals))}
}

// Strings returns a Categorical column over a copy of vals. Empty
// cells are missing.
func Strings(name string, vals []string) Column {
	valid := make([]bool, len(vals))
	for i, v := range vals {
		valid[i] = v != ""
	}
	return Column{name: name, typ: Categorical, ss: append([]string(nil), vals...), valid: valid}
}

// Bools returns a Bool column over a copy of vals. Every cell is
// present.
func Bools(name string, vals []bool) Column {
	return Column{name: name, typ: Bool, bs: append([]bool(nil), vals...), valid: trues(len(vals))}
}

func trues(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// Name returns the column's name.
func (c *Column) Name() string { return c.name }

// Type returns the column's type tag.
func (c *Column) Type() Type { return c.typ }

// Len returns the number of cells, including missing cells.
func (c *Column) Len() int { return len(c.valid) }

// Missing reports whether cell i is missing.
func (c *Column) Missing(i int) bool { return !c.valid[i] }

// Float returns the numeric value of cell i, widening Int cells to
// float64. ok is false if the cell is missing. Float panics if the
// column is not numeric.
func (c *Column) Float(i int) (v float64, ok bool) {
	switch c.typ {
	case Float:
		return c.fs[i], c.valid[i]
	case Int:
		return float64(c.is[i]), c.valid[i]
	}
	panic(&TypeError{Column: c.name, Op: "Float", Type: c.typ})
}

// Int returns the value of cell i of an Int column. ok is false if
// the cell is missing. Int panics if the column is not an Int column.
func (c *Column) Int(i int) (v int, ok bool) {
	if c.typ != Int {
		panic(&TypeError{Column: c.name, Op: "Int", Type: c.typ})
	}
	return c.is[i], c.valid[i]
}

// Str returns the value of cell i of a Categorical column. ok is
// false if the cell is missing. Str panics if the column is not
// categorical.
func (c *Column) Str(i int) (v string, ok bool) {
	if c.typ != Categorical {
		panic(&TypeError{Column: c.name, Op: "Str", Type: c.typ})
	}
	return c.ss[i], c.valid[i]
}

// Bool returns the value of cell i of a Bool column. ok is false if
// the cell is missing. Bool panics if the column is not a Bool
// column.
func (c *Column) Bool(i int) (v bool, ok bool) {
	if c.typ != Bool {
		panic(&TypeError{Column: c.name, Op: "Bool", Type: c.typ})
	}
	return c.bs[i], c.valid[i]
}

// Slice returns a copy of the column's cells as its natural slice
// type: []float64 with NaN for missing cells, []int, []string with ""
// for missing cells, or []bool.
func (c *Column) Slice() interface{} {
	switch c.typ {
	case Float:
		return append([]float64(nil), c.fs...)
	case Int:
		return append([]int(nil), c.is...)
	case Categorical:
		return append([]string(nil), c.ss...)
	case Bool:
		return append([]bool(nil), c.bs...)
	}
	panic("table: bad column type")
}

// key returns the string form of cell i for use as a grouping key.
// ok is false if the cell is missing.
func (c *Column) key(i int) (string, bool) {
	if !c.valid[i] {
		return "", false
	}
	switch c.typ {
	case Categorical:
		return c.ss[i], true
	case Int:
		return strconv.Itoa(c.is[i]), true
	case Bool:
		return strconv.FormatBool(c.bs[i]), true
	}
	panic(&TypeError{Column: c.name, Op: "GroupBy", Type: c.typ})
}

func (c *Column) clone() Column {
	n := Column{name: c.name, typ: c.typ}
	n.fs = append([]float64(nil), c.fs...)
	n.is = append([]int(nil), c.is...)
	n.ss = append([]string(nil), c.ss...)
	n.bs = append([]bool(nil), c.bs...)
	n.valid = append([]bool(nil), c.valid...)
	return n
}

// take returns a copy of c restricted to the given cells, in order.
func (c *Column) take(rows []int) Column {
	n := Column{name: c.name, typ: c.typ, valid: make([]bool, len(rows))}
	for j, i := range rows {
		n.valid[j] = c.valid[i]
	}
	switch c.typ {
	case Float:
		n.fs = make([]float64, len(rows))
		for j, i := range rows {
			n.fs[j] = c.fs[i]
		}
	case Int:
		n.is = make([]int, len(rows))
		for j, i := range rows {
			n.is[j] = c.is[i]
		}
	case Categorical:
		n.ss = make([]string, len(rows))
		for j, i := range rows {
			n.ss[j] = c.ss[i]
		}
	case Bool:
		n.bs = make([]bool, len(rows))
		for j, i := range rows {
			n.bs[j] = c.bs[i]
		}
	}
	return n
}

// A Table is an ordered collection of equal-length columns. Row i of
// every column describes one observation.
type Table struct {
	cols  []Column
	index map[string]int
	n     int
}

// New constructs a Table from cols. It panics if column names are
// empty or repeated, or if column lengths disagree.
func New(cols ...Column) *Table {
	t := &Table{index: make(map[string]int)}
	for _, c := range cols {
		if c.name == "" {
			panic("table: empty column name")
		}
		if _, ok := t.index[c.name]; ok {
			panic(fmt.Sprintf("table: duplicate column %q", c.name))
		}
		if len(t.cols) == 0 {
			t.n = c.Len()
		} else if c.Len() != t.n {
			panic(fmt.Sprintf("table: column %q has %d rows; want %d", c.name, c.Len(), t.n))
		}
		t.index[c.name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Columns returns the column names, in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i := range t.cols {
		names[i] = t.cols[i].name
	}
	return names
}

// Column returns the named column, or an *UnknownColumnError if there
// is no such column.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &UnknownColumnError{name}
	}
	return &t.cols[i], nil
}

// MustColumn is like Column, but panics on an unknown name.
func (t *Table) MustColumn(name string) *Column {
	c, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Select returns a new Table holding only the named columns, in the
// order given, with the row order and count unchanged. Repeated names
// are kept once. The result shares no buffers with t.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, &UnknownColumnError{name}
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cols = append(cols, t.cols[i].clone())
	}
	nt := New(cols...)
	if len(cols) == 0 {
		nt.n = t.n
	}
	return nt, nil
}

// A Row is a cursor over one table row, as seen by Filter
// predicates. Its accessors panic on unknown column names.
type Row struct {
	t *Table
	i int
}

// Index returns the row's position in the source table.
func (r Row) Index() int { return r.i }

// Missing reports whether the named cell of this row is missing.
func (r Row) Missing(name string) bool { return r.t.MustColumn(name).Missing(r.i) }

// Float returns the named numeric cell of this row.
func (r Row) Float(name string) (float64, bool) { return r.t.MustColumn(name).Float(r.i) }

// Int returns the named Int cell of this row.
func (r Row) Int(name string) (int, bool) { return r.t.MustColumn(name).Int(r.i) }

// Str returns the named Categorical cell of this row.
func (r Row) Str(name string) (string, bool) { return r.t.MustColumn(name).Str(r.i) }

// Bool returns the named Bool cell of this row.
func (r Row) Bool(name string) (bool, bool) { return r.t.MustColumn(name).Bool(r.i) }

// Filter returns a new Table holding the rows for which pred returns
// true, in their original order. An empty result is a zero-row Table,
// not an error. The result shares no buffers with t.
func (t *Table) Filter(pred func(Row) bool) *Table {
	rows := []int{}
	for i := 0; i < t.n; i++ {
		if pred(Row{t, i}) {
			rows = append(rows, i)
		}
	}
	return t.take(rows)
}

// take returns a copy of t restricted to the given rows, in order.
func (t *Table) take(rows []int) *Table {
	cols := make([]Column, len(t.cols))
	for i := range t.cols {
		cols[i] = t.cols[i].take(rows)
	}
	return New(cols...)
}
