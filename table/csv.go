// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Read parses a CSV document with a header row into a Table.
//
// Column types are inferred from the non-missing cells: a column
// whose cells all parse as integers is Int, then as floats is Float,
// then as booleans is Bool; anything else is Categorical. Empty cells
// are missing. A column of integers that contains missing cells is
// widened to Float, since Int columns have no missing sentinel. A
// column with no non-missing cells at all is Categorical.
//
// Read returns a *LoadError if the source is malformed: unreadable
// CSV, rows of inconsistent length, a missing header row, or empty or
// duplicate column names.
func Read(r io.Reader) (*Table, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		line := 0
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.Line
		}
		return nil, &LoadError{Line: line, Msg: err.Error(), Err: err}
	}
	if len(recs) == 0 {
		return nil, &LoadError{Msg: "missing header row"}
	}
	header := recs[0]
	seen := make(map[string]bool)
	for _, name := range header {
		if name == "" {
			return nil, &LoadError{Line: 1, Msg: "empty column name"}
		}
		if seen[name] {
			return nil, &LoadError{Line: 1, Msg: fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = true
	}
	body := recs[1:]
	cols := make([]Column, len(header))
	for j, name := range header {
		cells := make([]string, len(body))
		for i, rec := range body {
			cells[i] = rec[j]
		}
		cols[j] = inferColumn(name, cells)
	}
	return New(cols...), nil
}

// inferColumn builds the most specific typed column that can
// represent cells.
func inferColumn(name string, cells []string) Column {
	isInt, isFloat, isBool := true, true, true
	missing := 0
	for _, cell := range cells {
		if cell == "" {
			missing++
			continue
		}
		if _, err := strconv.Atoi(cell); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			isFloat = false
		}
		if _, err := strconv.ParseBool(cell); err != nil {
			isBool = false
		}
	}
	valued := len(cells) > missing
	switch {
	case valued && isInt && missing == 0:
		is := make([]int, len(cells))
		for i, cell := range cells {
			is[i], _ = strconv.Atoi(cell)
		}
		return Ints(name, is)
	case valued && isFloat:
		fs := make([]float64, len(cells))
		for i, cell := range cells {
			if cell == "" {
				fs[i] = math.NaN()
			} else {
				fs[i], _ = strconv.ParseFloat(cell, 64)
			}
		}
		return Floats(name, fs)
	case valued && isBool && missing == 0:
		bs := make([]bool, len(cells))
		for i, cell := range cells {
			bs[i], _ = strconv.ParseBool(cell)
		}
		return Bools(name, bs)
	}
	return Strings(name, cells)
}
