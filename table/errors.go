// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

// A LoadError reports a malformed tabular source.
type LoadError struct {
	// Line is the 1-based source line of the problem, or 0 if
	// unknown.
	Line int

	// Msg describes the problem.
	Msg string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("table: load: line %d: %s", e.Line, e.Msg)
	}
	return "table: load: " + e.Msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// An UnknownColumnError reports a reference to a column that is not
// in the table.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("table: unknown column %q", e.Column)
}

// A TypeError reports an operation applied to a column of an
// unsupported type.
type TypeError struct {
	Column string
	Op     string
	Type   Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("table: %s: column %q is %s", e.Op, e.Column, e.Type)
}

// An EmptyColumnError reports a summary requested over a column with
// no non-missing values.
type EmptyColumnError struct {
	Column string
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("table: column %q has no non-missing values", e.Column)
}
