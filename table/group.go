// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// A Group is the subset of a table's rows sharing one value of a
// grouping column.
type Group struct {
	// Key is the shared value, formatted as a string.
	Key string

	// Table holds the matching rows, in their original order. It
	// shares no buffers with the grouped table.
	Table *Table
}

// GroupBy partitions t by the distinct values of the named column.
// Groups appear in first-appearance order of their key, which is what
// plotting consumers expect; the order is deterministic and not
// sorted. Rows whose cell is missing belong to no group. The column
// must be discrete (Categorical, Int, or Bool); grouping by a Float
// column is a *TypeError.
func (t *Table) GroupBy(name string) ([]Group, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.typ == Float {
		return nil, &TypeError{Column: name, Op: "GroupBy", Type: c.typ}
	}
	var order []string
	rows := make(map[string][]int)
	for i := 0; i < t.n; i++ {
		k, ok := c.key(i)
		if !ok {
			continue
		}
		if _, seen := rows[k]; !seen {
			order = append(order, k)
		}
		rows[k] = append(rows[k], i)
	}
	gs := make([]Group, len(order))
	for gi, k := range order {
		gs[gi] = Group{Key: k, Table: t.take(rows[k])}
	}
	return gs, nil
}
