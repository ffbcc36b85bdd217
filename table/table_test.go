// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func passengers() *Table {
	return New(
		Strings("class", []string{"First", "Third", "First", "Third", "Second"}),
		Floats("fare", []float64{71.2833, 7.25, 53.1, math.NaN(), 13}),
		Ints("sibsp", []int{1, 1, 1, 0, 0}),
		Bools("alone", []bool{false, false, false, true, true}),
	)
}

func TestNew(t *testing.T) {
	tab := passengers()
	if v := tab.Len(); v != 5 {
		t.Errorf("Len() = %d; want 5", v)
	}
	if v, w := tab.Columns(), []string{"class", "fare", "sibsp", "alone"}; !de(v, w) {
		t.Errorf("Columns() = %v; want %v", v, w)
	}

	shouldPanic(t, "duplicate column", func() {
		New(Ints("x", nil), Ints("x", nil))
	})
	shouldPanic(t, "empty column name", func() {
		New(Ints("", nil))
	})
	shouldPanic(t, `column "y" has 1 rows; want 2`, func() {
		New(Ints("x", []int{1, 2}), Ints("y", []int{1}))
	})
}

func TestColumn(t *testing.T) {
	tab := passengers()

	c, err := tab.Column("fare")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type() != Float {
		t.Errorf("fare type = %v; want %v", c.Type(), Float)
	}
	if !c.Missing(3) || c.Missing(0) {
		t.Errorf("fare missing mask wrong")
	}
	if v, ok := c.Float(0); !ok || v != 71.2833 {
		t.Errorf("fare[0] = %v, %v; want 71.2833, true", v, ok)
	}
	if _, ok := c.Float(3); ok {
		t.Errorf("fare[3] should be missing")
	}

	// Int cells widen to float64.
	if v, ok := tab.MustColumn("sibsp").Float(0); !ok || v != 1 {
		t.Errorf("sibsp[0] = %v, %v; want 1, true", v, ok)
	}

	_, err = tab.Column("cabin")
	var unk *UnknownColumnError
	if !errors.As(err, &unk) || unk.Column != "cabin" {
		t.Errorf("Column(cabin) error = %v; want UnknownColumnError", err)
	}
	shouldPanic(t, "unknown column", func() {
		tab.MustColumn("cabin")
	})
	shouldPanic(t, `column "class" is categorical`, func() {
		tab.MustColumn("class").Float(0)
	})
}

func TestSliceCopies(t *testing.T) {
	tab := passengers()
	s1 := tab.MustColumn("class").Slice().([]string)
	s1[0] = "mutated"
	s2 := tab.MustColumn("class").Slice().([]string)
	if s2[0] != "First" {
		t.Errorf("mutation of Slice result visible in table")
	}
}

func TestSelect(t *testing.T) {
	tab := passengers()

	sel, err := tab.Select("fare", "class")
	if err != nil {
		t.Fatal(err)
	}
	if v, w := sel.Columns(), []string{"fare", "class"}; !de(v, w) {
		t.Errorf("Columns() = %v; want %v", v, w)
	}
	if sel.Len() != tab.Len() {
		t.Errorf("Len() = %d; want %d", sel.Len(), tab.Len())
	}

	// Projection is idempotent. The fare column holds a NaN cell,
	// which DeepEqual cannot compare, so check it through its
	// missing mask instead.
	sel2, err := sel.Select("fare", "class")
	if err != nil {
		t.Fatal(err)
	}
	if !de(sel.MustColumn("class").Slice(), sel2.MustColumn("class").Slice()) ||
		!de(sel.Columns(), sel2.Columns()) {
		t.Errorf("Select is not idempotent")
	}
	f1, f2 := sel.MustColumn("fare"), sel2.MustColumn("fare")
	for i := 0; i < sel.Len(); i++ {
		if f1.Missing(i) != f2.Missing(i) {
			t.Errorf("fare[%d] missing = %v after reselect; want %v", i, f2.Missing(i), f1.Missing(i))
			continue
		}
		if f1.Missing(i) {
			continue
		}
		v1, _ := f1.Float(i)
		v2, _ := f2.Float(i)
		if v1 != v2 {
			t.Errorf("fare[%d] = %v after reselect; want %v", i, v2, v1)
		}
	}

	if _, err := tab.Select("fare", "cabin"); err == nil {
		t.Errorf("Select with unknown column should fail")
	}
}

func TestFilter(t *testing.T) {
	tab := passengers()

	third := tab.Filter(func(r Row) bool {
		v, ok := r.Str("class")
		return ok && v == "Third"
	})
	if third.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", third.Len())
	}
	// Relative order is preserved and every retained row satisfies
	// the predicate.
	for i := 0; i < third.Len(); i++ {
		if v, _ := third.MustColumn("class").Str(i); v != "Third" {
			t.Errorf("row %d class = %q; want Third", i, v)
		}
	}
	if v, _ := third.MustColumn("fare").Float(0); v != 7.25 {
		t.Errorf("filtered fare[0] = %v; want 7.25", v)
	}

	empty := tab.Filter(func(r Row) bool { return false })
	if empty.Len() != 0 {
		t.Errorf("empty filter Len() = %d; want 0", empty.Len())
	}
	if !de(empty.Columns(), tab.Columns()) {
		t.Errorf("empty filter lost columns")
	}

	// Filtering never grows the table.
	all := tab.Filter(func(r Row) bool { return true })
	if all.Len() > tab.Len() {
		t.Errorf("filter grew the table")
	}
}

func TestGroupBy(t *testing.T) {
	tab := New(Strings("class", []string{"First", "Third", "First"}))
	gs, err := tab.GroupBy("class")
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	var sizes []int
	for _, g := range gs {
		keys = append(keys, g.Key)
		sizes = append(sizes, g.Table.Len())
	}
	if w := []string{"First", "Third"}; !de(keys, w) {
		t.Errorf("keys = %v; want %v", keys, w)
	}
	if w := []int{2, 1}; !de(sizes, w) {
		t.Errorf("sizes = %v; want %v", sizes, w)
	}
}

func TestGroupByPartitions(t *testing.T) {
	tab := passengers()
	for _, col := range []string{"class", "sibsp", "alone"} {
		gs, err := tab.GroupBy(col)
		if err != nil {
			t.Fatal(err)
		}
		total := 0
		seen := make(map[string]bool)
		for _, g := range gs {
			if seen[g.Key] {
				t.Errorf("GroupBy(%q): key %q repeated", col, g.Key)
			}
			seen[g.Key] = true
			total += g.Table.Len()
		}
		// Every row with a present cell lands in exactly one
		// group.
		want := 0
		c := tab.MustColumn(col)
		for i := 0; i < tab.Len(); i++ {
			if !c.Missing(i) {
				want++
			}
		}
		if total != want {
			t.Errorf("GroupBy(%q): %d grouped rows; want %d", col, total, want)
		}
	}
}

func TestGroupByMissing(t *testing.T) {
	tab := New(Strings("deck", []string{"C", "", "C", "E", ""}))
	gs, err := tab.GroupBy("deck")
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 2 || gs[0].Key != "C" || gs[1].Key != "E" {
		t.Fatalf("groups = %v", gs)
	}
	if gs[0].Table.Len() != 2 || gs[1].Table.Len() != 1 {
		t.Errorf("group sizes = %d, %d; want 2, 1", gs[0].Table.Len(), gs[1].Table.Len())
	}
}

func TestGroupByFloat(t *testing.T) {
	tab := passengers()
	_, err := tab.GroupBy("fare")
	var te *TypeError
	if !errors.As(err, &te) || te.Column != "fare" {
		t.Errorf("GroupBy(fare) error = %v; want TypeError", err)
	}
}

func TestDerivedIndependence(t *testing.T) {
	tab := passengers()
	a := tab.Filter(func(r Row) bool { return true })
	b := tab.Filter(func(r Row) bool { return true })
	sa := a.MustColumn("fare").Slice().([]float64)
	sa[0] = -1
	if v, _ := b.MustColumn("fare").Float(0); v != 71.2833 {
		t.Errorf("derived tables share state")
	}
}
