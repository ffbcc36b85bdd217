// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

func fixture() *table.Table {
	nan := math.NaN()
	return table.New(
		table.Strings("class", []string{
			"Third", "First", "Third", "First", "Third", "Second",
			"Third", "First", "Second", "Third", "Second", "First",
			"Third", "Third", "Second", "First",
		}),
		table.Strings("sex", []string{
			"male", "female", "female", "female", "male", "male",
			"male", "male", "female", "female", "male", "female",
			"male", "female", "female", "male",
		}),
		table.Floats("age", []float64{
			22, 38, 26, 35, 35, nan,
			54, 2, 27, 14, 20, 58,
			nan, 31, 34, 28,
		}),
		table.Floats("fare", []float64{
			7.25, 71.2833, 7.925, 53.1, 8.05, 8.4583,
			51.8625, 21.075, 11.1333, 30.0708, 13, 26.55,
			7.8958, 18, 13, 35.5,
		}),
		table.Ints("survived", []int{
			0, 1, 1, 1, 0, 0,
			0, 0, 1, 1, 0, 1,
			0, 0, 1, 1,
		}),
	)
}

func TestChartsRender(t *testing.T) {
	tab := fixture()
	r := &Renderer{}
	for _, test := range []struct {
		name  string
		chart Chart
	}{
		{"histogram", Histogram{Col: "fare", Bins: 8}},
		{"histogram default bins", Histogram{Col: "fare"}},
		{"scatter", Scatter{X: "fare", Y: "age"}},
		{"hexbin", Hexbin{X: "fare", Y: "age", GridSize: 5}},
		{"joint", Joint{X: "fare", Y: "age", Bins: 6}},
		{"joint default bins", Joint{X: "fare", Y: "age"}},
		{"joint single bin", Joint{X: "fare", Y: "age", Bins: 1}},
		{"box", Box{X: "class", Y: "age"}},
		{"swarm", Swarm{X: "class", Y: "age", Size: 4}},
		{"violin", Violin{X: "class", Y: "age"}},
		{"violin cut", Violin{X: "class", Y: "age", Cut: 2}},
		{"count", Count{X: "sex"}},
		{"facet grid", FacetGrid{Facet: "sex", Col: "age", Bins: 5}},
		{"pair grid", PairGrid{Cols: []string{"age", "survived", "fare"}, Bins: 5}},
	} {
		doc, err := r.Render(tab, test.chart)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !bytes.Contains(doc, []byte("<svg")) {
			t.Errorf("%s: output is not SVG", test.name)
		}
		if !bytes.Contains(doc, []byte("</svg>")) {
			t.Errorf("%s: output is truncated", test.name)
		}
	}
}

func TestChartErrors(t *testing.T) {
	tab := fixture()
	r := &Renderer{}

	_, err := r.Render(tab, Histogram{Col: "cabin"})
	var unk *table.UnknownColumnError
	if !errors.As(err, &unk) {
		t.Errorf("histogram of unknown column: error = %v; want UnknownColumnError", err)
	}

	_, err = r.Render(tab, Histogram{Col: "class"})
	var te *table.TypeError
	if !errors.As(err, &te) {
		t.Errorf("histogram of categorical column: error = %v; want TypeError", err)
	}

	_, err = r.Render(tab, Box{X: "age", Y: "fare"})
	if !errors.As(err, &te) {
		t.Errorf("box grouped by float column: error = %v; want TypeError", err)
	}

	if _, err := r.Render(tab, PairGrid{Cols: []string{"fare"}}); err == nil {
		t.Errorf("pair grid with one column should fail")
	}

	empty := tab.Filter(func(table.Row) bool { return false })
	if _, err := r.Render(empty, Scatter{X: "fare", Y: "age"}); err == nil {
		t.Errorf("scatter over zero rows should fail")
	}
}

func TestJointPanels(t *testing.T) {
	doc, err := (&Renderer{}).Render(fixture(), Joint{X: "fare", Y: "age", Bins: 6})
	if err != nil {
		t.Fatal(err)
	}
	// The enclosing document plus the scatter and two marginal
	// panels.
	if n := bytes.Count(doc, []byte("<svg")); n != 4 {
		t.Errorf("joint figure has %d <svg> elements; want 4", n)
	}
	// Each marginal outline is a drawn path, not an empty panel.
	if n := bytes.Count(doc, []byte("<path")); n < 2 {
		t.Errorf("joint figure has %d paths; want at least 2 marginal outlines", n)
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.svg")
	got, err := (&Renderer{}).RenderFile(path, fixture(), Histogram{Col: "fare"})
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("artifact = %q; want %q", got, path)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(doc, []byte("</svg>")) {
		t.Errorf("file is not a complete SVG document")
	}
}

func TestComposite(t *testing.T) {
	inner := []byte(`<?xml version="1.0"?>
<svg width="10" height="10" xmlns="http://www.w3.org/2000/svg"><rect/></svg>`)
	var buf bytes.Buffer
	err := composite(&buf, 20, 20, []panel{{0, 0, inner}, {10, 10, inner}})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, `<svg x="10" y="10"`); n != 1 {
		t.Errorf("positioned panel appears %d times; want 1", n)
	}
	if n := strings.Count(out, "<?xml"); n != 1 {
		t.Errorf("output has %d XML prologues; want 1", n)
	}
	if n := strings.Count(out, "</svg>"); n != 3 {
		t.Errorf("output has %d </svg>; want 3", n)
	}

	if _, err := nest([]byte("not svg"), 0, 0); err == nil {
		t.Errorf("nest of non-SVG input should fail")
	}
}

func TestBeeswarm(t *testing.T) {
	ys := []int{100, 100, 100, 102, 104, 150, 150}
	r := 3
	offs := beeswarm(ys, r, 50)
	if len(offs) != len(ys) {
		t.Fatalf("got %d offsets; want %d", len(offs), len(ys))
	}
	d2 := (2 * r) * (2 * r)
	for i := range ys {
		for j := i + 1; j < len(ys); j++ {
			dx, dy := offs[i]-offs[j], ys[i]-ys[j]
			if dx*dx+dy*dy < d2 {
				t.Errorf("points %d and %d overlap (dx=%d dy=%d)", i, j, dx, dy)
			}
		}
	}
	// Points far apart vertically stay on the center line.
	if offs[0] != 0 || offs[5] != 0 {
		t.Errorf("first point of each cluster should be centered; got %v", offs)
	}
}
