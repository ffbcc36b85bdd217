// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command titanicplot renders the exploratory charts of the Titanic
// passenger dataset as SVG files.
//
// titanicplot loads the passenger table from a CSV file (or from the
// bundled sample if no file is given) and writes one numbered SVG per
// chart to the output directory: fare and age distributions, their
// joint views, survival and age broken down by class and sex, and the
// pairwise grid of the numeric columns.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/NEU-DS-4200-F23/titanic-eda/dataset"
	"github.com/NEU-DS-4200-F23/titanic-eda/plot"
	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

func main() {
	log.SetPrefix("titanicplot: ")
	log.SetFlags(0)

	var (
		flagData   = flag.String("data", "", "load passengers from CSV `file` (default: bundled sample)")
		flagOut    = flag.String("o", ".", "write SVG files to `dir`")
		flagWidth  = flag.Int("width", 0, "single-panel figure width in `pixels`")
		flagHeight = flag.Int("height", 0, "single-panel figure height in `pixels`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	var (
		t   *table.Table
		err error
	)
	if *flagData == "" {
		t = dataset.Sample()
	} else {
		t, err = dataset.Open(*flagData)
		if err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("loaded %d passengers", t.Len())

	r := &plot.Renderer{Width: *flagWidth, Height: *flagHeight}
	charts := []struct {
		name  string
		chart plot.Chart
	}{
		{"01-fare-hist", plot.Histogram{Col: dataset.Fare, Bins: 30}},
		{"02-fare-hist-red", plot.Histogram{Col: dataset.Fare, Bins: 30, Color: plot.Red}},
		{"03-fare-age-scatter", plot.Scatter{X: dataset.Fare, Y: dataset.Age}},
		{"04-fare-age-hexbin", plot.Hexbin{X: dataset.Fare, Y: dataset.Age, GridSize: 10}},
		{"05-fare-age-joint", plot.Joint{X: dataset.Fare, Y: dataset.Age, Bins: 20}},
		{"06-class-age-box", plot.Box{X: dataset.Class, Y: dataset.Age}},
		{"07-class-age-swarm", plot.Swarm{X: dataset.Class, Y: dataset.Age, Size: 4}},
		{"08-class-age-violin", plot.Violin{X: dataset.Class, Y: dataset.Age, Cut: 0}},
		{"09-sex-count", plot.Count{X: dataset.Sex}},
		{"10-age-by-sex-facet", plot.FacetGrid{Facet: dataset.Sex, Col: dataset.Age, Bins: 10}},
		{"11-pair", plot.PairGrid{Cols: []string{dataset.Age, dataset.Pclass, dataset.Survived, dataset.Fare}}},
	}
	for _, c := range charts {
		path, err := r.RenderFile(filepath.Join(*flagOut, c.name+".svg"), t, c.chart)
		if err != nil {
			log.Fatalf("%s: %v", c.name, err)
		}
		log.Printf("wrote %s", path)
	}
}
