// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the passenger records of the 1912 Titanic
// disaster as a table.Table.
//
// A small excerpt of the dataset is bundled into the package so
// consumers work with no external files. The widely distributed full
// CSV export (891 rows, as shipped with seaborn) can be loaded with
// Open; it is validated against the expected column schema.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

// Column names of a passenger record.
const (
	Survived   = "survived"
	Pclass     = "pclass"
	Sex        = "sex"
	Age        = "age"
	SibSp      = "sibsp"
	Parch      = "parch"
	Fare       = "fare"
	Embarked   = "embarked"
	Class      = "class"
	Who        = "who"
	AdultMale  = "adult_male"
	Deck       = "deck"
	EmbarkTown = "embark_town"
	Alive      = "alive"
	Alone      = "alone"
)

// schema lists the expected columns and their types. Numeric columns
// may load as Int or Float depending on whether the file has missing
// cells in them.
var schema = []struct {
	name    string
	typ     table.Type
	numeric bool
}{
	{Survived, table.Int, true},
	{Pclass, table.Int, true},
	{Sex, table.Categorical, false},
	{Age, table.Float, true},
	{SibSp, table.Int, true},
	{Parch, table.Int, true},
	{Fare, table.Float, true},
	{Embarked, table.Categorical, false},
	{Class, table.Categorical, false},
	{Who, table.Categorical, false},
	{AdultMale, table.Bool, false},
	{Deck, table.Categorical, false},
	{EmbarkTown, table.Categorical, false},
	{Alive, table.Categorical, false},
	{Alone, table.Bool, false},
}

//go:embed sample.csv
var sampleCSV []byte

// Sample returns the bundled excerpt of the passenger dataset.
func Sample() *table.Table {
	t, err := table.Read(bytes.NewReader(sampleCSV))
	if err != nil {
		panic("dataset: bad embedded sample: " + err.Error())
	}
	if err := check(t); err != nil {
		panic("dataset: bad embedded sample: " + err.Error())
	}
	return t
}

// Open loads a full CSV export of the passenger dataset from path and
// validates it against the expected schema. Schema violations are
// reported as a *table.LoadError.
func Open(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := table.Read(f)
	if err != nil {
		return nil, err
	}
	if err := check(t); err != nil {
		return nil, err
	}
	return t, nil
}

func check(t *table.Table) error {
	for _, want := range schema {
		c, err := t.Column(want.name)
		if err != nil {
			return &table.LoadError{Msg: fmt.Sprintf("missing column %q", want.name)}
		}
		ok := c.Type() == want.typ
		if want.numeric {
			ok = c.Type().Numeric()
		}
		if !ok {
			return &table.LoadError{Msg: fmt.Sprintf("column %q is %v; want %v", want.name, c.Type(), want.typ)}
		}
	}
	return nil
}
