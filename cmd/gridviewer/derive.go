// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/magpierre/fyne-gridtable/adapters/slice"
	"github.com/magpierre/fyne-gridtable/datatable"
)

// applyDerivedColumn appends a computed column to the source. The
// definition has the form name=expr where expr is a Go expression
// evaluated per row by the yaegi interpreter; the row is available as
// row map[string]interface{} keyed by column name.
func applyDerivedColumn(source datatable.DataSource, def string) (datatable.DataSource, error) {
	name, expr, ok := strings.Cut(def, "=")
	if !ok || name == "" || expr == "" {
		return nil, fmt.Errorf("derived column must be name=expr, got %q", def)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib symbols: %w", err)
	}

	v, err := i.Eval(fmt.Sprintf("func(row map[string]interface{}) interface{} { return %s }", expr))
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", expr, err)
	}
	fn, ok := v.Interface().(func(map[string]interface{}) interface{})
	if !ok {
		return nil, fmt.Errorf("expression %q is not usable as a row function", expr)
	}

	columns, err := sourceColumns(source)
	if err != nil {
		return nil, err
	}

	rows := source.RowCount()
	derived := make([]interface{}, rows)
	for row := 0; row < rows; row++ {
		values, err := source.Row(row)
		if err != nil {
			return nil, err
		}
		m := make(map[string]interface{}, len(columns))
		for col := range columns {
			m[columns[col].Name] = values[col].Raw
		}
		derived[row] = evalRow(fn, m)
	}

	columns = append(columns, slice.Column{Name: name, Values: derived})
	return slice.NewFromColumns(columns)
}

// evalRow invokes the interpreted function, turning a panic inside the
// user expression into a null cell instead of taking the viewer down.
func evalRow(fn func(map[string]interface{}) interface{}, row map[string]interface{}) (out interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("gridviewer: derived expression panicked: %v", r)
			out = nil
		}
	}()
	return fn(row)
}

// sourceColumns materializes a data source back into slice columns so a
// new column can be appended.
func sourceColumns(source datatable.DataSource) ([]slice.Column, error) {
	count := source.ColumnCount()
	rows := source.RowCount()

	columns := make([]slice.Column, count)
	for col := 0; col < count; col++ {
		name, err := source.ColumnName(col)
		if err != nil {
			return nil, err
		}
		meta, err := source.ColumnMetadata(col)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, rows)
		for row := 0; row < rows; row++ {
			v, err := source.Cell(row, col)
			if err != nil {
				return nil, err
			}
			values[row] = v.Raw
		}
		columns[col] = slice.Column{Name: name, Metadata: meta, Values: values}
	}
	return columns, nil
}
