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

// Package csv adapts CSV files and readers into a datatable.DataSource.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/magpierre/fyne-gridtable/adapters/slice"
	"github.com/magpierre/fyne-gridtable/datatable"
)

// Config controls CSV parsing.
type Config struct {
	// Delimiter is the field separator.
	Delimiter rune

	// HasHeaders indicates the first record holds column names.
	// Without headers, columns are named column_1, column_2, ...
	HasHeaders bool

	// TrimSpace removes surrounding whitespace from every field.
	TrimSpace bool
}

// DefaultConfig returns the default CSV configuration: comma-separated
// with a header row.
func DefaultConfig() Config {
	return Config{
		Delimiter:  ',',
		HasHeaders: true,
		TrimSpace:  false,
	}
}

// NewFromFile loads a CSV file into a data source.
func NewFromFile(path string, config Config) (*slice.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return NewFromReader(f, config)
}

// NewFromReader parses CSV data from r into a data source. Field values
// are typed per column: a column whose every non-empty value parses as
// an integer, float or boolean gets that type, otherwise string. Empty
// fields become nulls.
func NewFromReader(r io.Reader, config Config) (*slice.Source, error) {
	reader := csv.NewReader(r)
	if config.Delimiter != 0 {
		reader.Comma = config.Delimiter
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, datatable.ErrEmptyData
	}

	var names []string
	if config.HasHeaders {
		names = records[0]
		records = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("column_%d", i+1)
		}
	}
	if config.TrimSpace {
		for i, n := range names {
			names[i] = strings.TrimSpace(n)
		}
	}

	columns := make([]slice.Column, len(names))
	for col := range names {
		values := make([]string, len(records))
		for row, rec := range records {
			field := ""
			if col < len(rec) {
				field = rec[col]
			}
			if config.TrimSpace {
				field = strings.TrimSpace(field)
			}
			values[row] = field
		}
		columns[col] = slice.Column{
			Name:   names[col],
			Values: typeFields(values),
		}
	}

	return slice.NewFromColumns(columns)
}

// typeFields converts string fields into typed raw values based on what
// every non-empty field in the column parses as.
func typeFields(fields []string) []interface{} {
	isInt, isFloat, isBool := true, true, true
	empty := true
	for _, f := range fields {
		if f == "" {
			continue
		}
		empty = false
		if _, err := strconv.ParseInt(f, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			isFloat = false
		}
		if _, err := strconv.ParseBool(f); err != nil {
			isBool = false
		}
	}
	if empty {
		isInt, isFloat, isBool = false, false, false
	}

	out := make([]interface{}, len(fields))
	for i, f := range fields {
		if f == "" {
			out[i] = nil
			continue
		}
		switch {
		case isInt:
			v, _ := strconv.ParseInt(f, 10, 64)
			out[i] = v
		case isFloat:
			v, _ := strconv.ParseFloat(f, 64)
			out[i] = v
		case isBool:
			v, _ := strconv.ParseBool(f)
			out[i] = v
		default:
			out[i] = f
		}
	}
	return out
}
