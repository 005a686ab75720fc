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

// Package slice adapts in-memory Go values into a datatable.DataSource.
package slice

import (
	"fmt"
	"sort"
	"time"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// Column describes one column of an in-memory dataset: its name, an
// optional opaque configuration blob, and its values. All columns of a
// dataset must carry the same number of values.
type Column struct {
	Name     string
	Metadata datatable.Metadata
	Values   []interface{}
}

// Source is an immutable in-memory data source.
type Source struct {
	names []string
	types []datatable.DataType
	meta  []datatable.Metadata
	// cells is column-major: cells[col][row].
	cells    [][]datatable.Value
	rowCount int
	metadata datatable.Metadata
}

var _ datatable.DataSource = (*Source)(nil)

// NewFromColumns builds a source from explicit columns. Column value
// types are inferred per column from the first non-nil value; a column
// whose values disagree with the inferred type falls back to string.
func NewFromColumns(columns []Column) (*Source, error) {
	s := &Source{
		names:    make([]string, len(columns)),
		types:    make([]datatable.DataType, len(columns)),
		meta:     make([]datatable.Metadata, len(columns)),
		cells:    make([][]datatable.Value, len(columns)),
		metadata: datatable.Metadata{},
	}

	for i, col := range columns {
		if i == 0 {
			s.rowCount = len(col.Values)
		} else if len(col.Values) != s.rowCount {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d",
				datatable.ErrColumnLengthMismatch, col.Name, len(col.Values), s.rowCount)
		}

		colType := inferColumnType(col.Values)
		values := make([]datatable.Value, len(col.Values))
		for row, raw := range col.Values {
			values[row] = convertValue(raw, colType)
		}

		s.names[i] = col.Name
		s.types[i] = colType
		s.meta[i] = col.Metadata
		s.cells[i] = values
	}
	return s, nil
}

// NewFromMaps builds a source from a slice of records. Column names are
// the union of all record keys, ordered alphabetically for determinism;
// missing keys become null values.
func NewFromMaps(records []map[string]interface{}) (*Source, error) {
	if len(records) == 0 {
		return nil, datatable.ErrEmptyData
	}

	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	columns := make([]Column, len(names))
	for i, name := range names {
		values := make([]interface{}, len(records))
		for row, rec := range records {
			values[row] = rec[name]
		}
		columns[i] = Column{Name: name, Values: values}
	}
	return NewFromColumns(columns)
}

// RowCount implements datatable.DataSource.
func (s *Source) RowCount() int {
	return s.rowCount
}

// ColumnCount implements datatable.DataSource.
func (s *Source) ColumnCount() int {
	return len(s.names)
}

// ColumnName implements datatable.DataSource.
func (s *Source) ColumnName(col int) (string, error) {
	if col < 0 || col >= len(s.names) {
		return "", fmt.Errorf("%w: %d", datatable.ErrInvalidColumn, col)
	}
	return s.names[col], nil
}

// ColumnType implements datatable.DataSource.
func (s *Source) ColumnType(col int) (datatable.DataType, error) {
	if col < 0 || col >= len(s.types) {
		return datatable.TypeString, fmt.Errorf("%w: %d", datatable.ErrInvalidColumn, col)
	}
	return s.types[col], nil
}

// ColumnMetadata implements datatable.DataSource.
func (s *Source) ColumnMetadata(col int) (datatable.Metadata, error) {
	if col < 0 || col >= len(s.meta) {
		return nil, fmt.Errorf("%w: %d", datatable.ErrInvalidColumn, col)
	}
	return s.meta[col], nil
}

// Cell implements datatable.DataSource.
func (s *Source) Cell(row, col int) (datatable.Value, error) {
	if col < 0 || col >= len(s.cells) {
		return datatable.Value{}, fmt.Errorf("%w: %d", datatable.ErrInvalidColumn, col)
	}
	if row < 0 || row >= s.rowCount {
		return datatable.Value{}, fmt.Errorf("%w: %d", datatable.ErrInvalidRow, row)
	}
	return s.cells[col][row], nil
}

// Row implements datatable.DataSource.
func (s *Source) Row(row int) ([]datatable.Value, error) {
	if row < 0 || row >= s.rowCount {
		return nil, fmt.Errorf("%w: %d", datatable.ErrInvalidRow, row)
	}
	out := make([]datatable.Value, len(s.cells))
	for col := range s.cells {
		out[col] = s.cells[col][row]
	}
	return out, nil
}

// Metadata implements datatable.DataSource.
func (s *Source) Metadata() datatable.Metadata {
	return s.metadata
}

// inferColumnType picks the column type from the first non-nil value.
func inferColumnType(values []interface{}) datatable.DataType {
	for _, v := range values {
		if v == nil {
			continue
		}
		return inferType(v)
	}
	return datatable.TypeString
}

func inferType(v interface{}) datatable.DataType {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		return datatable.TypeInt
	case float32, float64:
		return datatable.TypeFloat
	case bool:
		return datatable.TypeBool
	case time.Time:
		return datatable.TypeTimestamp
	case []byte:
		return datatable.TypeBinary
	default:
		return datatable.TypeString
	}
}

// convertValue wraps a raw value, stringifying anything that disagrees
// with the column's inferred type so a mixed column still renders.
func convertValue(raw interface{}, colType datatable.DataType) datatable.Value {
	if raw == nil {
		return datatable.NewNullValue(colType)
	}
	if inferType(raw) != colType {
		return datatable.NewValue(fmt.Sprintf("%v", raw), datatable.TypeString)
	}
	return datatable.NewValue(raw, colType)
}
