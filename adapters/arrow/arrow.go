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

// Package arrow adapts Apache Arrow tables into a datatable.DataSource.
package arrow

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// Source is a data source materialized from an Arrow table. The Arrow
// table itself can be released after construction; the source holds
// converted values only.
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

// NewFromArrowTable converts an Arrow table into a data source. Arrow
// field metadata becomes the per-column configuration blob. Types the
// converter does not handle natively degrade to their Arrow string
// representation rather than failing.
func NewFromArrowTable(table arrow.Table) (*Source, error) {
	if table == nil {
		return nil, datatable.ErrNoDataSource
	}

	schema := table.Schema()
	numCols := int(table.NumCols())
	numRows := int(table.NumRows())

	s := &Source{
		names:    make([]string, numCols),
		types:    make([]datatable.DataType, numCols),
		meta:     make([]datatable.Metadata, numCols),
		cells:    make([][]datatable.Value, numCols),
		rowCount: numRows,
		metadata: datatable.Metadata{},
	}

	for i := 0; i < numCols; i++ {
		field := schema.Field(i)
		s.names[i] = field.Name
		s.types[i] = mapArrowType(field.Type)
		s.meta[i] = fieldMetadata(field)
		s.cells[i] = make([]datatable.Value, 0, numRows)
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()
	for tr.Next() {
		rec := tr.Record()
		for col := 0; col < numCols; col++ {
			arr := rec.Column(col)
			for pos := 0; pos < arr.Len(); pos++ {
				s.cells[col] = append(s.cells[col], extractValue(arr, pos, s.types[col]))
			}
		}
	}

	return s, nil
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

// fieldMetadata converts Arrow field metadata into the opaque column blob.
func fieldMetadata(field arrow.Field) datatable.Metadata {
	kv := field.Metadata
	if kv.Len() == 0 {
		return nil
	}
	meta := make(datatable.Metadata, kv.Len())
	for i, key := range kv.Keys() {
		meta[key] = kv.Values()[i]
	}
	return meta
}

// mapArrowType maps an Arrow data type onto the datatable type system.
func mapArrowType(t arrow.DataType) datatable.DataType {
	switch t.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return datatable.TypeString
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return datatable.TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return datatable.TypeFloat
	case arrow.BOOL:
		return datatable.TypeBool
	case arrow.DATE32, arrow.DATE64:
		return datatable.TypeDate
	case arrow.TIMESTAMP:
		return datatable.TypeTimestamp
	case arrow.BINARY, arrow.LARGE_BINARY:
		return datatable.TypeBinary
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return datatable.TypeDecimal
	case arrow.STRUCT:
		return datatable.TypeStruct
	case arrow.LIST, arrow.LARGE_LIST:
		return datatable.TypeList
	default:
		return datatable.TypeString
	}
}

// extractValue pulls one typed value out of an Arrow array.
func extractValue(col arrow.Array, pos int, colType datatable.DataType) datatable.Value {
	if col.IsNull(pos) {
		return datatable.NewNullValue(colType)
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return datatable.NewValue(col.(*array.String).Value(pos), colType)
	case arrow.LARGE_STRING:
		return datatable.NewValue(col.(*array.LargeString).Value(pos), colType)
	case arrow.BOOL:
		return datatable.NewValue(col.(*array.Boolean).Value(pos), colType)
	case arrow.INT8:
		return datatable.NewValue(int64(col.(*array.Int8).Value(pos)), colType)
	case arrow.INT16:
		return datatable.NewValue(int64(col.(*array.Int16).Value(pos)), colType)
	case arrow.INT32:
		return datatable.NewValue(int64(col.(*array.Int32).Value(pos)), colType)
	case arrow.INT64:
		return datatable.NewValue(col.(*array.Int64).Value(pos), colType)
	case arrow.UINT8:
		return datatable.NewValue(int64(col.(*array.Uint8).Value(pos)), colType)
	case arrow.UINT16:
		return datatable.NewValue(int64(col.(*array.Uint16).Value(pos)), colType)
	case arrow.UINT32:
		return datatable.NewValue(int64(col.(*array.Uint32).Value(pos)), colType)
	case arrow.UINT64:
		return datatable.NewValue(col.(*array.Uint64).Value(pos), colType)
	case arrow.FLOAT16:
		return datatable.NewValue(float64(col.(*array.Float16).Value(pos).Float32()), colType)
	case arrow.FLOAT32:
		return datatable.NewValue(float64(col.(*array.Float32).Value(pos)), colType)
	case arrow.FLOAT64:
		return datatable.NewValue(col.(*array.Float64).Value(pos), colType)
	case arrow.DATE32:
		return datatable.NewValue(col.(*array.Date32).Value(pos).ToTime(), colType)
	case arrow.DATE64:
		return datatable.NewValue(col.(*array.Date64).Value(pos).ToTime(), colType)
	case arrow.TIMESTAMP:
		tsType := col.DataType().(*arrow.TimestampType)
		return datatable.NewValue(col.(*array.Timestamp).Value(pos).ToTime(tsType.Unit), colType)
	case arrow.BINARY:
		return datatable.NewValue(col.(*array.Binary).Value(pos), colType)
	case arrow.DECIMAL128, arrow.DECIMAL256:
		// Decimals keep their numeric ordering by converting through the
		// string representation.
		str := col.ValueStr(pos)
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return datatable.NewValue(f, colType)
		}
		return datatable.NewValue(str, datatable.TypeString)
	default:
		// Structs, lists and anything else render as their Arrow string
		// representation.
		return datatable.NewValue(col.ValueStr(pos), colType)
	}
}
