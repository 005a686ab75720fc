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

package datatable

import "fmt"

// testSource is a minimal in-memory DataSource for tests.
type testSource struct {
	names []string
	types []DataType
	// cells is column-major.
	cells [][]Value
}

func newTestSource(names []string, types []DataType, columns ...[]interface{}) *testSource {
	s := &testSource{names: names, types: types, cells: make([][]Value, len(columns))}
	for col, raw := range columns {
		values := make([]Value, len(raw))
		for row, v := range raw {
			values[row] = NewValue(v, types[col])
		}
		s.cells[col] = values
	}
	return s
}

// numbersAndNames returns the shared three-column fixture:
// name (string), score (int), active (bool).
func numbersAndNames() *testSource {
	return newTestSource(
		[]string{"name", "score", "active"},
		[]DataType{TypeString, TypeInt, TypeBool},
		[]interface{}{"delta", "alpha", "charlie", "bravo"},
		[]interface{}{int64(4), int64(1), int64(3), int64(2)},
		[]interface{}{true, false, true, false},
	)
}

func (s *testSource) RowCount() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

func (s *testSource) ColumnCount() int { return len(s.names) }

func (s *testSource) ColumnName(col int) (string, error) {
	if col < 0 || col >= len(s.names) {
		return "", fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return s.names[col], nil
}

func (s *testSource) ColumnType(col int) (DataType, error) {
	if col < 0 || col >= len(s.types) {
		return TypeString, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return s.types[col], nil
}

func (s *testSource) ColumnMetadata(col int) (Metadata, error) {
	if col < 0 || col >= len(s.names) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return nil, nil
}

func (s *testSource) Cell(row, col int) (Value, error) {
	if col < 0 || col >= len(s.cells) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	if row < 0 || row >= len(s.cells[col]) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return s.cells[col][row], nil
}

func (s *testSource) Row(row int) ([]Value, error) {
	if row < 0 || row >= s.RowCount() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	out := make([]Value, len(s.cells))
	for col := range s.cells {
		out[col] = s.cells[col][row]
	}
	return out, nil
}

func (s *testSource) Metadata() Metadata { return Metadata{} }
