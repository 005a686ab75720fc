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

// TableModel owns a data source and the derived visible view over it:
// the row order after filtering and sorting. The source itself is the
// unsorted, unfiltered truth and is never mutated; the view is a row
// permutation recomputed whenever the source, sort state or filter
// changes.
type TableModel struct {
	source DataSource
	sorter *SortController
	filter Filter

	// visible maps view row index -> source row index.
	visible []int

	columnNames []string
}

// NewTableModel creates a model over the given source.
func NewTableModel(source DataSource) (*TableModel, error) {
	if source == nil {
		return nil, ErrNoDataSource
	}
	m := &TableModel{
		source: source,
		sorter: NewSortController(),
	}
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// Source returns the underlying data source.
func (m *TableModel) Source() DataSource {
	return m.source
}

// SetSource replaces the data source wholesale. The current sort state
// is re-applied to the new data when its column still exists, otherwise
// the sort is cleared.
func (m *TableModel) SetSource(source DataSource) error {
	if source == nil {
		return ErrNoDataSource
	}
	m.source = source
	m.columnNames = nil
	if s := m.sorter.State(); s.IsSorted() && s.Column >= source.ColumnCount() {
		m.sorter.Reset()
	}
	return m.rebuild()
}

// OriginalRowCount returns the row count of the underlying source.
func (m *TableModel) OriginalRowCount() int {
	return m.source.RowCount()
}

// OriginalColumnCount returns the column count of the underlying source.
func (m *TableModel) OriginalColumnCount() int {
	return m.source.ColumnCount()
}

// VisibleRowCount returns the number of rows after filtering.
func (m *TableModel) VisibleRowCount() int {
	return len(m.visible)
}

// VisibleColumnCount returns the number of visible columns.
func (m *TableModel) VisibleColumnCount() int {
	return m.source.ColumnCount()
}

// VisibleColumnName returns the name of the visible column at col.
func (m *TableModel) VisibleColumnName(col int) (string, error) {
	return m.source.ColumnName(col)
}

// VisibleColumnType returns the type of the visible column at col.
func (m *TableModel) VisibleColumnType(col int) (DataType, error) {
	return m.source.ColumnType(col)
}

// ColumnMetadata returns the opaque configuration blob of a column.
func (m *TableModel) ColumnMetadata(col int) (Metadata, error) {
	return m.source.ColumnMetadata(col)
}

// VisibleCell returns the value at a view position.
func (m *TableModel) VisibleCell(row, col int) (Value, error) {
	if row < 0 || row >= len(m.visible) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return m.source.Cell(m.visible[row], col)
}

// VisibleRow returns all values of the view row.
func (m *TableModel) VisibleRow(row int) ([]Value, error) {
	if row < 0 || row >= len(m.visible) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return m.source.Row(m.visible[row])
}

// GetVisibleRowIndices returns the source row index for each view row,
// in view order. The returned slice is a copy.
func (m *TableModel) GetVisibleRowIndices() []int {
	out := make([]int, len(m.visible))
	copy(out, m.visible)
	return out
}

// GetSortState returns the current sort state.
func (m *TableModel) GetSortState() SortState {
	return m.sorter.State()
}

// CycleSort advances the sort state machine for a header activation on
// col (Descending -> Ascending -> Unsorted -> Descending; a different
// column restarts at Descending) and re-derives the visible view.
func (m *TableModel) CycleSort(col int) (SortState, error) {
	if col < 0 || col >= m.source.ColumnCount() {
		return m.sorter.State(), fmt.Errorf("%w: %d", ErrInvalidSortColumn, col)
	}
	state := m.sorter.Cycle(col)
	if err := m.rebuild(); err != nil {
		return state, err
	}
	return state, nil
}

// SetSort forces a specific sort state and re-derives the visible view.
func (m *TableModel) SetSort(state SortState) error {
	if state.IsSorted() && state.Column >= m.source.ColumnCount() {
		return fmt.Errorf("%w: %d", ErrInvalidSortColumn, state.Column)
	}
	m.sorter.state = state
	return m.rebuild()
}

// ClearSort removes any active sort and restores source row order.
func (m *TableModel) ClearSort() error {
	m.sorter.Reset()
	return m.rebuild()
}

// SetFilter installs a row filter and re-derives the visible view.
// A nil filter clears filtering.
func (m *TableModel) SetFilter(filter Filter) error {
	m.filter = filter
	return m.rebuild()
}

// ClearFilter removes any active filter.
func (m *TableModel) ClearFilter() error {
	return m.SetFilter(nil)
}

// names returns the column name list, computed once per source.
func (m *TableModel) names() ([]string, error) {
	if m.columnNames != nil {
		return m.columnNames, nil
	}
	count := m.source.ColumnCount()
	names := make([]string, count)
	for i := 0; i < count; i++ {
		n, err := m.source.ColumnName(i)
		if err != nil {
			return nil, err
		}
		names[i] = n
	}
	m.columnNames = names
	return names, nil
}

// rebuild recomputes the visible row permutation: filter first, then a
// stable sort of the surviving rows.
func (m *TableModel) rebuild() error {
	rows := m.source.RowCount()
	candidates := make([]int, 0, rows)

	if m.filter == nil {
		for i := 0; i < rows; i++ {
			candidates = append(candidates, i)
		}
	} else {
		names, err := m.names()
		if err != nil {
			return err
		}
		for i := 0; i < rows; i++ {
			row, err := m.source.Row(i)
			if err != nil {
				return err
			}
			pass, err := m.filter.Evaluate(row, names)
			if err != nil {
				return fmt.Errorf("evaluating filter: %w", err)
			}
			if pass {
				candidates = append(candidates, i)
			}
		}
	}

	state := m.sorter.State()
	if state.IsSorted() {
		if err := sortIndices(m.source, candidates, state.Column, state.Direction == SortDescending); err != nil {
			return err
		}
	}

	m.visible = candidates
	return nil
}
