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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// containsFilter keeps rows where any cell contains the query.
type containsFilter struct {
	query string
}

func (f containsFilter) Evaluate(row []Value, _ []string) (bool, error) {
	for _, v := range row {
		if strings.Contains(v.Formatted, f.query) {
			return true, nil
		}
	}
	return false, nil
}

func (f containsFilter) Description() string { return "contains " + f.query }

func TestNewTableModelRequiresSource(t *testing.T) {
	_, err := NewTableModel(nil)
	assert.ErrorIs(t, err, ErrNoDataSource)
}

func TestTableModelUnsortedMatchesSourceOrder(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	assert.Equal(t, 4, m.VisibleRowCount())
	assert.Equal(t, []int{0, 1, 2, 3}, m.GetVisibleRowIndices())
	assert.False(t, m.GetSortState().IsSorted())
}

func TestTableModelCycleSortReorders(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	// First activation sorts descending by score.
	state, err := m.CycleSort(1)
	require.NoError(t, err)
	assert.Equal(t, SortState{Column: 1, Direction: SortDescending}, state)
	assert.Equal(t, []int{0, 2, 3, 1}, m.GetVisibleRowIndices())

	// Second flips to ascending.
	state, err = m.CycleSort(1)
	require.NoError(t, err)
	assert.Equal(t, SortAscending, state.Direction)
	assert.Equal(t, []int{1, 3, 2, 0}, m.GetVisibleRowIndices())

	// Third restores source order.
	state, err = m.CycleSort(1)
	require.NoError(t, err)
	assert.False(t, state.IsSorted())
	assert.Equal(t, []int{0, 1, 2, 3}, m.GetVisibleRowIndices())
}

func TestTableModelCycleSortInvalidColumn(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	_, err = m.CycleSort(7)
	assert.ErrorIs(t, err, ErrInvalidSortColumn)
	assert.False(t, m.GetSortState().IsSorted())
}

func TestTableModelVisibleCellFollowsSort(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	_, err = m.CycleSort(0) // descending by name
	require.NoError(t, err)

	v, err := m.VisibleCell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "delta", v.Raw)

	v, err = m.VisibleCell(3, 0)
	require.NoError(t, err)
	assert.Equal(t, "alpha", v.Raw)

	_, err = m.VisibleCell(4, 0)
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestTableModelSetSourcePreservesValidSort(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	_, err = m.CycleSort(1)
	require.NoError(t, err)
	_, err = m.CycleSort(1) // ascending by score
	require.NoError(t, err)

	next := newTestSource(
		[]string{"name", "score", "active"},
		[]DataType{TypeString, TypeInt, TypeBool},
		[]interface{}{"x", "y"},
		[]interface{}{int64(9), int64(5)},
		[]interface{}{false, true},
	)
	require.NoError(t, m.SetSource(next))

	// Same column still exists, so the sort carries over to the new rows.
	assert.Equal(t, SortState{Column: 1, Direction: SortAscending}, m.GetSortState())
	assert.Equal(t, []int{1, 0}, m.GetVisibleRowIndices())
}

func TestTableModelSetSourceClearsStaleSort(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	_, err = m.CycleSort(2)
	require.NoError(t, err)

	narrow := newTestSource(
		[]string{"only"},
		[]DataType{TypeString},
		[]interface{}{"b", "a"},
	)
	require.NoError(t, m.SetSource(narrow))

	assert.False(t, m.GetSortState().IsSorted())
	assert.Equal(t, []int{0, 1}, m.GetVisibleRowIndices())
}

func TestTableModelFilterThenSort(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	require.NoError(t, m.SetFilter(containsFilter{query: "r"}))
	assert.Equal(t, 2, m.VisibleRowCount()) // charlie, bravo

	_, err = m.CycleSort(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, m.GetVisibleRowIndices())

	require.NoError(t, m.ClearFilter())
	assert.Equal(t, 4, m.VisibleRowCount())
	// Sort survives clearing the filter.
	assert.Equal(t, []int{0, 2, 3, 1}, m.GetVisibleRowIndices())
}

func TestTableModelSetSortRejectsMissingColumn(t *testing.T) {
	m, err := NewTableModel(numbersAndNames())
	require.NoError(t, err)

	err = m.SetSort(SortState{Column: 12, Direction: SortDescending})
	assert.ErrorIs(t, err, ErrInvalidSortColumn)
}
