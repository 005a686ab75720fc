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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortControllerCycle(t *testing.T) {
	c := NewSortController()
	assert.False(t, c.State().IsSorted())

	// Strict 3-cycle on one column.
	assert.Equal(t, SortState{Column: 1, Direction: SortDescending}, c.Cycle(1))
	assert.Equal(t, SortState{Column: 1, Direction: SortAscending}, c.Cycle(1))
	assert.Equal(t, Unsorted(), c.Cycle(1))
	assert.Equal(t, SortState{Column: 1, Direction: SortDescending}, c.Cycle(1))
}

func TestSortControllerSwitchingColumnResets(t *testing.T) {
	c := NewSortController()
	c.Cycle(0)
	c.Cycle(0) // column 0 ascending

	state := c.Cycle(2)
	assert.Equal(t, SortState{Column: 2, Direction: SortDescending}, state)

	// The previous column restarts its own cycle from Descending.
	state = c.Cycle(0)
	assert.Equal(t, SortState{Column: 0, Direction: SortDescending}, state)
}

func TestNextSortStateIsPure(t *testing.T) {
	current := SortState{Column: 3, Direction: SortDescending}
	next := NextSortState(current, 3)
	assert.Equal(t, SortState{Column: 3, Direction: SortAscending}, next)
	assert.Equal(t, SortState{Column: 3, Direction: SortDescending}, current)
}

func TestNewSortedViewDoesNotMutateSource(t *testing.T) {
	source := numbersAndNames()

	view, err := NewSortedView(source, 1, true)
	require.NoError(t, err)

	// View is descending by score: 4, 3, 2, 1.
	scores := make([]int64, view.RowCount())
	for i := range scores {
		v, err := view.Cell(i, 1)
		require.NoError(t, err)
		scores[i] = v.Raw.(int64)
	}
	assert.Equal(t, []int64{4, 3, 2, 1}, scores)

	// Source keeps its original order.
	v, err := source.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Raw)
	v, err = source.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Raw)
}

func TestNewSortedViewAscendingStrings(t *testing.T) {
	source := numbersAndNames()

	view, err := NewSortedView(source, 0, false)
	require.NoError(t, err)

	names := make([]string, view.RowCount())
	for i := range names {
		v, err := view.Cell(i, 0)
		require.NoError(t, err)
		names[i] = v.Raw.(string)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, names)
}

func TestNewSortedViewInvalidColumn(t *testing.T) {
	source := numbersAndNames()

	_, err := NewSortedView(source, 9, true)
	assert.ErrorIs(t, err, ErrInvalidSortColumn)

	_, err = NewSortedView(nil, 0, true)
	assert.ErrorIs(t, err, ErrNoDataSource)
}

func TestSortNullsOrderLast(t *testing.T) {
	source := newTestSource(
		[]string{"n"},
		[]DataType{TypeInt},
		[]interface{}{int64(2), nil, int64(1), nil},
	)

	for _, descending := range []bool{true, false} {
		perm, err := SortRowIndices(source, 0, descending)
		require.NoError(t, err)
		// Rows 1 and 3 (nulls) sink to the bottom either way.
		assert.ElementsMatch(t, []int{1, 3}, perm[2:])
	}
}

func TestCompareValues(t *testing.T) {
	assert.Negative(t, CompareValues(NewValue(int64(1), TypeInt), NewValue(int64(2), TypeInt)))
	assert.Positive(t, CompareValues(NewValue(2.5, TypeFloat), NewValue(int64(2), TypeInt)))
	assert.Zero(t, CompareValues(NewValue("a", TypeString), NewValue("a", TypeString)))
	assert.Negative(t, CompareValues(NewValue(false, TypeBool), NewValue(true, TypeBool)))

	earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	assert.Negative(t, CompareValues(NewValue(earlier, TypeTimestamp), NewValue(later, TypeTimestamp)))
}
