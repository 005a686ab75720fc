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
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortController is the state machine over a single column's sort
// status. Only one column may be sorted at a time; activating a new
// column resets the previous one. Repeated activation of the same
// column cycles Descending -> Ascending -> Unsorted -> Descending.
type SortController struct {
	state SortState
}

// NewSortController returns a controller in the unsorted state.
func NewSortController() *SortController {
	return &SortController{state: Unsorted()}
}

// State returns the current sort state.
func (c *SortController) State() SortState {
	return c.state
}

// Cycle advances the state machine for a header activation on col and
// returns the new state.
func (c *SortController) Cycle(col int) SortState {
	c.state = NextSortState(c.state, col)
	return c.state
}

// NextSortState is the pure transition function of the sort state
// machine: a header activation on col moves an unsorted or
// differently-sorted state to {col, Descending}, Descending to
// Ascending, and Ascending back to unsorted.
func NextSortState(current SortState, col int) SortState {
	switch {
	case current.Column != col || current.Direction == SortNone:
		return SortState{Column: col, Direction: SortDescending}
	case current.Direction == SortDescending:
		return SortState{Column: col, Direction: SortAscending}
	default:
		return Unsorted()
	}
}

// Reset clears the sort entirely.
func (c *SortController) Reset() {
	c.state = Unsorted()
}

// sortedSource is a row-permuted view over another data source. The
// underlying source is never mutated; the view holds only an index
// permutation.
type sortedSource struct {
	DataSource
	perm []int
}

func (s *sortedSource) RowCount() int {
	return len(s.perm)
}

func (s *sortedSource) Cell(row, col int) (Value, error) {
	if row < 0 || row >= len(s.perm) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return s.DataSource.Cell(s.perm[row], col)
}

func (s *sortedSource) Row(row int) ([]Value, error) {
	if row < 0 || row >= len(s.perm) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return s.DataSource.Row(s.perm[row])
}

// NewSortedView returns a data source presenting the rows of source
// ordered by the given column. The input source is left untouched; the
// view is a new snapshot over a row permutation. Null values always
// order last regardless of direction, and ties keep their original
// relative order.
func NewSortedView(source DataSource, col int, descending bool) (DataSource, error) {
	if source == nil {
		return nil, ErrNoDataSource
	}
	if col < 0 || col >= source.ColumnCount() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSortColumn, col)
	}

	perm, err := SortRowIndices(source, col, descending)
	if err != nil {
		return nil, err
	}
	return &sortedSource{DataSource: source, perm: perm}, nil
}

// SortRowIndices computes the row permutation that orders source by the
// given column. The permutation applies over all rows of the source.
func SortRowIndices(source DataSource, col int, descending bool) ([]int, error) {
	perm := make([]int, source.RowCount())
	for i := range perm {
		perm[i] = i
	}
	if err := sortIndices(source, perm, col, descending); err != nil {
		return nil, err
	}
	return perm, nil
}

// sortIndices stably sorts the given source row indices in place by the
// values of one column.
func sortIndices(source DataSource, indices []int, col int, descending bool) error {
	values := make(map[int]Value, len(indices))
	for _, idx := range indices {
		v, err := source.Cell(idx, col)
		if err != nil {
			return fmt.Errorf("reading sort column %d: %w", col, err)
		}
		values[idx] = v
	}

	sort.SliceStable(indices, func(a, b int) bool {
		va, vb := values[indices[a]], values[indices[b]]
		// Nulls sink to the bottom in either direction.
		if va.IsNull || vb.IsNull {
			return !va.IsNull && vb.IsNull
		}
		cmp := CompareValues(va, vb)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return nil
}

// CompareValues orders two cell values. Values of numeric types compare
// numerically, times chronologically, booleans false-before-true, and
// everything else by its formatted string.
func CompareValues(a, b Value) int {
	if fa, ok := a.Float(); ok {
		if fb, ok := b.Float(); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := a.Raw.(time.Time); ok {
		if tb, ok := b.Raw.(time.Time); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		}
	}
	if ba, ok := a.Raw.(bool); ok {
		if bb, ok := b.Raw.(bool); ok {
			switch {
			case !ba && bb:
				return -1
			case ba && !bb:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(a.Formatted, b.Formatted)
}
