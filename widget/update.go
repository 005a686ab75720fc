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

package widget

import "github.com/magpierre/fyne-gridtable/datatable"

// renderState is the full set of inputs the grid render decisions
// depend on. Sources and rule lists compare by identity: a data change
// is always a wholesale replacement, never in-place mutation.
type renderState struct {
	source       datatable.DataSource
	styles       []datatable.StyleRule
	sort         datatable.SortState
	showHeader   bool
	fixedHeader  bool
	fixedColumns int
}

// updateDelta holds the four independent render decisions for one
// state transition. Each flag is computed by its own predicate; none
// implies another except scrollToTop, which always accompanies resort.
type updateDelta struct {
	// invalidateMeasurements discards every cached cell measurement.
	invalidateMeasurements bool

	// rebuildLayout replaces the column render info wholesale.
	rebuildLayout bool

	// resort re-derives the displayed data snapshot.
	resort bool

	// scrollToTop is a one-shot command consumed by the next render
	// pass: the viewport returns to the first data row.
	scrollToTop bool
}

// computeDelta evaluates the render predicates for a transition from
// prev to next. The predicates are independent; evaluating them in one
// place keeps unrelated invalidation reasons from coupling.
func computeDelta(prev, next renderState) updateDelta {
	dataChanged := prev.source != next.source
	structureChanged := prev.showHeader != next.showHeader ||
		prev.fixedHeader != next.fixedHeader ||
		prev.fixedColumns != next.fixedColumns
	stylesChanged := !sameRules(prev.styles, next.styles)
	sortChanged := prev.sort != next.sort

	resort := dataChanged || sortChanged
	return updateDelta{
		invalidateMeasurements: dataChanged || structureChanged,
		rebuildLayout:          dataChanged || stylesChanged,
		resort:                 resort,
		scrollToTop:            resort,
	}
}

// sameRules reports whether two style-rule lists are the same list, by
// identity. The style list is replaced as a unit on change, so backing
// array identity is the change signal, not deep equality.
func sameRules(a, b []datatable.StyleRule) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
