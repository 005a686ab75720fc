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

// GridCoordinate identifies a cell position as seen by the windowing
// primitive. When a header row is shown it occupies grid row 0.
type GridCoordinate struct {
	Row int
	Col int
}

// DataCoordinate identifies a logical position in the data source.
// Row -1 denotes the header, not a data row.
type DataCoordinate struct {
	Row int
	Col int
}

// IsHeader reports whether the coordinate addresses the header row.
func (c DataCoordinate) IsHeader() bool {
	return c.Row < 0
}

// ToDataCoordinate converts a grid coordinate into a logical data
// coordinate. With a visible header, grid row 0 is the header and maps
// to data row -1; without one, rows pass through unchanged. Columns
// always pass through unchanged.
//
// This mapping is the single source of truth for header detection;
// nothing else in the library re-derives it.
func ToDataCoordinate(grid GridCoordinate, headerVisible bool) DataCoordinate {
	row := grid.Row
	if headerVisible {
		row--
	}
	return DataCoordinate{Row: row, Col: grid.Col}
}

// ToGridCoordinate is the inverse mapping, used to address cells of the
// windowing primitive from logical positions (e.g. the first data row
// when scrolling back to the top).
func ToGridCoordinate(data DataCoordinate, headerVisible bool) GridCoordinate {
	row := data.Row
	if headerVisible {
		row++
	}
	return GridCoordinate{Row: row, Col: data.Col}
}
