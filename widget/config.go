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

// Config controls GridTable behavior and appearance.
type Config struct {
	// MinColumnWidth is the minimum render width of every column.
	MinColumnWidth float32

	// ShowHeader displays the header row as grid row 0.
	ShowHeader bool

	// FixedHeader keeps the header row visible while scrolling.
	FixedHeader bool

	// FixedColumns is the number of leading columns kept visible while
	// scrolling horizontally.
	FixedColumns int

	// ShowFilterBar displays a text filter entry above the grid.
	ShowFilterBar bool

	// ShowStatusBar displays row/column counts and the sort state
	// below the grid.
	ShowStatusBar bool

	// PlaceholderText is shown instead of the grid when the data source
	// has no columns.
	PlaceholderText string
}

// DefaultConfig returns the default GridTable configuration.
func DefaultConfig() Config {
	return Config{
		MinColumnWidth:  datatable.DefaultMinColumnWidth,
		ShowHeader:      true,
		FixedHeader:     true,
		FixedColumns:    0,
		ShowFilterBar:   false,
		ShowStatusBar:   false,
		PlaceholderText: "No fields to display",
	}
}
