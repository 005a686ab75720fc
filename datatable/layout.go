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

// ColumnInfo is the derived render description of a single column: the
// effective display title, the render width, the column type and the
// style the cell builder receives. One ColumnInfo exists per column and
// the slice is always replaced as a unit, never patched in place.
type ColumnInfo struct {
	// Title is the display title after style-rule alias substitution.
	Title string

	// Width is the render width in device-independent pixels.
	Width float32

	// Type is the column's data type, used for builder selection.
	Type DataType

	// Style is the resolved cell style for this column.
	Style CellStyle

	// Metadata is the column's opaque configuration blob.
	Metadata Metadata
}

// DefaultMinColumnWidth is the minimum per-column render width used
// when a caller passes no explicit minimum.
const DefaultMinColumnWidth float32 = 150

// BuildColumnLayout produces one ColumnInfo per column of the source.
// Every column gets equal width, max(viewportWidth/columnCount,
// minColumnWidth); there is no per-column override. The result is a
// full replacement rebuilt whenever the data source or the style-rule
// list changes; callers must not mutate it.
//
// A nil or empty source yields a nil layout.
func BuildColumnLayout(source DataSource, styles *StyleSet, viewportWidth, minColumnWidth float32) []ColumnInfo {
	if source == nil {
		return nil
	}
	count := source.ColumnCount()
	if count <= 0 {
		return nil
	}
	if minColumnWidth <= 0 {
		minColumnWidth = DefaultMinColumnWidth
	}

	width := viewportWidth / float32(count)
	if width < minColumnWidth {
		width = minColumnWidth
	}

	layout := make([]ColumnInfo, count)
	for col := 0; col < count; col++ {
		name, err := source.ColumnName(col)
		if err != nil {
			name = ""
		}
		colType, err := source.ColumnType(col)
		if err != nil {
			colType = TypeString
		}
		meta, err := source.ColumnMetadata(col)
		if err != nil {
			meta = nil
		}
		resolved := styles.Resolve(name)
		layout[col] = ColumnInfo{
			Title:    resolved.Title,
			Width:    width,
			Type:     colType,
			Style:    resolved.Style,
			Metadata: meta,
		}
	}
	return layout
}
