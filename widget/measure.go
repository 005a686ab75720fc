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

import (
	"fyne.io/fyne/v2"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// MeasurementCache memoizes measured cell sizes by grid position so
// layout work is not repeated for unchanged cells across renders.
//
// The cache lives for the lifetime of one GridTable instance and is
// only ever accessed from that instance's render passes, so no locking
// is needed. Invalidation is wholesale: Clear discards every entry;
// there are no generations and no per-entry eviction.
type MeasurementCache struct {
	sizes map[datatable.GridCoordinate]fyne.Size
}

// NewMeasurementCache returns an empty cache.
func NewMeasurementCache() *MeasurementCache {
	return &MeasurementCache{sizes: make(map[datatable.GridCoordinate]fyne.Size)}
}

// Size returns the cached measurement for a grid position.
func (c *MeasurementCache) Size(coord datatable.GridCoordinate) (fyne.Size, bool) {
	size, ok := c.sizes[coord]
	return size, ok
}

// SetSize records the measured size of a grid position.
func (c *MeasurementCache) SetSize(coord datatable.GridCoordinate, size fyne.Size) {
	c.sizes[coord] = size
}

// Clear discards every cached measurement.
func (c *MeasurementCache) Clear() {
	c.sizes = make(map[datatable.GridCoordinate]fyne.Size)
}

// Len returns the number of cached measurements.
func (c *MeasurementCache) Len() int {
	return len(c.sizes)
}
