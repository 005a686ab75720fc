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

	"github.com/stretchr/testify/assert"
)

func TestToDataCoordinateWithHeader(t *testing.T) {
	for gridRow := 0; gridRow < 10; gridRow++ {
		dc := ToDataCoordinate(GridCoordinate{Row: gridRow, Col: 3}, true)
		assert.Equal(t, gridRow-1, dc.Row)
		assert.Equal(t, 3, dc.Col)
	}

	header := ToDataCoordinate(GridCoordinate{Row: 0, Col: 0}, true)
	assert.True(t, header.IsHeader())
	assert.Equal(t, -1, header.Row)
}

func TestToDataCoordinateWithoutHeader(t *testing.T) {
	for gridRow := 0; gridRow < 10; gridRow++ {
		dc := ToDataCoordinate(GridCoordinate{Row: gridRow, Col: 1}, false)
		assert.Equal(t, gridRow, dc.Row)
		assert.False(t, dc.IsHeader())
	}
}

func TestToGridCoordinateRoundTrip(t *testing.T) {
	for _, headerVisible := range []bool{true, false} {
		for row := -1; row < 5; row++ {
			grid := ToGridCoordinate(DataCoordinate{Row: row, Col: 2}, headerVisible)
			back := ToDataCoordinate(grid, headerVisible)
			assert.Equal(t, DataCoordinate{Row: row, Col: 2}, back)
		}
	}
}
