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
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/magpierre/fyne-gridtable/datatable"
)

func TestMeasurementCacheRoundTrip(t *testing.T) {
	cache := NewMeasurementCache()
	coord := datatable.GridCoordinate{Row: 2, Col: 1}

	_, ok := cache.Size(coord)
	assert.False(t, ok)

	size := fyne.NewSize(120, 30)
	cache.SetSize(coord, size)

	got, ok := cache.Size(coord)
	assert.True(t, ok)
	assert.Equal(t, size, got)
	assert.Equal(t, 1, cache.Len())
}

func TestMeasurementCacheOverwrite(t *testing.T) {
	cache := NewMeasurementCache()
	coord := datatable.GridCoordinate{Row: 0, Col: 0}

	cache.SetSize(coord, fyne.NewSize(100, 20))
	cache.SetSize(coord, fyne.NewSize(150, 40))

	got, ok := cache.Size(coord)
	assert.True(t, ok)
	assert.Equal(t, fyne.NewSize(150, 40), got)
	assert.Equal(t, 1, cache.Len())
}

func TestMeasurementCacheClearIsWholesale(t *testing.T) {
	cache := NewMeasurementCache()
	for row := 0; row < 5; row++ {
		for col := 0; col < 3; col++ {
			cache.SetSize(datatable.GridCoordinate{Row: row, Col: col}, fyne.NewSize(100, 20))
		}
	}
	assert.Equal(t, 15, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())
	_, ok := cache.Size(datatable.GridCoordinate{Row: 0, Col: 0})
	assert.False(t, ok)
}
