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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-gridtable/adapters/slice"
)

func exportFixture(t *testing.T) *slice.Source {
	t.Helper()
	s, err := slice.NewFromColumns([]slice.Column{
		{Name: "name", Values: []interface{}{"alice", "bob"}},
		{Name: "score", Values: []interface{}{int64(3), nil}},
	})
	require.NoError(t, err)
	return s
}

func TestExportCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, exportSource(exportFixture(t), path))

	reloaded, err := loadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.ColumnCount())
	assert.Equal(t, 2, reloaded.RowCount())

	v, err := reloaded.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Raw)

	v, err = reloaded.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, v.IsNull)
}

func TestExportJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, exportSource(exportFixture(t), path))

	reloaded, err := loadJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.ColumnCount())
	assert.Equal(t, 2, reloaded.RowCount())
}

func TestExportUnknownFormat(t *testing.T) {
	err := exportSource(exportFixture(t), filepath.Join(t.TempDir(), "out.xlsx"))
	assert.Error(t, err)
}

func TestDetectCSVSeparator(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		content string
		want    rune
	}{
		{"a,b,c\n1,2,3\n", ','},
		{"a;b;c\n1;2;3\n", ';'},
		{"a\tb\tc\n1\t2\t3\n", '\t'},
		{"a|b|c\n1|2|3\n", '|'},
	} {
		path := filepath.Join(dir, "data.csv")
		require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

		sep, err := detectCSVSeparator(path)
		require.NoError(t, err)
		assert.Equal(t, tc.want, sep, "content %q", tc.content)
	}
}
