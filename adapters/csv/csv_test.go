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

package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-gridtable/datatable"
)

func TestNewFromReaderTypesColumns(t *testing.T) {
	data := "name,count,ratio,ok\nalice,3,0.5,true\nbob,7,1.25,false\n"

	s, err := NewFromReader(strings.NewReader(data), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, s.ColumnCount())
	assert.Equal(t, 2, s.RowCount())

	expected := []datatable.DataType{
		datatable.TypeString,
		datatable.TypeInt,
		datatable.TypeFloat,
		datatable.TypeBool,
	}
	for col, want := range expected {
		got, err := s.ColumnType(col)
		require.NoError(t, err)
		assert.Equal(t, want, got, "column %d", col)
	}

	v, err := s.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Raw)
}

func TestNewFromReaderWithoutHeaders(t *testing.T) {
	config := DefaultConfig()
	config.HasHeaders = false

	s, err := NewFromReader(strings.NewReader("a,1\nb,2\n"), config)
	require.NoError(t, err)

	name, err := s.ColumnName(0)
	require.NoError(t, err)
	assert.Equal(t, "column_1", name)

	name, err = s.ColumnName(1)
	require.NoError(t, err)
	assert.Equal(t, "column_2", name)
	assert.Equal(t, 2, s.RowCount())
}

func TestNewFromReaderEmptyFieldsAreNull(t *testing.T) {
	s, err := NewFromReader(strings.NewReader("a,b\n1,\n2,x\n"), DefaultConfig())
	require.NoError(t, err)

	v, err := s.Cell(0, 1)
	require.NoError(t, err)
	assert.True(t, v.IsNull)

	v, err = s.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "x", v.Raw)
}

func TestNewFromReaderCustomDelimiterAndTrim(t *testing.T) {
	config := Config{Delimiter: ';', HasHeaders: true, TrimSpace: true}

	s, err := NewFromReader(strings.NewReader(" a ; b \n 1 ; x \n"), config)
	require.NoError(t, err)

	name, err := s.ColumnName(0)
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	v, err := s.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Raw)
}

func TestNewFromReaderRaggedRows(t *testing.T) {
	s, err := NewFromReader(strings.NewReader("a,b\n1,2\n3\n"), DefaultConfig())
	require.NoError(t, err)

	// The short record's missing field is null.
	v, err := s.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, v.IsNull)
}

func TestNewFromReaderEmptyInput(t *testing.T) {
	_, err := NewFromReader(strings.NewReader(""), DefaultConfig())
	assert.ErrorIs(t, err, datatable.ErrEmptyData)
}
