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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// exportSource writes the loaded data to a file; the format follows the
// file extension.
func exportSource(source datatable.DataSource, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return exportCSV(source, path)
	case ".json":
		return exportJSON(source, path)
	default:
		return fmt.Errorf("unsupported export format: %s", path)
	}
}

// exportCSV writes the data as CSV with a header row of column names.
func exportCSV(source datatable.DataSource, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	cols := source.ColumnCount()
	header := make([]string, cols)
	for col := 0; col < cols; col++ {
		name, err := source.ColumnName(col)
		if err != nil {
			return err
		}
		header[col] = name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, cols)
	for row := 0; row < source.RowCount(); row++ {
		values, err := source.Row(row)
		if err != nil {
			return err
		}
		for col, v := range values {
			record[col] = v.Formatted
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row, err)
		}
	}
	return nil
}

// exportJSON writes the data as an array of objects keyed by column name.
func exportJSON(source datatable.DataSource, path string) error {
	cols := source.ColumnCount()
	names := make([]string, cols)
	for col := 0; col < cols; col++ {
		name, err := source.ColumnName(col)
		if err != nil {
			return err
		}
		names[col] = name
	}

	records := make([]map[string]interface{}, 0, source.RowCount())
	for row := 0; row < source.RowCount(); row++ {
		values, err := source.Row(row)
		if err != nil {
			return err
		}
		rec := make(map[string]interface{}, cols)
		for col, v := range values {
			if v.IsNull {
				rec[names[col]] = nil
			} else {
				rec[names[col]] = v.Raw
			}
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
