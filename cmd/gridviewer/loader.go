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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	delta_sharing "github.com/magpierre/go_delta_sharing_client"

	arrowadapter "github.com/magpierre/fyne-gridtable/adapters/arrow"
	csvadapter "github.com/magpierre/fyne-gridtable/adapters/csv"
	sliceadapter "github.com/magpierre/fyne-gridtable/adapters/slice"
	"github.com/magpierre/fyne-gridtable/datatable"
)

// loadSource loads tabular data from a local file or a Delta Sharing
// table and returns it with a display name.
func loadSource(filePath, profilePath, tableRef string) (datatable.DataSource, string, error) {
	switch {
	case filePath != "":
		source, err := loadFile(filePath)
		return source, filepath.Base(filePath), err
	case profilePath != "":
		source, err := loadDeltaTable(profilePath, tableRef)
		return source, tableRef, err
	default:
		return nil, "", fmt.Errorf("no input: pass -file or -profile")
	}
}

// loadFile dispatches on the file extension.
func loadFile(path string) (datatable.DataSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSVFile(path)
	case ".parquet":
		return loadParquetFile(path)
	case ".json":
		return loadJSONFile(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

// detectCSVSeparator tries to detect the CSV separator from the first line.
func detectCSVSeparator(filePath string) (rune, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ',', fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ',', nil
	}
	firstLine := scanner.Text()

	separators := map[rune]int{
		',':  strings.Count(firstLine, ","),
		';':  strings.Count(firstLine, ";"),
		'\t': strings.Count(firstLine, "\t"),
		'|':  strings.Count(firstLine, "|"),
	}

	maxCount := 0
	detected := ','
	for sep, count := range separators {
		if count > maxCount {
			maxCount = count
			detected = sep
		}
	}
	return detected, nil
}

// loadCSVFile loads a CSV file using the CSV adapter.
func loadCSVFile(path string) (datatable.DataSource, error) {
	separator, err := detectCSVSeparator(path)
	if err != nil {
		separator = ','
	}

	config := csvadapter.DefaultConfig()
	config.HasHeaders = true
	config.TrimSpace = true
	config.Delimiter = separator

	source, err := csvadapter.NewFromFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load CSV file: %w", err)
	}
	return source, nil
}

// loadParquetFile loads a Parquet file through the Arrow adapter.
func loadParquetFile(path string) (datatable.DataSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	pf, err := file.NewParquetReader(f, file.WithReadProps(&parquet.ReaderProperties{}))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer table.Release()

	source, err := arrowadapter.NewFromArrowTable(table)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow data source: %w", err)
	}
	return source, nil
}

// loadJSONFile loads a JSON file (array of objects, or a single object)
// using the slice adapter.
func loadJSONFile(path string) (datatable.DataSource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var data []map[string]interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		var singleObj map[string]interface{}
		if err := json.Unmarshal(content, &singleObj); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		data = []map[string]interface{}{singleObj}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("JSON file is empty or has no records")
	}

	source, err := sliceadapter.NewFromMaps(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create data source from JSON: %w", err)
	}
	return source, nil
}

// loadDeltaTable fetches a Delta Sharing table (share.schema.table)
// using the profile at profilePath and converts its first file to a
// data source.
func loadDeltaTable(profilePath, tableRef string) (datatable.DataSource, error) {
	parts := strings.SplitN(tableRef, ".", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("table must be share.schema.table, got %q", tableRef)
	}
	table := delta_sharing.Table{Share: parts[0], Schema: parts[1], Name: parts[2]}

	profile, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	ds, err := delta_sharing.NewSharingClientV2FromString(string(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sharing client: %w", err)
	}

	ctx := context.Background()
	resp, err := ds.ListFilesInTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list files in table: %w", err)
	}
	if len(resp.AddFiles) == 0 {
		return nil, fmt.Errorf("table %s has no files", tableRef)
	}

	arrowTable, err := delta_sharing.LoadArrowTable(ctx, ds, table, resp.AddFiles[0].Id)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrow table: %w", err)
	}
	defer arrowTable.Release()

	source, err := arrowadapter.NewFromArrowTable(arrowTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow data source: %w", err)
	}
	return source, nil
}
