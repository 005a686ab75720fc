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

// Command gridviewer opens tabular data (CSV, Parquet, JSON or a Delta
// Sharing table) in a GridTable window.
//
// Usage:
//
//	gridviewer -file data.csv -alias 'temp_.*=Temperature'
//	gridviewer -profile config.share -table share.schema.table
//	gridviewer -file data.csv -derive 'total=row["a"].(int64)+row["b"].(int64)'
//	gridviewer -file data.parquet -export out.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/magpierre/fyne-gridtable/datatable"
	gridwidget "github.com/magpierre/fyne-gridtable/widget"
)

// aliasList collects repeatable -alias flags of the form pattern=alias.
type aliasList struct {
	rules []datatable.StyleRule
}

func (a *aliasList) String() string {
	parts := make([]string, len(a.rules))
	for i, r := range a.rules {
		parts[i] = r.Pattern + "=" + r.Alias
	}
	return strings.Join(parts, ",")
}

func (a *aliasList) Set(value string) error {
	pattern, alias, ok := strings.Cut(value, "=")
	if !ok || pattern == "" {
		return fmt.Errorf("alias must be pattern=alias, got %q", value)
	}
	a.rules = append(a.rules, datatable.StyleRule{Pattern: pattern, Alias: alias})
	return nil
}

func main() {
	var (
		filePath    = flag.String("file", "", "data file to open (.csv, .parquet or .json)")
		profilePath = flag.String("profile", "", "Delta Sharing profile file")
		tableRef    = flag.String("table", "", "Delta Sharing table as share.schema.table")
		deriveExpr  = flag.String("derive", "", "derived column as name=expr (Go expression over row)")
		exportPath  = flag.String("export", "", "write the loaded data to this file (.csv or .json) and exit")
	)
	var aliases aliasList
	flag.Var(&aliases, "alias", "style rule as pattern=alias (repeatable)")
	flag.Parse()

	source, name, err := loadSource(*filePath, *profilePath, *tableRef)
	if err != nil {
		log.Fatalf("gridviewer: %v", err)
	}

	if *deriveExpr != "" {
		source, err = applyDerivedColumn(source, *deriveExpr)
		if err != nil {
			log.Fatalf("gridviewer: %v", err)
		}
	}

	if *exportPath != "" {
		if err := exportSource(source, *exportPath); err != nil {
			log.Fatalf("gridviewer: %v", err)
		}
		log.Printf("gridviewer: exported %d rows to %s", source.RowCount(), *exportPath)
		return
	}

	model, err := datatable.NewTableModel(source)
	if err != nil {
		log.Fatalf("gridviewer: %v", err)
	}

	a := app.New()
	a.Settings().SetTheme(viewerTheme{})
	w := a.NewWindow("Grid Viewer - " + name)

	config := gridwidget.DefaultConfig()
	config.ShowFilterBar = true
	config.ShowStatusBar = true

	grid := gridwidget.NewGridTableWithConfig(model, config)
	if len(aliases.rules) > 0 {
		grid.SetStyles(aliases.rules)
	}

	w.SetContent(grid)
	w.Resize(fyne.NewSize(1000, 700))
	w.ShowAndRun()
}
