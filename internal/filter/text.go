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

package filter

import (
	"fmt"
	"strings"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// Text matches rows whose formatted values contain a substring,
// case-insensitively. With Column set it restricts matching to that
// named column, otherwise any column may match.
type Text struct {
	// Query is the substring to search for. Empty matches everything.
	Query string

	// Column optionally names a single column to search.
	Column string
}

// NewText returns a filter matching rows where any column contains query.
func NewText(query string) *Text {
	return &Text{Query: query}
}

// Evaluate implements the datatable.Filter interface.
func (f *Text) Evaluate(row []datatable.Value, columnNames []string) (bool, error) {
	if f.Query == "" {
		return true, nil
	}
	query := strings.ToLower(f.Query)

	if f.Column != "" {
		col := -1
		for i, name := range columnNames {
			if name == f.Column {
				col = i
				break
			}
		}
		if col < 0 || col >= len(row) {
			return false, fmt.Errorf("%w: %s", datatable.ErrColumnNotFound, f.Column)
		}
		return strings.Contains(strings.ToLower(row[col].Formatted), query), nil
	}

	for _, v := range row {
		if strings.Contains(strings.ToLower(v.Formatted), query) {
			return true, nil
		}
	}
	return false, nil
}

// Description implements the datatable.Filter interface.
func (f *Text) Description() string {
	if f.Column != "" {
		return fmt.Sprintf("%s contains %q", f.Column, f.Query)
	}
	return fmt.Sprintf("any column contains %q", f.Query)
}
