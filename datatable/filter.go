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

// Filter decides whether a row is visible.
type Filter interface {
	// Evaluate returns true when the row passes the filter. The row's
	// values are given in column order alongside the column names.
	Evaluate(row []Value, columnNames []string) (bool, error)

	// Description returns a human-readable description of the filter.
	Description() string
}
