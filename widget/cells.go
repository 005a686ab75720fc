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
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-gridtable/datatable"
)

// CellContext carries the resolved column style and the column's
// opaque configuration blob into a cell builder.
type CellContext struct {
	Style    datatable.CellStyle
	Metadata datatable.Metadata
}

// CellBuilder renders one value into a recycled cell template. Fyne's
// table recycles canvas objects between positions, so builders mutate
// the template rather than constructing a new renderable per cell.
type CellBuilder interface {
	Update(label *widget.Label, value datatable.Value, ctx *CellContext)
}

// builderFor selects the cell builder for a column from its data type
// and resolved style. Types without a specialized builder fall back to
// the generic text builder.
func builderFor(colType datatable.DataType) CellBuilder {
	switch colType {
	case datatable.TypeInt, datatable.TypeFloat, datatable.TypeDecimal:
		return numberCellBuilder{}
	case datatable.TypeBool:
		return boolCellBuilder{}
	case datatable.TypeDate, datatable.TypeTimestamp:
		return timeCellBuilder{}
	default:
		return textCellBuilder{}
	}
}

// applyStyle sets the shared style attributes of a cell.
func applyStyle(label *widget.Label, style datatable.CellStyle, defaultAlign fyne.TextAlign) {
	label.TextStyle = fyne.TextStyle{Bold: style.Bold, Italic: style.Italic}
	switch style.Align {
	case datatable.AlignLeading:
		label.Alignment = fyne.TextAlignLeading
	case datatable.AlignCenter:
		label.Alignment = fyne.TextAlignCenter
	case datatable.AlignTrailing:
		label.Alignment = fyne.TextAlignTrailing
	default:
		label.Alignment = defaultAlign
	}
	label.Truncation = fyne.TextTruncateEllipsis
}

// textCellBuilder is the generic fallback: the value renders as its
// pre-formatted text.
type textCellBuilder struct{}

func (textCellBuilder) Update(label *widget.Label, value datatable.Value, ctx *CellContext) {
	applyStyle(label, ctx.Style, fyne.TextAlignLeading)
	label.Importance = widget.MediumImportance
	label.Text = value.Formatted
	label.Refresh()
}

// numberCellBuilder renders numeric values trailing-aligned and colors
// them by threshold severity.
type numberCellBuilder struct{}

func (numberCellBuilder) Update(label *widget.Label, value datatable.Value, ctx *CellContext) {
	applyStyle(label, ctx.Style, fyne.TextAlignTrailing)
	label.Importance = widget.MediumImportance
	if f, ok := value.Float(); ok {
		switch ctx.Style.Classify(f) {
		case datatable.SeverityWarning:
			label.Importance = widget.WarningImportance
		case datatable.SeverityCritical:
			label.Importance = widget.DangerImportance
		}
	}
	label.Text = value.Formatted
	label.Refresh()
}

// boolCellBuilder renders booleans centered.
type boolCellBuilder struct{}

func (boolCellBuilder) Update(label *widget.Label, value datatable.Value, ctx *CellContext) {
	applyStyle(label, ctx.Style, fyne.TextAlignCenter)
	label.Importance = widget.MediumImportance
	label.Text = value.Formatted
	label.Refresh()
}

// timeCellBuilder renders dates and timestamps.
type timeCellBuilder struct{}

func (timeCellBuilder) Update(label *widget.Label, value datatable.Value, ctx *CellContext) {
	applyStyle(label, ctx.Style, fyne.TextAlignLeading)
	label.Importance = widget.MediumImportance
	label.Text = value.Formatted
	label.Refresh()
}
