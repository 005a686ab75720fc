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

// Package widget provides the GridTable Fyne widget: a virtualized data
// grid with style rules, single-column sorting and cached cell
// measurements.
package widget

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-gridtable/datatable"
	"github.com/magpierre/fyne-gridtable/internal/filter"
)

// boundColumn pairs a column's render info with its cell builder.
type boundColumn struct {
	datatable.ColumnInfo
	builder CellBuilder
}

// GridTable renders a TableModel inside a fixed viewport using Fyne's
// virtualized table as the windowing primitive: only visible cells are
// materialized regardless of dataset size.
//
// All interaction is single-threaded on the Fyne event loop. On every
// input change the widget evaluates four independent render decisions
// (measurement invalidation, layout rebuild, resort, scroll-to-top) and
// applies them atomically before the next render pass.
type GridTable struct {
	widget.BaseWidget

	model  *datatable.TableModel
	config Config

	state    renderState
	styleSet *datatable.StyleSet
	columns  []boundColumn

	cache            *MeasurementCache
	rowHeights       map[int]float32
	defaultRowHeight float32
	scrollPending    bool

	table       *widget.Table
	placeholder *widget.Label
	filterEntry *widget.Entry
	statusLabel *widget.Label
	content     fyne.CanvasObject

	viewport fyne.Size

	onCellSelected func(row, col int)
}

// NewGridTable creates a grid table with the default configuration.
func NewGridTable(model *datatable.TableModel) *GridTable {
	return NewGridTableWithConfig(model, DefaultConfig())
}

// NewGridTableWithConfig creates a grid table with the given
// configuration.
func NewGridTableWithConfig(model *datatable.TableModel, config Config) *GridTable {
	t := &GridTable{
		model:      model,
		config:     config,
		cache:      NewMeasurementCache(),
		rowHeights: make(map[int]float32),
	}

	t.table = widget.NewTable(t.gridSize, t.createCell, t.updateCell)
	t.table.OnSelected = t.handleSelected

	t.placeholder = widget.NewLabel(config.PlaceholderText)
	t.placeholder.Alignment = fyne.TextAlignCenter

	t.filterEntry = widget.NewEntry()
	t.filterEntry.SetPlaceHolder("Filter rows...")
	t.filterEntry.OnChanged = t.applyFilter

	t.statusLabel = widget.NewLabel("")

	t.defaultRowHeight = t.createCell().MinSize().Height

	t.state = renderState{
		source:       model.Source(),
		sort:         model.GetSortState(),
		showHeader:   config.ShowHeader,
		fixedHeader:  config.FixedHeader,
		fixedColumns: config.FixedColumns,
	}
	t.styleSet = datatable.CompileStyles(nil)
	t.rebuildColumns()

	var top, bottom fyne.CanvasObject
	if config.ShowFilterBar {
		top = t.filterEntry
	}
	if config.ShowStatusBar {
		bottom = t.statusLabel
	}
	t.content = container.NewBorder(top, bottom, nil, nil,
		container.NewStack(t.table, t.placeholder))

	t.ExtendBaseWidget(t)
	t.refreshGrid()
	return t
}

// CreateRenderer implements fyne.Widget.
func (t *GridTable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// Resize implements fyne.Widget; a viewport width change redistributes
// the equal column widths but keeps measurements and sort state intact.
func (t *GridTable) Resize(size fyne.Size) {
	t.BaseWidget.Resize(size)
	if size.Width != t.viewport.Width {
		t.viewport = size
		t.applyColumnWidths()
	} else {
		t.viewport = size
	}
}

// Model returns the table model driving the grid.
func (t *GridTable) Model() *datatable.TableModel {
	return t.model
}

// OnCellSelected registers a callback invoked when a data cell is
// selected, with logical data coordinates.
func (t *GridTable) OnCellSelected(cb func(row, col int)) {
	t.onCellSelected = cb
}

// SetData replaces the data source wholesale. The measurement cache is
// invalidated, the column layout rebuilt, the current sort re-applied
// to the new data and the viewport scrolled back to the top.
func (t *GridTable) SetData(source datatable.DataSource) {
	next := t.state
	next.source = source
	t.applyState(next)
}

// SetStyles replaces the style-rule list. Only the column layout is
// rebuilt; cached measurements survive a style-only change.
func (t *GridTable) SetStyles(rules []datatable.StyleRule) {
	next := t.state
	next.styles = rules
	t.applyState(next)
}

// SetShowHeader toggles the header row. Structural change: every cached
// measurement is discarded.
func (t *GridTable) SetShowHeader(show bool) {
	next := t.state
	next.showHeader = show
	t.applyState(next)
}

// SetFixedHeader toggles whether the header stays visible during
// scrolling. Structural change: every cached measurement is discarded.
func (t *GridTable) SetFixedHeader(fixed bool) {
	next := t.state
	next.fixedHeader = fixed
	t.applyState(next)
}

// SetFixedColumns sets the number of leading columns kept visible
// during horizontal scrolling. Structural change: every cached
// measurement is discarded.
func (t *GridTable) SetFixedColumns(count int) {
	next := t.state
	next.fixedColumns = count
	t.applyState(next)
}

// applyState runs one update cycle: the four render decisions are
// computed from the previous and next state and applied together before
// the single refresh for this event.
func (t *GridTable) applyState(next renderState) {
	delta := computeDelta(t.state, next)
	prev := t.state
	t.state = next
	t.config.ShowHeader = next.showHeader
	t.config.FixedHeader = next.fixedHeader
	t.config.FixedColumns = next.fixedColumns

	if delta.invalidateMeasurements {
		t.clearMeasurements()
	}
	if delta.resort {
		if next.source != prev.source {
			if err := t.model.SetSource(next.source); err != nil {
				log.Printf("gridtable: replacing data source: %v", err)
			}
		}
		if err := t.model.SetSort(t.state.sort); err != nil {
			// Sort column no longer exists in the replaced data.
			if clearErr := t.model.ClearSort(); clearErr == nil {
				t.state.sort = datatable.Unsorted()
			}
		}
	}
	if delta.rebuildLayout {
		t.styleSet = datatable.CompileStyles(next.styles)
		t.rebuildColumns()
	}
	if delta.scrollToTop {
		t.scrollPending = true
	}
	t.refreshGrid()
}

// isEmpty reports the degenerate no-columns case that renders only the
// placeholder.
func (t *GridTable) isEmpty() bool {
	return t.model.OriginalColumnCount() == 0
}

// gridSize reports the grid dimensions to the windowing primitive.
func (t *GridTable) gridSize() (int, int) {
	if t.isEmpty() {
		return 0, 0
	}
	rows := t.model.VisibleRowCount()
	if t.config.ShowHeader {
		rows++
	}
	return rows, t.model.VisibleColumnCount()
}

// createCell builds the recycled cell template.
func (t *GridTable) createCell() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return label
}

// updateCell renders one visible grid position. The coordinate mapper
// decides header versus data; the measured size is memoized afterwards.
func (t *GridTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	coord := datatable.GridCoordinate{Row: id.Row, Col: id.Col}
	dc := datatable.ToDataCoordinate(coord, t.config.ShowHeader)
	if dc.Col < 0 || dc.Col >= len(t.columns) {
		return
	}

	if dc.IsHeader() {
		t.updateHeaderCell(label, dc.Col)
	} else {
		value, err := t.model.VisibleCell(dc.Row, dc.Col)
		if err != nil {
			label.Text = ""
			label.Refresh()
			return
		}
		col := t.columns[dc.Col]
		col.builder.Update(label, value, &CellContext{Style: col.Style, Metadata: col.Metadata})
	}
	t.measure(coord, label)
}

// updateHeaderCell renders a header cell: the column's display title
// plus a direction indicator when the column is the sorted one.
func (t *GridTable) updateHeaderCell(label *widget.Label, col int) {
	text := t.columns[col].Title
	if state := t.model.GetSortState(); state.IsSorted() && state.Column == col {
		if state.Direction == datatable.SortDescending {
			text += " ↓"
		} else {
			text += " ↑"
		}
	}
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter
	label.Importance = widget.MediumImportance
	label.Truncation = fyne.TextTruncateEllipsis
	label.Text = text
	label.Refresh()
}

// handleSelected routes cell activation: header cells advance the sort
// state machine, data cells notify the selection callback.
func (t *GridTable) handleSelected(id widget.TableCellID) {
	dc := datatable.ToDataCoordinate(datatable.GridCoordinate{Row: id.Row, Col: id.Col}, t.config.ShowHeader)
	if dc.IsHeader() {
		t.table.UnselectAll()
		t.activateHeader(dc.Col)
		return
	}
	if t.onCellSelected != nil {
		t.onCellSelected(dc.Row, dc.Col)
	}
}

// activateHeader advances the sort cycle for a header activation.
func (t *GridTable) activateHeader(col int) {
	next := t.state
	next.sort = datatable.NextSortState(t.state.sort, col)
	t.applyState(next)
}

// rebuildColumns replaces the derived column render info wholesale.
func (t *GridTable) rebuildColumns() {
	if t.isEmpty() {
		t.columns = nil
		return
	}
	layout := datatable.BuildColumnLayout(t.model.Source(), t.styleSet, t.viewport.Width, t.config.MinColumnWidth)
	columns := make([]boundColumn, len(layout))
	for i, info := range layout {
		columns[i] = boundColumn{ColumnInfo: info, builder: builderFor(info.Type)}
	}
	t.columns = columns
}

// applyColumnWidths redistributes equal column widths for the current
// viewport without touching styles, sort or measurements.
func (t *GridTable) applyColumnWidths() {
	if len(t.columns) == 0 {
		return
	}
	width := t.viewport.Width / float32(len(t.columns))
	if width < t.config.MinColumnWidth {
		width = t.config.MinColumnWidth
	}
	for i := range t.columns {
		t.columns[i].Width = width
		t.table.SetColumnWidth(i, width)
	}
}

// clearMeasurements performs the wholesale cache invalidation and
// resets previously applied row heights.
func (t *GridTable) clearMeasurements() {
	t.cache.Clear()
	for row := range t.rowHeights {
		t.table.SetRowHeight(row, t.defaultRowHeight)
	}
	t.rowHeights = make(map[int]float32)
}

// measure memoizes the rendered size of a grid position and grows the
// row height when a cell needs more room than recorded so far.
func (t *GridTable) measure(coord datatable.GridCoordinate, obj fyne.CanvasObject) {
	size := obj.MinSize()
	if cached, ok := t.cache.Size(coord); ok && cached == size {
		return
	}
	t.cache.SetSize(coord, size)
	if size.Height > t.defaultRowHeight && size.Height > t.rowHeights[coord.Row] {
		t.rowHeights[coord.Row] = size.Height
		t.table.SetRowHeight(coord.Row, size.Height)
	}
}

// applyFilter installs a text filter from the filter bar.
func (t *GridTable) applyFilter(query string) {
	var f datatable.Filter
	if query != "" {
		f = filter.NewText(query)
	}
	if err := t.model.SetFilter(f); err != nil {
		log.Printf("gridtable: applying filter: %v", err)
		return
	}
	t.updateStatus()
	t.table.Refresh()
}

// refreshGrid applies the current state to the windowing primitive and
// consumes a pending scroll command.
func (t *GridTable) refreshGrid() {
	if t.isEmpty() {
		t.table.Hide()
		t.placeholder.Show()
		t.updateStatus()
		return
	}
	t.placeholder.Hide()
	t.table.Show()

	if t.config.ShowHeader && t.config.FixedHeader {
		t.table.StickyRowCount = 1
	} else {
		t.table.StickyRowCount = 0
	}
	t.table.StickyColumnCount = t.config.FixedColumns

	for i := range t.columns {
		t.table.SetColumnWidth(i, t.columns[i].Width)
	}

	t.updateStatus()
	t.table.Refresh()

	if t.scrollPending {
		t.table.ScrollToTop()
		t.scrollPending = false
	}
}

// updateStatus refreshes the status bar text.
func (t *GridTable) updateStatus() {
	if !t.config.ShowStatusBar {
		return
	}
	if t.isEmpty() {
		t.statusLabel.SetText("No data")
		return
	}

	totalRows := t.model.OriginalRowCount()
	visibleRows := t.model.VisibleRowCount()
	cols := t.model.VisibleColumnCount()

	var status string
	if visibleRows != totalRows {
		status = fmt.Sprintf("%d columns x %d/%d rows", cols, visibleRows, totalRows)
	} else {
		status = fmt.Sprintf("%d columns x %d rows", cols, totalRows)
	}

	if state := t.model.GetSortState(); state.IsSorted() {
		name, _ := t.model.VisibleColumnName(state.Column)
		direction := "↑"
		if state.Direction == datatable.SortDescending {
			direction = "↓"
		}
		status += fmt.Sprintf(" | Sorted: %s %s", name, direction)
	}
	t.statusLabel.SetText(status)
}
