package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Row is one visual row of the soft-wrapped document: a slice of a
// logical line plus where that slice starts within the line.
type Row struct {
	Text     string
	Line     int // logical line index in the flattened text
	StartCol int // rune offset of the first cell within the logical line
}

// Layout soft-wraps the flattened text into visual rows of at most
// width cells, breaking at grapheme cluster boundaries. Every logical
// line yields at least one row, so empty lines stay visible.
func Layout(text string, width int) []Row {
	if width <= 0 {
		return nil
	}
	var rows []Row
	for li, line := range strings.Split(text, "\n") {
		startCol := 0
		var cur strings.Builder
		curWidth, curRunes := 0, 0

		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			w := gr.Width()
			if curWidth+w > width && curWidth > 0 {
				rows = append(rows, Row{Text: cur.String(), Line: li, StartCol: startCol})
				startCol += curRunes
				cur.Reset()
				curWidth, curRunes = 0, 0
			}
			cur.WriteString(gr.Str())
			curWidth += w
			curRunes += len(gr.Runes())
		}
		rows = append(rows, Row{Text: cur.String(), Line: li, StartCol: startCol})
	}
	return rows
}

// CaretCell translates a logical caret (line, rune column) into the
// visual row index and x cell within the layout.
func CaretCell(rows []Row, line, col int) (rowIdx, x int) {
	for i, row := range rows {
		if row.Line != line {
			continue
		}
		runeLen := len([]rune(row.Text))
		last := i+1 >= len(rows) || rows[i+1].Line != line
		if col < row.StartCol+runeLen || (last && col >= row.StartCol) {
			return i, visualWidth(row.Text, col-row.StartCol)
		}
	}
	return 0, 0
}

// visualWidth measures the cell width of the first runeCount runes.
func visualWidth(text string, runeCount int) int {
	if runeCount <= 0 {
		return 0
	}
	width, runes := 0, 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if runes >= runeCount {
			break
		}
		width += gr.Width()
		runes += len(gr.Runes())
	}
	return width
}

// DrawRows renders the visible slice of rows starting at viewportRow.
// The height excludes the status bar line.
func DrawRows(t *TUI, rows []Row, viewportRow, width, height int) {
	screen := t.GetScreen()
	style := tcell.StyleDefault

	for y := 0; y < height; y++ {
		ri := viewportRow + y
		if ri < 0 || ri >= len(rows) {
			continue
		}
		x := 0
		gr := uniseg.NewGraphemes(rows[ri].Text)
		for gr.Next() {
			w := gr.Width()
			if x+w > width {
				break
			}
			runes := gr.Runes()
			if len(runes) > 0 {
				var combining []rune
				if len(runes) > 1 {
					combining = runes[1:]
				}
				screen.SetContent(x, y, runes[0], combining, style)
			}
			x += w
		}
	}
}

// DrawCaret places the hardware cursor at the caret cell, hiding it
// when the caret is scrolled out of view.
func DrawCaret(t *TUI, rows []Row, line, col, viewportRow, height int) {
	rowIdx, x := CaretCell(rows, line, col)
	y := rowIdx - viewportRow
	if y < 0 || y >= height {
		t.GetScreen().HideCursor()
		return
	}
	t.GetScreen().ShowCursor(x, y)
}
