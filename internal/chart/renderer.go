package chart

import (
	"fmt"
	"strings"

	"StockPlot/internal/calculator"
	"StockPlot/internal/model"
)

// Cell is the content of one chart position.
type Cell uint8

const (
	Blank Cell = iota
	Bar
	Trend
)

// Glyphs holds the characters used to draw cells.
type Glyphs struct {
	Fill      string
	Marker    string
	Blank     string
	Separator string
}

// DefaultGlyphs draws '#' bars under a '*' trend line.
var DefaultGlyphs = Glyphs{Fill: "#", Marker: "*", Blank: " ", Separator: "|"}

// Row is one rendered chart line.
type Row struct {
	Label string // padded price label, separator excluded
	Price float64
	Cells []Cell
}

// Grid is a fully composited chart, top row first.
type Grid struct {
	Rows   []Row
	Glyphs Glyphs
}

// Render composites the normalized series, the regression line and the price
// labels into a grid of canvas.Height rows.
//
// The trend marker wins over a bar when both fall on the same cell. Columns
// beyond the end of the series are not drawn. Trend samples are compared with
// the scale in price space: each a*col+b row offset is multiplied by the
// table's per-row delta before the nearest row is chosen, so the line stays
// aligned with the bars.
func Render(canvas model.Canvas, series []model.NormalizedRecord, m model.LinearModel, table calculator.ScaleTable, glyphs Glyphs) (*Grid, error) {
	if canvas.Height <= 0 || canvas.Width <= 0 {
		return nil, fmt.Errorf("render on %dx%d canvas: %w", canvas.Width, canvas.Height, model.ErrEnvironment)
	}
	if table.Rows != canvas.Height {
		return nil, fmt.Errorf("scale table has %d rows, canvas has %d", table.Rows, canvas.Height)
	}

	// The line is fitted over row offsets; scale each sample back to a price
	// before snapping it to the nearest labelled row.
	trendRows := make([]int, canvas.Width)
	for col := range trendRows {
		trendRows[col] = table.NearestRow(m.At(float64(col)) * table.Delta)
	}

	cols := len(series)
	if cols > canvas.Width {
		cols = canvas.Width
	}
	labelWidth := canvas.LabelWidth - len(glyphs.Separator)

	grid := &Grid{Rows: make([]Row, canvas.Height), Glyphs: glyphs}
	for i := range grid.Rows {
		price := table.Value(i)
		row := Row{
			Label: padLabel(FormatLabel(price), labelWidth),
			Price: price,
			Cells: make([]Cell, cols),
		}
		for j := 0; j < cols; j++ {
			switch {
			case trendRows[j] == i:
				row.Cells[j] = Trend
			case float64(canvas.Height-i) <= series[j].Row:
				row.Cells[j] = Bar
			default:
				row.Cells[j] = Blank
			}
		}
		grid.Rows[i] = row
	}
	return grid, nil
}

// Glyph returns the character drawn for c.
func (g Glyphs) Glyph(c Cell) string {
	switch c {
	case Bar:
		return g.Fill
	case Trend:
		return g.Marker
	default:
		return g.Blank
	}
}

// Lines returns the grid as plain text, one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		var b strings.Builder
		b.WriteString(row.Label)
		b.WriteString(g.Glyphs.Separator)
		for _, c := range row.Cells {
			b.WriteString(g.Glyphs.Glyph(c))
		}
		lines[i] = b.String()
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
