package calculator

import (
	"fmt"
	"math"

	"StockPlot/internal/model"
)

// ComputeMax returns the highest open price in the series, or 0 when empty.
func ComputeMax(series []model.Record) float64 {
	highest := 0.0
	for _, r := range series {
		if r.Open > highest {
			highest = r.Open
		}
	}
	return highest
}

// NormalizeHeight maps each open price to a row offset from the bottom of a
// canvas height rows tall. It returns the new records together with the price
// delta represented by one row. The input is left untouched.
func NormalizeHeight(series []model.Record, top float64, height int) ([]model.NormalizedRecord, float64, error) {
	if height <= 0 {
		return nil, 0, fmt.Errorf("normalize height %d: %w", height, model.ErrDivision)
	}
	normValue := top / float64(height)
	if normValue <= 0 || math.IsNaN(normValue) || math.IsInf(normValue, 0) {
		return nil, 0, fmt.Errorf("normalize with max %.4f: %w", top, model.ErrDivision)
	}
	out := make([]model.NormalizedRecord, len(series))
	for i, r := range series {
		out[i] = model.NormalizedRecord{
			Date: r.Date,
			Open: r.Open,
			Row:  math.Round(r.Open / normValue),
		}
	}
	return out, normValue, nil
}

// ScaleTable maps canvas rows to prices. Row 0 is the top of the canvas and
// holds Max; every following row is Delta lower.
type ScaleTable struct {
	Max   float64
	Delta float64
	Rows  int
}

// BuildScaleTable builds the row to price mapping for rows 0..height-1.
func BuildScaleTable(top, normValue float64, height int) (ScaleTable, error) {
	if height <= 0 {
		return ScaleTable{}, fmt.Errorf("scale table height %d: %w", height, model.ErrDivision)
	}
	if normValue <= 0 {
		return ScaleTable{}, fmt.Errorf("scale table delta %.4f: %w", normValue, model.ErrDivision)
	}
	return ScaleTable{Max: top, Delta: normValue, Rows: height}, nil
}

// Value returns the price label of row i.
func (t ScaleTable) Value(i int) float64 {
	return t.Max - t.Delta*float64(i)
}

// Values returns the labels of every row, top to bottom.
func (t ScaleTable) Values() []float64 {
	values := make([]float64, t.Rows)
	for i := range values {
		values[i] = t.Value(i)
	}
	return values
}

// NearestRow returns the row whose price is closest to v. The table is
// linear, so the row is found by inverting it and clamping to [0, Rows).
// A value exactly between two rows resolves to the lower row index.
func (t ScaleTable) NearestRow(v float64) int {
	if t.Rows <= 0 || t.Delta <= 0 {
		return 0
	}
	pos := (t.Max - v) / t.Delta
	if math.IsNaN(pos) {
		return 0
	}
	pos = math.Ceil(pos - 0.5)
	if pos <= 0 {
		return 0
	}
	if pos >= float64(t.Rows-1) {
		return t.Rows - 1
	}
	return int(pos)
}
