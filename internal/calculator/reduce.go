package calculator

import (
	"fmt"

	"StockPlot/internal/model"
)

// StepFor returns how many source records are averaged into one column so
// that sourceLen records fit into width columns.
func StepFor(sourceLen, width int) (int, error) {
	if width <= 0 {
		return 0, fmt.Errorf("step for width %d: %w", width, model.ErrDivision)
	}
	step := sourceLen / width
	if step < 1 {
		return 0, fmt.Errorf("step for %d records over %d columns: %w", sourceLen, width, model.ErrDivision)
	}
	return step, nil
}

// Reduce averages consecutive buckets of exactly step records.
//
// Each emitted record carries the mean open price of its bucket and the date
// of the bucket's closing (last) record, not the first record of the next
// bucket. High, Low and Close are zeroed. A
// trailing bucket shorter than step is dropped.
func Reduce(records []model.Record, step int) ([]model.Record, error) {
	if step < 1 {
		return nil, fmt.Errorf("reduce with step %d: %w", step, model.ErrDivision)
	}
	buckets := len(records) / step
	reduced := make([]model.Record, 0, buckets)
	for k := 0; k < buckets; k++ {
		window := records[k*step : (k+1)*step]
		reduced = append(reduced, model.Record{
			Date: window[len(window)-1].Date,
			Open: meanOpen(window),
		})
	}
	return reduced, nil
}

// ReduceToWidth derives the step for width, reduces the records and caps the
// result at width entries.
func ReduceToWidth(records []model.Record, width int) ([]model.Record, int, error) {
	step, err := StepFor(len(records), width)
	if err != nil {
		return nil, 0, err
	}
	reduced, err := Reduce(records, step)
	if err != nil {
		return nil, 0, err
	}
	if len(reduced) > width {
		reduced = reduced[:width]
	}
	return reduced, step, nil
}

func meanOpen(records []model.Record) float64 {
	sum := 0.0
	for _, r := range records {
		sum += r.Open
	}
	return sum / float64(len(records))
}
