package model

// Record represents a single daily price row.
// Only Open takes part in charting; High, Low and Close are carried as parsed.
type Record struct {
	Date  string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// PriceSeries holds the raw records of one input source.
type PriceSeries struct {
	Name    string
	Records []Record
}

// NormalizedRecord is a reduced record whose open price has been mapped to a
// row offset counted from the bottom of the canvas.
type NormalizedRecord struct {
	Date string
	Open float64 // averaged price before normalization
	Row  float64 // integer-valued, 0..height
}
