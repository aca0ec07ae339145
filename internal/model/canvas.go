package model

// Canvas describes the drawing surface left for the chart body.
type Canvas struct {
	Width      int // columns available for bars, label excluded
	Height     int // rows
	LabelWidth int // columns reserved for the price label and separator
}

// TotalWidth returns the full row width including the label.
func (c Canvas) TotalWidth() int {
	return c.Width + c.LabelWidth
}
