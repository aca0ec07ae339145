package chart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatLabel formats a price with two decimals.
func FormatLabel(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// LabelWidth returns the columns needed for the label of highest and the
// separator. Every lower price formats to a label no wider than that.
func LabelWidth(highest float64, separator string) int {
	return len(FormatLabel(highest)) + len(separator)
}

func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
