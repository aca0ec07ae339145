package model

import "fmt"

// Point is a regression input pair.
type Point struct {
	X float64
	Y float64
}

// LinearModel is the fitted line y = A*x + B.
type LinearModel struct {
	A float64 // slope
	B float64 // intercept
}

// At evaluates the line at x.
func (m LinearModel) At(x float64) float64 {
	return m.A*x + m.B
}

func (m LinearModel) String() string {
	return fmt.Sprintf("%gx + %g", m.A, m.B)
}
