package calculator

import (
	"fmt"

	"StockPlot/internal/model"
)

// ToPoints pairs every normalized row with its column index.
func ToPoints(series []model.NormalizedRecord) []model.Point {
	points := make([]model.Point, len(series))
	for i, r := range series {
		points[i] = model.Point{X: float64(i), Y: r.Row}
	}
	return points
}

// Fit computes the least-squares line over points.
//
//	A = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	B = (Σy*Σx² - Σx*Σxy) / (n*Σx² - (Σx)²)
func Fit(points []model.Point) (model.LinearModel, error) {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	if len(points) < 2 || spreadX(points, sumX/n) <= 1e-12*sumX2 {
		return model.LinearModel{}, fmt.Errorf("fit %d points: %w", len(points), model.ErrDegenerateInput)
	}
	den := n*sumX2 - sumX*sumX
	if den == 0 {
		return model.LinearModel{}, fmt.Errorf("fit %d points: %w", len(points), model.ErrDegenerateInput)
	}

	return model.LinearModel{
		A: (n*sumXY - sumX*sumY) / den,
		B: (sumY*sumX2 - sumX*sumXY) / den,
	}, nil
}

// spreadX returns Σ(x-mean)², which stays exact for identical x values where
// n*Σx² - (Σx)² only cancels to rounding noise.
func spreadX(points []model.Point, mean float64) float64 {
	spread := 0.0
	for _, p := range points {
		d := p.X - mean
		spread += d * d
	}
	return spread
}
