package collector

import "StockPlot/internal/model"

// Source defines the interface for loading a price series.
type Source interface {
	Load() ([]model.Record, error)
	Name() string
}
