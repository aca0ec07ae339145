package collector

import (
	"fmt"
	"log"

	"StockPlot/internal/model"
)

// MockSource returns fixed records for development and testing.
type MockSource struct {
	Label   string
	Records []model.Record
	Err     error
}

func (m *MockSource) Name() string { return m.Label }

func (m *MockSource) Load() ([]model.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// GenerateRecords builds count daily records drifting linearly from
// basePrice by slope per day.
func GenerateRecords(basePrice, slope float64, count int) []model.Record {
	records := make([]model.Record, count)
	for i := 0; i < count; i++ {
		p := basePrice + slope*float64(i)
		records[i] = model.Record{
			Date:  fmt.Sprintf("day-%04d", i+1),
			Open:  p,
			High:  p * 1.005,
			Low:   p * 0.995,
			Close: p * 1.001,
		}
	}
	return records
}

// Collector loads a series from its source.
type Collector struct {
	Source Source
}

// NewCollector creates a new Collector.
func NewCollector(source Source) *Collector {
	return &Collector{Source: source}
}

// Collect loads the records and names the series after its source.
func (c *Collector) Collect() (*model.PriceSeries, error) {
	records, err := c.Source.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), err)
	}
	name := c.Source.Name()
	if name == "" {
		name = "ALL"
	}
	if len(records) == 0 {
		log.Printf("[WARN] source %s returned no records", name)
	}
	log.Printf("[INFO] loaded %d records from %s", len(records), name)
	return &model.PriceSeries{Name: name, Records: records}, nil
}
