package plotter

import (
	"fmt"
	"log"

	"StockPlot/internal/calculator"
	"StockPlot/internal/chart"
	"StockPlot/internal/collector"
	"StockPlot/internal/model"
	"StockPlot/internal/terminal"
)

// Options tune how a series is laid out on the terminal.
type Options struct {
	Glyphs      chart.Glyphs
	LabelWidth  int // 0 derives it from the highest source price
	ReserveRows int // rows kept free below the chart
}

// Result carries the rendered grid and the intermediate values it was built from.
type Result struct {
	Name   string
	Canvas model.Canvas
	Step   int
	Max    float64
	Model  model.LinearModel
	Table  calculator.ScaleTable
	Series []model.NormalizedRecord
	Grid   *chart.Grid
}

// Plotter renders the series of one source onto a surface sized by its
// SizeProvider.
type Plotter struct {
	Collector *collector.Collector
	Size      terminal.SizeProvider
	Options   Options
}

// NewPlotter creates a new Plotter.
func NewPlotter(col *collector.Collector, size terminal.SizeProvider, opts Options) *Plotter {
	return &Plotter{Collector: col, Size: size, Options: opts}
}

// Plot loads the series, probes the surface and builds the chart. Any error
// aborts the whole render.
func (p *Plotter) Plot() (*Result, error) {
	series, err := p.Collector.Collect()
	if err != nil {
		return nil, err
	}
	width, height, err := p.Size.Size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	res, err := Build(series.Records, width, height, p.Options)
	if err != nil {
		return nil, fmt.Errorf("plot %s: %w", series.Name, err)
	}
	res.Name = series.Name
	return res, nil
}

// Build runs the reduce, normalize, fit and render steps over records for a
// surface of width x height cells.
func Build(records []model.Record, width, height int, opts Options) (*Result, error) {
	if opts.Glyphs == (chart.Glyphs{}) {
		opts.Glyphs = chart.DefaultGlyphs
	}

	rows := height - opts.ReserveRows
	if width <= 0 || rows <= 0 {
		return nil, fmt.Errorf("surface %dx%d leaves no room for a chart: %w", width, height, model.ErrEnvironment)
	}
	labelWidth := opts.LabelWidth
	if labelWidth == 0 {
		labelWidth = chart.LabelWidth(calculator.ComputeMax(records), opts.Glyphs.Separator)
	}
	canvas := model.Canvas{Width: width - labelWidth, Height: rows, LabelWidth: labelWidth}
	if canvas.Width <= 0 {
		return nil, fmt.Errorf("width %d is too narrow for %d label columns: %w", width, labelWidth, model.ErrEnvironment)
	}
	log.Printf("[INFO] height: %d, width: %d", canvas.Height, canvas.Width)

	reduced, step, err := calculator.ReduceToWidth(records, canvas.Width)
	if err != nil {
		return nil, fmt.Errorf("reduce %d records: %w", len(records), err)
	}
	log.Printf("[INFO] averaged %d records by %d into %d columns", len(records), step, len(reduced))

	top := calculator.ComputeMax(reduced)
	normalized, delta, err := calculator.NormalizeHeight(reduced, top, canvas.Height)
	if err != nil {
		return nil, err
	}

	fit, err := calculator.Fit(calculator.ToPoints(normalized))
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] trend: %s", fit)

	table, err := calculator.BuildScaleTable(top, delta, canvas.Height)
	if err != nil {
		return nil, err
	}

	grid, err := chart.Render(canvas, normalized, fit, table, opts.Glyphs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Canvas: canvas,
		Step:   step,
		Max:    top,
		Model:  fit,
		Table:  table,
		Series: normalized,
		Grid:   grid,
	}, nil
}
