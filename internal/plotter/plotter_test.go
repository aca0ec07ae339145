package plotter

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"StockPlot/internal/collector"
	"StockPlot/internal/model"
	"StockPlot/internal/terminal"
)

func opens(values ...float64) []model.Record {
	records := make([]model.Record, len(values))
	for i, v := range values {
		records[i] = model.Record{Date: "d", Open: v, High: v, Low: v, Close: v}
	}
	return records
}

func TestBuild_TenRecords(t *testing.T) {
	// label "10.00" plus separator takes 6 of the 11 columns
	res, err := Build(opens(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 11, 5, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Canvas.Width != 5 || res.Canvas.LabelWidth != 6 {
		t.Fatalf("unexpected canvas: %+v", res.Canvas)
	}
	if res.Step != 2 {
		t.Errorf("expected step 2, got %d", res.Step)
	}
	wantOpens := []float64{1.5, 3.5, 5.5, 7.5, 9.5}
	wantRows := []float64{1, 2, 3, 4, 5}
	for i, r := range res.Series {
		if r.Open != wantOpens[i] || r.Row != wantRows[i] {
			t.Errorf("column %d: expected open %.1f row %.0f, got %+v", i, wantOpens[i], wantRows[i], r)
		}
	}
	if math.Abs(res.Model.A-1) > 1e-9 || math.Abs(res.Model.B-1) > 1e-9 {
		t.Errorf("expected x + 1, got %s", res.Model)
	}
	want := []string{
		"9.50 |    *",
		"7.60 |   *#",
		"5.70 |  *##",
		"3.80 | *###",
		"1.90 |*####",
	}
	if got := res.Grid.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected chart:\ngot  %q\nwant %q", got, want)
	}
}

func TestBuild_LongSeriesFitsWidth(t *testing.T) {
	records := collector.GenerateRecords(20, 0.05, 1259)
	res, err := Build(records, 80, 24, Options{ReserveRows: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Grid.Rows) != 23 {
		t.Errorf("expected 23 rows, got %d", len(res.Grid.Rows))
	}
	for i, line := range res.Grid.Lines() {
		if len(line) > 80 {
			t.Errorf("row %d is %d columns wide", i, len(line))
		}
	}
	if res.Model.A <= 0 {
		t.Errorf("expected rising trend, got %s", res.Model)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []model.Record
		width   int
		height  int
		opts    Options
		want    error
	}{
		{"empty series", nil, 40, 10, Options{}, model.ErrDivision},
		{"series shorter than canvas", opens(1, 2, 3), 40, 10, Options{}, model.ErrDivision},
		{"all zero prices", opens(0, 0, 0, 0, 0, 0), 8, 10, Options{}, model.ErrDivision},
		{"single column", opens(1, 2, 3), 6, 10, Options{}, model.ErrDegenerateInput},
		{"no rows", opens(1, 2, 3, 4), 10, 1, Options{ReserveRows: 1}, model.ErrEnvironment},
		{"no columns", opens(1, 2, 3, 4), 5, 10, Options{}, model.ErrEnvironment},
		{"zero width", opens(1, 2, 3, 4), 0, 10, Options{}, model.ErrEnvironment},
	}
	for _, tt := range tests {
		_, err := Build(tt.records, tt.width, tt.height, tt.opts)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestPlotter_Plot(t *testing.T) {
	src := &collector.MockSource{Label: "AAL", Records: collector.GenerateRecords(50, -0.1, 300)}
	p := NewPlotter(collector.NewCollector(src), terminal.Fixed{Width: 60, Height: 20}, Options{ReserveRows: 1})
	res, err := p.Plot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "AAL" {
		t.Errorf("expected name AAL, got %q", res.Name)
	}
	if res.Model.A >= 0 {
		t.Errorf("expected falling trend, got %s", res.Model)
	}

	again, err := p.Plot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Grid.Lines(), again.Grid.Lines()) {
		t.Error("expected identical output for identical input")
	}
}

func TestPlotter_PropagatesErrors(t *testing.T) {
	failing := NewPlotter(
		collector.NewCollector(&collector.MockSource{Err: model.ErrDataSource}),
		terminal.Fixed{Width: 60, Height: 20},
		Options{},
	)
	if _, err := failing.Plot(); !errors.Is(err, model.ErrDataSource) {
		t.Errorf("expected ErrDataSource, got %v", err)
	}

	noTerm := NewPlotter(
		collector.NewCollector(&collector.MockSource{Records: collector.GenerateRecords(10, 1, 100)}),
		terminal.Fixed{},
		Options{},
	)
	if _, err := noTerm.Plot(); !errors.Is(err, model.ErrEnvironment) {
		t.Errorf("expected ErrEnvironment, got %v", err)
	}
}
