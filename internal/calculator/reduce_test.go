package calculator

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"StockPlot/internal/model"
)

func makeRecords(opens ...float64) []model.Record {
	records := make([]model.Record, len(opens))
	for i, o := range opens {
		records[i] = model.Record{
			Date:  fmt.Sprintf("2020-01-%02d", i+1),
			Open:  o,
			High:  o + 1,
			Low:   o - 1,
			Close: o,
		}
	}
	return records
}

func TestReduceToWidth_TenRecordsFiveColumns(t *testing.T) {
	records := makeRecords(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	reduced, step, err := ReduceToWidth(records, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step != 2 {
		t.Fatalf("expected step 2, got %d", step)
	}
	want := []float64{1.5, 3.5, 5.5, 7.5, 9.5}
	if len(reduced) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(reduced))
	}
	for i, w := range want {
		if reduced[i].Open != w {
			t.Errorf("record %d: expected open %.1f, got %.2f", i, w, reduced[i].Open)
		}
	}
}

func TestReduce_ClosingDateLabel(t *testing.T) {
	records := makeRecords(1, 2, 3, 4, 5, 6)
	reduced, err := Reduce(records, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reduced) != 2 {
		t.Fatalf("expected 2 records, got %d", len(reduced))
	}
	if reduced[0].Date != "2020-01-03" || reduced[1].Date != "2020-01-06" {
		t.Errorf("expected closing dates, got %q and %q", reduced[0].Date, reduced[1].Date)
	}
	if reduced[0].High != 0 || reduced[0].Low != 0 || reduced[0].Close != 0 {
		t.Errorf("expected zeroed high/low/close, got %+v", reduced[0])
	}
}

func TestReduce_DropsTrailingPartialBucket(t *testing.T) {
	records := makeRecords(2, 4, 6, 8, 10, 12, 100)
	reduced, err := Reduce(records, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reduced) != 2 {
		t.Fatalf("expected 2 records, got %d", len(reduced))
	}
	if reduced[0].Open != 4 || reduced[1].Open != 10 {
		t.Errorf("expected [4 10], got [%.2f %.2f]", reduced[0].Open, reduced[1].Open)
	}
}

func TestReduce_FewerRecordsThanStep(t *testing.T) {
	reduced, err := Reduce(makeRecords(1, 2), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reduced) != 0 {
		t.Errorf("expected empty result, got %d records", len(reduced))
	}
}

func TestReduce_WindowMeansAndLength(t *testing.T) {
	opens := make([]float64, 53)
	for i := range opens {
		opens[i] = math.Sin(float64(i)) * 10
	}
	records := makeRecords(opens...)
	for step := 1; step <= 10; step++ {
		reduced, err := Reduce(records, step)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}
		if len(reduced) > len(records)/step {
			t.Errorf("step %d: %d records exceeds %d", step, len(reduced), len(records)/step)
		}
		for k, r := range reduced {
			sum := 0.0
			for _, o := range opens[k*step : (k+1)*step] {
				sum += o
			}
			if math.Abs(r.Open-sum/float64(step)) > 1e-9 {
				t.Errorf("step %d bucket %d: expected %.6f, got %.6f", step, k, sum/float64(step), r.Open)
			}
		}
	}
}

func TestReduce_ZeroStep(t *testing.T) {
	if _, err := Reduce(makeRecords(1, 2, 3), 0); !errors.Is(err, model.ErrDivision) {
		t.Errorf("expected ErrDivision, got %v", err)
	}
}

func TestStepFor(t *testing.T) {
	tests := []struct {
		sourceLen int
		width     int
		step      int
		wantErr   bool
	}{
		{10, 5, 2, false},
		{11, 5, 2, false},
		{1259, 74, 17, false},
		{5, 5, 1, false},
		{4, 5, 0, true},
		{0, 5, 0, true},
		{10, 0, 0, true},
		{10, -3, 0, true},
	}
	for _, tt := range tests {
		step, err := StepFor(tt.sourceLen, tt.width)
		if tt.wantErr {
			if !errors.Is(err, model.ErrDivision) {
				t.Errorf("StepFor(%d, %d): expected ErrDivision, got %v", tt.sourceLen, tt.width, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("StepFor(%d, %d): unexpected error: %v", tt.sourceLen, tt.width, err)
			continue
		}
		if step != tt.step {
			t.Errorf("StepFor(%d, %d): expected %d, got %d", tt.sourceLen, tt.width, tt.step, step)
		}
	}
}

func TestReduceToWidth_CapsAtWidth(t *testing.T) {
	opens := make([]float64, 19)
	for i := range opens {
		opens[i] = float64(i + 1)
	}
	reduced, _, err := ReduceToWidth(makeRecords(opens...), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reduced) != 10 {
		t.Errorf("expected 10 records, got %d", len(reduced))
	}
}
