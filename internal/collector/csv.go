package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"StockPlot/internal/model"
)

// Columns every input file must provide, matched case-insensitively by header.
var requiredColumns = []string{"date", "open", "high", "low", "close"}

// CSVSource reads records from a delimited text file with a header row.
type CSVSource struct {
	Path  string
	Comma rune
}

// NewCSVSource creates a source for the file at path.
func NewCSVSource(path string, comma rune) *CSVSource {
	if comma == 0 {
		comma = ','
	}
	return &CSVSource{Path: path, Comma: comma}
}

// Name returns the file name without its extension.
func (s *CSVSource) Name() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load opens the file and parses every record.
func (s *CSVSource) Load() ([]model.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", s.Path, model.ErrDataSource, err)
	}
	defer f.Close()
	records, err := ParseCSV(f, s.Comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return records, nil
}

// ParseCSV reads records from r. Columns are located through the header row so
// their order does not matter; extra columns are ignored.
func ParseCSV(r io.Reader, comma rune) ([]model.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty input: %w", model.ErrDataSource)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w: %w", model.ErrDataSource, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w: %w", model.ErrDataSource, err)
		}
		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", col, model.ErrDataSource)
		}
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int) (model.Record, error) {
	prices := make([]float64, 4)
	for i, col := range requiredColumns[1:] {
		field := strings.TrimSpace(row[idx[col]])
		v, err := strconv.ParseFloat(field, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errors.New("not a finite number")
		}
		if err != nil {
			return model.Record{}, fmt.Errorf("parse %s %q: %w", col, field, model.ErrDataSource)
		}
		prices[i] = v
	}
	return model.Record{
		Date:  strings.TrimSpace(row[idx["date"]]),
		Open:  prices[0],
		High:  prices[1],
		Low:   prices[2],
		Close: prices[3],
	}, nil
}
