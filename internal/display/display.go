package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"StockPlot/internal/chart"
)

// ColorMode selects when ANSI colours are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a colour mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Writer prints grids line by line, colouring the label separator green and
// the trend marker on a red background.
type Writer struct {
	out       io.Writer
	separator *color.Color
	trend     *color.Color
}

// NewWriter creates a Writer. In auto mode colour follows fatih/color's
// terminal detection.
func NewWriter(out io.Writer, mode ColorMode) *Writer {
	w := &Writer{
		out:       out,
		separator: color.New(color.FgGreen),
		trend:     color.New(color.BgRed),
	}
	switch mode {
	case ColorAlways:
		w.setColor(true)
	case ColorNever:
		w.setColor(false)
	default:
		w.setColor(!color.NoColor)
	}
	return w
}

func (w *Writer) setColor(on bool) {
	for _, c := range []*color.Color{w.separator, w.trend} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// WriteGrid writes every row of g followed by a newline.
func (w *Writer) WriteGrid(g *chart.Grid) error {
	bw := bufio.NewWriter(w.out)
	for _, row := range g.Rows {
		bw.WriteString(row.Label)
		bw.WriteString(w.separator.Sprint(g.Glyphs.Separator))
		for _, c := range row.Cells {
			if c == chart.Trend {
				bw.WriteString(w.trend.Sprint(g.Glyphs.Glyph(c)))
				continue
			}
			bw.WriteString(g.Glyphs.Glyph(c))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
