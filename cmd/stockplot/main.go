package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"StockPlot/internal/chart"
	"StockPlot/internal/collector"
	"StockPlot/internal/config"
	"StockPlot/internal/display"
	"StockPlot/internal/model"
	"StockPlot/internal/plotter"
	"StockPlot/internal/terminal"
)

const usage = `usage: stockplot [flags] <file.csv>

Draws the open prices of a date,open,high,low,close CSV file as a bar chart
sized to the terminal, with the least-squares trend line on top.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stockplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", os.Getenv("CONFIG_PATH"), "path to an optional YAML config file")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	width := fs.Int("width", 0, "chart width in columns (0 probes the terminal)")
	height := fs.Int("height", 0, "chart height in rows (0 probes the terminal)")
	colorMode := fs.String("color", "", "colour output: auto, always or never")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(io.Discard)
	if *verbose {
		log.SetOutput(stderr)
	}
	log.Println("[INFO] stockplot starting...")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "stockplot: load config: %v\n", err)
		return 1
	}
	if *width > 0 {
		cfg.Terminal.Width = *width
	}
	if *height > 0 {
		cfg.Terminal.Height = *height
	}
	if *colorMode != "" {
		cfg.Output.Color = *colorMode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "stockplot: config validation: %v\n", err)
		return 1
	}
	mode, _ := display.ParseColorMode(cfg.Output.Color)

	src := collector.NewCSVSource(fs.Arg(0), cfg.CommaRune())
	p := plotter.NewPlotter(collector.NewCollector(src), sizeProvider(cfg), plotter.Options{
		Glyphs: chart.Glyphs{
			Fill:      cfg.Chart.FillGlyph,
			Marker:    cfg.Chart.MarkerGlyph,
			Blank:     " ",
			Separator: cfg.Chart.Separator,
		},
		LabelWidth:  cfg.Chart.LabelWidth,
		ReserveRows: cfg.Terminal.ReserveRows,
	})

	res, err := p.Plot()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintf(stderr, "stockplot: %s: %v\n", errorKind(err), err)
		return 1
	}
	if err := display.NewWriter(stdout, mode).WriteGrid(res.Grid); err != nil {
		fmt.Fprintf(stderr, "stockplot: %v\n", err)
		return 1
	}
	log.Printf("[INFO] rendered %s: %d columns x %d rows", res.Name, len(res.Series), res.Canvas.Height)
	return 0
}

// sizeProvider prefers configured dimensions; a dimension left at zero is
// probed from the terminal.
func sizeProvider(cfg *config.Config) terminal.SizeProvider {
	probe := terminal.Chain{terminal.NewTerm(), terminal.NewTput()}
	if cfg.Terminal.Width > 0 && cfg.Terminal.Height > 0 {
		return terminal.Fixed{Width: cfg.Terminal.Width, Height: cfg.Terminal.Height}
	}
	if cfg.Terminal.Width == 0 && cfg.Terminal.Height == 0 {
		return probe
	}
	return partialSize{probe: probe, width: cfg.Terminal.Width, height: cfg.Terminal.Height}
}

type partialSize struct {
	probe         terminal.SizeProvider
	width, height int
}

func (p partialSize) Size() (int, int, error) {
	w, h, err := p.probe.Size()
	if err != nil {
		return 0, 0, err
	}
	if p.width > 0 {
		w = p.width
	}
	if p.height > 0 {
		h = p.height
	}
	return w, h, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrDataSource):
		return "bad input"
	case errors.Is(err, model.ErrEnvironment):
		return "terminal unavailable"
	case errors.Is(err, model.ErrDegenerateInput):
		return "cannot fit trend"
	case errors.Is(err, model.ErrDivision):
		return "not enough data"
	default:
		return "error"
	}
}
