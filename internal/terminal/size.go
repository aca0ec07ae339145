package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/term"

	"StockPlot/internal/model"
)

// SizeProvider reports the drawing surface as (width, height) in cells.
type SizeProvider interface {
	Size() (width, height int, err error)
}

// Fixed is a SizeProvider with preset dimensions.
type Fixed struct {
	Width  int
	Height int
}

func (f Fixed) Size() (int, int, error) {
	return checked(f.Width, f.Height, "fixed")
}

// Term queries the terminal attached to one of the given files.
type Term struct {
	Files []*os.File
}

// NewTerm creates a provider probing stdout, stderr and stdin in that order.
func NewTerm() *Term {
	return &Term{Files: []*os.File{os.Stdout, os.Stderr, os.Stdin}}
}

func (t *Term) Size() (int, int, error) {
	for _, f := range t.Files {
		if f == nil {
			continue
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		w, h, err := term.GetSize(fd)
		if err != nil {
			continue
		}
		return checked(w, h, "term")
	}
	return 0, 0, fmt.Errorf("no terminal attached: %w", model.ErrEnvironment)
}

// Tput asks the tput utility for the terminal size.
type Tput struct {
	Command string
}

// NewTput creates a provider running tput from PATH.
func NewTput() *Tput {
	return &Tput{Command: "tput"}
}

func (t *Tput) Size() (int, int, error) {
	w, err := t.query("cols")
	if err != nil {
		return 0, 0, err
	}
	h, err := t.query("lines")
	if err != nil {
		return 0, 0, err
	}
	return checked(w, h, "tput")
}

func (t *Tput) query(capability string) (int, error) {
	cmd := exec.Command(t.Command, capability)
	cmd.Stdin = os.Stdin
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w: %w", t.Command, capability, model.ErrEnvironment, err)
	}
	return parseTputOutput(out)
}

func parseTputOutput(out []byte) (int, error) {
	n, err := strconv.Atoi(string(bytes.TrimSpace(out)))
	if err != nil {
		return 0, fmt.Errorf("parse tput output %q: %w", out, model.ErrEnvironment)
	}
	return n, nil
}

// Chain returns the size from the first provider that succeeds.
type Chain []SizeProvider

func (c Chain) Size() (int, int, error) {
	var errs []error
	for _, p := range c {
		w, h, err := p.Size()
		if err == nil {
			return w, h, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return 0, 0, fmt.Errorf("no size provider configured: %w", model.ErrEnvironment)
	}
	return 0, 0, errors.Join(errs...)
}

func checked(w, h int, from string) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%s reported %dx%d: %w", from, w, h, model.ErrEnvironment)
	}
	return w, h, nil
}
