package model

import "errors"

var (
	// ErrDataSource reports missing or malformed input records.
	ErrDataSource = errors.New("data source error")
	// ErrEnvironment reports unavailable or non-positive terminal dimensions.
	ErrEnvironment = errors.New("environment error")
	// ErrDegenerateInput reports a regression input with no variance in x.
	ErrDegenerateInput = errors.New("degenerate regression input")
	// ErrDivision reports a zero divisor (height, step or per-row price delta).
	ErrDivision = errors.New("division by zero")
)
