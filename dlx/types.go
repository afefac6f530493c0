// SPDX-License-Identifier: MIT

// Package dlx: sentinel errors and functional configuration.
//
// All public operations return these sentinels and tests match them via
// errors.Is. No operation panics on user input; panics are reserved for
// programmer errors in option constructors.
package dlx

import "errors"

var (
	// ErrIndexOutOfRange indicates a row index outside the declared or
	// inferred row range, either in a constraint list or in AddSolution.
	ErrIndexOutOfRange = errors.New("dlx: row index out of range")

	// ErrInvalidRow indicates the row was already removed from the
	// matrix by an earlier AddSolution covering an overlapping column.
	ErrInvalidRow = errors.New("dlx: row no longer selectable")

	// ErrNoSolution indicates the search exhausted every branch without
	// finding an exact cover. This is an expected outcome for
	// unsatisfiable inputs, not an engine failure.
	ErrNoSolution = errors.New("dlx: no exact cover exists")

	// ErrMatrixConsumed indicates AddSolution or Solve was called on a
	// matrix that Solve has already consumed.
	ErrMatrixConsumed = errors.New("dlx: matrix already consumed by Solve")
)

// inferRows sentinel: row capacity is taken as max observed index + 1.
const inferRows = -1

// options is the gathered configuration consumed by New.
type options struct {
	// rows is the declared row capacity, or inferRows to size the row
	// table by the maximum row index observed in the constraints.
	rows int
}

// Option configures New.
type Option func(*options)

// WithRows pre-declares the row capacity n. Constraint members and
// AddSolution arguments are then validated against [0, n). Panics if
// n is negative (programmer error, not runtime input).
func WithRows(n int) Option {
	if n < 0 {
		panic("dlx: WithRows requires n >= 0")
	}

	return func(o *options) { o.rows = n }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{rows: inferRows}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
