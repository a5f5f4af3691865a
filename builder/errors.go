// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRadius indicates a non-positive connection radius.
var ErrBadRadius = errors.New("builder: radius must be positive")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
