// SPDX-License-Identifier: MIT

package shuffle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPrecomputed is returned by Expand when the expander has been
	// marked precomputed and the store has no entry for the requested word.
	ErrNotPrecomputed = errors.New("shuffle: word missing from precomputed cache")

	// ErrNotTriangular signals that subtracting an expansion left its leading
	// word in place, which would make the greedy extraction loop forever.
	ErrNotTriangular = errors.New("shuffle: expansion is not triangular")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("shuffle: workers must be >= 1")
)

const (
	opExpand     = "Expand"
	opPrecompute = "Precompute"
	opToDualPBW  = "ToDualPBW"
	opToShuffle  = "ToShuffle"
	opDecode     = "Decode"
)

// shuffleErrorf wraps err with an operation tag, preserving it for errors.Is.
func shuffleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
