// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateGenerator indicates a name was registered twice in one ring.
	ErrDuplicateGenerator = errors.New("poly: duplicate generator name")

	// ErrInvalidWeight indicates a non-positive generator weight.
	ErrInvalidWeight = errors.New("poly: weight must be > 0")
)

const (
	opAddGenerator    = "AddGenerator"
	opWeightedVectors = "WeightedVectors"
)

// polyErrorf wraps err with an operation tag, preserving it for errors.Is.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
