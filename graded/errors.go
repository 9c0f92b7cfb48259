// SPDX-License-Identifier: MIT

package graded

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGenerator is returned when a Lyndon factor has no generator,
	// i.e. the word uses letters or weights outside the ring.
	ErrUnknownGenerator = errors.New("graded: no generator for Lyndon word")
)

const (
	opNew         = "New"
	opFromDualPBW = "FromDualPBW"
	opFromShuffle = "FromShuffle"
)

func gradedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
