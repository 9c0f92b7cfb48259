// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetCapacity is returned when a family needs more letters than
	// its 26-character rendering range provides. Two letters are never
	// silently mapped onto the same byte.
	ErrAlphabetCapacity = errors.New("alphabet: letter family exceeds 26 symbols")

	// ErrInvalidIndexCount indicates a non-positive index-set size.
	ErrInvalidIndexCount = errors.New("alphabet: index count must be >= 1")

	// ErrUnknownLetter indicates a word contains a byte that is not a letter
	// of the alphabet.
	ErrUnknownLetter = errors.New("alphabet: unknown letter")
)

const (
	opNew      = "New"
	opValidate = "Validate"
)

// alphabetErrorf wraps err with an operation tag, preserving it for errors.Is.
func alphabetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
