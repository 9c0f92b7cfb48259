// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrPathRequired is returned by Load for an empty path.
	ErrPathRequired = errors.New("config: path is required")
)

const (
	opLoad     = "Load"
	opValidate = "Validate"
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("config.%s: %w", tag, err)
}
