// SPDX-License-Identifier: MIT

package matrix

import "reflect"

// ValidateNotNil returns ErrNilMatrix for a nil interface or a typed nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrNilMatrix
	}

	return nil
}
