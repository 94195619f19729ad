// SPDX-License-Identifier: MIT
// Package arrays: sentinel errors.
// Only ParseNumber reports errors; every other operation is total and
// degrades unparseable input to 0. Match with errors.Is.

package arrays

import "errors"

var (
	// ErrEmptyInput is returned by ParseNumber for an empty or blank string.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrNotANumber is returned by ParseNumber when the string is not a
	// number. The returned error wraps it together with the offending input.
	ErrNotANumber = errors.New("arrays: not a number")
)
