// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader is returned when the segment header is not a valid
	// TIFF header. It is fatal to the current segment only.
	ErrInvalidHeader = fmt.Errorf("exifcore: invalid header")

	// ErrCycle signals that a directory chain revisited an already-seen
	// offset or exceeded the maximum depth. Results decoded before the
	// cycle are kept.
	ErrCycle = fmt.Errorf("exifcore: directory cycle detected")

	// ErrMissingSeed signals that a decryption seed required by a binary
	// layout was not present in the file. The dependent extraction is
	// skipped, nothing else.
	ErrMissingSeed = fmt.Errorf("exifcore: missing decryption seed")

	// errBounds is the tag/field-local bounds violation. It never escapes
	// a single entry.
	errBounds = fmt.Errorf("exifcore: out of bounds")

	// errStop is an internal sentinel to stop any further processing.
	errStop = fmt.Errorf("stop")
)

// IsBounds reports whether err is a tag- or field-local bounds violation.
func IsBounds(err error) bool {
	return errors.Is(err, errBounds)
}

func newBoundsErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBounds, fmt.Sprintf(format, args...))
}

func newInvalidHeaderErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidHeader, fmt.Sprintf(format, args...))
}
