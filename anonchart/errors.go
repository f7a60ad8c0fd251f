// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anonchart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every *InvalidValueError.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoData is returned by Build when no row of the table can
	// be plotted.
	ErrNoData = errors.New("no plottable data")
)

// An InvalidValueError describes a row that cannot be placed on a
// chart: a non-finite coordinate, or a non-positive value on a
// logarithmic axis.
type InvalidValueError struct {
	FileName  string
	Line      int
	Column    string
	Digest    string
	FirstBits float64
	Value     float64
	LogScale  bool
}

func (e *InvalidValueError) Error() string {
	why := "is not a finite number"
	if e.LogScale && e.Value <= 0 {
		why = "cannot be shown on a log scale"
	}
	return fmt.Sprintf("%s:%d: %s=%g (digest %q, first_bits=%g) %s",
		e.FileName, e.Line, e.Column, e.Value, e.Digest, e.FirstBits, why)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
