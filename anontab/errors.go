// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anontab

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is wrapped by errors returned when the input
	// file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("parse error")
)

// A ParseError reports malformed CSV input, a missing required
// column, or a cell that is not a number in a numeric column.
type ParseError struct {
	FileName string
	Line     int    // 1-based; 0 if the error is not tied to a line
	Column   string // offending column, if any
	Msg      string
}

func (e *ParseError) Error() string {
	pos := e.FileName
	if e.Line > 0 {
		pos = fmt.Sprintf("%s:%d", e.FileName, e.Line)
	}
	if e.Column != "" {
		return fmt.Sprintf("%s: column %q: %s", pos, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", pos, e.Msg)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
