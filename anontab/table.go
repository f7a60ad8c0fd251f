// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anontab loads tables of precomputed anonymity metrics.
//
// The input is a CSV file with a header row. Four columns are
// required, in any order:
//
//	first_bits            number of leading digest bits considered
//	k_anonymity_achieved  k-anonymity at that bit count
//	anonymity_imapct      anonymity impact heuristic at that bit count
//	digest                digest algorithm the row belongs to
//
// The spelling of anonymity_imapct is part of the file format. Other
// columns are kept for re-serialization but otherwise ignored.
package anontab

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Column names of the input format.
const (
	FirstBits  = "first_bits"
	KAnonymity = "k_anonymity_achieved"
	Impact     = "anonymity_imapct"
	Digest     = "digest"
)

// Required lists the columns every input must have.
var Required = []string{FirstBits, KAnonymity, Impact, Digest}

// A Dataset is a loaded metrics table. It is never modified after
// Read returns it.
type Dataset struct {
	// FileName is the diagnostic name of the input.
	FileName string

	// Header and Records are the raw cells of the input, all
	// columns included, in input order.
	Header  []string
	Records [][]string

	// Lines[i] is the input line Records[i] started on.
	Lines []int

	// Table holds the required columns with typed values:
	// FirstBits, KAnonymity and Impact as []float64 and Digest
	// as []string. Row i of Table is Records[i].
	Table *table.Table
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Digests returns the distinct digests in d in order of first
// appearance.
func (d *Dataset) Digests() []string {
	if d.Len() == 0 {
		return nil
	}
	return slice.Nub(d.Table.MustColumn(Digest)).([]string)
}

// Floats returns the values of numeric column col, or nil if col is
// not one of the numeric required columns.
func (d *Dataset) Floats(col string) []float64 {
	switch col {
	case FirstBits, KAnonymity, Impact:
	default:
		return nil
	}
	xs, _ := d.Table.Column(col).([]float64)
	return xs
}
