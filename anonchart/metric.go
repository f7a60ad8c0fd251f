// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anonchart

import (
	"fmt"

	"github.com/digestprivacy/anonviz/anontab"
)

// A Metric selects the column a chart plots against first_bits.
type Metric struct {
	// Name identifies the chart, for example in file names.
	Name string

	// Column is the y column; one of anontab.KAnonymity or
	// anontab.Impact.
	Column string

	Title  string
	YLabel string // defaults to Column
	LogY   bool
}

// DefaultMetrics returns the k-anonymity chart and the anonymity
// impact chart, both on a logarithmic y axis.
func DefaultMetrics() []Metric {
	return []Metric{
		{
			Name:   "k-anonymity",
			Column: anontab.KAnonymity,
			Title:  "K Anonymity Achieved for Digests",
			LogY:   true,
		},
		{
			Name:   "anonymity-impact",
			Column: anontab.Impact,
			Title:  "Anonymity Heuristic Impact for Digests",
			LogY:   true,
		},
	}
}

func (m Metric) yLabel() string {
	if m.YLabel != "" {
		return m.YLabel
	}
	return m.Column
}

// A Policy says what Build does with rows that cannot be plotted.
type Policy int

const (
	// DropInvalid leaves such rows out of the chart and records
	// them in Chart.Dropped.
	DropInvalid Policy = iota

	// RejectInvalid fails the chart on the first such row.
	RejectInvalid
)

func (p Policy) String() string {
	switch p {
	case DropInvalid:
		return "drop"
	case RejectInvalid:
		return "reject"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses the String form of a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "drop", "":
		return DropInvalid, nil
	case "reject":
		return RejectInvalid, nil
	}
	return 0, fmt.Errorf("unknown invalid-value policy %q (want drop or reject)", s)
}
