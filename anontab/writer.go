// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anontab

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes d back out in CSV form. Every cell, including
// those of columns the charts ignore, is written exactly as it was
// read, so reading the output yields an identical Dataset.
func (d *Dataset) WriteCSV(out io.Writer) error {
	tab := make([][]string, 0, 1+len(d.Records))
	tab = append(tab, d.Header)
	tab = append(tab, d.Records...)
	csvw := csv.NewWriter(out)
	return csvw.WriteAll(tab)
}
