// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anontab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// OpenFile opens the input file at path. A missing file is reported
// as an error matching ErrFileNotFound.
func OpenFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}
	return f, err
}

// ReadFile reads the metrics table stored at path.
func ReadFile(path string) (*Dataset, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a metrics table from r. fileName is used in error
// messages; it is purely diagnostic.
//
// An empty cell in a numeric column reads as NaN. Any other value
// that strconv.ParseFloat rejects is a *ParseError.
func Read(r io.Reader, fileName string) (*Dataset, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{FileName: fileName, Msg: "missing header row"}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index, err := columnIndex(fileName, header)
	if err != nil {
		return nil, err
	}

	d := &Dataset{FileName: fileName, Header: header}
	var firstBits, kanon, impact []float64
	var digests []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		line, _ := cr.FieldPos(0)

		num := func(col string) (float64, error) {
			s := strings.TrimSpace(rec[index[col]])
			if s == "" {
				return math.NaN(), nil
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, &ParseError{fileName, line, col, fmt.Sprintf("%q is not a number", s)}
			}
			return v, nil
		}
		fb, err := num(FirstBits)
		if err != nil {
			return nil, err
		}
		k, err := num(KAnonymity)
		if err != nil {
			return nil, err
		}
		im, err := num(Impact)
		if err != nil {
			return nil, err
		}

		d.Records = append(d.Records, rec)
		d.Lines = append(d.Lines, line)
		firstBits = append(firstBits, fb)
		kanon = append(kanon, k)
		impact = append(impact, im)
		digests = append(digests, rec[index[Digest]])
	}

	// Columns are added in the order of Required so that the
	// Table's shape does not depend on the input's column order.
	var b table.Builder
	b.Add(FirstBits, nonNil(firstBits))
	b.Add(KAnonymity, nonNil(kanon))
	b.Add(Impact, nonNil(impact))
	if digests == nil {
		digests = []string{}
	}
	b.Add(Digest, digests)
	d.Table = b.Done()
	return d, nil
}

// columnIndex maps each required column to its position in header.
func columnIndex(fileName string, header []string) (map[string]int, error) {
	index := make(map[string]int, len(Required))
	for i, name := range header {
		for _, req := range Required {
			if name != req {
				continue
			}
			if _, dup := index[name]; dup {
				return nil, &ParseError{FileName: fileName, Line: 1, Column: name, Msg: "duplicate column"}
			}
			index[name] = i
		}
	}
	var missing []string
	for _, req := range Required {
		if _, ok := index[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{FileName: fileName, Line: 1, Msg: "missing required column(s) " + strings.Join(missing, ", ")}
	}
	return index, nil
}

// csvError converts an error from encoding/csv to a *ParseError.
func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{FileName: fileName, Line: pe.Line, Msg: pe.Err.Error()}
	}
	return err
}

func nonNil(xs []float64) []float64 {
	if xs == nil {
		return []float64{}
	}
	return xs
}
