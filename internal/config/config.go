// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional report configuration file.
//
// A configuration file is YAML:
//
//	title: Digest truncation study
//	width_cm: 24
//	height_cm: 14
//	invalid_values: reject
//	charts:
//	  - name: k-anonymity
//	    column: k_anonymity_achieved
//	    title: K Anonymity Achieved for Digests
//	    log_y: true
//
// Every field is optional. Omitted fields keep the defaults, which
// reproduce the two standard charts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/digestprivacy/anonviz/anonchart"
	"github.com/digestprivacy/anonviz/anontab"
)

// Configuration errors, for use with errors.Is.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrUnknownColumn  = errors.New("chart column must be k_anonymity_achieved or anonymity_imapct")
	ErrDuplicateName  = errors.New("duplicate chart name")
	ErrMissingName    = errors.New("chart name is required")
	ErrInvalidSize    = errors.New("chart size must be positive")
)

// A Report is the resolved configuration of one run.
type Report struct {
	Title   string
	Width   vg.Length
	Height  vg.Length
	Policy  anonchart.Policy
	Metrics []anonchart.Metric
}

// Default returns the configuration used when no file is given.
func Default() *Report {
	return &Report{
		Title:   "Digest anonymity",
		Width:   anonchart.DefaultWidth,
		Height:  anonchart.DefaultHeight,
		Policy:  anonchart.DropInvalid,
		Metrics: anonchart.DefaultMetrics(),
	}
}

// file is the YAML form of a Report.
type file struct {
	Title         string  `yaml:"title"`
	WidthCM       float64 `yaml:"width_cm"`
	HeightCM      float64 `yaml:"height_cm"`
	InvalidValues string  `yaml:"invalid_values"`
	Charts        []chart `yaml:"charts"`
}

type chart struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
	Title  string `yaml:"title"`
	YLabel string `yaml:"y_label"`
	LogY   *bool  `yaml:"log_y"`
}

// Load reads the configuration file at path. A missing file is
// ErrConfigNotFound.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a configuration file. Unknown keys are errors.
func Parse(data []byte) (*Report, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	r := Default()
	if f.Title != "" {
		r.Title = f.Title
	}
	if f.WidthCM != 0 {
		r.Width = vg.Length(f.WidthCM) * vg.Centimeter
	}
	if f.HeightCM != 0 {
		r.Height = vg.Length(f.HeightCM) * vg.Centimeter
	}
	p, err := anonchart.ParsePolicy(f.InvalidValues)
	if err != nil {
		return nil, err
	}
	r.Policy = p

	if len(f.Charts) > 0 {
		r.Metrics = r.Metrics[:0]
		for _, c := range f.Charts {
			m := anonchart.Metric{
				Name:   c.Name,
				Column: c.Column,
				Title:  c.Title,
				YLabel: c.YLabel,
				LogY:   true,
			}
			if m.Title == "" {
				m.Title = c.Name
			}
			if c.LogY != nil {
				m.LogY = *c.LogY
			}
			r.Metrics = append(r.Metrics, m)
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks r for errors that would only show up at render
// time.
func (r *Report) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidSize
	}
	seen := make(map[string]bool)
	for _, m := range r.Metrics {
		if m.Name == "" {
			return ErrMissingName
		}
		if seen[m.Name] {
			return fmt.Errorf("%w %q", ErrDuplicateName, m.Name)
		}
		seen[m.Name] = true
		if m.Column != anontab.KAnonymity && m.Column != anontab.Impact {
			return fmt.Errorf("chart %q: %w, not %q", m.Name, ErrUnknownColumn, m.Column)
		}
	}
	return nil
}
