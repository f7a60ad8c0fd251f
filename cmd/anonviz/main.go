// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Anonviz charts precomputed anonymity metrics of truncated digests.
//
// Usage:
//
//	anonviz [-csv file] [-config file] [-summary] [-strict] [-svg dir] [-png dir] [-pdf dir]
//
// Anonviz reads a CSV table with columns first_bits,
// k_anonymity_achieved, anonymity_imapct and digest (by default from
// ./visualizations/anonymities.csv) and draws two line charts, one
// line per digest across first_bits, on a logarithmic y axis:
//
//	K Anonymity Achieved for Digests
//	Anonymity Heuristic Impact for Digests
//
// The charts open in the web browser, served from memory by a local
// HTTP server that exits once the browser has loaded them. With -svg,
// -png or -pdf, the charts are written to files in the given
// directories instead.
//
// A logarithmic axis cannot show zero, negative or non-finite values.
// Rows holding such a value are left out of that chart and reported
// as warnings; with -strict, the chart fails instead. Either way the
// other chart is still drawn, and anonviz exits with status 1 if any
// chart failed.
//
// The -csv flag also accepts "-" for standard input and
// gs://bucket/object URLs for files in Google Cloud Storage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	log "github.com/golang/glog"

	"github.com/digestprivacy/anonviz/anonchart"
	"github.com/digestprivacy/anonviz/internal/config"
	"github.com/digestprivacy/anonviz/internal/source"
	"github.com/digestprivacy/anonviz/internal/viewer"
)

// defaultCSV is where the metrics table is read from without -csv.
const defaultCSV = "./visualizations/anonymities.csv"

var (
	flagCSV         = flag.String("csv", defaultCSV, "read metrics from `file` (a path, - for stdin, or gs://bucket/object)")
	flagConfig      = flag.String("config", "", "read chart configuration from YAML `file`")
	flagSVG         = flag.String("svg", "", "write svg charts into `directory` instead of opening a browser")
	flagPNG         = flag.String("png", "", "write png charts into `directory` instead of opening a browser")
	flagPDF         = flag.String("pdf", "", "write pdf charts into `directory` instead of opening a browser")
	flagSummary     = flag.Bool("summary", false, "print a per-digest summary table")
	flagStrict      = flag.Bool("strict", false, "fail a chart on values a log axis cannot show, instead of dropping those rows")
	flagAddr        = flag.String("addr", "localhost:0", "serve charts on `address`")
	flagNoBrowser   = flag.Bool("nobrowser", false, "print the chart URL instead of opening a browser")
	flagTimeout     = flag.Duration("timeout", 0, "stop serving charts after `duration` (0 waits for the browser or interrupt)")
	flagCredentials = flag.String("credentials", "", "service account key `file` for gs:// inputs")
	flagAnonymous   = flag.Bool("anonymous", false, "read gs:// inputs without credentials")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of anonviz:
	anonviz [flags]
`)
	flag.PrintDefaults()
	os.Exit(2)
}

// options is the parsed command line.
type options struct {
	csv, config            string
	svgDir, pngDir, pdfDir string
	summary, strict        bool
	view                   viewer.Options
	source                 source.Options
}

func main() {
	// glog would otherwise write log files.
	flag.Set("logtostderr", "true")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}
	defer log.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o := options{
		csv:     *flagCSV,
		config:  *flagConfig,
		svgDir:  *flagSVG,
		pngDir:  *flagPNG,
		pdfDir:  *flagPDF,
		summary: *flagSummary,
		strict:  *flagStrict,
		view: viewer.Options{
			Addr:        *flagAddr,
			OpenBrowser: !*flagNoBrowser,
			Timeout:     *flagTimeout,
			Logf:        log.Infof,
		},
		source: source.Options{
			CredentialsFile: *flagCredentials,
			Anonymous:       *flagAnonymous,
		},
	}
	if err := run(ctx, o, os.Stdout); err != nil {
		log.Exitf("%v", err)
	}
}

// errChartsFailed reports that some charts could not be drawn.
var errChartsFailed = errors.New("some charts could not be drawn")

func run(ctx context.Context, o options, stdout io.Writer) error {
	report := config.Default()
	if o.config != "" {
		var err error
		if report, err = config.Load(o.config); err != nil {
			return err
		}
	}
	if o.strict {
		report.Policy = anonchart.RejectInvalid
	}

	ds, err := source.Load(ctx, o.csv, o.source)
	if err != nil {
		return err
	}
	log.Infof("read %d rows for %d digests from %s", ds.Len(), len(ds.Digests()), ds.FileName)

	if o.summary {
		if err := ds.FprintSummary(stdout); err != nil {
			return err
		}
	}

	dirs := map[string]string{"svg": o.svgDir, "png": o.pngDir, "pdf": o.pdfDir}
	toFiles := o.svgDir != "" || o.pngDir != "" || o.pdfDir != ""

	page := &viewer.Page{Title: report.Title}
	failed := 0
	for _, m := range report.Metrics {
		// Each chart stands alone: a failure is reported and the
		// next chart is still drawn.
		c, err := anonchart.Build(ds, m, report.Policy)
		if c != nil {
			for _, d := range c.Dropped {
				log.Warningf("dropped from %q: %v", m.Title, d)
			}
		}
		if err != nil {
			log.Errorf("%v", err)
			page.Errors = append(page.Errors, err.Error())
			failed++
			continue
		}

		if toFiles {
			for _, format := range []string{"svg", "png", "pdf"} {
				if dirs[format] == "" {
					continue
				}
				if err := writeChart(c, report, dirs[format], format); err != nil {
					log.Errorf("%v", err)
					failed++
				}
			}
			continue
		}

		data, err := anonchart.Render(c, report.Width, report.Height, "svg")
		if err != nil {
			log.Errorf("chart %q: %v", m.Title, err)
			page.Errors = append(page.Errors, err.Error())
			failed++
			continue
		}
		page.Figures = append(page.Figures, viewer.Figure{Name: m.Name, Title: m.Title, Format: "svg", Data: data})
	}

	if !toFiles && len(page.Figures) > 0 {
		if err := viewer.Show(ctx, page, o.view); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d failure(s))", errChartsFailed, failed)
	}
	return nil
}

// writeChart renders c into dir/<name>.<format>.
func writeChart(c *anonchart.Chart, report *config.Report, dir, format string) error {
	data, err := anonchart.Render(c, report.Width, report.Height, format)
	if err != nil {
		return fmt.Errorf("chart %q: %w", c.Metric.Title, err)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	file := filepath.Join(dir, c.Metric.Name) + "." + format
	if err := os.WriteFile(file, data, 0666); err != nil {
		return err
	}
	log.Infof("wrote %s", file)
	return nil
}
