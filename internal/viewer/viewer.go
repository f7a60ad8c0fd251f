// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows rendered charts in the user's web browser.
//
// Charts are served from memory by a short-lived HTTP server on the
// loopback interface; nothing is written to disk. The server stops
// once the browser has fetched the page and every chart on it.
package viewer

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/safehtml/template"

	"github.com/digestprivacy/anonviz/anonchart"
)

// A Figure is one rendered chart.
type Figure struct {
	Name   string // URL-safe identifier, unique within a Page
	Title  string
	Format string // "svg", "png" or "pdf"
	Data   []byte
}

// A Page is the set of charts shown together.
type Page struct {
	Title   string
	Figures []Figure

	// Errors are shown above the charts, one per line.
	Errors []string
}

func (f Figure) path() string {
	return "/chart/" + f.Name + "." + f.Format
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
figure { margin: 0 0 2em 0; }
.error { color: #b00; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Errors}}<p class="error">{{.}}</p>
{{end}}{{range .Figures}}<figure>
{{if eq .Format "pdf"}}<a href="{{.Src}}">{{.Title}}</a>{{else}}<img src="{{.Src}}" alt="{{.Title}}">{{end}}
</figure>
{{end}}</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

type figureData struct {
	Title, Format, Src string
}

type pageData struct {
	Title   string
	Errors  []string
	Figures []figureData
}

// Handler returns an http.Handler serving p: an index page at "/"
// and each figure at /chart/<name>.<format>. If served is non-nil,
// it is called with the path of every successful response.
func (p *Page) Handler(served func(path string)) http.Handler {
	figs := make(map[string]Figure, len(p.Figures))
	data := pageData{Title: p.Title, Errors: p.Errors}
	for _, f := range p.Figures {
		figs[f.path()] = f
		data.Figures = append(data.Figures, figureData{f.Title, f.Format, f.path()})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if served != nil {
			served(r.URL.Path)
		}
	})
	mux.HandleFunc("/chart/", func(w http.ResponseWriter, r *http.Request) {
		f, ok := figs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		ct := anonchart.ContentTypes[f.Format]
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(f.Data); err != nil {
			return
		}
		if served != nil {
			served(r.URL.Path)
		}
	})
	return mux
}

// Options configures Show.
type Options struct {
	// Addr is the listen address. The default, "localhost:0",
	// picks a free port.
	Addr string

	// OpenBrowser launches the system browser on the page.
	OpenBrowser bool

	// Open opens a URL in a browser. The default is OpenURL.
	Open func(url string) error

	// Timeout bounds how long Show waits for the browser. Zero
	// means no limit.
	Timeout time.Duration

	// Logf, if non-nil, receives progress messages.
	Logf func(format string, args ...interface{})
}

// Show serves p and blocks until the page and all its figures have
// been fetched at least once, ctx is done, or opts.Timeout passes.
// It returns ctx.Err() if ctx ended the wait.
func Show(ctx context.Context, p *Page, opts Options) error {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	addr := opts.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	open := opts.Open
	if open == nil {
		open = OpenURL
	}

	pending := map[string]bool{"/": true}
	for _, f := range p.Figures {
		pending[f.path()] = true
	}
	var mu sync.Mutex
	done := make(chan struct{})
	served := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if !pending[path] {
			return
		}
		delete(pending, path)
		if len(pending) == 0 {
			close(done)
		}
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: p.Handler(served)}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	url := "http://" + hostPort(ln.Addr()) + "/"
	logf("serving %d chart(s) at %s", len(p.Figures), url)
	if opts.OpenBrowser {
		if err := open(url); err != nil {
			logf("could not open a browser (%v); visit %s", err, url)
		}
	}

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	var result error
	select {
	case <-done:
	case <-ctx.Done():
		result = ctx.Err()
	case <-timeout:
		logf("gave up waiting for the browser after %v", opts.Timeout)
	case err := <-serveErr:
		return err
	}

	// Let in-flight responses finish before returning.
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil && result == nil {
		result = err
	}
	return result
}

// hostPort formats a listener address for use in a URL, replacing an
// unspecified host with localhost.
func hostPort(a net.Addr) string {
	host, port, err := net.SplitHostPort(a.String())
	if err != nil {
		return a.String()
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("%s:%s", host, port)
}
