// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source opens metric tables from local files, standard
// input, or Google Cloud Storage.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/digestprivacy/anonviz/anontab"
)

// Options configures access to remote inputs.
type Options struct {
	// CredentialsFile is a service account key file used for
	// gs:// inputs. If empty, application default credentials
	// are used.
	CredentialsFile string

	// Anonymous reads gs:// inputs without credentials, for
	// public buckets.
	Anonymous bool
}

// Open opens the named input. name is a file path, "-" for standard
// input, or a gs://bucket/object URL. A missing file or object is
// reported as an error matching anontab.ErrFileNotFound.
func Open(ctx context.Context, name string, opts Options) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if strings.HasPrefix(name, "gs://") {
		bucket, object, err := ParseGCS(name)
		if err != nil {
			return nil, err
		}
		return openGCS(ctx, name, bucket, object, opts)
	}
	f, err := anontab.OpenFile(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Load opens and parses the named input.
func Load(ctx context.Context, name string, opts Options) (*anontab.Dataset, error) {
	r, err := Open(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return anontab.Read(r, name)
}

// ParseGCS splits a gs://bucket/object URL.
func ParseGCS(name string) (bucket, object string, err error) {
	u, err := url.Parse(name)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "gs" {
		return "", "", fmt.Errorf("%s: not a gs:// URL", name)
	}
	bucket, object = u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("%s: want gs://bucket/object", name)
	}
	return bucket, object, nil
}

func openGCS(ctx context.Context, name, bucket, object string, opts Options) (io.ReadCloser, error) {
	var copt option.ClientOption
	if opts.Anonymous {
		copt = option.WithoutAuthentication()
	} else {
		creds, err := credentials(ctx, opts.CredentialsFile)
		if err != nil {
			return nil, err
		}
		copt = option.WithCredentials(creds)
	}
	client, err := storage.NewClient(ctx, copt)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%s: %w", name, anontab.ErrFileNotFound)
		}
		return nil, err
	}
	return &gcsReader{r, client}, nil
}

// credentials returns read-only storage credentials from the key file
// at path, or application default credentials if path is empty.
func credentials(ctx context.Context, path string) (*google.Credentials, error) {
	if path == "" {
		return google.FindDefaultCredentials(ctx, storage.ScopeReadOnly)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return google.CredentialsFromJSON(ctx, data, storage.ScopeReadOnly)
}

// gcsReader closes the client along with the object reader.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
