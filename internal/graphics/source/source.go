// Package source fetches shader source text from embedded files, a directory
// or an HTTP server.
package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadError reports a shader source that could not be fetched. Status is the
// HTTP status code for URL sources and 0 otherwise.
type LoadError struct {
	Path   string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to load %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader fetches shader source text by slash-separated path.
type Loader interface {
	Load(ctx context.Context, name string) (string, error)
}

// FSLoader reads sources from a file system (embedded or os.DirFS).
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &LoadError{Path: name, Err: err}
	}
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return "", &LoadError{Path: name, Err: err}
	}
	return string(data), nil
}

// HTTPLoader fetches sources relative to a base URL.
type HTTPLoader struct {
	Base   *url.URL
	Client *http.Client
}

// maxSourceSize bounds a single fetched shader
const maxSourceSize = 1 << 20

func (l HTTPLoader) Load(ctx context.Context, name string) (string, error) {
	u := *l.Base
	u.Path = path.Join(u.Path, name)
	target := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &LoadError{Path: target, Err: err}
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &LoadError{Path: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &LoadError{Path: target, Status: resp.StatusCode, Err: fmt.Errorf("%s", resp.Status)}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize))
	if err != nil {
		return "", &LoadError{Path: target, Err: err}
	}
	return string(data), nil
}

// NewLoader picks a loader for source: empty uses fallback, an http(s)
// URL uses HTTPLoader, anything else is a directory on disk.
func NewLoader(source string, fallback fs.FS) (Loader, error) {
	switch {
	case source == "":
		return FSLoader{FS: fallback}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse shader source url: %w", err)
		}
		return HTTPLoader{Base: u}, nil
	default:
		info, err := os.Stat(source)
		if err != nil {
			return nil, fmt.Errorf("shader source dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("shader source %s is not a directory", source)
		}
		return FSLoader{FS: os.DirFS(source)}, nil
	}
}

// ProgramSource names the two stages of a program.
type ProgramSource struct {
	Vertex   string
	Fragment string
}

// LoadedSource is the fetched text of a ProgramSource.
type LoadedSource struct {
	Vertex   string
	Fragment string
}

// LoadAll fetches every stage of every program concurrently and waits for all
// of them. The first failure cancels the rest and is returned.
func LoadAll(ctx context.Context, l Loader, programs map[string]ProgramSource) (map[string]LoadedSource, error) {
	type stage struct {
		program string
		vertex  bool
		text    string
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan stage, 2*len(programs))
	for name, p := range programs {
		g.Go(func() error {
			text, err := l.Load(ctx, p.Vertex)
			if err != nil {
				return err
			}
			results <- stage{program: name, vertex: true, text: text}
			return nil
		})
		g.Go(func() error {
			text, err := l.Load(ctx, p.Fragment)
			if err != nil {
				return err
			}
			results <- stage{program: name, text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	out := make(map[string]LoadedSource, len(programs))
	for r := range results {
		src := out[r.program]
		if r.vertex {
			src.Vertex = r.text
		} else {
			src.Fragment = r.text
		}
		out[r.program] = src
	}
	return out, nil
}
