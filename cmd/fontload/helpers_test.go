package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	fontload "github.com/alnah/go-fontload"
)

// fakePage is an in-memory previewPage.
type fakePage struct {
	mu          sync.Mutex
	added       []string
	mounted     string
	addsAtPrint int
	printErr    error
	closed      bool
	timeout     time.Duration
}

func (p *fakePage) Add(_ context.Context, f *fontload.Face) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.added = append(p.added, f.String())
	return nil
}

func (p *fakePage) Mount(_ context.Context, html string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mounted = html
	return nil
}

func (p *fakePage) PrintPDF(_ context.Context, size string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addsAtPrint = len(p.added)
	if p.printErr != nil {
		return nil, p.printErr
	}
	return []byte("%PDF-1.4 fake " + size), nil
}

func (p *fakePage) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// testEnv returns an Environment over buffers and a fixed variable set.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, fmt.Sprintf("%s=%s", k, v))
			}
			return out
		},
		NewPage: func(time.Duration) previewPage { return &fakePage{} },
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

// goRegular returns the Go Regular TTF bytes.
func goRegular() []byte {
	return goregular.TTF
}
