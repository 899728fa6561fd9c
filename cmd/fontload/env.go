package main

import (
	"io"
	"os"
	"time"

	fontload "github.com/alnah/go-fontload"
)

// previewPage is the browser surface the preview command prints through.
type previewPage interface {
	fontload.Page
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	NewPage func(timeout time.Duration) previewPage
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPage: func(timeout time.Duration) previewPage {
			return fontload.NewBrowserRegistry(timeout)
		},
	}
}
