package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/config"
	"github.com/alnah/go-fontload/internal/fileutil"
	"github.com/alnah/go-fontload/internal/hints"
)

// runPreview registers the table in a browser page and prints a specimen PDF.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parsePreviewFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: preview takes no arguments, got %q", ErrUsage, positional)
	}

	s, err := newSession(&f.common, env, func(cfg *config.Config) {
		if f.timeout != "" {
			cfg.Browser.Timeout = f.timeout
		}
		if f.pageSize != "" {
			cfg.Specimen.Size = f.pageSize
		}
		if f.sample != "" {
			cfg.Specimen.Sample = f.sample
		}
		if f.title != "" {
			cfg.Specimen.Title = f.title
		}
	})
	if err != nil {
		return err
	}

	sample, err := readSample(s.cfg.Specimen.Sample, s.assets)
	if err != nil {
		return err
	}

	spec, err := fontload.NewSpecimen(s.assets)
	if err != nil {
		return err
	}

	page := env.NewPage(s.cfg.Timeout())
	defer func() { _ = page.Close() }()

	res, err := spec.Render(ctx, page, s.table, fontload.SpecimenRequest{
		Title:    s.cfg.Specimen.Title,
		Sample:   sample,
		PageSize: s.cfg.Specimen.Size,
	}, s.loaderOptions()...)
	if err != nil {
		return withBrowserHint(err)
	}

	if err := fileutil.WriteFileAtomic(f.output, res.PDF, 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if f.html {
		htmlPath := fileutil.ReplaceExt(f.output, ".html")
		if err := fileutil.WriteFileAtomic(htmlPath, []byte(res.HTML), 0o644); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}

	if !f.common.quiet {
		sum := fontload.Summarize(res.Results)
		fmt.Fprintf(env.Stdout, "Wrote %s (%d families, %d of %d variants loaded)\n",
			f.output, len(s.table), sum.Loaded, len(res.Results))
	}
	return nil
}

// readSample reads the Markdown sample file. An empty path selects the
// default sample of loader (custom asset directory first, then embedded).
func readSample(path string, loader assets.AssetLoader) (string, error) {
	if path == "" {
		return loader.LoadSample(assets.DefaultSampleName)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: sample %s: %w", ErrReadInput, path, err)
	}
	return string(data), nil
}

// withBrowserHint appends a timeout hint to expired browser round-trips and
// setup hints to other browser errors.
func withBrowserHint(err error) error {
	// Timeouts first: a slow page is not a setup problem
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	if exitCodeFor(err) != ExitBrowser {
		return err
	}
	return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
}
