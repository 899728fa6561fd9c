package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"failed variants", fmt.Errorf("%w: 1 of 2", ErrVariantsFailed), ExitGeneral},
		{"browser connect", fmt.Errorf("wrap: %w", fontload.ErrBrowserConnect), ExitBrowser},
		{"page load", fontload.ErrPageLoad, ExitBrowser},
		{"pdf generation", fontload.ErrPDFGeneration, ExitBrowser},
		{"not exist", fmt.Errorf("open: %w", fs.ErrNotExist), ExitIO},
		{"permission", fs.ErrPermission, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid table", fmt.Errorf("%w: %w", fontload.ErrInvalidTable, fontload.ErrDuplicate), ExitUsage},
		{"unknown parser", fontload.ErrUnknownParser, ExitUsage},
		{"payload not found", assets.ErrPayloadNotFound, ExitUsage},
		{"not a font", assets.ErrNotAFont, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
