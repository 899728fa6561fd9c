package main

import (
	"errors"
	"os"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrVariantsFailed = errors.New("some font variants failed to load")
)

// Exit codes for the fontload CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, including failed variants under --strict
	ExitUsage   = 2 // Invalid flags, config, or font table
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for an error.
// It relies on errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, fontload.ErrBrowserConnect) ||
		errors.Is(err, fontload.ErrPageCreate) ||
		errors.Is(err, fontload.ErrPageLoad) ||
		errors.Is(err, fontload.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrNoPayloadSource) ||
		errors.Is(err, fontload.ErrInvalidTable) ||
		errors.Is(err, fontload.ErrUnknownParser) ||
		errors.Is(err, assets.ErrPayloadNotFound) ||
		errors.Is(err, assets.ErrSampleNotFound) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrNotAFont) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
