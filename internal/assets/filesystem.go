package assets

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// payloadExtensions lists the payload file extensions tried, in order.
// Text payloads win over raw fonts when both exist.
var payloadExtensions = []string{".b64", ".txt", ".ttf", ".otf"}

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements AssetLoader and PayloadLoader interfaces.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	// Clean and resolve to absolute path
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved base directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadStyle loads a CSS style from {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.loadText("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate loads an HTML template from {basePath}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.loadText("templates", name, ".html", ErrTemplateNotFound)
}

// LoadSample loads Markdown sample text from {basePath}/samples/{name}.md.
func (f *FilesystemLoader) LoadSample(name string) (string, error) {
	return f.loadText("samples", name, ".md", ErrSampleNotFound)
}

// loadText reads {basePath}/{dir}/{name}{ext} after validation and containment checks.
func (f *FilesystemLoader) loadText(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, dir, name+ext)
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// LoadPayload loads a font payload from {basePath}/fonts/{name}.{b64,txt,ttf,otf}.
// .b64/.txt files are returned verbatim; .ttf/.otf files must hold font data
// and are returned base64-encoded.
func (f *FilesystemLoader) LoadPayload(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	for _, ext := range payloadExtensions {
		filePath := filepath.Join(f.basePath, "fonts", name+ext)
		if err := f.verifyPathContainment(filePath); err != nil {
			return "", err
		}

		content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
		}

		if ext == ".b64" || ext == ".txt" {
			return string(content), nil
		}
		if !filetype.IsFont(content) {
			return "", fmt.Errorf("%w: %s", ErrNotAFont, filepath.Base(filePath))
		}
		return base64.StdEncoding.EncodeToString(content), nil
	}

	return "", fmt.Errorf("%w: %q", ErrPayloadNotFound, name)
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Prevents path traversal even if name validation is bypassed, including
// escapes through symlinks pointing outside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// If EvalSymlinks fails (e.g., file doesn't exist) the prefix check still runs
	// and the read fails later.
	realPath, err := filepath.EvalSymlinks(absFilePath)
	if err == nil {
		absFilePath = realPath
	}

	// Separator suffix prevents prefix attacks (/base/path vs /base/pathevil)
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface checks.
var (
	_ AssetLoader   = (*FilesystemLoader)(nil)
	_ PayloadLoader = (*FilesystemLoader)(nil)
)
