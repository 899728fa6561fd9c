// Package config loads fontload settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/fileutil"
	"github.com/alnah/go-fontload/internal/logging"
	"github.com/alnah/go-fontload/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrNoPayloadSource = errors.New("payload name set but no asset path configured")
)

// AppName names the per-user config directory.
const AppName = "go-fontload"

// Field length limits.
const (
	MaxFamilyLength   = 100
	MaxAssetRefLength = 255
	MaxPathLength     = 4096
	MaxTitleLength    = 200
)

// Config holds all fontload settings.
type Config struct {
	Fonts    FontsConfig    `yaml:"fonts" toml:"fonts"`
	Loader   LoaderConfig   `yaml:"loader" toml:"loader"`
	Browser  BrowserConfig  `yaml:"browser" toml:"browser"`
	Specimen SpecimenConfig `yaml:"specimen" toml:"specimen"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// FontsConfig selects the families to load.
type FontsConfig struct {
	Builtin  bool           `yaml:"builtin" toml:"builtin"`   // Include the compiled-in table
	BasePath string         `yaml:"basePath" toml:"basePath"` // Custom asset directory (empty = embedded only)
	Families []FamilyConfig `yaml:"families" toml:"families"`
}

// FamilyConfig declares one family. Each variant comes either from a payload
// asset name or from inline base64 data, never both.
type FamilyConfig struct {
	Family     string `yaml:"family" toml:"family"`
	Normal     string `yaml:"normal" toml:"normal"`
	Bold       string `yaml:"bold" toml:"bold"`
	NormalData string `yaml:"normalData" toml:"normalData"`
	BoldData   string `yaml:"boldData" toml:"boldData"`
}

// LoaderConfig selects the parser backend.
type LoaderConfig struct {
	Parser string `yaml:"parser" toml:"parser"` // "ximage" (default) or "gotext"
}

// BrowserConfig tunes the headless browser.
type BrowserConfig struct {
	Timeout string `yaml:"timeout" toml:"timeout"` // Go duration, e.g. "30s"
}

// SpecimenConfig tunes the specimen page.
type SpecimenConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Sample string `yaml:"sample" toml:"sample"` // Markdown file (empty = embedded sample)
	Size   string `yaml:"size" toml:"size"`     // "letter" (default) or "a4"
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// DefaultConfig returns the settings used when no file is given:
// the built-in table, the x/image parser and the default timeout.
func DefaultConfig() *Config {
	return &Config{
		Fonts:    FontsConfig{Builtin: true},
		Loader:   LoaderConfig{Parser: fontload.ParserXImage},
		Browser:  BrowserConfig{Timeout: fontload.DefaultTimeout.String()},
		Specimen: SpecimenConfig{Size: fontload.PageSizeLetter},
		Log:      LogConfig{Level: "info"},
	}
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig; available to callers that build a Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("fonts.basePath", c.Fonts.BasePath, MaxPathLength); err != nil {
		return err
	}
	for i, f := range c.Fonts.Families {
		prefix := fmt.Sprintf("fonts.families[%d]", i)
		if strings.TrimSpace(f.Family) == "" {
			return fmt.Errorf("%w: %s.family: required", ErrInvalidValue, prefix)
		}
		if err := validateFieldLength(prefix+".family", f.Family, MaxFamilyLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".normal", f.Normal, MaxAssetRefLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".bold", f.Bold, MaxAssetRefLength); err != nil {
			return err
		}
		if f.Normal != "" && f.NormalData != "" {
			return fmt.Errorf("%w: %s: normal and normalData are exclusive", ErrInvalidValue, prefix)
		}
		if f.Bold != "" && f.BoldData != "" {
			return fmt.Errorf("%w: %s: bold and boldData are exclusive", ErrInvalidValue, prefix)
		}
		if f.Normal == "" && f.NormalData == "" && f.Bold == "" && f.BoldData == "" {
			return fmt.Errorf("%w: %s: no variant given", ErrInvalidValue, prefix)
		}
	}

	if c.Loader.Parser != "" {
		if _, err := fontload.NewFaceLoader(c.Loader.Parser); err != nil {
			return fmt.Errorf("%w: loader.parser: %v", ErrInvalidValue, err)
		}
	}

	if c.Browser.Timeout != "" {
		d, err := time.ParseDuration(c.Browser.Timeout)
		if err != nil {
			return fmt.Errorf("%w: browser.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: browser.timeout: must be positive, got %s", ErrInvalidValue, c.Browser.Timeout)
		}
	}

	if err := validateFieldLength("specimen.title", c.Specimen.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("specimen.sample", c.Specimen.Sample, MaxPathLength); err != nil {
		return err
	}
	if c.Specimen.Size != "" {
		switch strings.ToLower(c.Specimen.Size) {
		case fontload.PageSizeLetter, fontload.PageSizeA4:
		default:
			return fmt.Errorf("%w: specimen.size: %q (must be letter or a4)", ErrInvalidValue, c.Specimen.Size)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Timeout returns the browser timeout, or fontload.DefaultTimeout when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Browser.Timeout)
	if err != nil || d <= 0 {
		return fontload.DefaultTimeout
	}
	return d
}

// Table builds the font table: the built-in families when enabled, followed
// by the configured ones. Named payloads are read from payloads, which may be
// nil when every configured variant is inline. The result is validated.
func (c *Config) Table(payloads assets.PayloadLoader) (fontload.Table, error) {
	var table fontload.Table
	if c.Fonts.Builtin {
		table = fontload.DefaultTable()
	}

	for _, f := range c.Fonts.Families {
		normal, err := resolvePayload(payloads, f.Normal, f.NormalData)
		if err != nil {
			return nil, fmt.Errorf("%s (normal): %w", f.Family, err)
		}
		bold, err := resolvePayload(payloads, f.Bold, f.BoldData)
		if err != nil {
			return nil, fmt.Errorf("%s (bold): %w", f.Family, err)
		}
		table = append(table, fontload.Entry{Family: f.Family, Normal: normal, Bold: bold})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// resolvePayload returns inline data as-is or loads the named payload.
func resolvePayload(payloads assets.PayloadLoader, name, data string) (string, error) {
	if data != "" || name == "" {
		return data, nil
	}
	if payloads == nil {
		return "", fmt.Errorf("%w: %q", ErrNoPayloadSource, name)
	}
	return payloads.LoadPayload(name)
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; otherwise it is
// searched in the current directory and the user config directory.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(configPath, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode picks the format from the file extension; anything but .toml is YAML.
func decode(path string, data []byte, cfg *Config) error {
	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return yamlutil.UnmarshalStrict(data, cfg)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return nil
}

// configExtensions lists the extensions tried when resolving a config name.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// resolveConfigPath searches for a config file by name.
// Locations are tried in order: current directory, then
// {UserConfigDir}/go-fontload/; each location tries every extension.
func resolveConfigPath(name string) (string, error) {
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppName))
	}

	tried := make([]string, 0, len(dirs)*len(configExtensions))
	for _, dir := range dirs {
		for _, ext := range configExtensions {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}

// NotFoundError reports the locations searched for a config name.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Is makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// SearchedPaths returns the searched locations of a NotFoundError in err's
// chain, or nil.
func SearchedPaths(err error) []string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return slices.Clone(nf.Tried)
	}
	return nil
}
