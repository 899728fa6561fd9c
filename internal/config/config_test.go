package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if !cfg.Fonts.Builtin {
		t.Error("Fonts.Builtin = false, want true")
	}
	if cfg.Loader.Parser != fontload.ParserXImage {
		t.Errorf("Loader.Parser = %q, want %q", cfg.Loader.Parser, fontload.ParserXImage)
	}
	if cfg.Timeout() != fontload.DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), fontload.DefaultTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{name: "empty", value: "", max: 3},
		{name: "at limit", value: "abc", max: 3},
		{name: "over limit", value: "abcd", max: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.max)
			if tt.wantErr != errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name: "valid families",
			mutate: func(c *Config) {
				c.Fonts.Families = []FamilyConfig{
					{Family: "Caveat", Normal: "caveat-regular", Bold: "caveat-bold"},
					{Family: "Inline", NormalData: "QUJD"},
				}
			},
		},
		{
			name:    "missing family name",
			mutate:  func(c *Config) { c.Fonts.Families = []FamilyConfig{{Normal: "x"}} },
			wantErr: ErrInvalidValue,
		},
		{
			name: "family too long",
			mutate: func(c *Config) {
				c.Fonts.Families = []FamilyConfig{{Family: strings.Repeat("a", MaxFamilyLength+1), Normal: "x"}}
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "name and data both set",
			mutate: func(c *Config) {
				c.Fonts.Families = []FamilyConfig{{Family: "A", Normal: "a", NormalData: "QUJD"}}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "no variant",
			mutate:  func(c *Config) { c.Fonts.Families = []FamilyConfig{{Family: "A"}} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown parser",
			mutate:  func(c *Config) { c.Loader.Parser = "freetype" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "gotext parser",
			mutate: func(c *Config) { c.Loader.Parser = "gotext" },
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Browser.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Browser.Timeout = "-1s" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad page size",
			mutate:  func(c *Config) { c.Specimen.Size = "legal" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "page size case-insensitive",
			mutate: func(c *Config) { c.Specimen.Size = "A4" },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Specimen.Title = strings.Repeat("t", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Browser.Timeout = "90s"
	if got := cfg.Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s", got)
	}
	cfg.Browser.Timeout = ""
	if got := cfg.Timeout(); got != fontload.DefaultTimeout {
		t.Errorf("Timeout() = %v, want default", got)
	}
}

type mapPayloads map[string]string

func (m mapPayloads) LoadPayload(name string) (string, error) {
	p, ok := m[name]
	if !ok {
		return "", assets.ErrPayloadNotFound
	}
	return p, nil
}

func TestConfig_Table(t *testing.T) {
	t.Parallel()

	t.Run("builtin only", func(t *testing.T) {
		t.Parallel()

		table, err := DefaultConfig().Table(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table) != len(fontload.DefaultTable()) {
			t.Errorf("len(table) = %d, want %d", len(table), len(fontload.DefaultTable()))
		}
	})

	t.Run("configured families follow builtin", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Fonts.Families = []FamilyConfig{
			{Family: "Caveat", Normal: "caveat-regular", Bold: "caveat-bold"},
			{Family: "Inline", NormalData: "QUJD"},
		}
		table, err := cfg.Table(mapPayloads{"caveat-regular": "AAAA", "caveat-bold": "BBBB"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n := len(table)
		if table[n-2].Family != "Caveat" || table[n-2].Normal != "AAAA" || table[n-2].Bold != "BBBB" {
			t.Errorf("Caveat entry = %+v", table[n-2])
		}
		if table[n-1].Family != "Inline" || table[n-1].Normal != "QUJD" || table[n-1].Bold != "" {
			t.Errorf("Inline entry = %+v", table[n-1])
		}
	})

	t.Run("builtin disabled", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Fonts.Builtin = false
		cfg.Fonts.Families = []FamilyConfig{{Family: "Inline", BoldData: "QUJD"}}
		table, err := cfg.Table(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table) != 1 || table[0].Bold != "QUJD" {
			t.Errorf("table = %+v", table)
		}
	})

	t.Run("named payload without loader", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Fonts.Families = []FamilyConfig{{Family: "Caveat", Normal: "caveat-regular"}}
		_, err := cfg.Table(nil)
		if !errors.Is(err, ErrNoPayloadSource) {
			t.Errorf("error = %v, want ErrNoPayloadSource", err)
		}
	})

	t.Run("missing payload", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Fonts.Families = []FamilyConfig{{Family: "Caveat", Normal: "missing"}}
		_, err := cfg.Table(mapPayloads{})
		if !errors.Is(err, assets.ErrPayloadNotFound) {
			t.Errorf("error = %v, want ErrPayloadNotFound", err)
		}
	})

	t.Run("duplicate of builtin family", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Fonts.Families = []FamilyConfig{{Family: "go mono", NormalData: "QUJD"}}
		_, err := cfg.Table(nil)
		if !errors.Is(err, fontload.ErrDuplicate) {
			t.Errorf("error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("filesystem payloads", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "fonts/caveat.b64", "QUJD\nREVG\n")
		fsLoader, err := assets.NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg := DefaultConfig()
		cfg.Fonts.Builtin = false
		cfg.Fonts.Families = []FamilyConfig{{Family: "Caveat", Normal: "caveat"}}
		table, err := cfg.Table(fsLoader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table[0].Normal != "QUJD\nREVG\n" {
			t.Errorf("Normal = %q, want file content verbatim", table[0].Normal)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.yaml", `fonts:
  builtin: false
  families:
    - family: Inline
      normalData: QUJD
loader:
  parser: gotext
browser:
  timeout: 45s
specimen:
  size: a4
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Fonts.Builtin {
			t.Error("Fonts.Builtin = true, want false")
		}
		if cfg.Loader.Parser != fontload.ParserGoText {
			t.Errorf("Loader.Parser = %q, want gotext", cfg.Loader.Parser)
		}
		if cfg.Timeout() != 45*time.Second {
			t.Errorf("Timeout() = %v, want 45s", cfg.Timeout())
		}
		if cfg.Specimen.Size != fontload.PageSizeA4 {
			t.Errorf("Specimen.Size = %q, want a4", cfg.Specimen.Size)
		}
		if len(cfg.Fonts.Families) != 1 || cfg.Fonts.Families[0].NormalData != "QUJD" {
			t.Errorf("Families = %+v", cfg.Fonts.Families)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.yaml", "log:\n  level: debug\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Fonts.Builtin {
			t.Error("Fonts.Builtin = false, want default true")
		}
		if cfg.Loader.Parser != fontload.ParserXImage {
			t.Errorf("Loader.Parser = %q, want default", cfg.Loader.Parser)
		}
	})

	t.Run("toml file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.toml", `[fonts]
builtin = false

[[fonts.families]]
family = "Inline"
boldData = "QUJD"

[loader]
parser = "ximage"
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Fonts.Builtin {
			t.Error("Fonts.Builtin = true, want false")
		}
		if len(cfg.Fonts.Families) != 1 || cfg.Fonts.Families[0].BoldData != "QUJD" {
			t.Errorf("Families = %+v", cfg.Fonts.Families)
		}
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.yaml", "fonts:\n  bultin: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown toml field", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.toml", "[fonts]\nbultin = true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
		if !strings.Contains(err.Error(), "fonts.bultin") {
			t.Errorf("error = %v, want unknown key named", err)
		}
	})

	t.Run("invalid values rejected after parse", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "fontload.yaml", "specimen:\n  size: legal\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

// Changes the working directory and HOME, so it does not run in parallel.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	t.Run("found in current directory", func(t *testing.T) {
		writeFile(t, dir, "local.yml", "log:\n  level: warn\n")
		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
		}
	})

	t.Run("not found lists searched paths", func(t *testing.T) {
		_, err := LoadConfig("nowhere")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		paths := SearchedPaths(err)
		if len(paths) < len(configExtensions) {
			t.Fatalf("SearchedPaths = %v, want at least %d entries", paths, len(configExtensions))
		}
		if paths[0] != "nowhere.yaml" {
			t.Errorf("first searched path = %q, want nowhere.yaml", paths[0])
		}
	})
}
