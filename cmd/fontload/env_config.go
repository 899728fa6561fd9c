package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-fontload/internal/config"
)

// Environment variables recognized by fontload.
const (
	envConfigPath = "FONTLOAD_CONFIG"
	envParser     = "FONTLOAD_PARSER"
	envTimeout    = "FONTLOAD_TIMEOUT"
	envLogLevel   = "FONTLOAD_LOG_LEVEL"
	envAssetPath  = "FONTLOAD_ASSET_PATH"
	envContainer  = "FONTLOAD_CONTAINER"
	envPrefix     = "FONTLOAD_"
)

var knownEnvVars = map[string]bool{
	envConfigPath: true,
	envParser:     true,
	envTimeout:    true,
	envLogLevel:   true,
	envAssetPath:  true,
	envContainer:  true,
}

// envConfig holds overrides read from FONTLOAD_* variables.
type envConfig struct {
	ConfigPath string
	Parser     string
	Timeout    string
	LogLevel   string
	AssetPath  string
}

// loadEnvConfig reads the FONTLOAD_* variables through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv(envConfigPath),
		Parser:     getenv(envParser),
		Timeout:    getenv(envTimeout),
		LogLevel:   getenv(envLogLevel),
		AssetPath:  getenv(envAssetPath),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized FONTLOAD_* variable.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with the set environment variables.
// Precedence: flags > environment > config file > defaults. Flags are
// applied afterwards by applyFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Parser != "" {
		cfg.Loader.Parser = env.Parser
	}
	if env.Timeout != "" {
		cfg.Browser.Timeout = env.Timeout
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.AssetPath != "" {
		cfg.Fonts.BasePath = env.AssetPath
	}
}
