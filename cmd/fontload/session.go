package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/config"
	"github.com/alnah/go-fontload/internal/hints"
	"github.com/alnah/go-fontload/internal/logging"
)

// session is the resolved state shared by table-driven commands.
type session struct {
	cfg    *config.Config
	logger *log.Logger
	assets *assets.AssetResolver
	table  fontload.Table
	faces  fontload.FaceLoader
}

// loaderOptions returns the loader options for this session.
func (s *session) loaderOptions() []fontload.Option {
	return []fontload.Option{
		fontload.WithFaceLoader(s.faces),
		fontload.WithLogger(s.logger),
	}
}

// newSession resolves configuration with precedence flags > environment >
// config file > defaults, then builds the logger, asset resolver and table.
// override applies command-specific flags before validation.
func newSession(f *commonFlags, env *Environment, override func(*config.Config)) (*session, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := resolveConfig(f.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	applyCommonFlags(f, cfg)
	if override != nil {
		override(cfg)
	}
	faces, err := fontload.NewFaceLoader(cfg.Loader.Parser)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForParser(fontload.Parsers()))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log.Level, f, env)
	if err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(cfg.Fonts.BasePath)
	if err != nil {
		return nil, err
	}

	table, err := cfg.Table(resolver)
	if err != nil {
		if errors.Is(err, assets.ErrPayloadNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForPayloadNotFound(cfg.Fonts.BasePath))
		}
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, assets: resolver, table: table, faces: faces}, nil
}

// resolveConfig loads the config named by the flag, then the environment,
// falling back to defaults when neither is set.
func resolveConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths(err)))
		}
		return nil, err
	}
	return cfg, nil
}

// applyCommonFlags copies explicitly set flags into cfg.
func applyCommonFlags(f *commonFlags, cfg *config.Config) {
	if f.parser != "" {
		cfg.Loader.Parser = f.parser
	}
	if f.assetPath != "" {
		cfg.Fonts.BasePath = f.assetPath
	}
	if f.noBuiltin {
		cfg.Fonts.Builtin = false
	}
}

// newLogger builds the stderr logger. -v forces debug and -q forces error,
// overriding the configured level.
func newLogger(level string, f *commonFlags, env *Environment) (*log.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	switch {
	case f.verbose:
		lvl = log.DebugLevel
	case f.quiet:
		lvl = log.ErrorLevel
	}
	return logging.New(env.Stderr, lvl), nil
}
