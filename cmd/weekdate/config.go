// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/weekdate"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config represents the defaults that can be supplied via a config file,
// either in yaml or toml format.
type Config struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Culture string `yaml:"culture" toml:"culture"`
}

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config  string `subcmd:"config,,'yaml or toml file providing the default pattern and culture'"`
	Culture string `subcmd:"culture,,'culture used for messages, eg. en, nl, de or fr'"`
}

type formatFlags struct {
	CommonFlags
	Pattern string `subcmd:"pattern,,'format pattern, defaults to yyyy-W-d'"`
}

type sortFlags struct {
	CommonFlags
	Reverse bool `subcmd:"reverse,false,sort in reverse chronological order"`
}

// LoadConfig reads the config file, the format is determined by its
// extension: .toml for toml and anything else for yaml.
func LoadConfig(file string) (Config, error) {
	var cfg Config
	if len(file) == 0 {
		return cfg, nil
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", file, err)
		}
	default:
		if err := cmdyaml.ParseConfigFile(context.Background(), file, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// merge overrides the config file values with those set on the command line.
func (cfg Config) merge(culture, pattern string) Config {
	if len(culture) > 0 {
		cfg.Culture = culture
	}
	if len(pattern) > 0 {
		cfg.Pattern = pattern
	}
	return cfg
}

// Options returns the weekdate options implied by the config.
func (cfg Config) Options() ([]weekdate.Option, error) {
	if len(cfg.Culture) == 0 {
		return nil, nil
	}
	tag, err := language.Parse(cfg.Culture)
	if err != nil {
		return nil, fmt.Errorf("invalid culture %q: %w", cfg.Culture, err)
	}
	return []weekdate.Option{weekdate.WithCulture(tag)}, nil
}

type session struct {
	Config
	opts []weekdate.Option
}

// setup creates the logger and loads the config for a command, the
// returned function must be called to close the logger.
func (cf *CommonFlags) setup(ctx context.Context, pattern string) (context.Context, session, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, session{}, nil, err
	}
	cleanup := func() { logger.Close() }
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cfg, err := LoadConfig(cf.Config)
	if err != nil {
		cleanup()
		return ctx, session{}, nil, err
	}
	cfg = cfg.merge(cf.Culture, pattern)
	opts, err := cfg.Options()
	if err != nil {
		cleanup()
		return ctx, session{}, nil, err
	}
	ctxlog.Logger(ctx).Debug("configuration", "file", cf.Config, "culture", cfg.Culture, "pattern", cfg.Pattern)
	return ctx, session{Config: cfg, opts: opts}, cleanup, nil
}
