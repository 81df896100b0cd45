// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/config"
	"go.uber.org/multierr"
)

//go:embed default.yaml
var defaultConf []byte

var ErrConfigNotLoaded = errors.New("config not loaded")

type Section interface {
	Key() string
}

type Defaulter interface {
	SetDefaults()
}

type Validator interface {
	Validate() error
}

// Load reads the config file at the given path on top of the built-in defaults.
// An empty path loads only the defaults. Overrides take precedence over both.
func Load(confFile string, overrides map[string]any) (*Wrapper, error) {
	sources := []config.YAMLOption{config.Source(bytes.NewReader(defaultConf))}

	if confFile != "" {
		finfo, err := os.Stat(confFile)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", confFile, err)
		}

		if finfo.IsDir() {
			return nil, fmt.Errorf("config file path is a directory: %s", confFile)
		}

		sources = append(sources, config.File(confFile))
	}

	if len(overrides) > 0 {
		sources = append(sources, config.Static(overrides))
	}

	return newWrapper(sources...)
}

func LoadReader(reader io.Reader, overrides map[string]any) (*Wrapper, error) {
	sources := []config.YAMLOption{config.Source(reader)}
	if len(overrides) > 0 {
		sources = append(sources, config.Static(overrides))
	}

	return newWrapper(sources...)
}

func LoadMap(m map[string]any) (*Wrapper, error) {
	return newWrapper(config.Static(m))
}

func newWrapper(sources ...config.YAMLOption) (*Wrapper, error) {
	opts := append(sources, config.Expand(os.LookupEnv)) //nolint:gocritic
	provider, err := config.NewYAML(opts...)
	if err != nil {
		if strings.Contains(err.Error(), "couldn't expand environment") {
			return nil, fmt.Errorf("error loading configuration due to unknown environment variable. Config values containing '$' are interpreted as environment variables. Use '$$' to escape literal '$' values: [%w]", err)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Wrapper{provider: provider}, nil
}

type Wrapper struct {
	provider config.Provider
}

// Get populates out with the configuration at the given key.
// Defaults are applied first when out is a Defaulter and the result is validated when out is a Validator.
func (w *Wrapper) Get(key string, out any) error {
	if d, ok := out.(Defaulter); ok {
		d.SetDefaults()
	}

	if w == nil || w.provider == nil {
		if _, ok := out.(Defaulter); ok {
			return nil
		}

		return ErrConfigNotLoaded
	}

	if err := w.provider.Get(key).Populate(out); err != nil {
		return fmt.Errorf("invalid %q configuration: %w", key, err)
	}

	if v, ok := out.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid %q configuration: %w", key, err)
		}
	}

	return nil
}

func (w *Wrapper) GetSection(section Section) error {
	return w.Get(section.Key(), section)
}

// GetSections populates every section, returning all the errors encountered.
func (w *Wrapper) GetSections(sections ...Section) (outErr error) {
	for _, s := range sections {
		outErr = multierr.Append(outErr, w.GetSection(s))
	}

	return outErr
}
