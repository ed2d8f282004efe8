// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("config: ReadBytes not supported by map provider")

// mapProvider feeds an in-memory nested map to koanf through Read.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

// Loader layers configuration sources. Later loads override earlier ones.
type Loader struct {
	k        *koanf.Koanf
	filePath string
}

// Option configures a Loader.
type Option func(*Loader)

// WithConfigFile sets the YAML file loaded by Load.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader returns a Loader already holding the defaults.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}
	// defaultMap is well-formed; mapProvider.Read cannot fail.
	_ = l.LoadMap(defaultMap())

	return l
}

// Load applies the configured file (if any), then overrides, and returns
// the validated result.
// Loading order (later sources override earlier):
//  1. Default
//  2. YAML file from WithConfigFile
//  3. overrides, typically the explicitly set CLI flags
func (l *Loader) Load(overrides map[string]any) (Config, error) {
	if err := l.LoadFile(l.filePath); err != nil {
		return Config{}, err
	}
	if len(overrides) > 0 {
		if err := l.LoadMap(overrides); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile merges a YAML file. An empty path is a no-op.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config: load file %s: %w", path, err)
	}

	return nil
}

// LoadMap merges a nested map such as {"log": {"level": "debug"}}.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("config: load map: %w", err)
	}

	return nil
}

// All returns the merged configuration flattened to dotted keys.
func (l *Loader) All() map[string]any {
	return l.k.All()
}
