// Package config loads corund.toml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"corund/internal/lexer"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "corund.toml"

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config mirrors corund.toml.
type Config struct {
	Package PackageSection `toml:"package"`
	Resolve ResolveSection `toml:"resolve"`
	Cache   CacheSection   `toml:"cache"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type PackageSection struct {
	Name string `toml:"name"`
}

type ResolveSection struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	CheckAliases   bool `toml:"check_aliases"`
	WarnShadowing  bool `toml:"warn_shadowing"`
	Jobs           int  `toml:"jobs"`
}

type CacheSection struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty: $XDG_CACHE_HOME/corund
}

// Default returns the settings used without a manifest.
func Default() Config {
	return Config{
		Resolve: ResolveSection{MaxDiagnostics: 100},
	}
}

// Find walks up from startDir to locate corund.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	cfg.Path = path
	cfg.Package.Name = strings.TrimSpace(cfg.Package.Name)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest corund.toml above startDir, or Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Resolve.MaxDiagnostics < 0 {
		return fmt.Errorf("resolve.max_diagnostics must be >= 0: %w", ErrInvalid)
	}
	if c.Resolve.Jobs < 0 {
		return fmt.Errorf("resolve.jobs must be >= 0: %w", ErrInvalid)
	}
	if c.Package.Name != "" && !lexer.IsIdent(c.Package.Name) {
		return fmt.Errorf("package.name %q is not an identifier: %w", c.Package.Name, ErrInvalid)
	}
	return nil
}
