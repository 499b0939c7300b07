// Package config loads cmd/typegraphctl's optional TOML configuration file,
// following the same toml.DecodeFile + meta.IsDefined pattern the rest of the
// retrieved corpus uses for project manifests.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config tunes the CLI without changing typegraph's observable output:
// Jobs bounds the Member Resolver's worker pool, Verbose controls whether
// the resolve report lists each type's variables.
type Config struct {
	Jobs    int  `toml:"jobs"`
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{Jobs: 0, Verbose: false}
}

type fileConfig struct {
	Resolve struct {
		Jobs    int  `toml:"jobs"`
		Verbose bool `toml:"verbose"`
	} `toml:"resolve"`
}

// Load parses the [resolve] section of the TOML file at path. A missing
// [resolve] section is not an error: it leaves the Default() values in
// place, mirroring how surge.toml treats an absent [modules] table.
func Load(path string) (Config, error) {
	cfg := Default()

	var parsed fileConfig
	meta, err := toml.DecodeFile(path, &parsed)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("resolve") {
		return cfg, nil
	}
	if meta.IsDefined("resolve", "jobs") {
		cfg.Jobs = parsed.Resolve.Jobs
	}
	if meta.IsDefined("resolve", "verbose") {
		cfg.Verbose = parsed.Resolve.Verbose
	}
	return cfg, nil
}

// Validate reports a descriptive error for a configuration that would make
// the CLI misbehave (a negative worker count has no meaning).
func (c Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("config: jobs must be >= 0, got %d", c.Jobs)
	}
	return nil
}

// String renders the config for debug output.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "jobs=%d verbose=%t", c.Jobs, c.Verbose)
	return b.String()
}
