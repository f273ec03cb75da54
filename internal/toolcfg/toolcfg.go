// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolcfg resolves external-tool installation paths from a flat
// string-to-string configuration file. Which keys are required depends on the
// tool being invoked; key completeness is checked at command construction,
// not at load time.
package toolcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/dock-prep/pkg/types"
)

// Config maps configuration keys to values. Keys are case-insensitive;
// lookups normalize to lower case.
type Config map[string]string

// Load parses the configuration file at path into a Config. The file may be
// JSON or YAML; the extension selects the parser. A missing file fails with
// ErrConfigNotFound, a parse failure with ErrConfigMalformed.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrConfigNotFound, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrConfigMalformed, path, err)
	}

	cfg := make(Config)
	for _, key := range v.AllKeys() {
		cfg[strings.ToLower(key)] = v.GetString(key)
	}
	return cfg, nil
}

// LoadDir reads a directory of per-key override files: the filename is the
// key and the trimmed file contents are the value. A missing directory is not
// an error; LoadDir returns an empty Config. Unreadable files produce a
// warning on stderr but do not abort.
func LoadDir(dir string) (Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return nil, fmt.Errorf("reading config directory %s: %w", dir, err)
	}

	cfg := make(Config)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read config file %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			cfg[strings.ToLower(name)] = value
		}
	}

	return cfg, nil
}

// Merge overlays other on top of c and returns the combined Config. Neither
// input is modified.
func (c Config) Merge(other Config) Config {
	merged := make(Config, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Get returns the value for key, failing with ErrMissingConfigKey naming
// both the key and the tool that needs it.
func (c Config) Get(key string, tool types.Tool) (string, error) {
	if v, ok := c[strings.ToLower(key)]; ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s (required by %s)", types.ErrMissingConfigKey, key, tool)
}
