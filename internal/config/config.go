// Package config loads the optional project configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration looked up in the working directory when
// --config is not given.
const DefaultFile = ".adoctree.yaml"

// Config holds tunables for document location and the serve command.
type Config struct {
	// Extensions are the file suffixes treated as documents when guessing a
	// default document inside a directory.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// RootCandidates are well-known document names tried in order before
	// falling back to an unambiguous single match by extension.
	RootCandidates []string `yaml:"root_candidates" json:"root_candidates"`

	// ShowCommented analyzes and renders includes found inside comments.
	ShowCommented bool `yaml:"show_commented" json:"show_commented"`

	Serve ServeConfig `yaml:"serve" json:"serve"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr      string `yaml:"addr" json:"addr"`
	Cache     string `yaml:"cache" json:"cache"` // "memory", "redis", "file" or "none"
	RedisAddr string `yaml:"redis_addr" json:"redis_addr"`
	CacheTTL  string `yaml:"cache_ttl" json:"cache_ttl"`
	CacheSize int    `yaml:"cache_size" json:"cache_size"`
}

// TTL parses CacheTTL, falling back to five minutes on empty or bad input.
func (s ServeConfig) TTL() time.Duration {
	d, err := time.ParseDuration(s.CacheTTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Extensions:     []string{".adoc", ".asciidoc"},
		RootCandidates: []string{"master.adoc", "index.adoc"},
		Serve: ServeConfig{
			Addr:      ":8080",
			Cache:     "memory",
			RedisAddr: "localhost:6379",
			CacheTTL:  "5m",
			CacheSize: 128,
		},
	}
}

// Load reads the configuration file (YAML or JSON by extension) over the
// defaults. With an empty path it tries DefaultFile in the working directory
// and treats a missing file as "no configuration"; an explicit path that is
// missing is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	// Default to YAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
