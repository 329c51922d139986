// Package config loads the optional githubify configuration file.
//
// Configuration is YAML with environment-variable overrides layered on top,
// so CI jobs can adjust a run without editing files. All settings are
// optional; a missing file at the default location yields defaults.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/githubify/githubify/archive"
)

// DefaultPath is consulted when neither the --config flag nor
// GITHUBIFY_CONFIG names a file.
const DefaultPath = "githubify.yaml"

// Config holds the defaults applied to a run before flags are considered.
type Config struct {
	// SplitSize is the default per-volume size (e.g. "40m", "1g").
	SplitSize string `yaml:"split_size"`

	// Compressor overrides 7-Zip discovery with an explicit binary path.
	Compressor string `yaml:"compressor"`

	// DisableGit skips git repository initialization in the destination.
	DisableGit bool `yaml:"disable_git"`
}

// Load reads the YAML configuration, applies environment overrides, and
// returns the effective configuration. An explicit path must exist; a
// missing file at the default path just yields defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("GITHUBIFY_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultPath
		}
	}

	c := &Config{SplitSize: archive.DefaultSplitSize}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
		if c.SplitSize == "" {
			c.SplitSize = archive.DefaultSplitSize
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	default:
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	applyEnv(c)
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("GITHUBIFY_SPLIT_SIZE"); v != "" {
		c.SplitSize = v
	}
	if v := os.Getenv("GITHUBIFY_COMPRESSOR"); v != "" {
		c.Compressor = v
	}
	if v := os.Getenv("GITHUBIFY_NO_GIT"); v != "" {
		c.DisableGit = v == "1" || strings.EqualFold(v, "true")
	}
}
