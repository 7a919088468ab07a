package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/docnav/pkg/errors"
)

// SectionFileName is the per-directory config file the scanner looks
// for inside the docs tree.
const SectionFileName = ".docnav.toml"

// SectionConfig carries per-directory overrides from a .docnav.toml
// placed inside a docs subdirectory.
type SectionConfig struct {
	// Title overrides the display name derived from the directory segment
	Title string `toml:"title"`

	// Hidden excludes the directory and everything below it from navigation
	Hidden bool `toml:"hidden"`
}

// LoadSectionConfig reads and parses a directory's section config. A
// missing file yields a zero config, not an error.
func LoadSectionConfig(configPath string) (SectionConfig, error) {
	var cfg SectionConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, errors.ErrFileAccess, "cannot read section config").
			WithDetail("path", configPath)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, errors.ErrConfigParse, "cannot parse section config").
			WithDetail("path", configPath)
	}

	log.Trace().Str("path", configPath).Str("title", cfg.Title).Bool("hidden", cfg.Hidden).
		Msg("Loaded section config")
	return cfg, nil
}
