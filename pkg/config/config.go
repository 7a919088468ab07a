// Package config loads docnav's layered configuration: built-in
// defaults, then a project config file found in the docs root
// (.docnav.toml or .docnav.yaml), then DOCNAV_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/logging"
	"github.com/arthur-debert/docnav/pkg/types"
)

var log = logging.GetLogger("config")

// Config is the resolved project configuration.
type Config struct {
	Site    SiteConfig         `koanf:"site"`
	Exclude []string           `koanf:"exclude"`
	Links   []types.CustomLink `koanf:"links"`
	Output  OutputConfig       `koanf:"output"`
}

// SiteConfig describes the site the docs belong to.
type SiteConfig struct {
	// Title is the fallback display name for the tree root when the
	// root page carries no explicit title
	Title string `koanf:"title"`

	// BaseURL is prepended to every derived page URL
	BaseURL string `koanf:"baseurl"`
}

// OutputConfig holds default output locations for the generate command.
type OutputConfig struct {
	Markdown string `koanf:"markdown"`
	Sitemap  string `koanf:"sitemap"`
}

// candidate pairs a config file name with the parser for its format.
type candidate struct {
	name   string
	parser koanf.Parser
}

var configCandidates = []candidate{
	{".docnav.toml", toml.Parser()},
	{"docnav.toml", toml.Parser()},
	{".docnav.yaml", yaml.Parser()},
	{"docnav.yaml", yaml.Parser()},
}

// Load resolves the configuration for a docs root. A missing project
// config file is not an error; defaults and environment still apply.
func Load(docsRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Project config file, first match wins
	for _, c := range configCandidates {
		path := filepath.Join(docsRoot, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse project config").
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded project config")
		break
	}

	// 3. Environment overrides: DOCNAV_SITE_TITLE -> site.title
	if err := k.Load(env.Provider("DOCNAV_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DOCNAV_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"site": map[string]interface{}{
			"title":   "Documentation",
			"baseurl": "",
		},
		"output": map[string]interface{}{
			"markdown": "",
			"sitemap":  "",
		},
	}
}
