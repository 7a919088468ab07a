package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/types"
)

// LoadLinks reads custom navigation links from a standalone YAML file.
// The file holds a list of entries, each either {title, url} or
// {title, pages: [...]} with arbitrary nesting. Validation is left to
// the tree builder, which skips malformed entries with a diagnostic.
func LoadLinks(path string) ([]types.CustomLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read links file").
			WithDetail("path", path)
	}

	var links []types.CustomLink
	if err := yaml.Unmarshal(data, &links); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse links file").
			WithDetail("path", path)
	}

	log.Debug().Str("path", path).Int("links", len(links)).Msg("Loaded custom links")
	return links, nil
}
