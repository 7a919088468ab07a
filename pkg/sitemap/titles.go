package sitemap

import (
	"github.com/arthur-debert/docnav/pkg/types"
)

// OverrideTitles replaces derived directory titles with explicit ones,
// e.g. from per-directory section config. Keys are slash-joined
// directory paths relative to the docs root ("guide", "guide/advanced").
func OverrideTitles(root *types.PageNode, titles map[string]string) {
	if root == nil || len(titles) == 0 {
		return
	}
	overrideTitles(&root.Children, "", titles)
}

func overrideTitles(node *types.Children, prefix string, titles map[string]string) {
	for _, d := range node.Dirs {
		path := d.Dir
		if prefix != "" {
			path = prefix + "/" + d.Dir
		}
		if title, ok := titles[path]; ok && title != "" {
			d.Title = title
		}
		overrideTitles(&d.Children, path, titles)
	}
}
