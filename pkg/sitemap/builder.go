// Package sitemap folds a flat list of documentation pages into the
// rooted navigation tree consumed by the output renderers. The fold is
// a pure in-memory transformation: no I/O happens here, and the only
// side effect is debug-level diagnostics on the builder's logger.
package sitemap

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/docnav/pkg/logging"
	"github.com/arthur-debert/docnav/pkg/types"
	"github.com/rs/zerolog"
)

// rootPattern matches the single page that becomes the tree root.
var rootPattern = regexp.MustCompile(`^(index|readme)\.(md|htm|html)$`)

// assetsPrefix marks non-content resources excluded from navigation.
const assetsPrefix = "assets"

// Builder constructs navigation trees. The zero value is not usable;
// create one with NewBuilder, or NewBuilderWithLogger to route
// diagnostics somewhere specific (recoverable anomalies are reported
// through the logger, never as errors).
type Builder struct {
	logger zerolog.Logger
}

// NewBuilder returns a Builder reporting diagnostics on the default
// sitemap component logger.
func NewBuilder() *Builder {
	return &Builder{logger: logging.GetLogger("sitemap")}
}

// NewBuilderWithLogger returns a Builder with an injected diagnostic sink.
func NewBuilderWithLogger(logger zerolog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Unflatten builds a navigation tree with a default Builder. See
// Builder.Unflatten for the semantics.
func Unflatten(pages []types.PageInfo, links []types.CustomLink, siteTitle string) *types.PageNode {
	return NewBuilder().Unflatten(pages, links, siteTitle)
}

// Unflatten converts the flat page list into a rooted tree. The first
// page whose path matches index/readme (case-insensitive, .md/.htm/.html)
// becomes the root; pages under assets/ are dropped; every remaining
// page is folded in input order, then the custom links are appended.
//
// Returns nil when no root page exists or when nothing but the root
// survives filtering. Both are legitimate "no sitemap" outcomes, not
// errors.
func (b *Builder) Unflatten(pages []types.PageInfo, links []types.CustomLink, siteTitle string) *types.PageNode {
	rootIdx := -1
	for i, p := range pages {
		if rootPattern.MatchString(strings.ToLower(p.Path)) {
			rootIdx = i
			break
		}
	}
	if rootIdx < 0 {
		b.logger.Debug().Msg("no root page (index or readme) found, skipping sitemap")
		return nil
	}
	rootPage := pages[rootIdx]

	rest := make([]types.PageInfo, 0, len(pages)-1)
	for i, p := range pages {
		if i == rootIdx {
			continue
		}
		if strings.HasPrefix(p.Path, assetsPrefix) {
			continue
		}
		rest = append(rest, p)
	}
	if len(rest) == 0 {
		// A sitemap containing only the root page is not worth rendering.
		b.logger.Debug().Msg("no pages besides the root, skipping sitemap")
		return nil
	}

	name := rootPage.Title
	if name == "" {
		name = siteTitle
	}
	root := &types.PageNode{
		Page: types.Page{
			Name:    name,
			URL:     rootPage.URL,
			Current: rootPage.Current,
		},
	}

	for _, p := range rest {
		b.addPath(p.Path, p, &root.Children)
	}
	for _, link := range links {
		b.addCustomLink(link, &root.Children)
	}

	return root
}

// addPath descends into node along the page's path, creating directory
// nodes as needed. Directories sharing a segment merge into the first
// existing child with that key; new directories are appended after
// their subtree is populated, so sibling order reflects the order in
// which each directory was first seen.
func (b *Builder) addPath(path string, page types.PageInfo, node *types.Children) {
	segments := strings.SplitN(path, "/", 2)
	if len(segments) == 1 {
		name := page.Title
		if name == "" {
			name = Name(segments[0])
		}
		node.Pages = append(node.Pages, newPageNode(name, page.URL, page.Current, false))
		return
	}

	dir, rest := segments[0], segments[1]
	if existing := node.FindDir(dir); existing != nil {
		b.addPath(rest, page, &existing.Children)
		return
	}

	child := &types.DirNode{Dir: dir, Title: Name(dir)}
	b.addPath(rest, page, &child.Children)
	node.Dirs = append(node.Dirs, child)
}

// addCustomLink splices a configured link entry into node. Direct links
// become external leaf pages; groups become directory nodes keyed and
// titled by the group title. Group nodes are never merged with existing
// siblings: every group spec produces a fresh node, unlike filesystem
// directories.
func (b *Builder) addCustomLink(link types.CustomLink, node *types.Children) {
	switch {
	case link.IsLeaf():
		node.Pages = append(node.Pages, newPageNode(link.Title, link.URL, false, true))
	case link.IsGroup():
		group := &types.DirNode{Dir: link.Title, Title: link.Title}
		for _, child := range link.Pages {
			b.addCustomLink(child, &group.Children)
		}
		node.Dirs = append(node.Dirs, group)
	default:
		b.logger.Debug().Str("title", link.Title).Msg("custom link has neither url nor pages, skipping")
	}
}

// newPageNode constructs a leaf page node with empty children.
func newPageNode(name, url string, current, external bool) *types.PageNode {
	return &types.PageNode{
		Page: types.Page{
			Name:     name,
			URL:      url,
			Current:  current,
			External: external,
		},
	}
}
