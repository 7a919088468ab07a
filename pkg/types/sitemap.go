package types

// PageInfo describes a single documentation page as a flat record.
// Path is a '/'-delimited path relative to the docs root; everything
// before the final separator encodes the page's ancestor directories.
type PageInfo struct {
	// Path is the relative, slash-delimited source path of the page
	Path string

	// URL is the address the rendered page will be served from
	URL string

	// Title is an optional explicit display title. When empty, a title
	// is derived from the final path segment.
	Title string

	// Current marks the page being rendered right now
	Current bool
}

// CustomLink is a navigation entry that has no backing file. It is
// either a leaf (URL set) or a group (Pages set); an entry with neither
// is malformed and gets skipped during tree construction.
type CustomLink struct {
	Title string       `koanf:"title" yaml:"title" toml:"title"`
	URL   string       `koanf:"url" yaml:"url,omitempty" toml:"url,omitempty"`
	Pages []CustomLink `koanf:"pages" yaml:"pages,omitempty" toml:"pages,omitempty"`
}

// IsLeaf reports whether the link points directly at a URL.
func (l CustomLink) IsLeaf() bool {
	return l.URL != ""
}

// IsGroup reports whether the link groups further entries.
func (l CustomLink) IsGroup() bool {
	return l.Pages != nil
}

// Page holds the display payload of a page node.
type Page struct {
	// Name is the display title
	Name string `json:"name"`

	// URL is the link target
	URL string `json:"url"`

	// Current marks the page being rendered
	Current bool `json:"current"`

	// External is set only for custom links with a direct URL
	External bool `json:"external,omitempty"`
}

// Children holds a node's ordered descendants. Pages and directories
// are kept in separate slices so no shape-sniffing is ever needed to
// tell them apart; both preserve insertion order.
type Children struct {
	Pages []*PageNode `json:"childPages"`
	Dirs  []*DirNode  `json:"childDirs"`
}

// FindDir returns the first child directory with the given key, or nil.
func (c *Children) FindDir(dir string) *DirNode {
	for _, d := range c.Dirs {
		if d.Dir == dir {
			return d
		}
	}
	return nil
}

// IsEmpty reports whether the node has no descendants at all.
func (c *Children) IsEmpty() bool {
	return len(c.Pages) == 0 && len(c.Dirs) == 0
}

// PageNode is a page in the navigation tree. Leaves have empty
// children; the tree root is itself a PageNode and carries the
// top-level pages and directories.
type PageNode struct {
	Page Page `json:"page"`
	Children
}

// DirNode aggregates pages and directories that share a path prefix.
// Dir is the raw path segment and acts as the merge key; Title is the
// derived display name and plays no part in merging.
type DirNode struct {
	Dir   string `json:"dir"`
	Title string `json:"title"`
	Children
}
