package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/docnav/pkg/types"
)

// renderMarkdown renders the tree as a markdown table of contents: the
// root as a heading, pages as nested list links, directories as bold
// list entries.
func renderMarkdown(root *types.PageNode) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# [%s](%s)\n\n", root.Page.Name, root.Page.URL)
	markdownChildren(&sb, &root.Children, 0)
	return sb.String()
}

func markdownChildren(sb *strings.Builder, children *types.Children, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, page := range children.Pages {
		fmt.Fprintf(sb, "%s- [%s](%s)\n", indent, page.Page.Name, page.Page.URL)
	}
	for _, dir := range children.Dirs {
		fmt.Fprintf(sb, "%s- **%s**\n", indent, dir.Title)
		markdownChildren(sb, &dir.Children, depth+1)
	}
}

// Preview converts markdown to styled terminal output using glamour.
// Falls back to the raw markdown when rendering fails.
func Preview(markdown string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
