package output

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/docnav/pkg/types"
)

// renderTerm renders the tree with pterm's tree printer, with
// lipgloss-styled labels.
func renderTerm(root *types.PageNode) (string, error) {
	node := pterm.TreeNode{
		Text:     rootStyle.Render(root.Page.Name) + " " + urlStyle.Render(root.Page.URL),
		Children: termChildren(&root.Children),
	}
	return pterm.DefaultTree.WithRoot(node).Srender()
}

func termChildren(children *types.Children) []pterm.TreeNode {
	var nodes []pterm.TreeNode
	for _, page := range children.Pages {
		nodes = append(nodes, pterm.TreeNode{Text: termPageLabel(page.Page)})
	}
	for _, dir := range children.Dirs {
		nodes = append(nodes, pterm.TreeNode{
			Text:     dirStyle.Render(dir.Title),
			Children: termChildren(&dir.Children),
		})
	}
	return nodes
}

func termPageLabel(page types.Page) string {
	switch {
	case page.Current:
		return currentStyle.Render("> "+page.Name) + " " + urlStyle.Render(page.URL)
	case page.External:
		return externalStyle.Render(page.Name+" ↗") + " " + urlStyle.Render(page.URL)
	default:
		return pageStyle.Render(page.Name) + " " + urlStyle.Render(page.URL)
	}
}

// renderText renders the tree as plain indented text with no styling.
func renderText(root *types.PageNode) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", root.Page.Name, root.Page.URL)
	textChildren(&sb, &root.Children, 1)
	return sb.String()
}

func textChildren(sb *strings.Builder, children *types.Children, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, page := range children.Pages {
		marker := ""
		if page.Page.Current {
			marker = " *"
		}
		if page.Page.External {
			marker = " (external)"
		}
		fmt.Fprintf(sb, "%s%s (%s)%s\n", indent, page.Page.Name, page.Page.URL, marker)
	}
	for _, dir := range children.Dirs {
		fmt.Fprintf(sb, "%s%s/\n", indent, dir.Title)
		textChildren(sb, &dir.Children, depth+1)
	}
}
