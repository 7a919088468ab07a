package output

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/types"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// renderXML renders a sitemaps.org urlset document listing every
// internal page URL in the tree. External custom links are not part of
// the site and are left out.
func renderXML(root *types.PageNode) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	addURL(urlset, root.Page)
	xmlChildren(urlset, &root.Children)

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderFailed, "failed to serialize sitemap xml")
	}
	return out, nil
}

func xmlChildren(urlset *etree.Element, children *types.Children) {
	for _, page := range children.Pages {
		addURL(urlset, page.Page)
	}
	for _, dir := range children.Dirs {
		xmlChildren(urlset, &dir.Children)
	}
}

func addURL(urlset *etree.Element, page types.Page) {
	if page.External || page.URL == "" {
		return
	}
	url := urlset.CreateElement("url")
	url.CreateElement("loc").SetText(page.URL)
}
