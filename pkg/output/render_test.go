// pkg/output/render_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing/detection and the tree renderers

package output_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/output"
	"github.com/arthur-debert/docnav/pkg/sitemap"
	"github.com/arthur-debert/docnav/pkg/types"
)

// testTree builds a small tree with a directory, a current page, and
// an external custom link.
func testTree(t *testing.T) *types.PageNode {
	t.Helper()
	pages := []types.PageInfo{
		{Path: "index.md", URL: "https://docs.example.com/", Title: "Example Docs"},
		{Path: "about.md", URL: "https://docs.example.com/about.html", Current: true},
		{Path: "guide/intro.md", URL: "https://docs.example.com/guide/intro.html"},
	}
	links := []types.CustomLink{
		{Title: "GitHub", URL: "https://github.com/example/project"},
	}
	tree := sitemap.Unflatten(pages, links, "Example Docs")
	require.NotNil(t, tree)
	return tree
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{"", output.FormatAuto, false},
		{"auto", output.FormatAuto, false},
		{"term", output.FormatTerminal, false},
		{"terminal", output.FormatTerminal, false},
		{"text", output.FormatText, false},
		{"plain", output.FormatText, false},
		{"markdown", output.FormatMarkdown, false},
		{"md", output.FormatMarkdown, false},
		{"JSON", output.FormatJSON, false},
		{"xml", output.FormatXML, false},
		{"sitemap", output.FormatXML, false},
		{"bogus", output.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_NotATTY(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, output.FormatText, output.DetectFormat(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, output.FormatText, output.DetectFormat(os.Stdout))
}

func TestRender_Text(t *testing.T) {
	out, err := output.Render(testTree(t), output.FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Example Docs (https://docs.example.com/)")
	assert.Contains(t, out, "  About (https://docs.example.com/about.html) *")
	assert.Contains(t, out, "  Guide/")
	assert.Contains(t, out, "    Intro (https://docs.example.com/guide/intro.html)")
	assert.Contains(t, out, "GitHub (https://github.com/example/project) (external)")
}

func TestRender_Markdown(t *testing.T) {
	out, err := output.Render(testTree(t), output.FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# [Example Docs](https://docs.example.com/)")
	assert.Contains(t, out, "- [About](https://docs.example.com/about.html)")
	assert.Contains(t, out, "- **Guide**")
	assert.Contains(t, out, "  - [Intro](https://docs.example.com/guide/intro.html)")
	assert.Contains(t, out, "- [GitHub](https://github.com/example/project)")
}

func TestRender_XML(t *testing.T) {
	out, err := output.Render(testTree(t), output.FormatXML)
	require.NoError(t, err)

	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://docs.example.com/</loc>")
	assert.Contains(t, out, "<loc>https://docs.example.com/about.html</loc>")
	assert.Contains(t, out, "<loc>https://docs.example.com/guide/intro.html</loc>")
	assert.NotContains(t, out, "github.com", "external links do not belong in the sitemap")
}

func TestRender_JSON(t *testing.T) {
	out, err := output.Render(testTree(t), output.FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	page, ok := decoded["page"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Example Docs", page["name"])
	assert.Contains(t, decoded, "childPages")
	assert.Contains(t, decoded, "childDirs")
}

func TestRender_Terminal(t *testing.T) {
	out, err := output.Render(testTree(t), output.FormatTerminal)
	require.NoError(t, err)

	assert.Contains(t, out, "Example Docs")
	assert.Contains(t, out, "Guide")
	assert.Contains(t, out, "Intro")
}

func TestRender_NilTree(t *testing.T) {
	_, err := output.Render(nil, output.FormatText)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPreview(t *testing.T) {
	out := output.Preview("# Title\n\n- item\n")
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "Title")
}
