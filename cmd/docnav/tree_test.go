// cmd/docnav/tree_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test the full pipeline behind the tree and generate commands

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocs(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestBuildTree_FullPipeline(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{
		"index.md":       "# Project Docs\n",
		"guide/intro.md": "# Getting Started\n",
		"guide/setup.md": "\n",
		".docnav.toml": `
[site]
title = "Fallback Title"
baseurl = "https://docs.example.com"

[[links]]
title = "GitHub"
url = "https://github.com/example/project"
`,
	})

	tree, err := buildTree(root)
	require.NoError(t, err)
	require.NotNil(t, tree)

	// The root page's own heading wins over the configured site title.
	assert.Equal(t, "Project Docs", tree.Page.Name)

	require.Len(t, tree.Dirs, 1)
	guide := tree.Dirs[0]
	assert.Equal(t, "guide", guide.Dir)
	require.Len(t, guide.Pages, 2)
	assert.Equal(t, "Getting Started", guide.Pages[0].Page.Name)
	assert.Equal(t, "Setup", guide.Pages[1].Page.Name)

	// The configured custom link lands after the filesystem content.
	require.Len(t, tree.Pages, 1)
	assert.Equal(t, "GitHub", tree.Pages[0].Page.Name)
	assert.True(t, tree.Pages[0].Page.External)
}

func TestBuildTree_NoRootPage(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{
		"guide/intro.md": "# Intro\n",
	})

	tree, err := buildTree(root)
	require.NoError(t, err)
	assert.Nil(t, tree, "a docs dir without index/readme has no sitemap")
}

func TestBuildTree_SectionTitleOverride(t *testing.T) {
	root := t.TempDir()
	writeDocs(t, root, map[string]string{
		"index.md":           "# Home\n",
		"guide/intro.md":     "# Intro\n",
		"guide/.docnav.toml": "title = \"User Guide\"\n",
	})

	tree, err := buildTree(root)
	require.NoError(t, err)
	require.NotNil(t, tree)

	require.Len(t, tree.Dirs, 1)
	assert.Equal(t, "User Guide", tree.Dirs[0].Title)
	assert.Equal(t, "guide", tree.Dirs[0].Dir)
}
