// pkg/types/sitemap_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test node helpers and the JSON shape of the tree types

package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docnav/pkg/types"
)

func TestCustomLinkKind(t *testing.T) {
	leaf := types.CustomLink{Title: "Ext", URL: "https://x"}
	group := types.CustomLink{Title: "Group", Pages: []types.CustomLink{}}
	malformed := types.CustomLink{Title: "Broken"}

	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsGroup())
	assert.True(t, group.IsGroup())
	assert.False(t, group.IsLeaf())
	assert.False(t, malformed.IsLeaf())
	assert.False(t, malformed.IsGroup())
}

func TestChildrenFindDir(t *testing.T) {
	c := types.Children{
		Dirs: []*types.DirNode{
			{Dir: "guide", Title: "Guide"},
			{Dir: "api", Title: "API"},
		},
	}

	require.NotNil(t, c.FindDir("api"))
	assert.Equal(t, "API", c.FindDir("api").Title)
	assert.Nil(t, c.FindDir("missing"))
	assert.False(t, c.IsEmpty())
	assert.True(t, (&types.Children{}).IsEmpty())
}

func TestPageNodeJSONShape(t *testing.T) {
	node := &types.PageNode{
		Page: types.Page{Name: "Home", URL: "/", Current: true},
		Children: types.Children{
			Pages: []*types.PageNode{
				{Page: types.Page{Name: "Ext", URL: "https://x", External: true}},
			},
			Dirs: []*types.DirNode{
				{Dir: "guide", Title: "Guide"},
			},
		},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Children are flattened into the node, not nested under "Children".
	assert.Contains(t, decoded, "page")
	assert.Contains(t, decoded, "childPages")
	assert.Contains(t, decoded, "childDirs")
	assert.NotContains(t, decoded, "Children")

	page := decoded["page"].(map[string]interface{})
	assert.Equal(t, "Home", page["name"])
	// external is omitted when false
	_, hasExternal := page["external"]
	assert.False(t, hasExternal)

	childPages := decoded["childPages"].([]interface{})
	ext := childPages[0].(map[string]interface{})["page"].(map[string]interface{})
	assert.Equal(t, true, ext["external"])
}
