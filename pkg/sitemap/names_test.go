// pkg/sitemap/names_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test display-name derivation from raw path segments

package sitemap_test

import (
	"testing"

	"github.com/arthur-debert/docnav/pkg/sitemap"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashes and underscores", "my-page_name.md", "My Page Name"},
		{"no extension", "README", "Readme"},
		{"simple page", "intro.md", "Intro"},
		{"only last dot stripped", "v1.2-notes.md", "V1.2 Notes"},
		{"uppercase input lowered", "GETTING-STARTED.md", "Getting Started"},
		{"empty string", "", ""},
		{"extension only", ".gitignore", ""},
		{"repeated separators preserved", "a--b.md", "A  B"},
		{"directory segment", "user_guide", "User Guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sitemap.Name(tt.in))
		})
	}
}
