package output

import (
	"encoding/json"

	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/types"
)

// Render produces the tree in the requested format. FormatAuto is
// resolved by the caller (see DetectFormat); passing it here falls
// back to plain text.
func Render(root *types.PageNode, format Format) (string, error) {
	if root == nil {
		return "", errors.New(errors.ErrInvalidInput, "cannot render a nil tree")
	}

	switch format {
	case FormatTerminal:
		return renderTerm(root)
	case FormatMarkdown:
		return renderMarkdown(root), nil
	case FormatJSON:
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrRenderFailed, "failed to marshal tree to json")
		}
		return string(data) + "\n", nil
	case FormatXML:
		return renderXML(root)
	default:
		return renderText(root), nil
	}
}
