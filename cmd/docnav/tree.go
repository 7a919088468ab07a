package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docnav/pkg/config"
	"github.com/arthur-debert/docnav/pkg/logging"
	"github.com/arthur-debert/docnav/pkg/output"
	"github.com/arthur-debert/docnav/pkg/scanner"
	"github.com/arthur-debert/docnav/pkg/sitemap"
	"github.com/arthur-debert/docnav/pkg/types"
)

var (
	formatFlag  string
	linksFlag   string
	currentFlag string
	previewFlag bool
)

func init() {
	treeCmd.Flags().StringVarP(&formatFlag, "format", "f", "auto", "Output format (auto, term, text, markdown, json, xml)")
	treeCmd.Flags().StringVar(&linksFlag, "links", "", "YAML file with additional custom links")
	treeCmd.Flags().StringVar(&currentFlag, "current", "", "Relative path of the page to mark as current")
	treeCmd.Flags().BoolVar(&previewFlag, "preview", false, "Render markdown output through the terminal markdown viewer")
}

var treeCmd = &cobra.Command{
	Use:   "tree [docs-dir]",
	Short: "Print the navigation tree for a documentation directory",
	Long: `Tree scans the given documentation directory (default: current
directory), builds the navigation tree, and prints it to stdout in the
chosen format. With --format auto the format is picked from the
terminal's capabilities.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docsDir := "."
		if len(args) == 1 {
			docsDir = args[0]
		}

		format, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		if format == output.FormatAuto {
			format = output.DetectFormat(os.Stdout)
		}

		tree, err := buildTree(docsDir)
		if err != nil {
			return err
		}
		if tree == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No sitemap: docs directory has no root page or no content pages.")
			return nil
		}

		rendered, err := output.Render(tree, format)
		if err != nil {
			return err
		}
		if format == output.FormatMarkdown && previewFlag {
			rendered = output.Preview(rendered)
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// buildTree runs the full pipeline: config, scan, fold, title overrides.
// A nil tree with a nil error means "no sitemap", which callers report
// without failing.
func buildTree(docsDir string) (*types.PageNode, error) {
	logger := logging.GetLogger("cmd.tree")

	cfg, err := config.Load(docsDir)
	if err != nil {
		return nil, err
	}

	var opts []scanner.Option
	if currentFlag != "" {
		opts = append(opts, scanner.WithCurrent(currentFlag))
	}
	sc := scanner.New(docsDir, cfg, opts...)
	pages, err := sc.Scan()
	if err != nil {
		return nil, err
	}

	links := cfg.Links
	if linksFlag != "" {
		extra, err := config.LoadLinks(linksFlag)
		if err != nil {
			return nil, err
		}
		links = append(links, extra...)
	}

	tree := sitemap.Unflatten(pages, links, cfg.Site.Title)
	if tree == nil {
		return nil, nil
	}
	sitemap.OverrideTitles(tree, sc.SectionTitles())

	logger.Info().
		Int("pages", len(pages)).
		Int("links", len(links)).
		Str("docs", docsDir).
		Msg("Navigation tree built")
	return tree, nil
}
