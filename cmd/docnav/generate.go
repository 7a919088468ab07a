package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docnav/pkg/config"
	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/logging"
	"github.com/arthur-debert/docnav/pkg/output"
)

var (
	markdownOut string
	sitemapOut  string
)

func init() {
	generateCmd.Flags().StringVar(&markdownOut, "markdown", "", "Write a markdown table of contents to this file")
	generateCmd.Flags().StringVar(&sitemapOut, "sitemap", "", "Write a sitemap.xml to this file")
	generateCmd.Flags().StringVar(&linksFlag, "links", "", "YAML file with additional custom links")
}

var generateCmd = &cobra.Command{
	Use:   "generate [docs-dir]",
	Short: "Write navigation artifacts for a documentation directory",
	Long: `Generate scans the given documentation directory and writes the
navigation artifacts configured in the project config or via flags: a
markdown table of contents and/or a sitemap.xml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.generate")

		docsDir := "."
		if len(args) == 1 {
			docsDir = args[0]
		}

		cfg, err := config.Load(docsDir)
		if err != nil {
			return err
		}
		mdPath := markdownOut
		if mdPath == "" {
			mdPath = cfg.Output.Markdown
		}
		xmlPath := sitemapOut
		if xmlPath == "" {
			xmlPath = cfg.Output.Sitemap
		}
		if mdPath == "" && xmlPath == "" {
			return errors.New(errors.ErrInvalidInput,
				"nothing to generate: set --markdown/--sitemap or the [output] config section")
		}

		tree, err := buildTree(docsDir)
		if err != nil {
			return err
		}
		if tree == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No sitemap: docs directory has no root page or no content pages.")
			return nil
		}

		if mdPath != "" {
			rendered, err := output.Render(tree, output.FormatMarkdown)
			if err != nil {
				return err
			}
			if err := writeArtifact(mdPath, rendered); err != nil {
				return err
			}
			logger.Info().Str("path", mdPath).Msg("Wrote markdown table of contents")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", mdPath)
		}

		if xmlPath != "" {
			rendered, err := output.Render(tree, output.FormatXML)
			if err != nil {
				return err
			}
			if err := writeArtifact(xmlPath, rendered); err != nil {
				return err
			}
			logger.Info().Str("path", xmlPath).Msg("Wrote sitemap.xml")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", xmlPath)
		}

		return nil
	},
	Args: cobra.MaximumNArgs(1),
}

func writeArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output file").
			WithDetail("path", path)
	}
	return nil
}
