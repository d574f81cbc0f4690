package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/whkd/internal/infrastructure/config"
)

const dirPerm = 0o755

type genDocsOptions struct {
	outputDir string
	format    string
}

func newGenDocsCmd() *cobra.Command {
	opts := &genDocsOptions{}
	cmd := &cobra.Command{
		Use:   "gen-docs",
		Short: "Generate documentation from CLI commands",
		Long: `Generate man pages or markdown from the whkd command definitions.

By default, man pages are installed to $XDG_DATA_HOME/man/man1 so they are
available via 'man whkd'. You may need to run 'mandb' to update the index.

Examples:
  whkd gen-docs                      # Install man pages
  whkd gen-docs --format markdown    # Generate markdown docs in ./docs
  whkd gen-docs --output ./man       # Generate to a local directory`,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenDocs(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory for generated docs")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "man", "output format: man, markdown")
	return cmd
}

func runGenDocs(cmd *cobra.Command, opts *genDocsOptions) error {
	outputDir := opts.outputDir
	if outputDir == "" {
		switch opts.format {
		case "man":
			manDir, err := config.NewXDGAdapter().ManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	root := cmd.Root()
	// Keep the output reproducible.
	root.DisableAutoGenTag = true

	var ext string
	switch opts.format {
	case "man":
		if err := os.MkdirAll(outputDir, dirPerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "WHKD",
			Section: "1",
			Source:  "whkd " + buildInfo.Version,
			Manual:  "whkd Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(root, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		ext = ".1"
	case "markdown":
		if err := os.MkdirAll(outputDir, dirPerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := doc.GenMarkdownTree(root, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		ext = ".md"
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", opts.format)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated docs in %s\n", outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
