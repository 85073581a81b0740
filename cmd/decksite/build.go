package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/decksite/internal/adapters/secondary/deckset"
	"github.com/fredcamaral/decksite/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/decksite/internal/adapters/secondary/scanner"
	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/services"
)

var (
	// Build command flags
	outputDir string
	noAssets  bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Build the static presentation site",
	Long: `Scan a directory for markdown presentations and generate the static
site into the output directory. Each *.md file becomes one presentation
under slides/<slug>/, and an index page links them all.

Example:
  decksite build
  decksite build ./talks --output public`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	buildCmd.Flags().BoolVar(&noAssets, "no-assets", false, "Skip copying referenced media into the output")
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	applyBuildFlags(cmd, cfg)

	result, err := buildSite(cmd.Context(), root, cfg)
	if err != nil {
		return err
	}

	out := resolveOutputDir(root, cfg)
	fmt.Printf("Built %d presentation(s) into %s", len(result.Presentations), out)
	if result.Failed > 0 {
		fmt.Printf(" (%d failed)", result.Failed)
	}
	fmt.Println()
	return nil
}

// applyBuildFlags folds build command flags into the resolved config.
func applyBuildFlags(cmd *cobra.Command, cfg *entities.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Build.OutputDir = outputDir
	}
	if cmd.Flags().Changed("no-assets") {
		cfg.Build.CopyAssets = !noAssets
	}
}

// resolveOutputDir anchors a relative output directory at the source root.
func resolveOutputDir(root string, cfg *entities.Config) string {
	out := cfg.Build.GetOutputDir()
	if !filepath.IsAbs(out) {
		out = filepath.Join(root, out)
	}
	return out
}

// buildSite assembles the pipeline and runs one full site build.
func buildSite(ctx context.Context, root string, cfg *entities.Config) (*services.BuildResult, error) {
	out := resolveOutputDir(root, cfg)
	writer := scanner.NewSiteWriter(out)

	htmlRenderer, err := renderer.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	generator := services.NewGenerator(
		scanner.NewSourceScanner(cfg.Build.GetOutputDir()),
		deckset.NewProcessor(),
		htmlRenderer,
		writer,
		cfg.Build.CopyAssets,
		cfg.Build.GetDefaultTheme(),
	)

	result, err := generator.Build(ctx, root)
	if err != nil {
		return nil, err
	}

	// The default theme ships with the site so a fresh build renders
	// without any author-provided assets.
	themePath := filepath.ToSlash(filepath.Join("assets", "themes", "default.css"))
	if err := writer.WritePage(ctx, themePath, []byte(renderer.DefaultThemeCSS)); err != nil {
		return nil, fmt.Errorf("writing default theme: %w", err)
	}

	return result, nil
}
