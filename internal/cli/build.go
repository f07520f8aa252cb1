package cli

import (
	"fmt"
	"strings"
	"time"

	"besthair/framework/staticgen"
	"besthair/internal/config"
	"besthair/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// notFoundProbe is requested once during a build to capture the 404 page.
// It is not a valid combined slug so it never collides with a real route.
const notFoundProbe = "/404"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every route to static files",
	Long: `Renders every page, sitemap.xml and robots.txt into the output directory
and copies the static assets next to them. The build fails if any route does
not render with status 200.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (defaults to BESTHAIR_OUTPUT_DIR)")
	buildCmd.Flags().Int("concurrency", 0, "pages rendered in parallel (defaults to BESTHAIR_BUILD_CONCURRENCY)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); strings.TrimSpace(out) != "" {
		cfg.OutputDir = out
	}
	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		cfg.BuildConcurrency = concurrency
	}
	cfg.MetricsEnabled = false

	logger, err := newLogger(cfg, "build")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	appCtx, err := web.NewAppContext(cfg)
	if err != nil {
		return err
	}

	server, err := web.NewServer(cfg, appCtx, zap.NewNop(), nil)
	if err != nil {
		return err
	}

	paths, err := server.StaticPaths()
	if err != nil {
		return fmt.Errorf("collect static paths: %w", err)
	}

	started := time.Now()
	result, err := staticgen.Generate(cmd.Context(), staticgen.Config{
		Handler:      server,
		Paths:        paths,
		OutDir:       cfg.OutputDir,
		Concurrency:  cfg.BuildConcurrency,
		NotFoundPath: notFoundProbe,
		Assets:       web.StaticAssets(cfg),
		AssetsPrefix: server.StaticPrefix(),
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	logger.Info("build complete",
		zap.String("out", cfg.OutputDir),
		zap.Int("pages", result.Pages),
		zap.Int("assets", result.Assets),
		zap.Duration("duration", time.Since(started)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages and %d assets into %s\n", result.Pages, result.Assets, cfg.OutputDir)
	return nil
}
