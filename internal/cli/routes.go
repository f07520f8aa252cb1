package cli

import (
	"fmt"
	"slices"
	"strings"

	"besthair/internal/config"
	"besthair/internal/routes"
	"besthair/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the paths a build pre-renders",
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().String("family", "", "only list one family: page, service, location, combined or blog")
	routesCmd.Flags().Bool("patterns", false, "list route patterns in match order instead of paths")
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	family, _ := cmd.Flags().GetString("family")
	family = strings.TrimSpace(family)
	if family != "" && !slices.Contains(routes.Families, routes.Family(family)) {
		return fmt.Errorf("unknown route family %q", family)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appCtx, err := web.NewAppContext(cfg)
	if err != nil {
		return err
	}

	if patterns, _ := cmd.Flags().GetBool("patterns"); patterns {
		server, err := web.NewServer(cfg, appCtx, zap.NewNop(), nil)
		if err != nil {
			return err
		}
		for _, pattern := range server.RoutePatterns() {
			fmt.Fprintln(cmd.OutOrStdout(), pattern)
		}
		return nil
	}

	staticPaths := appCtx.Routes().All()
	if family != "" {
		staticPaths = appCtx.Routes().Family(routes.Family(family))
	}

	for _, staticPath := range staticPaths {
		fmt.Fprintln(cmd.OutOrStdout(), staticPath.Path)
	}
	return nil
}
