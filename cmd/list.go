package main

import (
	"sitemapper/internal/config"
	"sitemapper/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCommand constructs the 'list' subcommand that prints every sitemap
// registered for the configured site.
func listCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists all sitemaps registered for the site",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := commandContext(cfg)
			defer cancel()

			s := getSubmitter(ctx, cfg)

			sms, err := s.List(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list sitemaps", zap.Error(err))
			}

			for i := range sms {
				printSitemap(&sms[i])
			}
		},
	}

	return cmd
}
