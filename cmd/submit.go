package main

import (
	"fmt"
	"sitemapper/internal/config"
	"sitemapper/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// submitConfirmation is the single line printed to stdout on success.
const submitConfirmation = "✅ Sitemap submitted to Google Search Console"

// submitCommand constructs the 'submit' subcommand that derives the sitemap
// URL from the configured site URL and registers it with Search Console.
func submitCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submits the site's sitemap to Google Search Console",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := commandContext(cfg)
			defer cancel()

			s := getSubmitter(ctx, cfg)

			sitemapURL, err := s.Submit(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not submit sitemap", zap.Error(err))
			}

			logger.Info(ctx, "sitemap submitted", zap.String("sitemapUrl", sitemapURL))
			fmt.Println(submitConfirmation) //nolint: forbidigo
		},
	}

	return cmd
}
