package main

import (
	"fmt"
	"sitemapper/internal/config"
	"sitemapper/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCommand constructs the 'delete' subcommand that removes the site's
// sitemap registration from Search Console.
func deleteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Removes the site's sitemap registration",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := commandContext(cfg)
			defer cancel()

			s := getSubmitter(ctx, cfg)

			if err := s.Delete(ctx); err != nil {
				logger.Fatal(ctx, "could not delete sitemap", zap.Error(err))
			}

			fmt.Println("Sitemap removed from Google Search Console") //nolint: forbidigo
		},
	}

	return cmd
}
