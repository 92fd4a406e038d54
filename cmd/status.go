package main

import (
	"fmt"
	"sitemapper/internal/config"
	"sitemapper/pkg/domain"
	"sitemapper/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCommand constructs the 'status' subcommand that reports the
// processing state of the site's registered sitemap.
func statusCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Shows the processing state of the site's sitemap",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := commandContext(cfg)
			defer cancel()

			s := getSubmitter(ctx, cfg)

			sm, err := s.Status(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not fetch sitemap status", zap.Error(err))
			}

			printSitemap(sm)
		},
	}

	return cmd
}

// printSitemap renders one sitemap entry to stdout.
func printSitemap(sm *domain.Sitemap) {
	state := "processed"
	if sm.Pending {
		state = "pending"
	}

	//nolint: forbidigo
	fmt.Printf("%s\t%s\t%s\twarnings=%d errors=%d\n", sm.Path, sm.Type, state, sm.Warnings, sm.Errors)
	if !sm.LastSubmitted.IsZero() {
		fmt.Printf("\tlast submitted: %s\n", sm.LastSubmitted.Format(time.RFC3339)) //nolint: forbidigo
	}
	if !sm.LastDownloaded.IsZero() {
		fmt.Printf("\tlast downloaded: %s\n", sm.LastDownloaded.Format(time.RFC3339)) //nolint: forbidigo
	}
	for _, c := range sm.Contents {
		fmt.Printf("\t%s: %d submitted, %d indexed\n", c.Type, c.Submitted, c.Indexed) //nolint: forbidigo
	}
}
