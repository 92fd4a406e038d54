// Package main provides the CLI entrypoint for the sitemap submitter.
// It wires subcommands (submit, status, list, delete), loads configuration,
// and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sitemapper/internal/config"
	"sitemapper/internal/submitter"
	"sitemapper/pkg/logger"
	"sitemapper/pkg/sitemaps/searchconsole"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// getSubmitter loads the service-account credentials, builds the search
// console client, and binds it to the configured site.
func getSubmitter(ctx context.Context, cfg *config.Config) submitter.Submitter {
	creds, err := searchconsole.LoadCredentials(ctx, cfg.Google.CredentialsFile, cfg.Google.Scopes)
	if err != nil {
		logger.Fatal(ctx, "could not load credentials", zap.Error(err))
	}

	client, err := searchconsole.New(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		logger.Fatal(ctx, "could not create search console client", zap.Error(err))
	}

	return submitter.New(client, submitter.NewOptions(cfg))
}

// commandContext returns a deadline-bound context carrying the invocation
// run ID and site URL as logger fields.
func commandContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	ctx = logger.WithFields(ctx,
		zap.String("runId", uuid.NewString()),
		zap.String("siteUrl", cfg.Site.URL))

	return ctx, cancel
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "sitemapper",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		submitCommand(cfg),
		statusCommand(cfg),
		listCommand(cfg),
		deleteCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
