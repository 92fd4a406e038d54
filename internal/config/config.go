package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the managed site, and the
// Google service-account credentials.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Site identifies the Search Console property this tool manages.
	Site struct {
		// URL is the property URL as registered in Search Console, without a
		// trailing slash (e.g. "https://example.com").
		URL string `env:"SITE_URL" yaml:"url"`
		// FeedPath is the sitemap file path appended to URL with a single
		// "/" separator.
		FeedPath string `env:"SITE_FEED_PATH" env-default:"sitemap.xml" yaml:"feedPath"`
	} `yaml:"site"`

	// Google contains the service-account authentication settings.
	Google struct {
		// CredentialsFile is the path to the service-account JSON key file.
		CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" env-default:"credentials.json" yaml:"credentialsFile"`
		// Scopes is the list of OAuth scopes requested for the credential.
		Scopes []string `env:"GOOGLE_SCOPES" env-separator:"," env-default:"https://www.googleapis.com/auth/webmasters" yaml:"scopes"`
	} `yaml:"google"`

	// RequestTimeout is the deadline applied to each API call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
