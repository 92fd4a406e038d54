package searchconsole

import (
	"context"
	"fmt"
	"os"

	"sitemapper/pkg/serrors"

	"golang.org/x/oauth2/google"
)

// ScopeWebmasters is the OAuth scope granting full access to Search Console
// data for verified properties.
const ScopeWebmasters = "https://www.googleapis.com/auth/webmasters"

// LoadCredentials reads a service-account key file and produces credentials
// restricted to the given scopes. No network traffic happens here; tokens are
// fetched lazily by the token source on the first API call.
func LoadCredentials(ctx context.Context, path string, scopes []string) (*google.Credentials, error) {
	if len(scopes) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "scopes list is empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("could not parse credentials file: %w", err)
	}

	return creds, nil
}
