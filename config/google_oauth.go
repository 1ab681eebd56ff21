package config

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleOAuth bundles the OAuth2 config with the OIDC verifier used to check
// Google ID tokens.
type GoogleOAuth struct {
	Config   *oauth2.Config
	Verifier *oidc.IDTokenVerifier
}

// NewGoogleOAuth sets up the Google sign-in integration. Returns nil without
// error when no client ID is configured, so local setups can run without it.
func NewGoogleOAuth(ctx context.Context, cfg Config) (*GoogleOAuth, error) {
	if cfg.GoogleClientID == "" {
		return nil, nil
	}
	if cfg.GoogleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_SECRET must be set when GOOGLE_CLIENT_ID is")
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("create OIDC provider: %w", err)
	}

	return &GoogleOAuth{
		Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		Verifier: provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID}),
	}, nil
}
