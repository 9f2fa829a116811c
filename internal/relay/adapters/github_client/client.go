// Package githubclient builds an authenticated go-github client from either
// a token or GitHub App installation credentials.
package githubclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

// ErrNoCredentials is returned when neither a token nor a complete set of
// App credentials is configured.
var ErrNoCredentials = errors.New("github credentials required: set a token or app id, installation id and private key")

// Config selects how the client authenticates. Token takes precedence.
type Config struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	APIURL         string // GITHUB_API_URL; empty means github.com
}

func (c Config) hasApp() bool {
	return c.AppID != 0 && c.InstallationID != 0 && c.PrivateKeyPath != ""
}

func (c Config) enterpriseURL() string {
	u := strings.TrimSuffix(strings.TrimSpace(c.APIURL), "/")
	if u == "" || u == defaultAPIURL {
		return ""
	}
	return u
}

// New creates a GitHub client for cfg.
func New(ctx context.Context, cfg Config) (*github.Client, error) {
	var httpClient *http.Client

	switch {
	case cfg.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	case cfg.hasApp():
		itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("creating app installation transport: %w", err)
		}
		if u := cfg.enterpriseURL(); u != "" {
			itr.BaseURL = u
		}
		httpClient = &http.Client{Transport: itr}
	default:
		return nil, ErrNoCredentials
	}

	client := github.NewClient(httpClient)
	if u := cfg.enterpriseURL(); u != "" {
		enterprise, err := client.WithEnterpriseURLs(u, u)
		if err != nil {
			return nil, fmt.Errorf("configuring api url %s: %w", u, err)
		}
		client = enterprise
	}
	return client, nil
}
