package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	githubclient "github.com/nathantilsley/run-relay/internal/relay/adapters/github_client"
)

// Viper keys shared by every command.
const (
	keyRepository     = "repository"
	keyToken          = "token"
	keyAppID          = "app_id"
	keyInstallationID = "installation_id"
	keyPrivateKey     = "private_key_path"
	keyAPIURL         = "api_url"
	keyEventPath      = "event_path"
	keyLogLevel       = "log_level"
)

type cliConfig struct {
	repository string
	eventPath  string
	logLevel   string
	github     githubclient.Config
}

// bindPersistentFlags registers the shared flags and binds each one to its
// flag and environment variables. Flags take precedence over the environment.
func bindPersistentFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("repository", "", "Base repository as owner/repo (env GITHUB_REPOSITORY)")
	flags.String("token", "", "GitHub token (env GITHUB_TOKEN or GH_TOKEN)")
	flags.Int64("app-id", 0, "GitHub App ID, used when no token is set (env GITHUB_APP_ID)")
	flags.Int64("installation-id", 0, "GitHub App installation ID (env GITHUB_INSTALLATION_ID)")
	flags.String("private-key", "", "Path to the GitHub App private key (env GITHUB_APP_PRIVATE_KEY_PATH)")
	flags.String("api-url", "", "GitHub API base URL (env GITHUB_API_URL)")
	flags.String("event-path", "", "Path to the workflow_run event payload (env GITHUB_EVENT_PATH)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error (env RUN_RELAY_LOG_LEVEL)")

	bindings := []struct {
		key  string
		flag string
		env  []string
	}{
		{keyRepository, "repository", []string{"GITHUB_REPOSITORY"}},
		{keyToken, "token", []string{"GITHUB_TOKEN", "GH_TOKEN"}},
		{keyAppID, "app-id", []string{"GITHUB_APP_ID"}},
		{keyInstallationID, "installation-id", []string{"GITHUB_INSTALLATION_ID"}},
		{keyPrivateKey, "private-key", []string{"GITHUB_APP_PRIVATE_KEY_PATH"}},
		{keyAPIURL, "api-url", []string{"GITHUB_API_URL"}},
		{keyEventPath, "event-path", []string{"GITHUB_EVENT_PATH"}},
		{keyLogLevel, "log-level", []string{"RUN_RELAY_LOG_LEVEL"}},
	}

	for _, b := range bindings {
		if err := v.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", b.flag, err)
		}
		if err := v.BindEnv(append([]string{b.key}, b.env...)...); err != nil {
			return fmt.Errorf("binding env for %s: %w", b.key, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (cliConfig, error) {
	cfg := cliConfig{
		repository: strings.TrimSpace(v.GetString(keyRepository)),
		eventPath:  strings.TrimSpace(v.GetString(keyEventPath)),
		logLevel:   v.GetString(keyLogLevel),
		github: githubclient.Config{
			Token:          v.GetString(keyToken),
			AppID:          v.GetInt64(keyAppID),
			InstallationID: v.GetInt64(keyInstallationID),
			PrivateKeyPath: v.GetString(keyPrivateKey),
			APIURL:         v.GetString(keyAPIURL),
		},
	}

	if cfg.eventPath == "" {
		return cfg, errors.New("event payload required\nProvide via --event-path flag or GITHUB_EVENT_PATH env var")
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
