package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventsource "github.com/nathantilsley/run-relay/internal/relay/adapters/event_source"
	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

const embeddedPayload = `{
  "action": "completed",
  "workflow_run": {
    "id": 77,
    "head_sha": "abc",
    "head_branch": "fix",
    "pull_requests": [{"number": 42}],
    "head_repository": {"full_name": "octo/widgets"}
  },
  "repository": {"name": "widgets", "owner": {"login": "octo"}}
}`

func writeEvent(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestResolvePRCommand_EmbeddedPayload(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{
		"resolve-pr",
		"--event-path", writeEvent(t, embeddedPayload),
		"--token", "ghp_test",
		"--repository", "octo/widgets",
		"--log-level", "error",
	})

	require.NoError(t, root.Execute())
	assert.Equal(t, "42\n", stdout.String())

	outputs, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "pr-number<<RUN_RELAY_EOF\n42\nRUN_RELAY_EOF\n", string(outputs))
}

func TestFetchArtifactCommand_RequiresNameAndDest(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"fetch-artifact", "--name", "report"})

	assert.EqualError(t, root.Execute(), "--name and --dest are required")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("GITHUB_REPOSITORY", "env/repo")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "gh-token")
	t.Setenv("GITHUB_APP_ID", "12")
	t.Setenv("GITHUB_INSTALLATION_ID", "34")

	root := &cobra.Command{Use: "test"}
	v := viper.New()
	require.NoError(t, bindPersistentFlags(root, v))
	require.NoError(t, root.PersistentFlags().Set("repository", "flag/repo"))

	cfg, err := loadConfig(v)

	require.NoError(t, err)
	assert.Equal(t, "flag/repo", cfg.repository)
	assert.Equal(t, "/tmp/event.json", cfg.eventPath)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, "gh-token", cfg.github.Token)
	assert.Equal(t, int64(12), cfg.github.AppID)
	assert.Equal(t, int64(34), cfg.github.InstallationID)
}

func TestLoadConfig_RequiresEventPath(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")

	root := &cobra.Command{Use: "test"}
	v := viper.New()
	require.NoError(t, bindPersistentFlags(root, v))

	_, err := loadConfig(v)
	assert.ErrorContains(t, err, "event payload required")
}

func TestBaseRepository(t *testing.T) {
	fromPayload := eventsource.Envelope{Repo: domain.RepoContext{Owner: "octo", Repo: "widgets"}}

	tests := []struct {
		name       string
		configured string
		envelope   eventsource.Envelope
		want       domain.RepoContext
		wantErr    bool
	}{
		{name: "configured wins", configured: "a/b", envelope: fromPayload, want: domain.RepoContext{Owner: "a", Repo: "b"}},
		{name: "falls back to payload", envelope: fromPayload, want: domain.RepoContext{Owner: "octo", Repo: "widgets"}},
		{name: "invalid configured value", configured: "nope", wantErr: true},
		{name: "nothing available", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := baseRepository(tt.configured, tt.envelope)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		_, err := newLogger(level)
		assert.NoError(t, err, level)
	}

	_, err := newLogger("verbose")
	assert.Error(t, err)
}
