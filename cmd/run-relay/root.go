package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/go-github/v68/github"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	actionoutput "github.com/nathantilsley/run-relay/internal/relay/adapters/action_output"
	eventsource "github.com/nathantilsley/run-relay/internal/relay/adapters/event_source"
	githubclient "github.com/nathantilsley/run-relay/internal/relay/adapters/github_client"
	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

// runtimeEnv is everything a command needs after configuration is loaded.
type runtimeEnv struct {
	logger   *slog.Logger
	envelope eventsource.Envelope
	repo     domain.RepoContext
	client   *github.Client
	outputs  *actionoutput.Writer
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "run-relay",
		Short: "Relay workflow_run results back to the pull request that triggered them",
		Long: "run-relay reads a completed workflow_run event, finds the pull request that " +
			"triggered the run, and fetches or reports on the run's build artifact.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := bindPersistentFlags(root, v); err != nil {
		// Flag names are static; a failure here is a programming error.
		panic(err)
	}

	root.AddCommand(
		newResolvePRCmd(v),
		newFetchArtifactCmd(v),
		newReportCmd(v),
	)
	return root
}

// setup loads configuration, the event payload and an authenticated client.
func setup(ctx context.Context, v *viper.Viper) (*runtimeEnv, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		return nil, err
	}

	envelope, err := eventsource.Load(cfg.eventPath)
	if err != nil {
		return nil, err
	}
	if envelope.Action != "" && envelope.Action != "completed" {
		logger.Warn("workflow_run event is not a completion", "action", envelope.Action, "runID", envelope.Event.RunID)
	}

	repo, err := baseRepository(cfg.repository, envelope)
	if err != nil {
		return nil, err
	}

	client, err := githubclient.New(ctx, cfg.github)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded workflow_run event",
		"repository", repo.String(),
		"runID", envelope.Event.RunID,
		"headSHA", envelope.Event.HeadSHA,
		"headBranch", envelope.Event.HeadBranch,
		"headRepository", envelope.Event.HeadRepositoryFullName,
		"embeddedPRs", len(envelope.Event.PullRequests),
	)

	return &runtimeEnv{
		logger:   logger,
		envelope: envelope,
		repo:     repo,
		client:   client,
		outputs:  actionoutput.FromEnv(),
	}, nil
}

// baseRepository prefers the configured repository and falls back to the
// repository block of the event payload.
func baseRepository(configured string, envelope eventsource.Envelope) (domain.RepoContext, error) {
	if configured != "" {
		return domain.ParseRepository(configured)
	}
	if envelope.Repo.Owner != "" && envelope.Repo.Repo != "" {
		return envelope.Repo, nil
	}
	return domain.RepoContext{}, errors.New("repository required\nProvide via --repository flag or GITHUB_REPOSITORY env var")
}
