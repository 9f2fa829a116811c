package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	archivestore "github.com/nathantilsley/run-relay/internal/relay/adapters/archive_store"
	githubrepo "github.com/nathantilsley/run-relay/internal/relay/adapters/github_repo"
	prcomment "github.com/nathantilsley/run-relay/internal/relay/adapters/pr_comment"
	"github.com/nathantilsley/run-relay/internal/relay/app"
)

func newResolvePRCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-pr",
		Short: "Print the number of the pull request that triggered the workflow run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), v)
			if err != nil {
				return err
			}

			repo := githubrepo.New(env.client, env.repo)
			prNumber, err := app.NewPullRequestResolver(repo, env.logger).Resolve(cmd.Context(), env.envelope.Event)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), prNumber)
			return env.outputs.Set("pr-number", strconv.Itoa(prNumber))
		},
	}
}

func newFetchArtifactCmd(v *viper.Viper) *cobra.Command {
	var (
		name  string
		dest  string
		runID int64
	)

	cmd := &cobra.Command{
		Use:   "fetch-artifact",
		Short: "Download the newest artifact with the given name from the workflow run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" || dest == "" {
				return errors.New("--name and --dest are required")
			}

			env, err := setup(cmd.Context(), v)
			if err != nil {
				return err
			}
			if runID == 0 {
				runID = env.envelope.Event.RunID
			}

			repo := githubrepo.New(env.client, env.repo)
			locator := app.NewArtifactLocator(repo, archivestore.New(), env.logger)
			artifact, err := locator.Fetch(cmd.Context(), runID, name, dest)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d) -> %s\n", artifact.Name, artifact.ID, dest)
			if err := env.outputs.Set("artifact-id", strconv.FormatInt(artifact.ID, 10)); err != nil {
				return err
			}
			return env.outputs.Set("artifact-path", dest)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact artifact name")
	cmd.Flags().StringVar(&dest, "dest", "", "Destination path for the zip archive")
	cmd.Flags().Int64Var(&runID, "run-id", 0, "Workflow run ID (default: the run in the event payload)")
	return cmd
}

func newReportCmd(v *viper.Viper) *cobra.Command {
	var req app.ReportRequest

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Post the report contained in the run's artifact to the triggering pull request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), v)
			if err != nil {
				return err
			}
			req.Event = env.envelope.Event

			repo := githubrepo.New(env.client, env.repo)
			store := archivestore.New()
			reporter := app.NewReporter(
				app.NewPullRequestResolver(repo, env.logger),
				app.NewArtifactLocator(repo, store, env.logger),
				store,
				prcomment.New(env.client, env.repo),
				env.logger,
			)

			result, err := reporter.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.CommentURL)
			if err := env.outputs.Set("pr-number", strconv.Itoa(result.PRNumber)); err != nil {
				return err
			}
			return env.outputs.Set("comment-url", result.CommentURL)
		},
	}

	cmd.Flags().StringVar(&req.ArtifactName, "name", "", "Exact artifact name")
	cmd.Flags().StringVar(&req.ArchivePath, "dest", "artifact.zip", "Destination path for the zip archive")
	cmd.Flags().StringVar(&req.ExtractDir, "extract-dir", "artifact", "Directory to unpack the archive into")
	cmd.Flags().StringVar(&req.ReportFile, "report-file", "", "Path of the report file inside the archive")
	cmd.Flags().StringVar(&req.Title, "title", "", "Comment title")
	return cmd
}
