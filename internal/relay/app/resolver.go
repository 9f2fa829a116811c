// Package app contains the relay use cases: tracing a workflow run back to
// its pull request, selecting the run's artifact, and reporting on the PR.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
	"github.com/nathantilsley/run-relay/internal/relay/ports"
)

const (
	tierEmbedded = "embedded-payload"
	tierCommit   = "commit-sha"
	tierForkHead = "fork-head-ref"
)

// tierFunc returns ok=false to fall through to the next tier.
type tierFunc func(ctx context.Context, event domain.WorkflowRunEvent) (prNumber int, ok bool, err error)

type resolveTier struct {
	name string
	fn   tierFunc
}

// PullRequestResolver finds the pull request that triggered a workflow run.
type PullRequestResolver struct {
	repo   ports.RepositoryQueryPort
	logger *slog.Logger
	tiers  []resolveTier
}

// NewPullRequestResolver creates a resolver that queries repo.
func NewPullRequestResolver(repo ports.RepositoryQueryPort, logger *slog.Logger) *PullRequestResolver {
	r := &PullRequestResolver{repo: repo, logger: logger}
	r.tiers = []resolveTier{
		{name: tierEmbedded, fn: r.fromEmbeddedPayload},
		{name: tierCommit, fn: r.fromCommitSHA},
		{name: tierForkHead, fn: r.fromForkHeadRef},
	}
	return r
}

// Resolve walks the tiers in order and returns the first PR number found.
// An upstream failure in any tier ends resolution immediately.
func (r *PullRequestResolver) Resolve(ctx context.Context, event domain.WorkflowRunEvent) (int, error) {
	attempted := make([]string, 0, len(r.tiers))
	for _, tier := range r.tiers {
		attempted = append(attempted, tier.name)

		prNumber, ok, err := tier.fn(ctx, event)
		if err != nil {
			return 0, fmt.Errorf("%s tier: %w", tier.name, err)
		}
		if ok {
			r.logger.Info("resolved pull request",
				"runID", event.RunID,
				"pr", prNumber,
				"tier", tier.name,
			)
			return prNumber, nil
		}
		r.logger.Debug("tier yielded no pull request", "runID", event.RunID, "tier", tier.name)
	}
	return 0, domain.NewResolutionExhaustedError(event.RunID, attempted)
}

// fromEmbeddedPayload trusts the PR linkage the platform embeds for
// same-repository runs.
func (r *PullRequestResolver) fromEmbeddedPayload(_ context.Context, event domain.WorkflowRunEvent) (int, bool, error) {
	if !event.HasEmbeddedPullRequests() {
		return 0, false, nil
	}
	return event.PullRequests[0].Number, true, nil
}

func (r *PullRequestResolver) fromCommitSHA(ctx context.Context, event domain.WorkflowRunEvent) (int, bool, error) {
	if !event.HasHeadSHA() {
		return 0, false, nil
	}

	prs, err := r.repo.ListPullRequestsByCommit(ctx, event.HeadSHA)
	if err != nil {
		return 0, false, err
	}
	r.logger.Debug("pull requests associated with commit", "sha", event.HeadSHA, "count", len(prs))

	return newest(prs)
}

// fromForkHeadRef covers forked contributions, for which the platform
// neither embeds the PR nor associates the commit with the base repository.
// Open PRs are preferred; closed PRs cover runs finishing after merge.
func (r *PullRequestResolver) fromForkHeadRef(ctx context.Context, event domain.WorkflowRunEvent) (int, bool, error) {
	if !event.HasForkHead() {
		return 0, false, nil
	}

	head, err := domain.ForkHeadRef(event.HeadRepositoryFullName, event.HeadBranch)
	if err != nil {
		return 0, false, err
	}

	for _, state := range []domain.PRState{domain.PRStateOpen, domain.PRStateClosed} {
		prs, err := r.repo.ListPullRequests(ctx, state, head)
		if err != nil {
			return 0, false, err
		}
		r.logger.Debug("pull requests matching head", "head", head.String(), "state", state, "count", len(prs))

		prNumber, ok, err := newest(prs)
		if err != nil || ok {
			return prNumber, ok, err
		}
	}
	return 0, false, nil
}

func newest(prs []domain.PullRequestRef) (int, bool, error) {
	pr, ok, err := domain.NewestPullRequest(prs)
	if err != nil || !ok {
		return 0, false, err
	}
	return pr.Number, true, nil
}
