// Package githubrepo implements the repository query port on top of the
// GitHub REST API.
package githubrepo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-github/v68/github"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

const (
	perPage = 100

	// maxRedirects bounds redirects followed when resolving an artifact's
	// signed download URL.
	maxRedirects = 10
)

// PullRequestsService is the subset of the go-github pull requests client used here.
//
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=adapter.go -destination=mock_services_test.go -package=githubrepo
type PullRequestsService interface {
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) ([]*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

// ActionsService is the subset of the go-github Actions client used here.
type ActionsService interface {
	ListWorkflowRunArtifacts(ctx context.Context, owner, repo string, runID int64, opts *github.ListOptions) (*github.ArtifactList, *github.Response, error)
	DownloadArtifact(ctx context.Context, owner, repo string, artifactID int64, maxRedirects int) (*url.URL, *github.Response, error)
}

// Adapter implements ports.RepositoryQueryPort for a single base repository.
type Adapter struct {
	pullRequests PullRequestsService
	actions      ActionsService
	httpClient   *http.Client
	repo         domain.RepoContext
}

// New creates an adapter backed by client for the given repository.
func New(client *github.Client, repo domain.RepoContext) *Adapter {
	return NewWithServices(client.PullRequests, client.Actions, http.DefaultClient, repo)
}

// NewWithServices creates an adapter with injectable services.
// httpClient fetches the signed archive URL, which must not carry API credentials.
func NewWithServices(prs PullRequestsService, actions ActionsService, httpClient *http.Client, repo domain.RepoContext) *Adapter {
	return &Adapter{
		pullRequests: prs,
		actions:      actions,
		httpClient:   httpClient,
		repo:         repo,
	}
}

// ListPullRequestsByCommit returns every pull request associated with sha.
func (a *Adapter) ListPullRequestsByCommit(ctx context.Context, sha string) ([]domain.PullRequestRef, error) {
	var refs []domain.PullRequestRef
	opts := &github.ListOptions{PerPage: perPage}

	for {
		prs, resp, err := a.pullRequests.ListPullRequestsWithCommit(ctx, a.repo.Owner, a.repo.Repo, sha, opts)
		if err != nil {
			return nil, domain.NewUpstreamAPIError("listing pull requests by commit", statusOf(resp), err)
		}
		refs = append(refs, toPullRequestRefs(prs)...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return refs, nil
}

// ListPullRequests returns the pull requests in the given state whose head is head.
func (a *Adapter) ListPullRequests(
	ctx context.Context,
	state domain.PRState,
	head domain.HeadRef,
) ([]domain.PullRequestRef, error) {
	var refs []domain.PullRequestRef
	opts := &github.PullRequestListOptions{
		State: string(state),
		Head:  head.String(),
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	for {
		prs, resp, err := a.pullRequests.List(ctx, a.repo.Owner, a.repo.Repo, opts)
		if err != nil {
			return nil, domain.NewUpstreamAPIError(
				fmt.Sprintf("listing %s pull requests for head %s", state, head), statusOf(resp), err)
		}
		refs = append(refs, toPullRequestRefs(prs)...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return refs, nil
}

// ListArtifacts returns every artifact attached to the workflow run.
func (a *Adapter) ListArtifacts(ctx context.Context, runID int64) ([]domain.Artifact, error) {
	var artifacts []domain.Artifact
	opts := &github.ListOptions{PerPage: perPage}

	for {
		list, resp, err := a.actions.ListWorkflowRunArtifacts(ctx, a.repo.Owner, a.repo.Repo, runID, opts)
		if err != nil {
			return nil, domain.NewUpstreamAPIError(
				fmt.Sprintf("listing artifacts for workflow run %d", runID), statusOf(resp), err)
		}
		if list == nil {
			break
		}
		for _, artifact := range list.Artifacts {
			if artifact == nil {
				continue
			}
			artifacts = append(artifacts, domain.Artifact{
				ID:          artifact.GetID(),
				Name:        artifact.GetName(),
				CreatedAt:   artifact.GetCreatedAt().Time,
				SizeInBytes: artifact.GetSizeInBytes(),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return artifacts, nil
}

// DownloadArtifactBytes resolves the artifact's zip download link and
// returns the archive bytes unmodified.
func (a *Adapter) DownloadArtifactBytes(ctx context.Context, artifactID int64) ([]byte, error) {
	op := fmt.Sprintf("downloading artifact %d", artifactID)

	archiveURL, resp, err := a.actions.DownloadArtifact(ctx, a.repo.Owner, a.repo.Repo, artifactID, maxRedirects)
	if err != nil {
		return nil, domain.NewUpstreamAPIError(op, statusOf(resp), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating archive request: %w", err)
	}
	archiveResp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamAPIError(op, 0, err)
	}
	//nolint:errcheck // Deferred cleanup, error not actionable
	defer func() { _ = archiveResp.Body.Close() }()

	if archiveResp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamAPIError(op, archiveResp.StatusCode,
			fmt.Errorf("unexpected status downloading archive: %s", archiveResp.Status))
	}

	data, err := io.ReadAll(archiveResp.Body)
	if err != nil {
		return nil, domain.NewUpstreamAPIError(op, archiveResp.StatusCode, fmt.Errorf("reading archive: %w", err))
	}
	return data, nil
}

func toPullRequestRefs(prs []*github.PullRequest) []domain.PullRequestRef {
	refs := make([]domain.PullRequestRef, 0, len(prs))
	for _, pr := range prs {
		if pr == nil {
			continue
		}
		refs = append(refs, domain.PullRequestRef{
			Number:    pr.GetNumber(),
			UpdatedAt: pr.GetUpdatedAt().Time,
		})
	}
	return refs
}

func statusOf(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
