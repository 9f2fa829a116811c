// Package prcomment posts rendered reports as pull request comments.
package prcomment

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

// IssuesService is the subset of the go-github issues client used here.
// Pull request conversation comments are issue comments.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

// Adapter implements ports.CommentPort.
type Adapter struct {
	issues IssuesService
	repo   domain.RepoContext
}

// New creates a new PR comment adapter.
func New(client *github.Client, repo domain.RepoContext) *Adapter {
	return NewWithService(client.Issues, repo)
}

// NewWithService creates an adapter with an injectable issues service.
func NewWithService(issues IssuesService, repo domain.RepoContext) *Adapter {
	return &Adapter{issues: issues, repo: repo}
}

// PostComment renders c and posts it on pull request c.PRNumber.
func (a *Adapter) PostComment(ctx context.Context, c domain.Comment) (string, error) {
	if c.PRNumber <= 0 {
		return "", fmt.Errorf("invalid pull request number %d", c.PRNumber)
	}

	created, resp, err := a.issues.CreateComment(ctx, a.repo.Owner, a.repo.Repo, c.PRNumber, &github.IssueComment{
		Body: github.Ptr(c.Render()),
	})
	if err != nil {
		status := 0
		if resp != nil && resp.Response != nil {
			status = resp.StatusCode
		}
		return "", domain.NewUpstreamAPIError(fmt.Sprintf("creating comment on PR #%d", c.PRNumber), status, err)
	}
	return created.GetHTMLURL(), nil
}
