// Package ports declares the interfaces the relay application depends on.
// Adapters under internal/relay/adapters implement them.
package ports

import (
	"context"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

// RepositoryQueryPort is the read-only view of the hosting platform used to
// resolve pull requests and fetch workflow run artifacts.
type RepositoryQueryPort interface {
	ListPullRequestsByCommit(ctx context.Context, sha string) ([]domain.PullRequestRef, error)
	ListPullRequests(ctx context.Context, state domain.PRState, head domain.HeadRef) ([]domain.PullRequestRef, error)
	ListArtifacts(ctx context.Context, runID int64) ([]domain.Artifact, error)
	DownloadArtifactBytes(ctx context.Context, artifactID int64) ([]byte, error)
}

// ArchiveStorePort persists downloaded archives on the local filesystem.
type ArchiveStorePort interface {
	// Write stores data at path. Readers never observe a partially written file.
	Write(path string, data []byte) error
	// Extract unpacks the zip archive at archivePath into destDir.
	Extract(archivePath, destDir string) error
}

// CommentPort posts a rendered report to a pull request and returns the
// URL of the created comment.
type CommentPort interface {
	PostComment(ctx context.Context, comment domain.Comment) (string, error)
}
