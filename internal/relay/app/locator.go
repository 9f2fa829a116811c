package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
	"github.com/nathantilsley/run-relay/internal/relay/ports"
)

// ArtifactLocator selects and downloads the newest artifact of a workflow run.
type ArtifactLocator struct {
	repo   ports.RepositoryQueryPort
	store  ports.ArchiveStorePort
	logger *slog.Logger
}

// NewArtifactLocator creates a locator that lists artifacts through repo and
// persists downloads through store.
func NewArtifactLocator(repo ports.RepositoryQueryPort, store ports.ArchiveStorePort, logger *slog.Logger) *ArtifactLocator {
	return &ArtifactLocator{repo: repo, store: store, logger: logger}
}

// Locate returns the most recently created artifact of runID named exactly name.
// Reruns of a job upload same-named artifacts; the newest one wins.
func (l *ArtifactLocator) Locate(ctx context.Context, runID int64, name string) (domain.Artifact, error) {
	artifacts, err := l.repo.ListArtifacts(ctx, runID)
	if err != nil {
		return domain.Artifact{}, err
	}

	matched := domain.FilterByName(artifacts, name)
	l.logger.Debug("listed run artifacts", "runID", runID, "total", len(artifacts), "matching", len(matched))

	selected, ok, err := domain.NewestArtifact(matched)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("selecting artifact %q: %w", name, err)
	}
	if !ok {
		return domain.Artifact{}, domain.NewArtifactNotFoundError(runID, name, domain.ArtifactNames(artifacts))
	}
	return selected, nil
}

// Download writes the artifact's archive bytes to destPath unchanged,
// replacing any existing file.
func (l *ArtifactLocator) Download(ctx context.Context, artifact domain.Artifact, destPath string) error {
	data, err := l.repo.DownloadArtifactBytes(ctx, artifact.ID)
	if err != nil {
		return err
	}

	if err := l.store.Write(destPath, data); err != nil {
		return fmt.Errorf("writing artifact %d to %s: %w", artifact.ID, destPath, err)
	}

	l.logger.Info("downloaded artifact",
		"artifact", artifact.Name,
		"artifactID", artifact.ID,
		"bytes", len(data),
		"path", destPath,
	)
	return nil
}

// Fetch locates the newest artifact named name and downloads it to destPath.
func (l *ArtifactLocator) Fetch(ctx context.Context, runID int64, name, destPath string) (domain.Artifact, error) {
	artifact, err := l.Locate(ctx, runID, name)
	if err != nil {
		return domain.Artifact{}, err
	}
	if err := l.Download(ctx, artifact, destPath); err != nil {
		return domain.Artifact{}, err
	}
	return artifact, nil
}
