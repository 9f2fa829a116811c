package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository is an in-memory RepositoryQueryPort that records every call.
type fakeRepository struct {
	byCommit  map[string][]domain.PullRequestRef
	byHead    map[string][]domain.PullRequestRef // keyed by headKey
	artifacts map[int64][]domain.Artifact
	blobs     map[int64][]byte
	errs      map[string]error // keyed by method name
	calls     []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byCommit:  make(map[string][]domain.PullRequestRef),
		byHead:    make(map[string][]domain.PullRequestRef),
		artifacts: make(map[int64][]domain.Artifact),
		blobs:     make(map[int64][]byte),
		errs:      make(map[string]error),
	}
}

func headKey(state domain.PRState, head domain.HeadRef) string {
	return string(state) + " " + head.String()
}

func (f *fakeRepository) ListPullRequestsByCommit(_ context.Context, sha string) ([]domain.PullRequestRef, error) {
	f.calls = append(f.calls, "ListPullRequestsByCommit "+sha)
	if err := f.errs["ListPullRequestsByCommit"]; err != nil {
		return nil, err
	}
	return f.byCommit[sha], nil
}

func (f *fakeRepository) ListPullRequests(
	_ context.Context,
	state domain.PRState,
	head domain.HeadRef,
) ([]domain.PullRequestRef, error) {
	f.calls = append(f.calls, "ListPullRequests "+headKey(state, head))
	if err := f.errs["ListPullRequests"]; err != nil {
		return nil, err
	}
	return f.byHead[headKey(state, head)], nil
}

func (f *fakeRepository) ListArtifacts(_ context.Context, runID int64) ([]domain.Artifact, error) {
	f.calls = append(f.calls, fmt.Sprintf("ListArtifacts %d", runID))
	if err := f.errs["ListArtifacts"]; err != nil {
		return nil, err
	}
	return f.artifacts[runID], nil
}

func (f *fakeRepository) DownloadArtifactBytes(_ context.Context, artifactID int64) ([]byte, error) {
	f.calls = append(f.calls, fmt.Sprintf("DownloadArtifactBytes %d", artifactID))
	if err := f.errs["DownloadArtifactBytes"]; err != nil {
		return nil, err
	}
	data, ok := f.blobs[artifactID]
	if !ok {
		return nil, fmt.Errorf("no blob for artifact %d", artifactID)
	}
	return data, nil
}

// fakeCommenter captures posted comments.
type fakeCommenter struct {
	posted []domain.Comment
	err    error
}

func (f *fakeCommenter) PostComment(_ context.Context, c domain.Comment) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.posted = append(f.posted, c)
	return fmt.Sprintf("https://github.com/octo/widgets/pull/%d#issuecomment-1", c.PRNumber), nil
}

// fakeStore keeps written archives in memory.
type fakeStore struct {
	written  map[string][]byte
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{written: make(map[string][]byte)}
}

func (f *fakeStore) Write(path string, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written[path] = append([]byte(nil), data...)
	return nil
}

func (f *fakeStore) Extract(string, string) error {
	return nil
}
