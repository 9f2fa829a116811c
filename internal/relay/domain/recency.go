package domain

import (
	"fmt"
	"slices"
	"time"
)

// SortByRecency returns a copy of items ordered newest first by the
// timestamp returned from at. Items with equal timestamps keep their
// input order. A single item is returned as-is; with more than one,
// every item must carry a non-zero timestamp.
func SortByRecency[T any](items []T, at func(T) time.Time, describe func(T) string) ([]T, error) {
	sorted := slices.Clone(items)
	if len(sorted) < 2 {
		return sorted, nil
	}

	for _, item := range sorted {
		if at(item).IsZero() {
			return nil, &InvalidTimestampError{Subject: describe(item)}
		}
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	return sorted, nil
}

// NewestPullRequest returns the most recently updated pull request.
// The second return value is false when prs is empty.
func NewestPullRequest(prs []PullRequestRef) (PullRequestRef, bool, error) {
	sorted, err := SortByRecency(prs,
		func(pr PullRequestRef) time.Time { return pr.UpdatedAt },
		func(pr PullRequestRef) string { return fmt.Sprintf("pull request #%d updated_at", pr.Number) },
	)
	if err != nil || len(sorted) == 0 {
		return PullRequestRef{}, false, err
	}
	return sorted[0], true, nil
}

// NewestArtifact returns the most recently created artifact.
// The second return value is false when artifacts is empty.
func NewestArtifact(artifacts []Artifact) (Artifact, bool, error) {
	sorted, err := SortByRecency(artifacts,
		func(a Artifact) time.Time { return a.CreatedAt },
		func(a Artifact) string { return fmt.Sprintf("artifact %d (%s) created_at", a.ID, a.Name) },
	)
	if err != nil || len(sorted) == 0 {
		return Artifact{}, false, err
	}
	return sorted[0], true, nil
}
