package domain

import "time"

// WorkflowRunEvent holds the fields of a completed workflow_run notification
// that are needed to trace the run back to its pull request.
// Optional fields are left empty when the payload omits them.
type WorkflowRunEvent struct {
	RunID                  int64
	HeadSHA                string
	HeadBranch             string
	HeadRepositoryFullName string // owner/repo of the head branch, possibly a fork
	PullRequests           []PullRequestRef
}

// HasEmbeddedPullRequests reports whether the platform linked the run to a PR directly.
func (e WorkflowRunEvent) HasEmbeddedPullRequests() bool {
	return len(e.PullRequests) > 0
}

// HasHeadSHA reports whether the run carries a commit SHA.
func (e WorkflowRunEvent) HasHeadSHA() bool {
	return e.HeadSHA != ""
}

// HasForkHead reports whether both the head repository and the head branch
// are known, which is required to build a head reference.
func (e WorkflowRunEvent) HasForkHead() bool {
	return e.HeadRepositoryFullName != "" && e.HeadBranch != ""
}

// PullRequestRef is the minimal view of a pull request used for resolution.
type PullRequestRef struct {
	Number    int
	UpdatedAt time.Time
}
