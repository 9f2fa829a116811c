package domain

import (
	"fmt"
	"strings"
)

// RepoContext names the base repository that pull requests and
// artifacts are queried against.
type RepoContext struct {
	Owner string
	Repo  string
}

func (r RepoContext) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepository splits an "owner/repo" string, as found in
// GITHUB_REPOSITORY, into a RepoContext.
func ParseRepository(fullName string) (RepoContext, error) {
	parts := strings.Split(strings.TrimSpace(fullName), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoContext{}, fmt.Errorf("invalid repository %q, expected owner/repo", fullName)
	}
	return RepoContext{Owner: parts[0], Repo: parts[1]}, nil
}
