package domain

import (
	"fmt"
	"strings"
)

// PRState filters pull request listings.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
)

// HeadRef identifies the branch a pull request is built from, in the
// "owner:branch" form accepted by the pull request listing API.
type HeadRef struct {
	Owner  string
	Branch string
}

func (h HeadRef) String() string {
	return h.Owner + ":" + h.Branch
}

// ForkHeadRef builds the head reference for a run whose head branch lives in
// fullName ("owner/repo"). Only the owner part of fullName is used.
func ForkHeadRef(fullName, branch string) (HeadRef, error) {
	owner, _, _ := strings.Cut(fullName, "/")
	if owner == "" || branch == "" {
		return HeadRef{}, fmt.Errorf("invalid head reference %q:%q", fullName, branch)
	}
	return HeadRef{Owner: owner, Branch: branch}, nil
}
