package domain

import "time"

// Artifact is a named build output archive attached to a workflow run.
type Artifact struct {
	ID          int64
	Name        string
	CreatedAt   time.Time
	SizeInBytes int64
}

// FilterByName returns the artifacts whose name equals name exactly,
// preserving input order. Matching is case-sensitive.
func FilterByName(artifacts []Artifact, name string) []Artifact {
	var matched []Artifact
	for _, a := range artifacts {
		if a.Name == name {
			matched = append(matched, a)
		}
	}
	return matched
}

// ArtifactNames lists the names of artifacts in input order.
func ArtifactNames(artifacts []Artifact) []string {
	names := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		names = append(names, a.Name)
	}
	return names
}
