package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ResolutionExhaustedError is returned when no resolution tier produced a
// pull request for a workflow run.
type ResolutionExhaustedError struct {
	RunID     int64
	Attempted []string
}

func (e *ResolutionExhaustedError) Error() string {
	return fmt.Sprintf("could not resolve pull request for workflow run %d (tiers attempted: %s)",
		e.RunID, strings.Join(e.Attempted, ", "))
}

// NewResolutionExhaustedError creates a new ResolutionExhaustedError.
func NewResolutionExhaustedError(runID int64, attempted []string) *ResolutionExhaustedError {
	return &ResolutionExhaustedError{
		RunID:     runID,
		Attempted: attempted,
	}
}

// ArtifactNotFoundError represents a missing artifact name within a workflow run.
type ArtifactNotFoundError struct {
	RunID     int64
	Name      string
	Available []string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact %q not found in workflow run %d (available: %v)", e.Name, e.RunID, e.Available)
}

// NewArtifactNotFoundError creates a new ArtifactNotFoundError.
func NewArtifactNotFoundError(runID int64, name string, available []string) *ArtifactNotFoundError {
	return &ArtifactNotFoundError{
		RunID:     runID,
		Name:      name,
		Available: available,
	}
}

// UpstreamAPIError wraps a failed call to the repository API.
// StatusCode is zero when no HTTP response was received.
type UpstreamAPIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamAPIError) Unwrap() error {
	return e.Err
}

// NewUpstreamAPIError creates a new UpstreamAPIError.
func NewUpstreamAPIError(op string, statusCode int, err error) *UpstreamAPIError {
	return &UpstreamAPIError{
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}

// InvalidTimestampError is returned when candidates cannot be ordered
// because one of them has no usable timestamp.
type InvalidTimestampError struct {
	Subject string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("cannot order candidates: %s is missing or unparseable", e.Subject)
}

// IsResolutionExhausted checks if an error is or wraps a ResolutionExhaustedError.
func IsResolutionExhausted(err error) bool {
	var target *ResolutionExhaustedError
	return errors.As(err, &target)
}

// IsArtifactNotFound checks if an error is or wraps an ArtifactNotFoundError.
func IsArtifactNotFound(err error) bool {
	var target *ArtifactNotFoundError
	return errors.As(err, &target)
}

// IsUpstreamFailure checks if an error is or wraps an UpstreamAPIError.
func IsUpstreamFailure(err error) bool {
	var target *UpstreamAPIError
	return errors.As(err, &target)
}
