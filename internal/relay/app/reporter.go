package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
	"github.com/nathantilsley/run-relay/internal/relay/ports"
)

// ReportRequest describes one reporting pass for a completed workflow run.
type ReportRequest struct {
	Event        domain.WorkflowRunEvent
	ArtifactName string
	ArchivePath  string // where the downloaded zip is written
	ExtractDir   string // where the zip is unpacked
	ReportFile   string // path of the report inside the archive
	Title        string
}

// ReportResult summarises a successful reporting pass.
type ReportResult struct {
	PRNumber   int
	Artifact   domain.Artifact
	CommentURL string
}

// Reporter posts the report carried by a run's artifact onto the pull
// request that triggered the run.
type Reporter struct {
	resolver  *PullRequestResolver
	locator   *ArtifactLocator
	store     ports.ArchiveStorePort
	commenter ports.CommentPort
	logger    *slog.Logger
}

// NewReporter wires a Reporter from its collaborators.
func NewReporter(
	resolver *PullRequestResolver,
	locator *ArtifactLocator,
	store ports.ArchiveStorePort,
	commenter ports.CommentPort,
	logger *slog.Logger,
) *Reporter {
	return &Reporter{
		resolver:  resolver,
		locator:   locator,
		store:     store,
		commenter: commenter,
		logger:    logger,
	}
}

// Run resolves the PR, fetches and unpacks the artifact, and posts the
// report. Any failure stops the pass before a comment is posted.
func (r *Reporter) Run(ctx context.Context, req ReportRequest) (ReportResult, error) {
	if err := req.validate(); err != nil {
		return ReportResult{}, err
	}

	prNumber, err := r.resolver.Resolve(ctx, req.Event)
	if err != nil {
		return ReportResult{}, fmt.Errorf("resolving pull request: %w", err)
	}

	artifact, err := r.locator.Fetch(ctx, req.Event.RunID, req.ArtifactName, req.ArchivePath)
	if err != nil {
		return ReportResult{}, fmt.Errorf("fetching artifact: %w", err)
	}

	if err := r.store.Extract(req.ArchivePath, req.ExtractDir); err != nil {
		return ReportResult{}, fmt.Errorf("extracting artifact: %w", err)
	}

	body, err := readReport(req.ExtractDir, req.ReportFile)
	if err != nil {
		return ReportResult{}, err
	}

	url, err := r.commenter.PostComment(ctx, domain.Comment{
		PRNumber: prNumber,
		Title:    req.Title,
		Body:     body,
	})
	if err != nil {
		return ReportResult{}, fmt.Errorf("posting comment on PR #%d: %w", prNumber, err)
	}

	r.logger.Info("posted report", "pr", prNumber, "url", url)
	return ReportResult{PRNumber: prNumber, Artifact: artifact, CommentURL: url}, nil
}

func (req ReportRequest) validate() error {
	var errs []error
	if req.ArtifactName == "" {
		errs = append(errs, errors.New("artifact name is required"))
	}
	if req.ArchivePath == "" {
		errs = append(errs, errors.New("archive path is required"))
	}
	if req.ExtractDir == "" {
		errs = append(errs, errors.New("extract directory is required"))
	}
	if req.ReportFile == "" {
		errs = append(errs, errors.New("report file is required"))
	}
	if req.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	return errors.Join(errs...)
}

func readReport(extractDir, reportFile string) (string, error) {
	path := filepath.Join(extractDir, filepath.FromSlash(reportFile))
	rel, err := filepath.Rel(extractDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("report file %q escapes extract directory", reportFile)
	}

	//nolint:gosec // G304: path is confined to the extract directory above
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading report %s: %w", reportFile, err)
	}
	return string(data), nil
}
