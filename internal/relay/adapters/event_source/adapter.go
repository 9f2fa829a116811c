// Package eventsource decodes GitHub Actions workflow_run event payloads.
package eventsource

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/go-github/v68/github"

	"github.com/nathantilsley/run-relay/internal/relay/domain"
)

const eventType = "workflow_run"

// Envelope is a decoded workflow_run notification.
type Envelope struct {
	Action string
	Event  domain.WorkflowRunEvent
	// Repo is the repository the workflow_run event was delivered to.
	// It is zero when the payload has no repository block.
	Repo domain.RepoContext
}

// Load reads and decodes the payload at path (GITHUB_EVENT_PATH).
func Load(path string) (Envelope, error) {
	//nolint:gosec // G304: path comes from the Actions runner environment
	data, err := os.ReadFile(path)
	if err != nil {
		return Envelope{}, fmt.Errorf("reading event payload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a workflow_run payload.
func Parse(payload []byte) (Envelope, error) {
	parsed, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("parsing %s payload: %w", eventType, err)
	}
	ev, ok := parsed.(*github.WorkflowRunEvent)
	if !ok || ev.GetWorkflowRun() == nil {
		return Envelope{}, errors.New("payload has no workflow_run object")
	}

	run := ev.GetWorkflowRun()
	env := Envelope{
		Action: ev.GetAction(),
		Event: domain.WorkflowRunEvent{
			RunID:                  run.GetID(),
			HeadSHA:                run.GetHeadSHA(),
			HeadBranch:             run.GetHeadBranch(),
			HeadRepositoryFullName: run.GetHeadRepository().GetFullName(),
		},
	}

	for _, pr := range run.PullRequests {
		if pr == nil || pr.GetNumber() <= 0 {
			continue
		}
		env.Event.PullRequests = append(env.Event.PullRequests, domain.PullRequestRef{
			Number:    pr.GetNumber(),
			UpdatedAt: pr.GetUpdatedAt().Time,
		})
	}

	if repo := ev.GetRepo(); repo != nil {
		env.Repo = domain.RepoContext{Owner: repo.GetOwner().GetLogin(), Repo: repo.GetName()}
	}

	if env.Event.RunID == 0 {
		return Envelope{}, errors.New("workflow_run payload has no run id")
	}
	return env, nil
}
