// Package reporting renders the results of a hook run for humans (text) and CI systems (JUnit XML).
package reporting

import (
	"time"

	"github.com/google/uuid"

	"github.com/rwx-research/hookcheck/internal/check"
	"github.com/rwx-research/hookcheck/internal/errors"
)

// State summarizes what happened to a single check during a hook run.
type State string

const (
	StatePassed  State = "passed"
	StateFailed  State = "failed"
	StateErrored State = "errored"
	StateSkipped State = "skipped"
)

// Result is the record of one check within a hook run.
type Result struct {
	Name         string
	InvocationID uuid.UUID
	Duration     time.Duration
	Outcome      check.Outcome
	// Err is set if the check could not be run at all.
	Err     error
	Skipped bool
}

// State returns the state of the check
func (r Result) State() State {
	switch {
	case r.Skipped:
		return StateSkipped
	case r.Err != nil:
		return StateErrored
	case r.Outcome.Passed():
		return StatePassed
	default:
		return StateFailed
	}
}

// Summary counts results per state
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

// Summarize counts `results` per state
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}

	for _, result := range results {
		switch result.State() {
		case StatePassed:
			summary.Passed++
		case StateFailed:
			summary.Failed++
		case StateErrored:
			summary.Errored++
		case StateSkipped:
			summary.Skipped++
		}
	}

	return summary
}

func errorMessage(err error) string {
	if launchErr, ok := errors.AsLaunchError(err); ok {
		return launchErr.Description()
	}

	return err.Error()
}
