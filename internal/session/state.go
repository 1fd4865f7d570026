package session

import (
	"errors"

	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/present"
)

var (
	// ErrBusy is returned when an execution is requested while another
	// one is still running. Requests are not queued.
	ErrBusy = errors.New("a query is already running")

	// ErrNotGradable is returned by Check for lessons without a grading rule.
	ErrNotGradable = errors.New("lesson has no answer check")
)

// Messages shown after an explicit answer check.
const (
	CheckPassedMessage = "Looks good! Marked as completed."
	CheckFailedMessage = "Not quite yet. Compare with the hint or examples."
)

// Phase represents the execution phase of the session. A run moves
// Idle → Executing → Rendered|Errored and returns to Idle once the outcome
// is recorded.
type Phase int

const (
	PhaseIdle      Phase = iota // Nothing run yet, or reset
	PhaseExecuting              // A query is running
	PhaseRendered               // The run produced a view
	PhaseErrored                // The run failed
)

func (p Phase) String() string {
	switch p {
	case PhaseExecuting:
		return "executing"
	case PhaseRendered:
		return "rendered"
	case PhaseErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Outcome is the result of one learner execution.
type Outcome struct {
	// View holds the presented result sets; Empty on failure.
	View present.View `json:"view"`

	// Err is the engine's error message, verbatim. Empty on success.
	Err string `json:"error,omitempty"`

	// Hint explains Err in learner terms, when the error is recognized.
	Hint string `json:"hint,omitempty"`

	// Graded is true when the active lesson's check ran to completion.
	Graded bool `json:"graded"`

	// Passed is the check verdict when Graded.
	Passed bool `json:"passed"`

	// Newly is true when this run completed the lesson for the first time.
	Newly bool `json:"newly_completed"`

	// Result is the grading detail when Graded.
	Result *grading.Result `json:"result,omitempty"`
}
