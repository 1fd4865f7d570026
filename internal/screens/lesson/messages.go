package lesson

import (
	"github.com/abhisek/sqlquest/internal/grading"
	sess "github.com/abhisek/sqlquest/internal/session"
)

// queryDoneMsg is sent when an execution finishes.
type queryDoneMsg struct {
	Outcome sess.Outcome
	Err     error
}

// checkDoneMsg is sent when an explicit answer check finishes.
type checkDoneMsg struct {
	Result grading.Result
	Err    error
}

// resetDoneMsg is sent when the engine has been recreated.
type resetDoneMsg struct {
	Err error
}
