// Package models defines data structures for probe runs.
package models

import "time"

// OutcomeKind classifies how a single probe attempt ended.
type OutcomeKind string

const (
	// OutcomeSuccess means the command exited with status 0.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeFailure means the command exited with a non-zero status.
	OutcomeFailure OutcomeKind = "failure"
	// OutcomeTimeout means the command was still running at the wait ceiling.
	OutcomeTimeout OutcomeKind = "timeout"
	// OutcomeFault means the command could not be run or waited on.
	OutcomeFault OutcomeKind = "fault"
)

// Attempt represents one invocation of the external command for a model.
type Attempt struct {
	// Model is the model identifier passed to the command.
	Model string `json:"model"`
	// Outcome is the classification of the attempt.
	Outcome OutcomeKind `json:"outcome"`
	// Stdout is the captured standard output.
	Stdout string `json:"stdout,omitempty"`
	// Stderr is the captured standard error.
	Stderr string `json:"stderr,omitempty"`
	// ExitCode is the process exit status, or -1 when it did not exit normally.
	ExitCode int `json:"exit_code"`
	// Fault is the description of an invocation fault (OutcomeFault only).
	Fault string `json:"fault,omitempty"`
	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Succeeded reports whether the attempt is the terminal success state.
func (a Attempt) Succeeded() bool {
	return a.Outcome == OutcomeSuccess
}
