package probe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/ukaji3/sfiaprobe-go/pkg/probe/models"
)

// DefaultWaitDelay bounds how long output pipes are drained after the
// command is killed.
const DefaultWaitDelay = 5 * time.Second

// Invocation describes one synchronous call of the external command.
type Invocation struct {
	Name string
	Args []string
	// Wait is the hard ceiling on the call.
	Wait time.Duration
}

// Result is the tagged outcome of an Invocation.
type Result struct {
	Outcome  models.OutcomeKind
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set for OutcomeFault.
	Err error
}

// Invoker runs an Invocation to completion or until its wait ceiling.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) Result
}

// ExecInvoker runs invocations as child processes.
type ExecInvoker struct {
	// Env is appended to the current environment of the child.
	Env []string
	// Dir is the working directory of the child; empty means the current one.
	Dir string
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// Invoke starts the command, waits up to inv.Wait and classifies the result.
func (e ExecInvoker) Invoke(ctx context.Context, inv Invocation) Result {
	ctx, cancel := context.WithTimeout(ctx, inv.Wait)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = e.Dir
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}
	cmd.WaitDelay = DefaultWaitDelay
	if e.WaitDelay > 0 {
		cmd.WaitDelay = e.WaitDelay
	}

	err := cmd.Run()

	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.Outcome = models.OutcomeSuccess
	case errors.Is(err, exec.ErrWaitDelay) && res.ExitCode == 0:
		// Exited cleanly; a background child kept the output pipes open.
		res.Outcome = models.OutcomeSuccess
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.Outcome = models.OutcomeTimeout
	case ctx.Err() != nil:
		res.Outcome = models.OutcomeFault
		res.Err = ctx.Err()
	case errors.As(err, &exitErr):
		res.Outcome = models.OutcomeFailure
	default:
		res.Outcome = models.OutcomeFault
		res.Err = err
	}
	return res
}

// AttemptError maps a finished attempt onto the error taxonomy.
// It returns nil for a successful attempt.
func AttemptError(a models.Attempt) error {
	switch a.Outcome {
	case models.OutcomeSuccess:
		return nil
	case models.OutcomeFailure:
		return ErrInvocationFailure
	case models.OutcomeTimeout:
		return ErrInvocationTimeout
	default:
		return &InvocationFault{Model: a.Model, Err: errors.New(a.Fault)}
	}
}
