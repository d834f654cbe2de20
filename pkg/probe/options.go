// Package probe runs the SFIA smoke test: it checks the document folder for a
// spreadsheet, then invokes the question-answering command once per candidate
// model until one succeeds.
package probe

import (
	"fmt"
	"time"
)

// DefaultQuestion is the fixed question sent to the command under test.
const DefaultQuestion = "what is level 5 description of skill Strategy and planning"

const (
	// DefaultFolder is the document folder probed when none is configured.
	DefaultFolder = "./doc"
	// DefaultBudget is the processing budget requested from the command.
	DefaultBudget = 120 * time.Second
	// DefaultWait is the hard ceiling the runner waits for one invocation.
	// It exceeds DefaultBudget so the command can report its own timeout.
	DefaultWait = 180 * time.Second
)

// DefaultModels returns the candidate models in priority order.
func DefaultModels() []string {
	return []string{
		"llama3.2:3b",
		"deepseek-r1:1.5b",
		"llama3.2:latest",
	}
}

// DefaultCommand returns the command line of the program under test,
// without the per-attempt arguments.
func DefaultCommand() []string {
	return []string{"python", "main.py"}
}

// Options configures a probe run.
type Options struct {
	// Folder is the document folder handed to the command.
	Folder string
	// Question is the free-text instruction argument.
	Question string
	// Models lists candidate model identifiers, tried in order.
	Models []string
	// Command is the program and its leading arguments.
	Command []string
	// Budget is passed to the command as --timeout, in whole seconds.
	Budget time.Duration
	// Wait bounds how long a single invocation may run.
	Wait time.Duration
	// Inspect enables the workbook summary of the first spreadsheet. It reads
	// every row of every sheet, so it is off by default.
	Inspect bool
}

// DefaultOptions returns the options of the fixed smoke test.
func DefaultOptions() Options {
	return Options{
		Folder:   DefaultFolder,
		Question: DefaultQuestion,
		Models:   DefaultModels(),
		Command:  DefaultCommand(),
		Budget:   DefaultBudget,
		Wait:     DefaultWait,
	}
}

// Validate checks that the options describe a runnable probe.
func (o Options) Validate() error {
	if o.Folder == "" {
		return fmt.Errorf("%w: folder is empty", ErrInvalidOptions)
	}
	if len(o.Command) == 0 || o.Command[0] == "" {
		return fmt.Errorf("%w: command is empty", ErrInvalidOptions)
	}
	if len(o.Models) == 0 {
		return fmt.Errorf("%w: no candidate models", ErrInvalidOptions)
	}
	for i, m := range o.Models {
		if m == "" {
			return fmt.Errorf("%w: model %d is empty", ErrInvalidOptions, i+1)
		}
	}
	if o.Budget < time.Second {
		return fmt.Errorf("%w: budget %s is below one second", ErrInvalidOptions, o.Budget)
	}
	if o.Wait <= o.Budget {
		return fmt.Errorf("%w: wait %s must exceed budget %s", ErrInvalidOptions, o.Wait, o.Budget)
	}
	return nil
}

// BudgetSeconds returns the budget as the text value of the --timeout flag.
func (o Options) BudgetSeconds() string {
	return fmt.Sprintf("%d", int64(o.Budget/time.Second))
}

// Args builds the argument list for one attempt with the given model,
// excluding Command[0].
func (o Options) Args(model string) []string {
	args := make([]string, 0, len(o.Command)+7)
	args = append(args, o.Command[1:]...)
	return append(args,
		o.Question,
		"--doc-folder", o.Folder,
		"--model", model,
		"--timeout", o.BudgetSeconds(),
	)
}
