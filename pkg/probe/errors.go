package probe

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates the probe cannot be configured as requested.
var ErrInvalidOptions = errors.New("invalid options")

// ErrFolderNotFound indicates the document folder does not exist.
var ErrFolderNotFound = errors.New("document folder not found")

// ErrNoSpreadsheet indicates the document folder holds no spreadsheet.
var ErrNoSpreadsheet = errors.New("no spreadsheet found")

// ErrInvocationTimeout indicates the command outlived the wait ceiling.
var ErrInvocationTimeout = errors.New("invocation timed out")

// ErrInvocationFailure indicates the command exited with a non-zero status.
var ErrInvocationFailure = errors.New("invocation failed")

// InvocationFault represents an error starting or waiting on the command.
type InvocationFault struct {
	Model string
	Err   error
}

func (e *InvocationFault) Error() string {
	return fmt.Sprintf("invocation fault with model %q: %v", e.Model, e.Err)
}

func (e *InvocationFault) Unwrap() error {
	return e.Err
}
