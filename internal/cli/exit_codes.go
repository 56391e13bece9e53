package cli

import (
	"sync"

	"github.com/ariel-frischer/tasktree/internal/cli/shared"
)

// Exit codes for the tasktree CLI (re-exported from shared)
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates a failed task or runtime error
	ExitFailure = shared.ExitFailure

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitMissingDependencies indicates a missing plan or config file
	ExitMissingDependencies = shared.ExitMissingDependency
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// exitCapture stands in for os.Exit so deferred cleanup still runs. Only the
// first requested code is kept.
type exitCapture struct {
	mu   sync.Mutex
	code int
	set  bool
}

func (e *exitCapture) exit(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.set {
		e.code, e.set = code, true
	}
}

func (e *exitCapture) requested() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.set
}

// err converts the captured code into an exit error, nil on success
func (e *exitCapture) err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.code == ExitSuccess {
		return nil
	}
	return NewExitError(e.code)
}
