// Package status defines the lifecycle states a tracked task moves through.
package status

// Status represents the completion state of a task
type Status int

const (
	// Pending indicates the task is still running. It is the only non-terminal state.
	Pending Status = iota
	// Completed indicates the task finished successfully
	Completed
	// Failed indicates the task failed
	Failed
	// Skipped indicates the task was skipped
	Skipped
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the status can no longer change
func (s Status) IsTerminal() bool {
	return s != Pending
}

// Parse converts a status name back into a Status.
// The second return value is false for unrecognized names.
func Parse(name string) (Status, bool) {
	switch name {
	case "", "pending":
		return Pending, true
	case "completed", "complete", "done":
		return Completed, true
	case "failed", "fail":
		return Failed, true
	case "skipped", "skip":
		return Skipped, true
	default:
		return Pending, false
	}
}
