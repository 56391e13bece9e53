// Package progress provides the numeric progress-bar model embedded in tasks:
// ticks against a fixed total, derived percent/rate/ETA, and a templated
// single-line rendering colored through the theme.
package progress

import (
	"time"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

// Defaults for Options fields left at their zero value
const (
	DefaultTotal      = 100
	DefaultWidth      = 20
	DefaultComplete   = "█"
	DefaultIncomplete = "░"
)

// Bounds for percent and ratio
const (
	MinPercent = 0.0
	MaxPercent = 100.0
	MinRatio   = 0.0
	MaxRatio   = 1.0
)

// State represents the lifecycle of a bar
type State int

const (
	// Running indicates the bar still accepts ticks
	Running State = iota
	// Done indicates the bar reached its total or was completed
	Done
	// Skipped indicates the bar was skipped before reaching its total
	Skipped
	// Failed indicates the bar failed before reaching its total
	Failed
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a Bar
type Options struct {
	// Total is the number of ticks that completes the bar (default 100)
	Total int
	// Width is the number of fill characters in the :bar token (default 20)
	Width int
	// Columns caps the rendered line width; the bar shrinks to fit (0 = no cap)
	Columns int
	// Complete is the fill for the completed part of the bar
	Complete string
	// Incomplete is the fill for the remaining part of the bar
	Incomplete string
	// Clear hides the bar once it is completed
	Clear bool
	// Now overrides the wall clock (tests)
	Now func() time.Time
}

// Validate checks that Options fields are usable
func (o Options) Validate() error {
	if o.Total < 0 {
		return apperrors.NewArgumentError("progress total cannot be negative")
	}
	if o.Width < 0 {
		return apperrors.NewArgumentError("progress width cannot be negative")
	}
	if o.Columns < 0 {
		return apperrors.NewArgumentError("progress columns cannot be negative")
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Total == 0 {
		o.Total = DefaultTotal
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Complete == "" {
		o.Complete = DefaultComplete
	}
	if o.Incomplete == "" {
		o.Incomplete = DefaultIncomplete
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
