package theme

import (
	"sync"

	"github.com/briandowns/spinner"
)

// Spinner character sets from briandowns/spinner
const (
	UnicodeSpinnerSet = 14 // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	ASCIISpinnerSet   = 9  // | / - \
)

// FrameSource produces the next animation frame for active tasks
type FrameSource interface {
	Next() string
}

// Frames cycles through a spinner character set, one frame per call
type Frames struct {
	mu     sync.Mutex
	frames []string
	index  int
}

// NewFrames creates a frame source over spinner.CharSets[set].
// Unknown sets fall back to the ASCII set.
func NewFrames(set int) *Frames {
	frames, ok := spinner.CharSets[set]
	if !ok || len(frames) == 0 {
		frames = spinner.CharSets[ASCIISpinnerSet]
	}
	return &Frames{frames: frames}
}

// Next returns the current frame and advances
func (f *Frames) Next() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	frame := f.frames[f.index%len(f.frames)]
	f.index++
	return frame
}

// StaticFrame always returns the same frame
type StaticFrame string

// Next returns the frame
func (s StaticFrame) Next() string { return string(s) }
