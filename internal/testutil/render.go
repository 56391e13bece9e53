package testutil

import (
	"sync"

	"github.com/ariel-frischer/tasktree/internal/theme"
)

// PlainTheme returns a colorless Unicode theme whose spinner always shows "*"
func PlainTheme() *theme.Theme {
	return theme.New(nil, theme.WithPlain(true), theme.WithFrames(theme.StaticFrame("*")))
}

// Recorder is an output.Writer that keeps every frame
type Recorder struct {
	mu     sync.Mutex
	frames []string
	done   int
}

// Update records frame
func (r *Recorder) Update(frame string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

// Done counts a finished render
func (r *Recorder) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

// Snapshot returns the frames so far and the number of Done calls
func (r *Recorder) Snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...), r.done
}

// Exits records requested exit codes in place of os.Exit
type Exits struct {
	mu    sync.Mutex
	codes []int
}

// Exit records code
func (e *Exits) Exit(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.codes = append(e.codes, code)
}

// Codes returns every recorded code in order
func (e *Exits) Codes() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.codes...)
}
