// Package output is the terminal driver for the task tree: it replaces the
// previously drawn frame in place on every update and leaves the final frame
// on screen when done.
package output

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Writer receives full frames and redraws them
type Writer interface {
	// Update replaces the previously drawn frame
	Update(frame string)
	// Done leaves the last frame in place and resets the writer
	Done()
}

// New returns a Live writer for terminals and a Static writer otherwise
func New(w io.Writer, caps Capabilities) Writer {
	if caps.IsTTY {
		if f, ok := w.(*os.File); ok {
			return NewLiveFunc(w, terminalWidth(f, caps.Width))
		}
		return NewLive(w, caps.Width)
	}
	return NewStatic(w)
}

// Live redraws frames in place using cursor movement and line erasure
type Live struct {
	mu     sync.Mutex
	w      io.Writer
	sizeFn func() int
	width  int
	last   string
	rows   int
	hidden bool
}

// NewLive creates a Live writer. width is the terminal width used to count
// wrapped rows; 0 means lines never wrap.
func NewLive(w io.Writer, width int) *Live {
	return &Live{w: w, width: width}
}

// NewLiveFunc creates a Live writer that asks width for the terminal width
// before every update, so a resized terminal erases the right number of rows.
func NewLiveFunc(w io.Writer, width func() int) *Live {
	return &Live{w: w, sizeFn: width, width: width()}
}

// terminalWidth queries the current width of f, falling back to def
func terminalWidth(f *os.File, def int) func() int {
	return func() int {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
		return def
	}
}

// Update erases the previous frame and draws frame. Unchanged frames are skipped.
func (l *Live) Update(frame string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sizeFn != nil {
		if w := l.sizeFn(); w != l.width {
			l.width = w
			if l.rows > 0 {
				// the terminal reflows the previous frame at the new width
				l.rows = l.countRows(l.last) + 1
			}
		}
	}

	if frame == l.last && l.rows > 0 {
		return
	}

	var b strings.Builder
	if !l.hidden {
		b.WriteString(ansi.HideCursor)
		l.hidden = true
	}
	b.WriteString(l.erase())
	b.WriteString(frame)
	b.WriteString("\n")

	_, _ = io.WriteString(l.w, b.String())

	l.last = frame
	l.rows = l.countRows(frame) + 1
}

// Done keeps the last frame on screen and restores the cursor
func (l *Live) Done() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hidden {
		_, _ = io.WriteString(l.w, ansi.ShowCursor)
	}
	l.last = ""
	l.rows = 0
	l.hidden = false
}

// erase clears the rows drawn by the previous update, bottom to top
func (l *Live) erase() string {
	var b strings.Builder
	for i := 0; i < l.rows; i++ {
		b.WriteString(ansi.EraseEntireLine)
		if i < l.rows-1 {
			b.WriteString(ansi.CursorUp(1))
		}
	}
	if l.rows > 0 {
		b.WriteString("\r")
	}
	return b.String()
}

// countRows returns how many terminal rows frame occupies
func (l *Live) countRows(frame string) int {
	rows := 0
	for _, line := range strings.Split(frame, "\n") {
		rows++
		if l.width > 0 {
			if w := ansi.StringWidth(line); w > l.width {
				rows += (w - 1) / l.width
			}
		}
	}
	return rows
}

// Static writes only the final frame, for pipes and log files
type Static struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

// NewStatic creates a Static writer
func NewStatic(w io.Writer) *Static {
	return &Static{w: w}
}

// Update records frame without writing it
func (s *Static) Update(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = frame
}

// Done writes the last recorded frame
func (s *Static) Done() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == "" {
		return
	}
	_, _ = io.WriteString(s.w, s.last+"\n")
	s.last = ""
}
