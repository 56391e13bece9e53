// Package tasktree tracks a forest of tasks and redraws it in place on a
// fixed interval until stopped.
//
// The tree only records state. Callers do the work and report it through
// Task operations; a redraw goroutine reads the forest under a shared lock
// and never mutates it.
package tasktree

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ariel-frischer/tasktree/internal/logging"
	"github.com/ariel-frischer/tasktree/internal/output"
	"github.com/ariel-frischer/tasktree/internal/status"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

// DefaultInterval is the redraw period
const DefaultInterval = 100 * time.Millisecond

// Exit codes requested on Stop
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Tree owns the root tasks, the theme and the redraw loop. Construct one per
// process run with New and pass it to every call site that adds tasks.
type Tree struct {
	// mu guards the forest and the state of every task in it
	mu    sync.RWMutex
	tasks []*Task

	theme    *theme.Theme
	writer   output.Writer
	exit     func(code int)
	interval time.Duration
	logger   *slog.Logger

	// loopMu guards the loop handle and the silence flag
	loopMu  sync.Mutex
	silence bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Tree
type Option func(*Tree)

// WithWriter sets the output driver (default: a driver for stdout)
func WithWriter(w output.Writer) Option {
	return func(t *Tree) { t.writer = w }
}

// WithExit replaces os.Exit
func WithExit(exit func(code int)) Option {
	return func(t *Tree) { t.exit = exit }
}

// WithInterval sets the redraw period
func WithInterval(d time.Duration) Option {
	return func(t *Tree) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger sets the logger for lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a tree that renders with th
func New(th *theme.Theme, opts ...Option) *Tree {
	if th == nil {
		th = theme.New(nil)
	}

	t := &Tree{
		theme:    th,
		exit:     os.Exit,
		interval: DefaultInterval,
		logger:   logging.Discard(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.writer == nil {
		t.writer = output.New(os.Stdout, output.DetectTerminalCapabilities(os.Stdout))
	}

	return t
}

// Theme returns the theme shared by the whole render
func (t *Tree) Theme() *theme.Theme {
	return t.theme
}

// Start clears the forest and, unless silenced or already running, starts
// the redraw loop. A silenced tree never redraws and never exits the process.
func (t *Tree) Start(silence bool) {
	t.mu.Lock()
	t.tasks = nil
	t.mu.Unlock()

	t.loopMu.Lock()
	defer t.loopMu.Unlock()

	t.silence = silence
	if t.cancel != nil || silence {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})

	t.logger.Debug("redraw loop started", "interval", t.interval)
	go t.loop(ctx, t.done)
}

func (t *Tree) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.writer.Update(t.Render())
		}
	}
}

// Running reports whether the redraw loop is active
func (t *Tree) Running() bool {
	t.loopMu.Lock()
	defer t.loopMu.Unlock()
	return t.cancel != nil
}

// Stop cancels the redraw loop, draws the final frame and, unless silenced,
// exits the process with ExitSuccess or ExitFailure. Without a running loop
// only the exit decision is made.
func (t *Tree) Stop(success bool) {
	t.loopMu.Lock()
	if t.cancel != nil {
		t.cancel()
		<-t.done

		t.writer.Update(t.Render())
		t.writer.Done()

		t.cancel = nil
		t.done = nil
		t.logger.Debug("redraw loop stopped")
	}
	silence := t.silence
	t.loopMu.Unlock()

	t.logger.Info("tree stopped", "success", success)

	if silence {
		return
	}
	if success {
		t.exit(ExitSuccess)
		return
	}
	t.exit(ExitFailure)
}

// Add attaches a new task to the active task of the last root while that
// root is pending, and starts a new root otherwise.
func (t *Tree) Add(text string) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.tasks); n > 0 && t.tasks[n-1].isPending() {
		return t.tasks[n-1].active().child(text, status.Pending, false)
	}

	task := &Task{mu: &t.mu, tree: t, text: text}
	t.tasks = append(t.tasks, task)
	return task
}

// Tasks returns the root tasks in display order
func (t *Tree) Tasks() []*Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Task(nil), t.tasks...)
}

// Render draws every root task and its subtree
func (t *Tree) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	frames := make([]string, 0, len(t.tasks))
	for _, task := range t.tasks {
		frames = append(frames, task.render(t.theme, 0))
	}
	return theme.Join(theme.Separator, frames...)
}
