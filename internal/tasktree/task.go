package tasktree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ariel-frischer/tasktree/internal/progress"
	"github.com/ariel-frischer/tasktree/internal/status"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

// Messages written into a task's text when an operation is not allowed
const (
	MsgSubtasksIncomplete = "Subtasks is not complete."
	msgAlreadyComplete    = "Task is already complete (%s)"
)

// Task is one node of the tree. A task leaves Pending exactly once; any later
// transition turns it into a failure that explains what went wrong instead
// of being applied. Errors are never returned to the caller: they show up in
// the rendered tree.
type Task struct {
	mu   *sync.RWMutex
	tree *Tree

	text     string
	status   status.Status
	list     bool
	subtasks []*Task
	logs     orderedSet
	warnings orderedSet
	errors   orderedSet
	bars     []*progress.Bar
}

// NewTask creates a detached task that is not owned by any tree. Failing a
// detached task does not stop anything.
func NewTask(text string) *Task {
	return &Task{mu: &sync.RWMutex{}, text: text}
}

func (t *Task) child(text string, st status.Status, list bool) *Task {
	task := &Task{mu: t.mu, tree: t.tree, text: text, status: st, list: list}
	t.subtasks = append(t.subtasks, task)
	return task
}

// Add appends a pending subtask and returns it. A terminal task can still
// own new subtasks; its own status is not revisited.
func (t *Task) Add(text string) *Task {
	return t.AddWithStatus(text, status.Pending)
}

// AddWithStatus appends a subtask that starts in the given status
func (t *Task) AddWithStatus(text string, st status.Status) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.child(text, st, false)
}

// AddList appends a pending list-flavored subtask
func (t *Task) AddList(text string) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.child(text, status.Pending, true)
}

// Bar attaches a progress bar to the task
func (t *Task) Bar(template string, opts progress.Options) (*progress.Bar, error) {
	bar, err := progress.New(template, opts)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.bars = append(t.bars, bar)
	return bar, nil
}

// Complete marks the task Completed, replacing its text when text is not
// empty. If any direct subtask is still pending the task fails instead.
func (t *Task) Complete(text string) *Task {
	t.mu.Lock()
	for _, sub := range t.subtasks {
		if sub.isPending() {
			t.mu.Unlock()
			return t.Fail(MsgSubtasksIncomplete)
		}
	}
	if t.update(status.Completed, text) {
		for _, bar := range t.bars {
			bar.Complete()
		}
	}
	t.mu.Unlock()
	return t
}

// Skip marks the task Skipped, replacing its text when text is not empty
func (t *Task) Skip(text string) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.update(status.Skipped, text) {
		for _, bar := range t.bars {
			bar.Skip()
		}
	}
	return t
}

// Fail marks the task Failed. A non-empty text is appended to the task's
// text as "<text>: <reason>". Failing any task stops the owning tree as
// unsuccessful.
func (t *Task) Fail(text string) *Task {
	t.mu.Lock()
	if t.update(status.Failed, t.reason(text)) {
		for _, bar := range t.bars {
			bar.Fail()
		}
	}
	tree, description := t.tree, t.text
	t.mu.Unlock()

	if tree != nil {
		tree.logger.Info("task failed", "task", description)
		tree.Stop(false)
	}
	return t
}

// Error records err as an error block under the task. When fail is true the
// task also fails with the first line of the error.
func (t *Task) Error(err error, fail bool) *Task {
	if err == nil {
		return t
	}

	t.mu.Lock()
	if t.isPending() {
		t.errors.add(err.Error())
	}
	t.mu.Unlock()

	if fail {
		first, _, _ := strings.Cut(err.Error(), "\n")
		return t.Fail(first)
	}
	return t
}

// Log records an informational line while the task is pending
func (t *Task) Log(text string) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.isPending() {
		t.logs.add(text)
	}
	return t
}

// Warn records a warning line while the task is pending
func (t *Task) Warn(text string) *Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.isPending() {
		t.warnings.add(text)
	}
	return t
}

// IsPending reports whether the task has not reached a terminal status
func (t *Task) IsPending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isPending()
}

// Active returns the deepest pending task reached by following the last
// subtask while it is pending. It is where new tasks attach.
func (t *Task) Active() *Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active()
}

// Status returns the task's status
func (t *Task) Status() status.Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Text returns the task's display text
func (t *Task) Text() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.text
}

// IsList reports whether the task is list-flavored
func (t *Task) IsList() bool {
	return t.list
}

// Subtasks returns the direct subtasks in display order
func (t *Task) Subtasks() []*Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Task(nil), t.subtasks...)
}

// Logs returns the recorded log lines in insertion order
func (t *Task) Logs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.logs.list()
}

// Warnings returns the recorded warnings in insertion order
func (t *Task) Warnings() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.warnings.list()
}

// Errors returns the recorded error blocks in insertion order
func (t *Task) Errors() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errors.list()
}

// Bars returns the attached progress bars
func (t *Task) Bars() []*progress.Bar {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*progress.Bar(nil), t.bars...)
}

// Render draws the task and its subtree
func (t *Task) Render(th *theme.Theme) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.render(th, 0)
}

func (t *Task) render(th *theme.Theme, level int) string {
	lines := []string{th.Title(theme.Heading{Status: t.status, Text: t.text, List: t.list}, level)}
	lines = append(lines, th.Messages(t.warnings.items, theme.Warning, level)...)
	lines = append(lines, th.Messages(t.logs.items, theme.Info, level)...)
	lines = append(lines, th.Errors(t.errors.items, level)...)

	bars := make([]theme.Bar, 0, len(t.bars))
	for _, bar := range t.bars {
		bars = append(bars, bar)
	}
	lines = append(lines, th.Bars(bars, level+1)...)

	for _, sub := range t.subtasks {
		lines = append(lines, sub.render(th, level+1))
	}

	return theme.Join(theme.Separator, lines...)
}

func (t *Task) isPending() bool {
	return t.status == status.Pending
}

func (t *Task) active() *Task {
	if n := len(t.subtasks); n > 0 && t.subtasks[n-1].isPending() {
		return t.subtasks[n-1].active()
	}
	return t
}

func (t *Task) reason(text string) string {
	if text == "" {
		return t.text
	}
	return t.text + ": " + text
}

// update moves a pending task to st and reports whether it did. A terminal
// task becomes Failed with a message naming the status it already had.
func (t *Task) update(st status.Status, text string) bool {
	if !t.isPending() {
		t.text = t.reason(fmt.Sprintf(msgAlreadyComplete, t.status))
		t.status = status.Failed
		return false
	}

	if text != "" {
		t.text = text
	}
	t.status = st
	return true
}
