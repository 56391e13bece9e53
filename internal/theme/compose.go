package theme

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ariel-frischer/tasktree/internal/status"
)

// Heading is the part of a task needed to draw its title line
type Heading struct {
	Status status.Status
	Text   string
	List   bool
}

// Bar is a progress bar that can draw itself with a Theme
type Bar interface {
	IsCompleted() bool
	Clear() bool
	Render(t *Theme) string
}

// Title composes a task's title line: an optional nesting prefix, the status
// symbol, the text and the status badge, indented by level.
func (t *Theme) Title(h Heading, level int) string {
	category := ForStatus(h.Status, h.List)
	prefix := ""
	if level > 0 {
		if h.List {
			prefix = t.Symbol(Subtask)
		} else {
			prefix = t.Symbol(Default)
		}
	}

	return IndentBy(level, prefix, t.Symbol(category), h.Text, t.Badge(category))
}

// Errors formats error blocks. The first line of each error is a highlighted
// title; remaining lines are dimmed and nested one level deeper.
func (t *Theme) Errors(errs []string, level int) []string {
	out := make([]string, 0, len(errs))

	for _, text := range errs {
		lines := strings.Split(text, Separator)
		title := Join(Space, t.Symbol(Message), t.Symbol(Error), strings.TrimSpace(lines[0]))

		block := []string{IndentBy(level+step, t.Paint(title, Error))}
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			block = append(block, IndentBy(level+stride, t.Paint(line, Dim)))
		}

		out = append(out, Join(Separator, block...))
	}

	return out
}

// Messages formats a flat list of log or warning lines under a title
func (t *Theme) Messages(list []string, c Category, level int) []string {
	out := make([]string, 0, len(list))
	symbol := t.Symbol(c)
	sign := t.Symbol(Message)

	for _, text := range list {
		out = append(out, IndentBy(level+step, sign, symbol, text))
	}

	return out
}

// Bars renders every bar that is still running or not marked to clear
func (t *Theme) Bars(list []Bar, level int) []string {
	out := make([]string, 0, len(list))

	for _, bar := range list {
		if bar.IsCompleted() && bar.Clear() {
			continue
		}
		out = append(out, IndentBy(level, t.Symbol(Subtask), bar.Render(t)))
	}

	return out
}

// Strip removes ANSI styling from rendered output
func Strip(s string) string {
	return ansi.Strip(s)
}
