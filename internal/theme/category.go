package theme

import "github.com/ariel-frischer/tasktree/internal/status"

// Category is a semantic render group resolved by the Theme into a color,
// a glyph and an optional badge.
type Category string

const (
	Active  Category = "active"
	Success Category = "success"
	Error   Category = "error"
	Skip    Category = "skip"
	Warning Category = "warning"
	Info    Category = "info"
	Message Category = "message"
	Subtask Category = "subtask"
	List    Category = "list"
	Default Category = "default"
	Dim     Category = "dim"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{Active, Success, Error, Skip, Warning, Info, Message, Subtask, List, Default, Dim}
}

// ParseCategory returns the category with the given name
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// ForStatus maps a task status to the category used to draw its title.
// Pending tasks render as List when list-flavored, Active otherwise.
func ForStatus(s status.Status, isList bool) Category {
	switch s {
	case status.Completed:
		return Success
	case status.Skipped:
		return Skip
	case status.Failed:
		return Error
	case status.Pending:
		if isList {
			return List
		}
		return Active
	}
	panic("theme: unhandled status " + s.String())
}
