// Package theme turns task and progress state into styled terminal text.
//
// A Theme resolves each Category to a color, a glyph and an optional badge.
// Explicit overrides win, then the built-in default for the category, then
// the override registered for Default, then a global default.
package theme

import (
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Layout constants
const (
	Separator = "\n"
	Space     = " "
	Indent    = "  "

	// step is the extra nesting for messages and error titles under a title
	step = 1
	// stride is the nesting for error detail lines under a title
	stride = 2
)

// Built-in colors
const (
	ColorActive  = "#4285f4"
	ColorSuccess = "#00c851"
	ColorSkip    = "#ff8800"
	ColorError   = "#ff4444"
	ColorMessage = "#2bbbad"
	ColorInfo    = "#33b5e5"
	ColorWarning = "#ffbb33"
	ColorSubtask = "#838584"
	ColorList    = "#4285f4"
	ColorDim     = "#838584"
	ColorDefault = "#ffffff"
)

// Built-in badges
const (
	BadgeError   = "[fail]"
	BadgeSkip    = "[skip]"
	BadgeDefault = ""
)

// Theme resolves categories to colors, symbols and badges. It is read-only
// after construction and safe for concurrent use.
type Theme struct {
	colors  map[Category]string
	symbols map[Category]string
	badges  map[Category]string

	glyphs Glyphs
	frames FrameSource
	plain  bool
}

// Option configures a Theme
type Option func(*Theme)

// WithASCII selects the ASCII glyph table and spinner set
func WithASCII(ascii bool) Option {
	return func(t *Theme) {
		if ascii {
			t.glyphs = ASCIIGlyphs
			t.frames = NewFrames(ASCIISpinnerSet)
		}
	}
}

// WithPlain disables all coloring
func WithPlain(plain bool) Option {
	return func(t *Theme) { t.plain = plain }
}

// WithFrames replaces the spinner frame source for active tasks
func WithFrames(frames FrameSource) Option {
	return func(t *Theme) { t.frames = frames }
}

// New creates a Theme from per-category overrides
func New(overrides Overrides, opts ...Option) *Theme {
	t := &Theme{
		colors:  make(map[Category]string),
		symbols: make(map[Category]string),
		badges:  make(map[Category]string),
		glyphs:  UnicodeGlyphs,
		frames:  NewFrames(UnicodeSpinnerSet),
	}

	for category, entry := range overrides {
		if entry.Color != "" {
			t.colors[category] = entry.Color
		}
		if entry.Symbol != "" {
			t.symbols[category] = entry.Symbol
		}
		if entry.Badge != "" {
			t.badges[category] = entry.Badge
		}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Color returns the raw color value for a category
func (t *Theme) Color(c Category) string {
	if v, ok := t.colors[c]; ok {
		return v
	}

	switch c {
	case Active:
		return ColorActive
	case Success:
		return ColorSuccess
	case Skip:
		return ColorSkip
	case Error:
		return ColorError
	case Message:
		return ColorMessage
	case Info:
		return ColorInfo
	case Warning:
		return ColorWarning
	case Subtask:
		return ColorSubtask
	case List:
		return ColorList
	case Dim:
		return ColorDim
	}

	if v, ok := t.colors[Default]; ok {
		return v
	}
	return ColorDefault
}

// Symbol returns the glyph for a category, painted in the category's color.
// Active resolves to the next spinner frame.
func (t *Theme) Symbol(c Category) string {
	symbol := t.glyph(c)
	if symbol == "" {
		return symbol
	}
	return t.Paint(symbol, c)
}

func (t *Theme) glyph(c Category) string {
	if v, ok := t.symbols[c]; ok {
		return v
	}

	switch c {
	case Active:
		return t.frames.Next()
	case Success:
		return t.glyphs.Tick
	case Skip:
		return t.glyphs.ArrowDown
	case Error:
		return t.glyphs.Cross
	case Message:
		return t.glyphs.Line
	case Info:
		return t.glyphs.Info
	case Warning:
		return t.glyphs.Warning
	case Subtask:
		return t.glyphs.PointerSmall
	case List:
		return t.glyphs.Pointer
	}

	if v, ok := t.symbols[Default]; ok {
		return v
	}
	return t.glyph(Subtask)
}

// Badge returns the badge for a category painted dim, or "" when there is none
func (t *Theme) Badge(c Category) string {
	badge := t.badge(c)
	if badge == "" {
		return badge
	}
	return t.Paint(badge, Dim)
}

func (t *Theme) badge(c Category) string {
	if v, ok := t.badges[c]; ok {
		return v
	}

	switch c {
	case Error:
		return BadgeError
	case Skip:
		return BadgeSkip
	}

	if v, ok := t.badges[Default]; ok {
		return v
	}
	return BadgeDefault
}

// Paint colors str with the category's color
func (t *Theme) Paint(str string, c Category) string {
	return t.Dye(str, t.Color(c))
}

// Dye colors str with a hex color. Unparseable colors leave str unchanged.
func (t *Theme) Dye(str, hex string) string {
	if t.plain || hex == "" || str == "" {
		return str
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return str
	}
	r, g, b := c.RGB255()
	return color.RGB(int(r), int(g), int(b)).Sprint(str)
}

// Gradient describes a two-color blend between two categories
type Gradient struct {
	Begin    Category
	End      Category
	Position float64 // 0 = Begin, 1 = End
}

// Blend returns the hex color at g.Position between the Begin and End colors
func (t *Theme) Blend(g Gradient) string {
	begin, errBegin := colorful.Hex(t.Color(g.Begin))
	end, errEnd := colorful.Hex(t.Color(g.End))
	if errBegin != nil || errEnd != nil {
		return t.Color(g.End)
	}

	position := math.Max(0, math.Min(1, g.Position))
	switch position {
	case 0:
		return begin.Hex()
	case 1:
		return end.Hex()
	}
	return begin.BlendRgb(end, position).Hex()
}

// Gradient colors str with the blended color at g.Position
func (t *Theme) Gradient(str string, g Gradient) string {
	return t.Dye(str, t.Blend(g))
}

// Join joins the non-empty parts with sep
func Join(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// IndentBy joins parts with spaces and indents the result by level nesting units
func IndentBy(level int, parts ...string) string {
	if level < 0 {
		level = 0
	}
	return strings.Repeat(Indent, level) + Join(Space, parts...)
}
