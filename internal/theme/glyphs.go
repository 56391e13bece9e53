package theme

// Glyphs is the named glyph table used for symbols
type Glyphs struct {
	Tick         string
	Cross        string
	ArrowDown    string
	Line         string
	Info         string
	Warning      string
	PointerSmall string
	Pointer      string
}

// UnicodeGlyphs is used on terminals that can draw Unicode
var UnicodeGlyphs = Glyphs{
	Tick:         "✔",
	Cross:        "✖",
	ArrowDown:    "↓",
	Line:         "─",
	Info:         "ℹ",
	Warning:      "⚠",
	PointerSmall: "›",
	Pointer:      "❯",
}

// ASCIIGlyphs is used when TASKTREE_ASCII=1 or output is not a terminal
var ASCIIGlyphs = Glyphs{
	Tick:         "+",
	Cross:        "x",
	ArrowDown:    "v",
	Line:         "-",
	Info:         "i",
	Warning:      "!",
	PointerSmall: ">",
	Pointer:      ">",
}
