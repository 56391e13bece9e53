package output

import (
	"os"

	"golang.org/x/term"

	"github.com/ariel-frischer/tasktree/internal/theme"
)

// Capabilities encapsulates detected terminal features
type Capabilities struct {
	// IsTTY indicates whether the output is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether ANSI colors should be emitted
	SupportsColor bool
	// SupportsUnicode indicates whether Unicode glyphs and spinner frames can be drawn
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// DetectTerminalCapabilities inspects f and the environment.
// NO_COLOR disables color; TASKTREE_ASCII=1 forces ASCII glyphs.
func DetectTerminalCapabilities(f *os.File) Capabilities {
	isTTY := term.IsTerminal(int(f.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("TASKTREE_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}

	return Capabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// ThemeOptions returns the theme options matching the capabilities
func (c Capabilities) ThemeOptions() []theme.Option {
	return []theme.Option{
		theme.WithASCII(!c.SupportsUnicode),
		theme.WithPlain(!c.SupportsColor),
	}
}
