package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Logo is the ASCII art logo for tasktree - minimal block style.
var Logo = []string{
	"▀█▀ ▄▀█ █▀ █▄▀ ▀█▀ █▀█ █▀▀ █▀▀",
	" █  █▀█ ▄█ █ █  █  █▀▄ ██▄ ██▄",
}

// Tagline is the project tagline.
const Tagline = "Live task trees for the terminal"

// Box drawing characters
const (
	BoxTopLeft     = "╭"
	BoxTopRight    = "╮"
	BoxBottomLeft  = "╰"
	BoxBottomRight = "╯"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// CenterText centers text within a given width.
func CenterText(text string, width int) string {
	textLen := ansi.StringWidth(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}

// PrintBanner prints the colored logo and tagline, left-aligned.
func PrintBanner(out io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintln(out)
	for _, line := range Logo {
		fmt.Fprintln(out, cyan(line))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, dim(Tagline))
	fmt.Fprintln(out)
}

// Box draws lines inside a rounded box of the given width
func Box(lines []string, width int) string {
	inner := width - 4
	var b strings.Builder

	b.WriteString(BoxTopLeft + strings.Repeat(BoxHorizontal, width-2) + BoxTopRight + "\n")
	for _, line := range lines {
		pad := max(inner-ansi.StringWidth(line), 0)
		b.WriteString(BoxVertical + " " + line + strings.Repeat(" ", pad) + " " + BoxVertical + "\n")
	}
	b.WriteString(BoxBottomLeft + strings.Repeat(BoxHorizontal, width-2) + BoxBottomRight + "\n")

	return b.String()
}
