package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError with colors for terminal output
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	return format(err, red, yellow, dim)
}

// FormatErrorPlain renders a CLIError without ANSI escape codes
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return format(err, plain, plain, plain)
}

func format(err *CLIError, title, heading, dim func(a ...interface{}) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", title(err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", heading("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", heading("To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", dim(fmt.Sprintf("%d.", i+1)), step)
		}
	}

	return b.String()
}

// FormatSimpleError formats any error under the given category
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(Wrap(err, category))
}

// PrintError writes a formatted error to stderr
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted error to w. Non-CLI errors are shown as Runtime errors.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatSimpleError(err, Runtime))
}
