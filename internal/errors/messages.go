package errors

import (
	"fmt"
	"strings"
)

// MissingPlanFile reports a plan path that does not exist
func MissingPlanFile(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("plan file not found: %s", path),
		"Check the path passed to 'tasktree render'",
		"Run 'tasktree render --example' to print a sample plan",
	)
}

// MissingPlanArgument reports a render invocation without a plan path
func MissingPlanArgument() *CLIError {
	return NewArgumentErrorWithUsage(
		"no plan file given",
		"tasktree render <plan.yaml>",
		"Pass the path to a YAML plan file",
	)
}

// InvalidPlan reports a plan file that could not be parsed
func InvalidPlan(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("invalid plan %s: %v", path, err),
		Remediation: []string{
			"Each task needs a 'text' field",
			"Valid statuses are: pending, completed, failed, skipped",
		},
		Err: err,
	}
}

// UnknownThemeCategory reports a theme key that is not a render category
func UnknownThemeCategory(name string, valid []string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown theme category %q", name),
		"Valid categories are: "+strings.Join(valid, ", "),
	)
}

// InvalidThemeEntry reports a theme value with an unsupported shape
func InvalidThemeEntry(name string, value interface{}) *CLIError {
	return NewConfigError(
		fmt.Sprintf("invalid theme entry for %q: %v", name, value),
		`Use a color string ("#ff0000"), an object {"color","symbol","badge"} or an array [color, symbol, badge]`,
	)
}

// InvalidColor reports a color that is not a hex value
func InvalidColor(name, value string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("invalid color %q for theme category %q", value, name),
		`Colors must be hex values such as "#ff8800" or "#f80"`,
	)
}
