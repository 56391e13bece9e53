package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/tasktree/internal/cli/shared"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/ariel-frischer/tasktree"

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for tasktree",
		Example: `  # Show version info
  tasktree version

  # Plain output (for scripts)
  tasktree version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout())
		},
	}
	cmd.GroupID = GroupConfiguration
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "tasktree %s\n", Version)
	fmt.Fprintf(w, "commit: %s\n", Commit)
	fmt.Fprintf(w, "built: %s\n", BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the banner and a boxed summary
func printPrettyVersion(w io.Writer) {
	shared.PrintBanner(w)

	label := color.New(color.FgWhite, color.Bold).SprintFunc()
	value := color.New(color.FgYellow).SprintFunc()

	info := []struct {
		label string
		value string
	}{
		{"Version", Version},
		{"Commit", truncateCommit(Commit)},
		{"Built", BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	lines := make([]string, 0, len(info))
	for _, item := range info {
		lines = append(lines, fmt.Sprintf("%s %s", label(fmt.Sprintf("%-9s", item.label)), value(item.value)))
	}

	boxWidth := min(44, shared.GetTerminalWidth())
	fmt.Fprint(w, shared.Box(lines, boxWidth))
	fmt.Fprintln(w, shared.CenterText(color.New(color.Faint).Sprint(SourceURL), boxWidth))
}

// truncateCommit shortens a commit hash to 7 characters
func truncateCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
