package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/tasktree/internal/theme"
)

func newThemeCmd() *cobra.Command {
	var gradientWidth int

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the resolved colors, symbols and badges",
		Long: `Show how every render category resolves after applying the theme
section of the global and local config files.`,
		Example: `  # Show the theme
  tasktree theme

  # Show a wider gradient sample
  tasktree theme --gradient 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			printTheme(s.out, s.theme, s.cfg.ASCII || !s.caps.SupportsUnicode, gradientWidth)
			return nil
		},
	}
	cmd.GroupID = GroupConfiguration
	cmd.Flags().IntVar(&gradientWidth, "gradient", 30, "Width of the progress gradient sample (0 to hide)")

	return cmd
}

func printTheme(w io.Writer, th *theme.Theme, ascii bool, gradientWidth int) {
	border := lipgloss.RoundedBorder()
	if ascii {
		border = lipgloss.ASCIIBorder()
	}

	t := table.New().
		Border(border).
		Headers("CATEGORY", "SYMBOL", "COLOR", "BADGE", "SAMPLE").
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, c := range theme.Categories() {
		t.Row(
			string(c),
			th.Symbol(c),
			th.Color(c),
			th.Badge(c),
			th.Paint("The quick brown fox", c),
		)
	}

	fmt.Fprintln(w, t.String())

	if gradientWidth > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, gradientSample(th, gradientWidth))
	}
}

// gradientSample draws a full bar blending from Active to Success
func gradientSample(th *theme.Theme, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		position := 1.0
		if width > 1 {
			position = float64(i) / float64(width-1)
		}
		b.WriteString(th.Gradient("█", theme.Gradient{
			Begin:    theme.Active,
			End:      theme.Success,
			Position: position,
		}))
	}
	return b.String()
}
