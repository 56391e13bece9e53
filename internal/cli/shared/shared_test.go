package shared

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":            {err: nil, want: ExitSuccess},
		"exit error":     {err: NewExitError(7), want: 7},
		"wrapped exit":   {err: fmt.Errorf("render: %w", NewExitError(ExitFailure)), want: ExitFailure},
		"argument error": {err: apperrors.MissingPlanArgument(), want: ExitInvalidArguments},
		"missing plan":   {err: apperrors.MissingPlanFile("x.yaml"), want: ExitMissingDependency},
		"config error":   {err: apperrors.NewConfigError("bad"), want: ExitFailure},
		"plain error":    {err: errors.New("boom"), want: ExitFailure},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsExitError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExitError(NewExitError(1)))
	assert.False(t, IsExitError(errors.New("exit code 1")))
	assert.Equal(t, "exit code 3", NewExitError(3).Error())
}

func TestCenterText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   abcd", CenterText("abcd", 10))
	assert.Equal(t, "toolong", CenterText("toolong", 4))
}

func TestBox(t *testing.T) {
	t.Parallel()

	box := Box([]string{"Version  dev", "Go       go1"}, 20)
	lines := strings.Split(strings.TrimSuffix(box, "\n"), "\n")

	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 20, ansi.StringWidth(line), line)
	}
	assert.True(t, strings.HasPrefix(lines[0], BoxTopLeft))
	assert.True(t, strings.HasPrefix(lines[3], BoxBottomLeft))
}

func TestPrintBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), Tagline)
}
