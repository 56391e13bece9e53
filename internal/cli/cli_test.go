package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/tasktree/internal/cli/shared"
	"github.com/ariel-frischer/tasktree/internal/config"
	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
	"github.com/ariel-frischer/tasktree/internal/logging"
	"github.com/ariel-frischer/tasktree/internal/plan"
	"github.com/ariel-frischer/tasktree/internal/testutil"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

// runCLI executes the root command with HOME isolated and the local config
// pointed into a temp dir. Returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tmpDir := testutil.IsolateEnv(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(tmpDir, "tasktree.json")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	testutil.WriteFile(t, path, content)
	return path
}

func TestVersion_Plain(t *testing.T) {
	out, err := runCLI(t, "version", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "tasktree dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestVersion_Pretty(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version")
	assert.Contains(t, theme.Strip(out), shared.CenterText(SourceURL, min(44, shared.GetTerminalWidth()))+"\n")
	assert.Contains(t, out, SourceURL)
}

func TestTruncateCommit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abcdef1", truncateCommit("abcdef1234567"))
	assert.Equal(t, "abc", truncateCommit("abc"))
}

func TestRender_Example(t *testing.T) {
	out, err := runCLI(t, "render", "--example")
	require.NoError(t, err)
	assert.Equal(t, ExamplePlan, out)
}

func TestRender_MissingArgument(t *testing.T) {
	_, err := runCLI(t, "render")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestRender_MissingFile(t *testing.T) {
	_, err := runCLI(t, "render", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitMissingDependencies, ExitCode(err))
}

func TestRender_ExamplePlan(t *testing.T) {
	path := writePlan(t, ExamplePlan)

	out, err := runCLI(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Installed 2 dependencies")
	assert.Contains(t, out, "resolved github.com/spf13/cobra")
	assert.Contains(t, out, "cgo disabled")
	assert.Contains(t, out, "Race detector skipped [skip]")
	assert.Contains(t, out, "26/40")
}

func TestRender_FailedPlan(t *testing.T) {
	path := writePlan(t, `
tasks:
  - text: deploy
    status: failed
    result: timeout
`)

	out, err := runCLI(t, "render", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, "deploy: timeout [fail]")
}

func TestRender_Live(t *testing.T) {
	path := writePlan(t, ExamplePlan)

	out, err := runCLI(t, "render", path, "--live", "--step", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed 2 dependencies")
}

func TestRender_InvalidPlan(t *testing.T) {
	path := writePlan(t, "tasks:\n  - status: done\n")

	_, err := runCLI(t, "render", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, err.Error(), "invalid plan")
}

func TestDemo_Silent(t *testing.T) {
	out, err := runCLI(t, "demo", "--silent", "--step", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed 3 dependencies")
	assert.Contains(t, out, "Built tasktree")
	assert.Contains(t, out, "internal/tasktree")
	assert.Contains(t, out, "Race detector skipped [skip]")
}

func TestDemo_SilentFailure(t *testing.T) {
	out, err := runCLI(t, "demo", "--silent", "--fail", "--step", "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, "Test: exit status 1 [fail]")
	assert.Contains(t, out, "render mismatch")
}

func TestDemo_Live(t *testing.T) {
	out, err := runCLI(t, "demo", "--step", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Built tasktree")
}

func TestDemo_LiveFailure(t *testing.T) {
	out, err := runCLI(t, "demo", "--fail", "--step", "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, "[fail]")
}

func TestTheme(t *testing.T) {
	out, err := runCLI(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "#4285f4")
	assert.Contains(t, out, "[skip]")
	assert.Contains(t, out, "[fail]")
}

func TestPrintTheme_SymbolColoredOnce(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	th := theme.New(nil, theme.WithASCII(true))
	symbol := th.Symbol(theme.Success)
	require.NotEqual(t, theme.Strip(symbol), symbol, "symbol should carry color")

	var out bytes.Buffer
	printTheme(&out, th, true, 0)
	assert.Contains(t, out.String(), symbol)
	assert.NotContains(t, out.String(), th.Paint(symbol, theme.Success))
}

func TestRunRender_ReplayErrors(t *testing.T) {
	tests := map[string]struct {
		node     plan.Node
		category apperrors.ErrorCategory
		exitCode int
		message  string
	}{
		"unknown status is a runtime error": {
			node:     plan.Node{Text: "build", Status: "bogus"},
			category: apperrors.Runtime,
			exitCode: ExitFailure,
			message:  `plan replay failed: task "build": unknown status "bogus"`,
		},
		"invalid bar keeps its category": {
			node:     plan.Node{Text: "fetch", Bars: []plan.Bar{{Template: ":bar", Total: -1}}},
			category: apperrors.Argument,
			exitCode: ExitInvalidArguments,
			message:  "plan replay failed: task \"fetch\" bar 0: progress total cannot be negative",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			s := &session{
				cfg:    &config.Configuration{BarWidth: 10, IntervalMS: 100},
				theme:  testutil.PlainTheme(),
				logger: logging.Discard(),
				out:    &out,
			}

			err := runRender(context.Background(), s, &plan.Plan{Tasks: []plan.Node{tt.node}}, renderOptions{})
			require.Error(t, err)

			cliErr := apperrors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.category, cliErr.Category)
			assert.Equal(t, tt.message, cliErr.Message)
			assert.Equal(t, tt.exitCode, ExitCode(err))
		})
	}
}

func TestTheme_ConfigOverride(t *testing.T) {
	tmpDir := testutil.IsolateEnv(t)
	configPath := filepath.Join(tmpDir, "tasktree.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"theme": {"skip": {"badge": "[later]"}}}`), 0644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath, "theme", "--gradient", "0"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[later]")
}

func TestConfigInitAndShow(t *testing.T) {
	tmpDir := testutil.IsolateEnv(t)
	configPath := filepath.Join(tmpDir, "tasktree.json")

	run := func(args ...string) (string, error) {
		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append([]string{"--config", configPath}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+configPath)
	assert.FileExists(t, configPath)

	_, err = run("config", "init")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))

	_, err = run("config", "init", "--force")
	require.NoError(t, err)

	out, err = run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "interval_ms: 100")
	assert.Contains(t, out, "bar_width: 20")
	assert.Contains(t, out, "theme:")
}

func TestConfigInit_Global(t *testing.T) {
	_, err := runCLI(t, "config", "init", "--global")
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".tasktree", "config.json"))
}

func TestGlobalFlags_Override(t *testing.T) {
	out, err := runCLI(t, "--ascii", "--no-color", "--debug", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "ascii: true")
	assert.Contains(t, out, "no_color: true")
	assert.Contains(t, out, "log_level: debug")
}

func TestInvalidConfig(t *testing.T) {
	tmpDir := testutil.IsolateEnv(t)
	configPath := filepath.Join(tmpDir, "tasktree.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"bar_width": 0}`), 0644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "theme"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
