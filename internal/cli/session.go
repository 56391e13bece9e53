package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/tasktree/internal/config"
	"github.com/ariel-frischer/tasktree/internal/logging"
	"github.com/ariel-frischer/tasktree/internal/output"
	"github.com/ariel-frischer/tasktree/internal/status"
	"github.com/ariel-frischer/tasktree/internal/tasktree"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

// session holds everything a command needs to draw a tree
type session struct {
	cfg    *config.Configuration
	caps   output.Capabilities
	theme  *theme.Theme
	logger *slog.Logger
	closer io.Closer
	out    io.Writer
}

// newSession loads configuration, applies global flags and builds the theme
// and logger. Callers must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	out := cmd.OutOrStdout()
	caps := detectCapabilities(out)
	if cfg.ASCII {
		caps.SupportsUnicode = false
	}
	if cfg.NoColor {
		caps.SupportsColor = false
	}

	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	logger.Debug("session started", "command", cmd.Name(), "tty", caps.IsTTY, "width", caps.Width)

	return &session{
		cfg:    cfg,
		caps:   caps,
		theme:  theme.New(overrides, caps.ThemeOptions()...),
		logger: logger,
		closer: closer,
		out:    out,
	}, nil
}

// applyFlags lets explicit flags win over every config source
func applyFlags(cmd *cobra.Command, cfg *config.Configuration) {
	flags := cmd.Flags()
	if v, _ := flags.GetBool("ascii"); v {
		cfg.ASCII = true
	}
	if v, _ := flags.GetBool("no-color"); v {
		cfg.NoColor = true
	}
	if v, _ := flags.GetBool("debug"); v {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
}

// detectCapabilities treats anything but an *os.File as a non-terminal
func detectCapabilities(w io.Writer) output.Capabilities {
	if f, ok := w.(*os.File); ok {
		return output.DetectTerminalCapabilities(f)
	}
	return output.Capabilities{}
}

// newTree builds a tree drawing to the session output. exit receives the
// code the tree requests on Stop.
func (s *session) newTree(exit func(code int)) *tasktree.Tree {
	return tasktree.New(s.theme,
		tasktree.WithWriter(output.New(s.out, s.caps)),
		tasktree.WithExit(exit),
		tasktree.WithInterval(s.cfg.Interval()),
		tasktree.WithLogger(s.logger),
	)
}

// Close releases the log file
func (s *session) Close() error {
	return s.closer.Close()
}

// anyFailed reports whether any task in the forest failed
func anyFailed(tasks []*tasktree.Task) bool {
	for _, task := range tasks {
		if task.Status() == status.Failed || anyFailed(task.Subtasks()) {
			return true
		}
	}
	return false
}
