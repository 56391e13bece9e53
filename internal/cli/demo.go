package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/tasktree/internal/progress"
	"github.com/ariel-frischer/tasktree/internal/tasktree"
)

type demoOptions struct {
	fail   bool
	silent bool
	step   time.Duration
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show an animated example tree",
		Long: `Run a short simulated build that exercises every part of a tree:
nested subtasks, list tasks, logs, warnings, errors and progress bars.`,
		Example: `  # Watch the demo
  tasktree demo

  # Watch a run that fails half way
  tasktree demo --fail

  # Print only the final tree
  tasktree demo --silent --step 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runDemo(ctx, s, opts)
		},
	}
	cmd.GroupID = GroupTrees
	cmd.Flags().BoolVar(&opts.fail, "fail", false, "Fail the test stage")
	cmd.Flags().BoolVar(&opts.silent, "silent", false, "Do not redraw; print the final tree once")
	cmd.Flags().DurationVar(&opts.step, "step", 150*time.Millisecond, "Delay between simulated steps")

	return cmd
}

func runDemo(ctx context.Context, s *session, opts demoOptions) error {
	silent := opts.silent || s.cfg.Silent
	capture := &exitCapture{}
	tree := s.newTree(capture.exit)
	tree.Start(silent)

	wait := func() error {
		if opts.step <= 0 {
			return ctx.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.step):
			return nil
		}
	}

	err := demoSteps(tree, s, opts.fail, wait)
	switch {
	case err != nil:
		tree.Stop(false)
	case !capture.requested():
		tree.Stop(true)
	}

	if silent {
		fmt.Fprintln(s.out, tree.Render())
		if anyFailed(tree.Tasks()) {
			return NewExitError(ExitFailure)
		}
	}

	if errors.Is(err, context.Canceled) {
		return NewExitError(ExitFailure)
	}
	if err != nil {
		return err
	}
	return capture.err()
}

func demoSteps(tree *tasktree.Tree, s *session, fail bool, wait func() error) error {
	deps := tree.Add("Install dependencies")
	for _, name := range []string{"spf13/cobra", "knadh/koanf", "fatih/color"} {
		fetch := deps.Add("Fetch " + name)
		if err := wait(); err != nil {
			return err
		}
		fetch.Log("resolved github.com/" + name)
		fetch.Complete("")
	}
	deps.Complete("Installed 3 dependencies")

	build := tree.Add("Build")
	bar, err := build.Bar(":bar :percent :current/:total eta :etas", progress.Options{
		Total:   24,
		Width:   s.cfg.BarWidth,
		Columns: s.caps.Width,
	})
	if err != nil {
		return err
	}
	for i := 0; i < 24; i++ {
		if err := wait(); err != nil {
			return err
		}
		bar.Tick(1, nil)
	}
	build.Warn("cgo disabled; using pure Go resolver")
	build.Complete("Built tasktree")

	test := tree.Add("Test")
	packages := test.AddList("Packages")
	for _, pkg := range []string{"status", "theme", "progress", "tasktree"} {
		run := packages.Add("internal/" + pkg)
		if err := wait(); err != nil {
			return err
		}
		run.Complete("")
	}
	packages.Complete("")

	test.Add("Race detector").Skip("Race detector skipped")

	if fail {
		test.Error(errors.New("exit status 1\n--- FAIL: TestTree_Render (0.00s)\n    render mismatch"), true)
		return nil
	}
	test.Complete("")

	return wait()
}
