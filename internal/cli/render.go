package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
	"github.com/ariel-frischer/tasktree/internal/plan"
)

// ExamplePlan is printed by 'tasktree render --example'
const ExamplePlan = `tasks:
  - text: Install dependencies
    status: completed
    result: Installed 2 dependencies
    tasks:
      - text: Fetch spf13/cobra
        status: completed
        logs: [resolved github.com/spf13/cobra]
      - text: Fetch knadh/koanf
        status: completed
  - text: Build
    warnings: [cgo disabled; using pure Go resolver]
    bars:
      - template: ":bar :percent :current/:total"
        total: 40
        current: 26
    tasks:
      - text: Packages
        list: true
        tasks:
          - text: internal/theme
            status: completed
          - text: internal/progress
      - text: Race detector
        status: skipped
        result: Race detector skipped
`

type renderOptions struct {
	example bool
	live    bool
	step    time.Duration
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <plan.yaml>",
		Short: "Render a task tree described by a YAML plan",
		Long: `Render a task tree described by a YAML plan file.

By default the final tree is printed once. With --live the plan is replayed
task by task while the tree redraws in place. A failed task in the plan stops
the tree and the command exits with status 1.`,
		Example: `  # Print a sample plan
  tasktree render --example > plan.yaml

  # Render it
  tasktree render plan.yaml

  # Replay it live
  tasktree render plan.yaml --live --step 300ms`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.example {
				fmt.Fprint(cmd.OutOrStdout(), ExamplePlan)
				return nil
			}
			if len(args) == 0 {
				return apperrors.MissingPlanArgument()
			}

			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runRender(ctx, s, p, opts)
		},
	}
	cmd.GroupID = GroupTrees
	cmd.Flags().BoolVar(&opts.example, "example", false, "Print an example plan and exit")
	cmd.Flags().BoolVar(&opts.live, "live", false, "Replay the plan with live redraws")
	cmd.Flags().DurationVar(&opts.step, "step", 250*time.Millisecond, "Delay between tasks with --live")

	return cmd
}

func runRender(ctx context.Context, s *session, p *plan.Plan, opts renderOptions) error {
	capture := &exitCapture{}
	tree := s.newTree(capture.exit)

	live := opts.live && !s.cfg.Silent
	applyOpts := plan.ApplyOptions{BarWidth: s.cfg.BarWidth}
	if live {
		tree.Start(false)
		applyOpts.Step = opts.step
	}

	s.logger.Debug("applying plan", "tasks", p.Count(), "live", live)
	err := plan.Apply(ctx, tree, p, applyOpts)

	if live && !capture.requested() {
		tree.Stop(err == nil)
	}
	if !live {
		fmt.Fprintln(s.out, tree.Render())
	}

	switch {
	case errors.Is(err, context.Canceled):
		return NewExitError(ExitFailure)
	case apperrors.IsCLIError(err):
		return apperrors.WrapWithMessage(err, apperrors.AsCLIError(err).Category, "plan replay failed")
	case err != nil:
		return apperrors.NewRuntimeError(
			fmt.Sprintf("plan replay failed: %v", err),
			"Check the task statuses in the plan file",
		)
	}

	if anyFailed(tree.Tasks()) {
		return NewExitError(ExitFailure)
	}
	return nil
}
