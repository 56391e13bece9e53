package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariel-frischer/tasktree/internal/progress"
	"github.com/ariel-frischer/tasktree/internal/status"
	"github.com/ariel-frischer/tasktree/internal/tasktree"
)

// ApplyOptions controls how a plan is replayed
type ApplyOptions struct {
	// Step pauses between tasks so a live tree can draw intermediate frames
	Step time.Duration
	// BarWidth is the fill width for bars (0 keeps the progress default)
	BarWidth int
	// Now overrides the clock handed to progress bars
	Now func() time.Time
}

// Apply replays p onto tree. Roots are added with Tree.Add, so a root that
// follows a pending root nests under its active task exactly as it would in
// a live program. Status transitions run after a node's subtasks, which
// means a completed node with pending children fails.
func Apply(ctx context.Context, tree *tasktree.Tree, p *Plan, opts ApplyOptions) error {
	for i := range p.Tasks {
		node := &p.Tasks[i]
		task := tree.Add(node.Text)
		if err := apply(ctx, task, node, opts); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, task *tasktree.Task, node *Node, opts ApplyOptions) error {
	if err := pause(ctx, opts.Step); err != nil {
		return err
	}

	for _, line := range node.Logs {
		task.Log(line)
	}
	for _, line := range node.Warnings {
		task.Warn(line)
	}
	for _, line := range node.Errors {
		task.Error(errors.New(line), false)
	}

	for i, bp := range node.Bars {
		bar, err := task.Bar(bp.Template, progress.Options{
			Total: bp.Total,
			Width: opts.BarWidth,
			Clear: bp.Clear,
			Now:   opts.Now,
		})
		if err != nil {
			return fmt.Errorf("task %q bar %d: %w", node.Text, i, err)
		}
		bar.Tick(bp.Current, bp.Fields)
	}

	for i := range node.Tasks {
		child := &node.Tasks[i]
		var sub *tasktree.Task
		if child.List {
			sub = task.AddList(child.Text)
		} else {
			sub = task.Add(child.Text)
		}
		if err := apply(ctx, sub, child, opts); err != nil {
			return err
		}
	}

	st, ok := status.Parse(node.Status)
	if !ok {
		return fmt.Errorf("task %q: unknown status %q", node.Text, node.Status)
	}

	switch st {
	case status.Completed:
		task.Complete(node.Result)
	case status.Skipped:
		task.Skip(node.Result)
	case status.Failed:
		task.Fail(node.Result)
	case status.Pending:
	}
	return nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
