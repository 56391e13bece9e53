package plan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/tasktree/internal/progress"
	"github.com/ariel-frischer/tasktree/internal/status"
	"github.com/ariel-frischer/tasktree/internal/tasktree"
	"github.com/ariel-frischer/tasktree/internal/testutil"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

func newTree(t *testing.T) (*tasktree.Tree, *testutil.Exits) {
	t.Helper()
	ex := &testutil.Exits{}
	tree := tasktree.New(testutil.PlainTheme(),
		tasktree.WithWriter(&testutil.Recorder{}),
		tasktree.WithExit(ex.Exit),
	)
	return tree, ex
}

func TestApply(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	tree, ex := newTree(t)
	require.NoError(t, Apply(context.Background(), tree, p, ApplyOptions{BarWidth: 8}))

	roots := tree.Tasks()
	require.Len(t, roots, 2, "a completed root lets the next task start a new root")

	build := roots[0]
	assert.Equal(t, status.Completed, build.Status())
	assert.Equal(t, []string{"go build ./..."}, build.Logs())

	subs := build.Subtasks()
	require.Len(t, subs, 2)
	assert.Equal(t, status.Completed, subs[0].Status())
	assert.Equal(t, status.Skipped, subs[1].Status())
	assert.Equal(t, "nothing to lint", subs[1].Text())
	assert.True(t, subs[1].IsList())

	upload := roots[1]
	assert.True(t, upload.IsPending())
	assert.Equal(t, []string{"slow network"}, upload.Warnings())
	bars := upload.Bars()
	require.Len(t, bars, 1)
	assert.Equal(t, 10, bars[0].Current())
	assert.Equal(t, 40, bars[0].Total())
	assert.Equal(t, progress.Running, bars[0].State())

	assert.Empty(t, ex.Codes())

	rendered := theme.Strip(tree.Render())
	assert.Contains(t, rendered, "Build")
	assert.Contains(t, rendered, "[skip]")
	assert.Contains(t, rendered, "25%")
}

func TestApply_PendingRootNestsFollowingRoots(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte("tasks:\n  - text: first\n  - text: second\n"))
	require.NoError(t, err)

	tree, _ := newTree(t)
	require.NoError(t, Apply(context.Background(), tree, p, ApplyOptions{}))

	roots := tree.Tasks()
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Subtasks(), 1)
	assert.Equal(t, "second", roots[0].Subtasks()[0].Text())
}

func TestApply_CompleteWithPendingChildFails(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte("tasks:\n  - text: parent\n    status: completed\n    tasks:\n      - text: child\n"))
	require.NoError(t, err)

	tree, ex := newTree(t)
	require.NoError(t, Apply(context.Background(), tree, p, ApplyOptions{}))

	parent := tree.Tasks()[0]
	assert.Equal(t, status.Failed, parent.Status())
	assert.Equal(t, "parent: "+tasktree.MsgSubtasksIncomplete, parent.Text())
	assert.Equal(t, []int{tasktree.ExitFailure}, ex.Codes())
}

func TestApply_FailedNode(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte(`
tasks:
  - text: deploy
    status: failed
    result: timeout
    errors: ["dial tcp: i/o timeout"]
    bars:
      - template: ":bar"
        total: 10
        current: 4
`))
	require.NoError(t, err)

	tree, ex := newTree(t)
	require.NoError(t, Apply(context.Background(), tree, p, ApplyOptions{}))

	deploy := tree.Tasks()[0]
	assert.Equal(t, status.Failed, deploy.Status())
	assert.Equal(t, "deploy: timeout", deploy.Text())
	assert.Equal(t, []string{"dial tcp: i/o timeout"}, deploy.Errors())
	assert.Equal(t, progress.Failed, deploy.Bars()[0].State())
	assert.Equal(t, 4, deploy.Bars()[0].Current())
	assert.Equal(t, []int{tasktree.ExitFailure}, ex.Codes())
}

func TestApply_InvalidBar(t *testing.T) {
	t.Parallel()

	p := &Plan{Tasks: []Node{{
		Text: "broken",
		Bars: []Bar{{Template: ":bar", Total: -5}},
	}}}

	tree, _ := newTree(t)
	err := Apply(context.Background(), tree, p, ApplyOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `task "broken" bar 0`)
}

func TestApply_UnknownStatus(t *testing.T) {
	t.Parallel()

	p := &Plan{Tasks: []Node{{Text: "odd", Status: "exploded"}}}

	tree, _ := newTree(t)
	err := Apply(context.Background(), tree, p, ApplyOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestApply_Cancelled(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree, _ := newTree(t)
	err = Apply(ctx, tree, p, ApplyOptions{Step: time.Hour})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, tree.Tasks(), 1, "the first root is added before the pause")
}

func TestApply_Step(t *testing.T) {
	t.Parallel()

	p, err := Parse([]byte("tasks:\n  - text: a\n    status: done\n  - text: b\n    status: done\n"))
	require.NoError(t, err)

	tree, _ := newTree(t)
	start := time.Now()
	require.NoError(t, Apply(context.Background(), tree, p, ApplyOptions{Step: 5 * time.Millisecond}))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
