package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/tasktree/internal/status"
)

func plainTheme(overrides Overrides) *Theme {
	return New(overrides, WithPlain(true), WithFrames(StaticFrame("*")))
}

func TestTheme_Color(t *testing.T) {
	tests := map[string]struct {
		overrides Overrides
		category  Category
		want      string
	}{
		"built-in success":           {category: Success, want: ColorSuccess},
		"built-in error":             {category: Error, want: ColorError},
		"override wins":              {overrides: Overrides{Error: {Color: "#123456"}}, category: Error, want: "#123456"},
		"default category built-in":  {category: Default, want: ColorDefault},
		"default category override":  {overrides: Overrides{Default: {Color: "#abcdef"}}, category: Default, want: "#abcdef"},
		"default does not shadow":    {overrides: Overrides{Default: {Color: "#abcdef"}}, category: Info, want: ColorInfo},
		"unknown falls to default":   {overrides: Overrides{Default: {Color: "#abcdef"}}, category: Category("other"), want: "#abcdef"},
		"unknown falls to global":    {category: Category("other"), want: ColorDefault},
		"symbol-only keeps built-in": {overrides: Overrides{Skip: {Symbol: "~"}}, category: Skip, want: ColorSkip},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.overrides).Color(tt.category))
		})
	}
}

func TestTheme_Symbol(t *testing.T) {
	tests := map[string]struct {
		overrides Overrides
		opts      []Option
		category  Category
		want      string
	}{
		"success tick":          {category: Success, want: "✔"},
		"error cross":           {category: Error, want: "✖"},
		"skip arrow":            {category: Skip, want: "↓"},
		"list pointer":          {category: List, want: "❯"},
		"subtask pointer":       {category: Subtask, want: "›"},
		"active frame":          {category: Active, want: "*"},
		"default uses subtask":  {category: Default, want: "›"},
		"dim uses subtask":      {category: Dim, want: "›"},
		"default override":      {overrides: Overrides{Default: {Symbol: "-"}}, category: Dim, want: "-"},
		"explicit override":     {overrides: Overrides{Success: {Symbol: "ok"}}, category: Success, want: "ok"},
		"ascii table":           {opts: []Option{WithASCII(true)}, category: Error, want: "x"},
		"ascii keeps overrides": {overrides: Overrides{Error: {Symbol: "E"}}, opts: []Option{WithASCII(true)}, category: Error, want: "E"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := append([]Option{WithFrames(StaticFrame("*"))}, tt.opts...)
			th := New(tt.overrides, opts...)
			assert.Equal(t, tt.want, Strip(th.Symbol(tt.category)))
		})
	}
}

func TestTheme_ActiveSymbolAnimates(t *testing.T) {
	th := New(nil, WithPlain(true), WithASCII(true))

	frames := []string{th.Symbol(Active), th.Symbol(Active), th.Symbol(Active), th.Symbol(Active)}
	assert.Equal(t, []string{"|", "/", "-", "\\"}, frames)
}

func TestTheme_Badge(t *testing.T) {
	tests := map[string]struct {
		overrides Overrides
		category  Category
		want      string
	}{
		"error badge":      {category: Error, want: BadgeError},
		"skip badge":       {category: Skip, want: BadgeSkip},
		"success has none": {category: Success, want: ""},
		"default override": {overrides: Overrides{Default: {Badge: "[..]"}}, category: Active, want: "[..]"},
		"explicit":         {overrides: Overrides{Success: {Badge: "[ok]"}}, category: Success, want: "[ok]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(New(tt.overrides).Badge(tt.category)))
		})
	}
}

func TestTheme_Blend(t *testing.T) {
	th := New(Overrides{
		Active:  {Color: "#000000"},
		Success: {Color: "#FF8040"},
	})
	g := Gradient{Begin: Active, End: Success}

	g.Position = 0
	assert.Equal(t, "#000000", th.Blend(g))

	g.Position = 1
	assert.Equal(t, "#ff8040", th.Blend(g))

	g.Position = 0.5
	assert.Equal(t, "#804020", th.Blend(g))

	g.Position = 7
	assert.Equal(t, "#ff8040", th.Blend(g), "position is clamped")
}

func TestTheme_GradientPlain(t *testing.T) {
	th := plainTheme(nil)
	assert.Equal(t, "abc", th.Gradient("abc", Gradient{Begin: Active, End: Success, Position: 0.3}))
}

func TestForStatus(t *testing.T) {
	tests := map[string]struct {
		status status.Status
		list   bool
		want   Category
	}{
		"completed":    {status: status.Completed, want: Success},
		"skipped":      {status: status.Skipped, want: Skip},
		"failed":       {status: status.Failed, want: Error},
		"pending":      {status: status.Pending, want: Active},
		"pending list": {status: status.Pending, list: true, want: List},
		"failed list":  {status: status.Failed, list: true, want: Error},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForStatus(tt.status, tt.list))
		})
	}

	assert.Panics(t, func() { ForStatus(status.Status(99), false) })
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := ParseCategory("sparkle")
	assert.False(t, ok)
}
