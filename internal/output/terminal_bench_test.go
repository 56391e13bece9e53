package output_test

import (
	"os"
	"strings"
	"testing"

	"github.com/ariel-frischer/tasktree/internal/output"
)

// BenchmarkDetectTerminalCapabilities verifies terminal detection stays cheap enough to run per command
func BenchmarkDetectTerminalCapabilities(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = output.DetectTerminalCapabilities(os.Stdout)
	}
}

// BenchmarkLive_Update measures a redraw of a 50-line frame
func BenchmarkLive_Update(b *testing.B) {
	frame := strings.Repeat("  › ✔ some task text\n", 49) + "last"
	live := output.NewLive(discard{}, 80)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		live.Update(frame)
		live.Update(frame + " ")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
