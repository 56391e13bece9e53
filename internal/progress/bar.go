package progress

import (
	"math"
	"sync"
	"time"
)

// Bar tracks current/total ticks and derives percent, rate and ETA from them.
// A bar ends exactly once: when a tick reaches the total, or on Complete,
// Skip or Fail. Bars are safe for concurrent use.
type Bar struct {
	mu sync.Mutex

	template string
	opts     Options

	current int
	total   int
	start   time.Time
	end     time.Time
	state   State
	fields  map[string]string
}

// New creates a bar that renders with the given template
func New(template string, opts Options) (*Bar, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	return &Bar{
		template: template,
		opts:     opts,
		total:    opts.Total,
		start:    opts.Now(),
		fields:   make(map[string]string),
	}, nil
}

// Tick advances the bar by delta (clamped to the total) and merges fields
// into the template substitutions. Ticks on an ended bar are ignored.
func (b *Bar) Tick(delta int, fields map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Running {
		return
	}

	for k, v := range fields {
		b.fields[k] = v
	}

	if delta > 0 {
		b.current = min(b.current+delta, b.total)
	}

	if b.completed() {
		b.finish(Done)
	}
}

// Complete fills the bar and ends it
func (b *Bar) Complete() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Running {
		return
	}
	b.current = b.total
	b.finish(Done)
}

// Skip ends the bar at its current position
func (b *Bar) Skip() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Running {
		return
	}
	b.finish(Skipped)
}

// Fail ends the bar at its current position
func (b *Bar) Fail() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Running {
		return
	}
	b.finish(Failed)
}

func (b *Bar) finish(state State) {
	b.state = state
	b.end = b.opts.Now()
}

// Current returns the number of ticks so far
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Total returns the number of ticks that completes the bar
func (b *Bar) Total() int {
	return b.total
}

// State returns the bar's lifecycle state
func (b *Bar) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Start returns when the bar was created
func (b *Bar) Start() time.Time {
	return b.start
}

// End returns when the bar ended, or the zero time while running
func (b *Bar) End() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.end
}

// Clear reports whether the bar should be hidden once completed
func (b *Bar) Clear() bool {
	return b.opts.Clear
}

// Ratio returns current/total clamped to [0, 1]
func (b *Bar) Ratio() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ratio()
}

// Percent returns the ratio as a percentage
func (b *Bar) Percent() float64 {
	return b.Ratio() * MaxPercent
}

// Elapsed returns the time between start and end, or now while running
func (b *Bar) Elapsed() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.elapsed()
}

// Rate returns ticks per second, or 0 before any time has elapsed
func (b *Bar) Rate() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rate()
}

// ETA returns the estimated seconds remaining. It is +Inf until a rate is
// known and 0 once the bar has ended.
func (b *Bar) ETA() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.eta()
}

// IsCompleted reports whether the bar reached its total
func (b *Bar) IsCompleted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.completed()
}

func (b *Bar) completed() bool {
	return b.current >= b.total
}

func (b *Bar) ratio() float64 {
	if b.total <= 0 {
		return MaxRatio
	}
	r := float64(b.current) / float64(b.total)
	return math.Max(MinRatio, math.Min(MaxRatio, r))
}

func (b *Bar) elapsed() time.Duration {
	end := b.end
	if end.IsZero() {
		end = b.opts.Now()
	}
	return end.Sub(b.start)
}

func (b *Bar) rate() float64 {
	elapsed := b.elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(b.current) / elapsed
}

func (b *Bar) eta() float64 {
	if b.state != Running || b.completed() {
		return 0
	}
	rate := b.rate()
	if rate == 0 {
		return math.Inf(1)
	}
	return float64(b.total-b.current) / rate
}
