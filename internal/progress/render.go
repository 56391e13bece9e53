package progress

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ariel-frischer/tasktree/internal/theme"
)

// BarToken is the template token replaced by the fill characters
const BarToken = ":bar"

// Placeholder shown for an ETA that is not yet known
const unknownETA = "--"

var tokenPattern = regexp.MustCompile(`:[A-Za-z_][A-Za-z0-9_]*`)

// Render substitutes the template tokens and colors the result.
//
// Recognized tokens: :bar :current :total :percent :elapsed :eta :etas :rate,
// plus any custom field passed to Tick. Unknown tokens are left as is.
func (b *Bar) Render(t *theme.Theme) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	values := b.tokens()

	// Split on exact :bar tokens only, so :barcode stays a custom field.
	pieces := []string{""}
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(b.template, -1) {
		tok := b.template[loc[0]:loc[1]]
		pieces[len(pieces)-1] += b.template[last:loc[0]]
		last = loc[1]

		switch v, ok := values[tok[1:]]; {
		case tok == BarToken:
			pieces = append(pieces, "")
		case ok:
			pieces[len(pieces)-1] += v
		default:
			pieces[len(pieces)-1] += tok
		}
	}
	pieces[len(pieces)-1] += b.template[last:]

	textWidth := 0
	for _, piece := range pieces {
		textWidth += ansi.StringWidth(piece)
	}

	category := b.category()
	for i, piece := range pieces {
		pieces[i] = t.Paint(piece, category)
	}

	if len(pieces) == 1 {
		return pieces[0]
	}

	fill := b.fill(t, b.barWidth(textWidth, len(pieces)-1))
	return strings.Join(pieces, fill)
}

// barWidth returns the fill width after fitting the line into Columns
func (b *Bar) barWidth(textWidth, bars int) int {
	width := b.opts.Width
	if b.opts.Columns > 0 {
		available := (b.opts.Columns - textWidth) / bars
		width = min(width, available)
	}
	return max(0, width)
}

func (b *Bar) fill(t *theme.Theme, width int) string {
	complete := int(math.Round(float64(width) * b.ratio()))
	done := strings.Repeat(b.opts.Complete, complete)
	rest := strings.Repeat(b.opts.Incomplete, width-complete)

	switch b.state {
	case Failed:
		done = t.Paint(done, theme.Error)
	case Skipped:
		done = t.Paint(done, theme.Skip)
	default:
		done = t.Gradient(done, theme.Gradient{
			Begin:    theme.Active,
			End:      theme.Success,
			Position: b.ratio(),
		})
	}

	return done + t.Paint(rest, theme.Dim)
}

func (b *Bar) category() theme.Category {
	switch b.state {
	case Done:
		return theme.Success
	case Skipped:
		return theme.Skip
	case Failed:
		return theme.Error
	default:
		return theme.Dim
	}
}

func (b *Bar) tokens() map[string]string {
	values := make(map[string]string, len(b.fields)+8)
	for k, v := range b.fields {
		values[k] = v
	}

	eta := unknownETA
	if v := b.eta(); !math.IsInf(v, 0) {
		eta = fmt.Sprintf("%.1f", v)
	}

	values["current"] = strconv.Itoa(b.current)
	values["total"] = strconv.Itoa(b.total)
	values["percent"] = fmt.Sprintf("%.0f%%", b.ratio()*MaxPercent)
	values["elapsed"] = fmt.Sprintf("%.1f", b.elapsed().Seconds())
	values["eta"] = eta
	values["etas"] = eta
	values["rate"] = fmt.Sprintf("%.0f", b.rate())

	return values
}
