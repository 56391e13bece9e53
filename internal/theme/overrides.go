package theme

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

// Entry overrides the color, symbol and badge of one category.
// Empty fields keep the built-in default.
type Entry struct {
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Badge  string `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// Overrides maps categories to their overrides
type Overrides map[Category]Entry

// ParseOverrides converts raw theme configuration into Overrides.
// Each value may be a bare color string, a {color, symbol, badge} object
// or a [color, symbol, badge] array.
func ParseOverrides(raw map[string]interface{}) (Overrides, error) {
	out := make(Overrides, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		category, ok := ParseCategory(name)
		if !ok {
			return nil, apperrors.UnknownThemeCategory(name, categoryNames())
		}

		entry, err := parseEntry(name, raw[name])
		if err != nil {
			return nil, err
		}

		if entry.Color != "" {
			if _, err := colorful.Hex(entry.Color); err != nil {
				return nil, apperrors.InvalidColor(name, entry.Color)
			}
		}

		out[category] = entry
	}

	return out, nil
}

func parseEntry(name string, value interface{}) (Entry, error) {
	switch v := value.(type) {
	case nil:
		return Entry{}, nil
	case string:
		return Entry{Color: v}, nil
	case Entry:
		return v, nil
	case map[string]interface{}:
		var e Entry
		for key, field := range v {
			s, ok := field.(string)
			if !ok {
				return Entry{}, apperrors.InvalidThemeEntry(name, value)
			}
			switch key {
			case "color":
				e.Color = s
			case "symbol":
				e.Symbol = s
			case "badge":
				e.Badge = s
			default:
				return Entry{}, apperrors.InvalidThemeEntry(name, value)
			}
		}
		return e, nil
	case []interface{}:
		if len(v) > 3 {
			return Entry{}, apperrors.InvalidThemeEntry(name, value)
		}
		fields := make([]string, 3)
		for i, field := range v {
			s, ok := field.(string)
			if !ok {
				return Entry{}, apperrors.InvalidThemeEntry(name, value)
			}
			fields[i] = s
		}
		return Entry{Color: fields[0], Symbol: fields[1], Badge: fields[2]}, nil
	default:
		return Entry{}, apperrors.InvalidThemeEntry(name, value)
	}
}

func categoryNames() []string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return names
}
