package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"interval_ms": 100,
		"bar_width":   20,
		"ascii":       false,
		"no_color":    false,
		"silent":      false,
		"log_level":   "info",
		"log_file":    "",
	}
}

// GetDefaultConfigTemplate returns a JSON config with every
// setting and an example theme section
func GetDefaultConfigTemplate() string {
	return `{
  "interval_ms": 100,
  "bar_width": 20,
  "ascii": false,
  "no_color": false,
  "silent": false,
  "log_level": "info",
  "log_file": "",
  "theme": {
    "active": "#4285f4",
    "success": {"color": "#00c851", "symbol": "✔"},
    "error": ["#ff4444", "✖", "[fail]"],
    "skip": {"badge": "[skip]"}
  }
}
`
}
