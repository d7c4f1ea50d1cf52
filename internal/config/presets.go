package config

import "sort"

// Named parameter sets for common demos.
var presets = map[string]func() *Config{
	"demo": Default,
	"dense": func() *Config {
		c := Default()
		c.MinPoints = 7
		c.MaxPoints = 9
		c.MinSeparation = 40
		c.TickMs = 300
		return c
	},
	"sparse": func() *Config {
		c := Default()
		c.MinPoints = 3
		c.MaxPoints = 5
		c.MinSeparation = 120
		c.TickMs = 800
		return c
	},
	"crowded": func() *Config {
		// Over-constrained on purpose; exercises the truncation path.
		c := Default()
		c.Width = 200
		c.Height = 200
		c.MinPoints = 9
		c.MaxPoints = 9
		c.MinSeparation = 80
		return c
	},
}

func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
