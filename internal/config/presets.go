package config

import "sort"

var Presets = map[string]*Config{
	"lifecycle": {
		Name: "lifecycle", Element: ElementInt,
		Arrays: map[string][]float64{"a": {1, 2, 3}, "b": {}},
		Steps: []Step{
			{Op: "new", Target: "zeros", Length: 7},
			{Op: "new", Target: "bad", Length: -1},
			{Op: "copy", Target: "a", Into: "c"},
			{Op: "move", Target: "c", Into: "d"},
			{Op: "assign", Target: "b", Right: "d"},
			{Op: "release", Target: "d"},
		},
	},
	"bounds": {
		Name: "bounds", Element: ElementInt,
		Arrays: map[string][]float64{"empty": {}, "a": {1, 2, 3}},
		Steps: []Step{
			{Op: "set", Target: "empty", Index: 1, Value: 2},
			{Op: "get", Target: "empty", Index: 0},
			{Op: "set", Target: "a", Index: 0, Value: 3},
			{Op: "set", Target: "a", Index: 2, Value: 1},
			{Op: "get", Target: "a", Index: 3},
			{Op: "get", Target: "a", Index: -1},
		},
	},
	"concat": {
		Name: "concat", Element: ElementInt,
		Arrays: map[string][]float64{"a": {1}, "b": {2, 3}},
		Steps: []Step{
			{Op: "concat", Left: "a", Right: "b", Into: "c"},
			{Op: "concat_assign", Target: "a", Right: "b"},
		},
	},
	"subtract": {
		Name: "subtract", Element: ElementInt,
		Arrays: map[string][]float64{"a": {10, 10}, "b": {1, 2, 3}},
		Steps: []Step{
			{Op: "sub", Left: "a", Right: "b", Into: "c"},
			{Op: "sub_assign", Target: "a", Right: "b"},
		},
	},
	"scale": {
		Name: "scale", Element: ElementInt,
		Arrays: map[string][]float64{"a": {1, 2, 3}},
		Steps: []Step{
			{Op: "mul", Left: "a", Scalar: Scalar(2), Into: "b"},
			{Op: "mul_assign", Target: "a", Scalar: Scalar(2)},
		},
	},
	"divide": {
		Name: "divide", Element: ElementInt,
		Arrays: map[string][]float64{"a": {8, 16, 32}, "b": {1, 2, 3}},
		Steps: []Step{
			{Op: "div", Left: "a", Scalar: Scalar(2), Into: "c"},
			{Op: "div_assign", Target: "a", Scalar: Scalar(2)},
			{Op: "div_assign", Target: "b", Scalar: Scalar(0)},
			{Op: "div", Left: "b", Scalar: Scalar(0), Into: "d"},
		},
	},
	"cursor": {
		Name: "cursor", Element: ElementInt,
		Arrays: map[string][]float64{"empty": {}, "a": {1, 2, 3}},
		Steps: []Step{
			{Op: "walk", Target: "empty"},
			{Op: "walk", Target: "a"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
