package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ElementInt   = "int"
	ElementFloat = "float"

	DefaultElement = ElementInt
)

// Config describes a scenario: named literal arrays and the steps applied
// to them, in order.
type Config struct {
	Name    string               `yaml:"name,omitempty"`
	Element string               `yaml:"element"`
	Arrays  map[string][]float64 `yaml:"arrays"`
	Steps   []Step               `yaml:"steps"`
}

// Step is a single operation. Binary ops read Left and Right and store into
// Into; compound ops mutate Target in place.
type Step struct {
	Op     string   `yaml:"op"`
	Target string   `yaml:"target,omitempty"`
	Left   string   `yaml:"left,omitempty"`
	Right  string   `yaml:"right,omitempty"`
	Into   string   `yaml:"into,omitempty"`
	Scalar *float64 `yaml:"scalar,omitempty"`
	Index  int      `yaml:"index,omitempty"`
	Value  float64  `yaml:"value,omitempty"`
	Length int      `yaml:"length,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Element: DefaultElement,
		Arrays:  map[string][]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the element type and that every step names an op.
// Whether an op exists is left to the runner's registry.
func (c *Config) Validate() error {
	switch c.Element {
	case "", ElementInt, ElementFloat:
	default:
		return fmt.Errorf("unknown element type: %s", c.Element)
	}
	for i, s := range c.Steps {
		if s.Op == "" {
			return fmt.Errorf("step %d: missing op", i)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can override fields of a preset.
func (c *Config) Clone() *Config {
	out := &Config{
		Name:    c.Name,
		Element: c.Element,
		Arrays:  make(map[string][]float64, len(c.Arrays)),
		Steps:   make([]Step, len(c.Steps)),
	}
	for name, vals := range c.Arrays {
		out.Arrays[name] = append([]float64(nil), vals...)
	}
	for i, s := range c.Steps {
		if s.Scalar != nil {
			v := *s.Scalar
			s.Scalar = &v
		}
		out.Steps[i] = s
	}
	return out
}

// Scalar is a helper for building steps in code.
func Scalar(v float64) *float64 {
	return &v
}
