package willowfx

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// presetFile is the YAML layout read by LoadPresets:
//
//	springs:
//	  card: {damping: 12, stiffness: 120}
//	timings:
//	  snappy: {duration: 120, easing: out-cubic}
//	delays:
//	  hero: 250
//
// Durations and delays are in milliseconds.
type presetFile struct {
	Springs map[string]springEntry `yaml:"springs"`
	Timings map[string]timingEntry `yaml:"timings"`
	Delays  map[string]int         `yaml:"delays"`
}

type springEntry struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
}

type timingEntry struct {
	Duration int    `yaml:"duration"`
	Easing   string `yaml:"easing"`
}

// Presets is a set of named drive parameters layered over the built-in
// presets. Lookups of names a file does not define fall back to the built-ins.
type Presets struct {
	springs map[string]SpringConfig
	timings map[string]TimingConfig
	delays  map[string]time.Duration
}

// LoadPresetFile reads and parses a YAML preset file.
func LoadPresetFile(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return LoadPresets(data)
}

// LoadPresets parses YAML preset definitions. Springs need a positive
// stiffness and timings a known easing name (empty means linear).
func LoadPresets(data []byte) (*Presets, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	p := &Presets{
		springs: make(map[string]SpringConfig, len(f.Springs)),
		timings: make(map[string]TimingConfig, len(f.Timings)),
		delays:  make(map[string]time.Duration, len(f.Delays)),
	}
	for name, s := range f.Springs {
		if s.Stiffness <= 0 {
			return nil, fmt.Errorf("parse presets: spring %q: stiffness must be positive", name)
		}
		p.springs[name] = SpringConfig{Damping: s.Damping, Stiffness: s.Stiffness, Mass: s.Mass}
	}
	for name, t := range f.Timings {
		cfg := TimingConfig{Duration: time.Duration(t.Duration) * time.Millisecond}
		if t.Easing != "" {
			fn, ok := EasingByName(t.Easing)
			if !ok {
				return nil, fmt.Errorf("parse presets: timing %q: unknown easing %q", name, t.Easing)
			}
			cfg.Easing = fn
		}
		p.timings[name] = cfg
	}
	for name, ms := range f.Delays {
		p.delays[name] = time.Duration(ms) * time.Millisecond
	}
	return p, nil
}

// Spring returns the named spring, preferring the file's definition.
func (p *Presets) Spring(name string) (SpringConfig, bool) {
	if c, ok := p.springs[name]; ok {
		return c, true
	}
	return SpringPreset(name)
}

// Timing returns the named timing, preferring the file's definition.
func (p *Presets) Timing(name string) (TimingConfig, bool) {
	if c, ok := p.timings[name]; ok {
		return c, true
	}
	return TimingPreset(name)
}

// Delay returns the named delay, preferring the file's definition.
func (p *Presets) Delay(name string) (time.Duration, bool) {
	if d, ok := p.delays[name]; ok {
		return d, true
	}
	return DelayPreset(name)
}
