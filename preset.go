package mandala

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when a preset name is not found.
var ErrUnknownPreset = errors.New("mandala: unknown preset")

// Preset is a named partial configuration.
type Preset struct {
	Name      string `yaml:"name"`
	Overrides `yaml:",inline"`
}

//go:embed presets.yaml
var presetsYAML []byte

var (
	defaultPresetsOnce sync.Once
	defaultPresets     []Preset
)

// DefaultPresets returns the built-in presets in display order. The returned
// slice is shared; callers must not modify it.
func DefaultPresets() []Preset {
	defaultPresetsOnce.Do(func() {
		p, err := ParsePresets(presetsYAML)
		if err != nil {
			panic(fmt.Sprintf("mandala: built-in presets: %v", err))
		}
		defaultPresets = p
	})
	return defaultPresets
}

// ParsePresets decodes a YAML list of presets. Every preset must have a
// unique, non-empty name.
func ParsePresets(data []byte) ([]Preset, error) {
	var presets []Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&presets); err != nil {
		return nil, fmt.Errorf("mandala: parse presets: %w", err)
	}
	seen := make(map[string]bool, len(presets))
	for i := range presets {
		p := &presets[i]
		if p.Name == "" {
			return nil, fmt.Errorf("mandala: preset %d has no name", i)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("mandala: duplicate preset %q", p.Name)
		}
		seen[key] = true
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("mandala: preset %q: %w", p.Name, err)
		}
	}
	return presets, nil
}

// FindPreset returns the preset with the given name, compared
// case-insensitively.
func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames returns the names of presets in order.
func PresetNames(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
