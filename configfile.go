package mandala

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is a partial configuration. Nil fields leave the target
// untouched. It is the document shape of config files and presets.
type Overrides struct {
	Symmetry        *int       `yaml:"symmetry,omitempty"`
	Layers          *int       `yaml:"layers,omitempty"`
	Complexity      *float64   `yaml:"complexity,omitempty"`
	LineWidth       *float64   `yaml:"lineWidth,omitempty"`
	Opacity         *float64   `yaml:"opacity,omitempty"`
	Color           *Color     `yaml:"color,omitempty"`
	BackgroundColor *Color     `yaml:"backgroundColor,omitempty"`
	ColorMode       *ColorMode `yaml:"colorMode,omitempty"`
	UseGradient     *bool      `yaml:"useGradient,omitempty"`
	AutoRotate      *bool      `yaml:"autoRotate,omitempty"`
	RotationSpeed   *float64   `yaml:"rotationSpeed,omitempty"`
	PulseEffect     *bool      `yaml:"pulseEffect,omitempty"`
	Animate         *bool      `yaml:"animate,omitempty"`
	Algorithm       *string    `yaml:"algorithm,omitempty"`
	RandomSeed      *float64   `yaml:"randomSeed,omitempty"`

	ParameterAnimation  *bool              `yaml:"parameterAnimation,omitempty"`
	AnimationSpeed      *float64           `yaml:"animationSpeed,omitempty"`
	AnimationParameters map[string]bool    `yaml:"animationParameters,omitempty"`
	AnimationRanges     map[string]Range   `yaml:"animationRanges,omitempty"`
	AnimationSpeeds     map[string]float64 `yaml:"animationSpeeds,omitempty"`
}

// Validate checks the animation sub-records for unknown parameter names.
func (o *Overrides) Validate() error {
	var errs []error
	for name := range o.AnimationParameters {
		if _, ok := ParseParam(name); !ok {
			errs = append(errs, fmt.Errorf("animationParameters: %w: %q", ErrUnknownField, name))
		}
	}
	for name := range o.AnimationRanges {
		if _, ok := ParseParam(name); !ok {
			errs = append(errs, fmt.Errorf("animationRanges: %w: %q", ErrUnknownField, name))
		}
	}
	for name := range o.AnimationSpeeds {
		if _, ok := ParseParam(name); !ok {
			errs = append(errs, fmt.Errorf("animationSpeeds: %w: %q", ErrUnknownField, name))
		}
	}
	if o.ColorMode != nil && !o.ColorMode.Valid() {
		errs = append(errs, fmt.Errorf("colorMode: unknown mode %q", *o.ColorMode))
	}
	return errors.Join(errs...)
}

// ApplyTo copies every set field onto c. Unknown animation keys are skipped;
// call Validate first to reject them.
func (o *Overrides) ApplyTo(c *Config) {
	setIf(&c.Symmetry, o.Symmetry)
	setIf(&c.Layers, o.Layers)
	setIf(&c.Complexity, o.Complexity)
	setIf(&c.LineWidth, o.LineWidth)
	setIf(&c.Opacity, o.Opacity)
	setIf(&c.Color, o.Color)
	setIf(&c.BackgroundColor, o.BackgroundColor)
	setIf(&c.ColorMode, o.ColorMode)
	setIf(&c.UseGradient, o.UseGradient)
	setIf(&c.AutoRotate, o.AutoRotate)
	setIf(&c.RotationSpeed, o.RotationSpeed)
	setIf(&c.PulseEffect, o.PulseEffect)
	setIf(&c.Animate, o.Animate)
	setIf(&c.Algorithm, o.Algorithm)
	setIf(&c.RandomSeed, o.RandomSeed)
	setIf(&c.Animation.Enabled, o.ParameterAnimation)
	setIf(&c.Animation.Speed, o.AnimationSpeed)

	for name, on := range o.AnimationParameters {
		if p, ok := ParseParam(name); ok {
			c.Animation.Params[p] = on
		}
	}
	for name, r := range o.AnimationRanges {
		if p, ok := ParseParam(name); ok {
			c.Animation.Ranges[p] = r
		}
	}
	for name, s := range o.AnimationSpeeds {
		if p, ok := ParseParam(name); ok {
			c.Animation.Speeds[p] = s
		}
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ParseConfig decodes a YAML document and overlays it on DefaultConfig.
// Keys that are not configuration fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var o Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("mandala: parse config: %w", err)
	}
	if err := o.Validate(); err != nil {
		return cfg, fmt.Errorf("mandala: invalid config: %w", err)
	}
	o.ApplyTo(&cfg)
	return cfg, nil
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("mandala: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
