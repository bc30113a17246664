// SPDX-License-Identifier: EPL-2.0

package voxpad

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jvgoveira/voxpad/dsp"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the reference hardware tuning.
const (
	DefaultDurationSeconds = 5
	DefaultSampleRate      = 16000 // 22050 is the documented alternative
	DefaultAlpha           = 0.1
	DefaultWindow          = 4
	DefaultDebounce        = 200 * time.Millisecond
)

// StrategyName selects the capture smoothing strategy.
type StrategyName string

const (
	// StrategyExponential is the default single-pole low-pass filter.
	StrategyExponential StrategyName = "exponential"

	// StrategyWindowedAverage averages a trailing window of raw readings.
	// Available as a configuration-time alternative; not used by default.
	StrategyWindowedAverage StrategyName = "windowed-average"
)

// IsValid reports whether s names a known strategy.
func (s StrategyName) IsValid() bool {
	return s == StrategyExponential || s == StrategyWindowedAverage
}

// SmoothingConfig selects and tunes the capture smoothing stage.
type SmoothingConfig struct {
	// Strategy picks the filter: "exponential" or "windowed-average".
	Strategy StrategyName `yaml:"strategy"`

	// Alpha is the exponential filter coefficient in [0, 1]. 1 disables
	// smoothing, 0 freezes the filter. Only read by "exponential".
	Alpha float32 `yaml:"alpha"`

	// Window is the trailing window length. Only read by "windowed-average".
	Window int `yaml:"window"`
}

// Config holds the compile/config-time constants of the pipeline. None of
// these are renegotiable at runtime: a Looper derives its buffer capacity
// and sample cadence from the Config it was built with.
type Config struct {
	// DurationSeconds is the fixed capture length in whole seconds.
	DurationSeconds int `yaml:"duration_seconds"`

	// SampleRate is the capture and playback rate in Hz.
	SampleRate int `yaml:"sample_rate"`

	// Smoothing tunes the capture filter stage.
	Smoothing SmoothingConfig `yaml:"smoothing"`

	// DebounceMillis is the settle delay after a button press, in
	// milliseconds.
	DebounceMillis int `yaml:"debounce_ms"`
}

// DefaultConfig returns the reference tuning: 5 seconds at 16 kHz, heavy
// exponential smoothing, 200 ms debounce.
func DefaultConfig() Config {
	return Config{
		DurationSeconds: DefaultDurationSeconds,
		SampleRate:      DefaultSampleRate,
		Smoothing: SmoothingConfig{
			Strategy: StrategyExponential,
			Alpha:    DefaultAlpha,
			Window:   DefaultWindow,
		},
		DebounceMillis: int(DefaultDebounce / time.Millisecond),
	}
}

// Load reads the YAML configuration file at path and returns a validated
// Config. Missing fields keep their DefaultConfig values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("voxpad: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("voxpad: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of the defaults and
// validates the result. Unknown fields are rejected. Useful in tests where
// configs are built from string literals.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("voxpad: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that cfg holds a coherent set of values. It returns a
// joined error listing every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.DurationSeconds < 1 {
		errs = append(errs, ErrBadDuration)
	}
	if c.SampleRate < 1 {
		errs = append(errs, ErrBadSampleRate)
	}
	if c.DebounceMillis < 0 {
		errs = append(errs, ErrBadDebounce)
	}

	switch c.Smoothing.Strategy {
	case StrategyExponential:
		if c.Smoothing.Alpha < 0 || c.Smoothing.Alpha > 1 {
			errs = append(errs, ErrBadAlpha)
		}
	case StrategyWindowedAverage:
		if c.Smoothing.Window < 1 {
			errs = append(errs, ErrBadWindow)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Smoothing.Strategy))
	}

	return errors.Join(errs...)
}

// Samples is the derived buffer capacity: duration times sample rate.
func (c Config) Samples() int {
	return c.DurationSeconds * c.SampleRate
}

// Period is the nominal spacing between consecutive samples. The pipeline
// sleeps this long after every read and every output write; it does not
// compensate for the time the work itself takes, so the achieved rate sits
// slightly below nominal.
func (c Config) Period() time.Duration {
	return time.Second / time.Duration(c.SampleRate)
}

// Debounce is the settle delay applied after a button press is detected.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// strategy builds the configured smoothing stage. Validate has already
// vetted the name by the time this runs.
func (c Config) strategy() dsp.Strategy {
	if c.Smoothing.Strategy == StrategyWindowedAverage {
		return dsp.NewWindowed(c.Smoothing.Window)
	}
	return dsp.NewExponential(c.Smoothing.Alpha)
}
