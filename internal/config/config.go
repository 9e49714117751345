// Package config loads evaluator tuning settings from TOML and watches
// them for live reload. Settings cover thresholds and timings only;
// bindings themselves are registered in code and never persisted.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings tunes the evaluation pipeline. Changes apply at the next
// frame boundary.
type Settings struct {
	// Actuation is the magnitude threshold above which a value counts
	// as actuated.
	Actuation float64 `toml:"actuation"`

	// HoldSecs is the default hold-condition duration in seconds.
	HoldSecs float64 `toml:"hold_secs"`

	// TapSecs is the default tap-condition window in seconds.
	TapSecs float64 `toml:"tap_secs"`

	// DeadZoneLower and DeadZoneUpper bound the radial dead zone
	// applied to gamepad sticks.
	DeadZoneLower float64 `toml:"dead_zone_lower"`
	DeadZoneUpper float64 `toml:"dead_zone_upper"`

	// KeyDecayMillis is how long a terminal key press is held before
	// auto-release (terminals deliver no key-up events).
	KeyDecayMillis int `toml:"key_decay_millis"`

	// TickHz is the evaluation rate of the demo loop.
	TickHz int `toml:"tick_hz"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Actuation:      0.5,
		HoldSecs:       1.0,
		TapSecs:        0.2,
		DeadZoneLower:  0.2,
		DeadZoneUpper:  1.0,
		KeyDecayMillis: 150,
		TickHz:         60,
	}
}

// HoldTime returns the hold duration.
func (s Settings) HoldTime() time.Duration {
	return time.Duration(s.HoldSecs * float64(time.Second))
}

// TapTime returns the tap window.
func (s Settings) TapTime() time.Duration {
	return time.Duration(s.TapSecs * float64(time.Second))
}

// KeyDecay returns the terminal key auto-release delay.
func (s Settings) KeyDecay() time.Duration {
	return time.Duration(s.KeyDecayMillis) * time.Millisecond
}

// Tick returns the demo frame interval.
func (s Settings) Tick() time.Duration {
	hz := s.TickHz
	if hz <= 0 {
		hz = 60
	}
	return time.Second / time.Duration(hz)
}

// Load reads settings from a TOML file. A missing file is not an
// error: defaults are returned. Fields absent from the file keep their
// defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// normalize repairs out-of-range values rather than failing: a
// degraded threshold beats a frozen pipeline.
func (s *Settings) normalize() {
	if s.Actuation <= 0 || s.Actuation >= 1 {
		s.Actuation = Default().Actuation
	}
	if s.HoldSecs <= 0 {
		s.HoldSecs = Default().HoldSecs
	}
	if s.TapSecs <= 0 {
		s.TapSecs = Default().TapSecs
	}
	if s.DeadZoneUpper <= s.DeadZoneLower {
		s.DeadZoneLower = Default().DeadZoneLower
		s.DeadZoneUpper = Default().DeadZoneUpper
	}
	if s.KeyDecayMillis <= 0 {
		s.KeyDecayMillis = Default().KeyDecayMillis
	}
	if s.TickHz <= 0 {
		s.TickHz = Default().TickHz
	}
}
