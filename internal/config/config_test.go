package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actionflow.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", s)
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := writeSettings(t, `
actuation = 0.7
hold_secs = 0.5
tap_secs = 0.15
dead_zone_lower = 0.1
dead_zone_upper = 0.9
key_decay_millis = 200
tick_hz = 30
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Actuation != 0.7 {
		t.Errorf("Actuation = %v, want 0.7", s.Actuation)
	}
	if s.HoldTime() != 500*time.Millisecond {
		t.Errorf("HoldTime = %v, want 500ms", s.HoldTime())
	}
	if s.TapTime() != 150*time.Millisecond {
		t.Errorf("TapTime = %v, want 150ms", s.TapTime())
	}
	if s.DeadZoneLower != 0.1 || s.DeadZoneUpper != 0.9 {
		t.Errorf("dead zone = (%v, %v), want (0.1, 0.9)", s.DeadZoneLower, s.DeadZoneUpper)
	}
	if s.KeyDecay() != 200*time.Millisecond {
		t.Errorf("KeyDecay = %v, want 200ms", s.KeyDecay())
	}
	if s.Tick() != time.Second/30 {
		t.Errorf("Tick = %v, want %v", s.Tick(), time.Second/30)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "actuation = 0.3\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Actuation != 0.3 {
		t.Errorf("Actuation = %v, want 0.3", s.Actuation)
	}
	if s.HoldSecs != Default().HoldSecs || s.TickHz != Default().TickHz {
		t.Errorf("unset fields should keep defaults: %+v", s)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeSettings(t, "actuation = [not toml")
	s, err := Load(path)
	if err == nil {
		t.Fatal("malformed file should error")
	}
	if s != Default() {
		t.Errorf("parse failure should fall back to defaults, got %+v", s)
	}
}

func TestNormalizeRepairsRanges(t *testing.T) {
	path := writeSettings(t, `
actuation = 1.5
hold_secs = -1
dead_zone_lower = 0.9
dead_zone_upper = 0.1
tick_hz = 0
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()
	if s.Actuation != d.Actuation {
		t.Errorf("out-of-range actuation = %v, want default %v", s.Actuation, d.Actuation)
	}
	if s.HoldSecs != d.HoldSecs {
		t.Errorf("negative hold = %v, want default %v", s.HoldSecs, d.HoldSecs)
	}
	if s.DeadZoneLower != d.DeadZoneLower || s.DeadZoneUpper != d.DeadZoneUpper {
		t.Errorf("inverted dead zone = (%v, %v), want defaults", s.DeadZoneLower, s.DeadZoneUpper)
	}
	if s.TickHz != d.TickHz {
		t.Errorf("zero tick = %v, want default %v", s.TickHz, d.TickHz)
	}
}

func TestWatcherReload(t *testing.T) {
	path := writeSettings(t, "actuation = 0.4\n")

	got := make(chan Settings, 1)
	w, err := Watch(path, func(s Settings) {
		select {
		case got <- s:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("actuation = 0.8\n"), 0o644); err != nil {
		t.Fatalf("rewriting settings: %v", err)
	}

	select {
	case s := <-got:
		if s.Actuation != 0.8 {
			t.Errorf("reloaded Actuation = %v, want 0.8", s.Actuation)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
