package config

import "testing"

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.validate()

	if cfg.Surface.ScrollOff != DefaultScrollOff {
		t.Errorf("ScrollOff = %d, want %d", cfg.Surface.ScrollOff, DefaultScrollOff)
	}
	if cfg.Surface.StatusBarHeight != StatusBarHeight {
		t.Errorf("StatusBarHeight = %d, want %d", cfg.Surface.StatusBarHeight, StatusBarHeight)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Surface.ScrollOff = -2
	cfg.Surface.StatusBarHeight = 0
	cfg.Logger.LogLevel = ""

	cfg.validate()

	if cfg.Surface.ScrollOff != DefaultScrollOff {
		t.Errorf("ScrollOff = %d after validate, want %d", cfg.Surface.ScrollOff, DefaultScrollOff)
	}
	if cfg.Surface.StatusBarHeight != StatusBarHeight {
		t.Errorf("StatusBarHeight = %d after validate, want %d", cfg.Surface.StatusBarHeight, StatusBarHeight)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q after validate, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" surface, caret ,,app ")
	want := []string{"surface", "caret", "app"}
	if len(got) != len(want) {
		t.Fatalf("splitList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}
