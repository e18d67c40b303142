package config

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Threshold != 0.7 {
		t.Errorf("Threshold = %v, want 0.7", c.Threshold)
	}
	if c.StartKey != "space" || c.StopKey != "esc" {
		t.Errorf("hotkeys = %q/%q, want space/esc", c.StartKey, c.StopKey)
	}
	if !c.Nudge.Enabled || c.Nudge.After != 5 {
		t.Errorf("Nudge = %+v, want enabled after 5", c.Nudge)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no start key", func(c *Config) { c.StartKey = "" }},
		{"same keys", func(c *Config) { c.StopKey = c.StartKey }},
		{"no template", func(c *Config) { c.Template = "" }},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }},
		{"threshold above one", func(c *Config) { c.Threshold = 1.5 }},
		{"negative pause", func(c *Config) { c.Pause = -1 }},
		{"nudge never", func(c *Config) { c.Nudge.After = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateDisabledNudgeIgnoresAfter(t *testing.T) {
	c := Default()
	c.Nudge = Nudge{Enabled: false}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestKeybindText(t *testing.T) {
	want := "Start Keybind: space, Stop Keybind: esc"
	if got := Default().KeybindText(); got != want {
		t.Errorf("KeybindText() = %q, want %q", got, want)
	}
}
