// Package config holds the fixed settings of the button finder.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for settings the detection loop cannot run with.
var ErrInvalid = errors.New("invalid config")

// Nudge moves the pointer a tiny bit after a run of consecutive misses.
type Nudge struct {
	Enabled bool
	After   int
	DX, DY  int
}

type Config struct {
	Title      string
	StartKey   string
	StopKey    string
	Template   string
	Threshold  float32
	Pause      time.Duration
	Nudge      Nudge
	LogLines   int
	DrainEvery time.Duration
}

// Default returns the only configuration the program ships with.
func Default() Config {
	return Config{
		Title:     "Button Finder",
		StartKey:  "space",
		StopKey:   "esc",
		Template:  "slow_download.png",
		Threshold: 0.7,
		Pause:     time.Second,
		Nudge: Nudge{
			Enabled: true,
			After:   5,
			DX:      1,
			DY:      1,
		},
		LogLines:   500,
		DrainEvery: 100 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	switch {
	case c.StartKey == "" || c.StopKey == "":
		return fmt.Errorf("%w: hotkeys must be set", ErrInvalid)
	case c.StartKey == c.StopKey:
		return fmt.Errorf("%w: start and stop hotkeys are both %q", ErrInvalid, c.StartKey)
	case c.Template == "":
		return fmt.Errorf("%w: no template name", ErrInvalid)
	case c.Threshold <= 0 || c.Threshold > 1:
		return fmt.Errorf("%w: threshold %v outside (0, 1]", ErrInvalid, c.Threshold)
	case c.Pause < 0:
		return fmt.Errorf("%w: negative pause %v", ErrInvalid, c.Pause)
	case c.Nudge.Enabled && c.Nudge.After < 1:
		return fmt.Errorf("%w: nudge after %d misses", ErrInvalid, c.Nudge.After)
	}
	return nil
}

// KeybindText is the label shown under the Start/Stop buttons.
func (c Config) KeybindText() string {
	return fmt.Sprintf("Start Keybind: %s, Stop Keybind: %s", c.StartKey, c.StopKey)
}
