//go:build windows

package main

import (
	"log/slog"

	"github.com/lxn/win"
)

// dpiAware makes screen captures and pointer moves use the same physical
// pixels on scaled monitors.
func dpiAware() {
	if !win.SetProcessDPIAware() {
		slog.Warn("SetProcessDPIAware failed, clicks may be off on scaled displays")
	}
}
