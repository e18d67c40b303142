// Command buttonclicker watches the screen for a "slow download" button and
// clicks it whenever it shows up. Space starts it, Esc stops it.
package main

import (
	"context"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/lkarlslund/buttonclicker/internal/assets"
	"github.com/lkarlslund/buttonclicker/internal/capture"
	"github.com/lkarlslund/buttonclicker/internal/config"
	"github.com/lkarlslund/buttonclicker/internal/control"
	"github.com/lkarlslund/buttonclicker/internal/detect"
	"github.com/lkarlslund/buttonclicker/internal/input"
	"github.com/lkarlslund/buttonclicker/internal/logq"
	"github.com/lkarlslund/buttonclicker/ui"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		logger.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	dpiAware()

	queue := logq.New(logger)
	resolver := assets.New(assets.DefaultMode)
	logger.Info("reference image", "mode", assets.DefaultMode, "path", resolver.Locate(cfg.Template))

	loop := detect.New(cfg, resolver, capture.Screen{}, input.Mouse{}, queue)
	ctl := control.New(loop, queue)
	defer ctl.Close()

	a := app.NewWithID("com.github.lkarlslund.buttonclicker")
	w := ui.New(a, cfg, ctl, loop, queue)
	w.Window().SetMaster()
	ctl.OnChange = w.StateChanged

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Window().SetOnClosed(cancel)

	go w.Pump(ctx)
	go func() {
		keys := input.Bindings{Start: cfg.StartKey, Stop: cfg.StopKey}
		logger.Info("listening for hotkeys", "start", keys.Start, "stop", keys.Stop)
		if err := input.Listen(ctx, keys, func() { go ctl.Start() }, func() { go ctl.Stop() }); err != nil {
			logger.Error("hotkeys unavailable", "error", err)
		}
	}()

	w.Window().ShowAndRun()
}
