// Package ui is the control window: a log panel, Start and Stop buttons and
// the keybind hint.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lkarlslund/buttonclicker/internal/config"
	"github.com/lkarlslund/buttonclicker/internal/control"
	"github.com/lkarlslund/buttonclicker/internal/logq"
)

type Controls interface {
	Start()
	Stop()
	State() control.State
}

type NudgeToggle interface {
	SetNudge(on bool)
	NudgeEnabled() bool
}

// Window renders everything the controller and the detection loop post.
// After Show, only the pump goroutine changes widget state.
type Window struct {
	win   fyne.Window
	ctl   Controls
	queue *logq.Queue
	wake  chan struct{}

	maxLines   int
	drainEvery time.Duration
	lines      []string

	log      *widget.Label
	scroll   *container.Scroll
	startBtn *widget.Button
	stopBtn  *widget.Button
	nudge    *widget.Check
}

func New(a fyne.App, cfg config.Config, ctl Controls, nudge NudgeToggle, q *logq.Queue) *Window {
	a.Settings().SetTheme(theme.DarkTheme())

	w := &Window{
		win:        a.NewWindow(cfg.Title),
		ctl:        ctl,
		queue:      q,
		wake:       make(chan struct{}, 1),
		maxLines:   cfg.LogLines,
		drainEvery: cfg.DrainEvery,
	}

	w.log = widget.NewLabel("")
	w.log.Wrapping = fyne.TextWrapWord
	w.log.TextStyle = fyne.TextStyle{Monospace: true}
	w.scroll = container.NewVScroll(w.log)
	w.scroll.SetMinSize(fyne.NewSize(440, 320))

	// Stop joins the worker; keep that wait off the event goroutine.
	w.startBtn = widget.NewButton("Start", func() { go ctl.Start() })
	w.stopBtn = widget.NewButton("Stop", func() { go ctl.Stop() })

	w.nudge = widget.NewCheck(fmt.Sprintf("Nudge pointer after %d misses", cfg.Nudge.After), nil)
	w.nudge.SetChecked(nudge.NudgeEnabled())
	w.nudge.OnChanged = nudge.SetNudge

	controls := container.NewVBox(
		container.NewGridWithColumns(2, w.startBtn, w.stopBtn),
		widget.NewLabel(cfg.KeybindText()),
		w.nudge,
	)
	w.win.SetContent(container.NewPadded(container.NewBorder(nil, controls, nil, nil, w.scroll)))
	w.sync()

	return w
}

func (w *Window) Window() fyne.Window {
	return w.win
}

// StateChanged wakes the pump so the buttons follow the run state without
// waiting for the next tick. It never blocks and is safe from any goroutine.
func (w *Window) StateChanged(control.State) {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Pump drains the log queue into the panel until ctx ends.
func (w *Window) Pump(ctx context.Context) {
	ticker := time.NewTicker(w.drainEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.queue.Notify():
		case <-w.wake:
		case <-ticker.C:
		}
		w.sync()
	}
}

// sync appends pending lines and matches the buttons to the run state.
func (w *Window) sync() {
	if lines := w.queue.Drain(); len(lines) > 0 {
		w.lines = append(w.lines, lines...)
		if over := len(w.lines) - w.maxLines; w.maxLines > 0 && over > 0 {
			w.lines = append(w.lines[:0], w.lines[over:]...)
		}
		w.log.SetText(strings.Join(w.lines, "\n"))
		w.scroll.ScrollToBottom()
	}

	running := w.ctl.State() == control.Running
	setEnabled(w.startBtn, !running)
	setEnabled(w.stopBtn, running)
	setEnabled(w.nudge, !running)
}

type toggler interface {
	Enable()
	Disable()
	Disabled() bool
}

func setEnabled(t toggler, on bool) {
	switch {
	case on && t.Disabled():
		t.Enable()
	case !on && !t.Disabled():
		t.Disable()
	}
}
