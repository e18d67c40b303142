// Package detect runs the capture, match and click loop.
package detect

import (
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/lkarlslund/buttonclicker/internal/assets"
	"github.com/lkarlslund/buttonclicker/internal/capture"
	"github.com/lkarlslund/buttonclicker/internal/config"
	"github.com/lkarlslund/buttonclicker/internal/vision"
)

type Capturer interface {
	Capture() (capture.Shot, error)
}

type Pointer interface {
	Click(p image.Point)
	Nudge(dx, dy int)
}

type Sink interface {
	Post(line string)
}

// Loop looks for one button on screen and clicks it whenever it shows up.
type Loop struct {
	assets    assets.Resolver
	template  string
	threshold float32
	pause     time.Duration
	nudge     config.Nudge
	nudgeOn   atomic.Bool

	screen  Capturer
	pointer Pointer
	log     Sink
}

func New(cfg config.Config, r assets.Resolver, screen Capturer, pointer Pointer, log Sink) *Loop {
	l := &Loop{
		assets:    r,
		template:  cfg.Template,
		threshold: cfg.Threshold,
		pause:     cfg.Pause,
		nudge:     cfg.Nudge,
		screen:    screen,
		pointer:   pointer,
		log:       log,
	}
	l.nudgeOn.Store(cfg.Nudge.Enabled)
	return l
}

// SetNudge turns the idle pointer nudge on or off. It applies from the next Run.
func (l *Loop) SetNudge(on bool) {
	l.nudgeOn.Store(on)
}

func (l *Loop) NudgeEnabled() bool {
	return l.nudgeOn.Load()
}

// Run loads the template and iterates until enabled is false. enabled is
// only checked between iterations. Closing wake ends a pause early.
func (l *Loop) Run(enabled *atomic.Bool, wake <-chan struct{}) {
	t, err := l.loadTemplate()
	if err != nil {
		l.logf("Failed to load reference image from %s: %v", l.assets.Locate(l.template), err)
		return
	}
	defer t.Close()

	nudge := l.nudge
	nudge.Enabled = l.nudgeOn.Load()

	var misses int
	for enabled.Load() {
		l.iterate(t, nudge, &misses)
		l.sleep(wake)
	}
	l.log.Post("Detection loop exited.")
}

func (l *Loop) loadTemplate() (*vision.Template, error) {
	data, err := assets.Read(l.assets, l.template)
	if err != nil {
		return nil, err
	}
	return vision.DecodeTemplate(data)
}

func (l *Loop) iterate(t *vision.Template, nudge config.Nudge, misses *int) {
	shot, err := l.screen.Capture()
	if err != nil {
		*misses++
		l.logf("Screen capture failed: %v. Fail count: %d", err, *misses)
		l.maybeNudge(nudge, misses)
		return
	}

	m, err := vision.Find(shot.Image, t)
	if err != nil {
		*misses++
		l.logf("Matching failed: %v. Fail count: %d", err, *misses)
		l.maybeNudge(nudge, misses)
		return
	}

	if m.Found(l.threshold) {
		*misses = 0
		target := shot.ToScreen(m.Center(t))
		l.pointer.Click(target)
		l.logf("Button found at: (%d, %d) with match confidence: %.4f", target.X, target.Y, m.Score)
		return
	}

	*misses++
	l.logf("Button not found. Max confidence: %.4f. Fail count: %d", m.Score, *misses)
	l.maybeNudge(nudge, misses)
}

func (l *Loop) maybeNudge(nudge config.Nudge, misses *int) {
	if !nudge.Enabled || *misses < nudge.After {
		return
	}
	l.pointer.Nudge(nudge.DX, nudge.DY)
	l.log.Post("Mouse moved slightly to refresh pointer.")
	*misses = 0
}

func (l *Loop) sleep(wake <-chan struct{}) {
	if l.pause <= 0 {
		return
	}
	timer := time.NewTimer(l.pause)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-wake:
	}
}

func (l *Loop) logf(format string, args ...any) {
	l.log.Post(fmt.Sprintf(format, args...))
}
