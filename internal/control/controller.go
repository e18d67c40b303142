// Package control owns the run state of the detection loop. Start and Stop
// may be called from any goroutine; they are applied one at a time by a
// single control goroutine, so at most one worker is ever alive.
package control

import (
	"sync"
	"sync/atomic"
)

type State int32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Runner is the worker body. It must return soon after enabled turns false
// and may cut waits short when wake is closed.
type Runner interface {
	Run(enabled *atomic.Bool, wake <-chan struct{})
}

type Sink interface {
	Post(line string)
}

type op int

const (
	opStart op = iota
	opStop
)

type request struct {
	op    op
	reply chan struct{}
}

type Controller struct {
	runner Runner
	log    Sink

	// OnChange, when set before the first Start, is told about every state
	// change. It runs on the control goroutine.
	OnChange func(State)

	state     atomic.Int32
	requests  chan request
	quit      chan struct{}
	closed    chan struct{}
	closeOnce sync.Once

	// Only touched by the control goroutine.
	enabled atomic.Bool
	wake    chan struct{}
	worker  chan struct{}
}

func New(r Runner, log Sink) *Controller {
	c := &Controller{
		runner:   r,
		log:      log,
		requests: make(chan request),
		quit:     make(chan struct{}),
		closed:   make(chan struct{}),
	}
	go c.loop()
	return c
}

// Start spawns the worker unless one is already running.
func (c *Controller) Start() { c.do(opStart) }

// Stop clears the run flag and returns once the worker has finished its
// current iteration and exited.
func (c *Controller) Stop() { c.do(opStop) }

func (c *Controller) State() State {
	return State(c.state.Load())
}

// Close stops any running worker and ends the control goroutine. Later
// Start and Stop calls do nothing.
func (c *Controller) Close() {
	c.closeOnce.Do(func() { close(c.quit) })
	<-c.closed
}

func (c *Controller) do(o op) {
	req := request{op: o, reply: make(chan struct{})}
	select {
	case c.requests <- req:
		<-req.reply
	case <-c.closed:
	}
}

func (c *Controller) loop() {
	defer close(c.closed)
	for {
		select {
		case req := <-c.requests:
			switch req.op {
			case opStart:
				c.start()
			case opStop:
				c.stop()
			}
			close(req.reply)
		case <-c.worker:
			// The worker gave up on its own, e.g. the template failed to load.
			c.reap()
		case <-c.quit:
			if c.worker != nil {
				c.stop()
			}
			return
		}
	}
}

func (c *Controller) start() {
	if c.worker != nil {
		c.log.Post("Script is already running.")
		return
	}

	c.enabled.Store(true)
	c.setState(Running)
	c.log.Post("Script started.")

	wake := make(chan struct{})
	done := make(chan struct{})
	c.wake, c.worker = wake, done
	go func() {
		defer close(done)
		c.runner.Run(&c.enabled, wake)
	}()
}

func (c *Controller) stop() {
	if c.worker == nil {
		c.log.Post("Script is not running.")
		return
	}

	c.log.Post("Stopping script...")
	c.enabled.Store(false)
	close(c.wake)
	<-c.worker
	c.reap()
}

func (c *Controller) reap() {
	c.enabled.Store(false)
	c.wake, c.worker = nil, nil
	c.setState(Idle)
	c.log.Post("Script stopped.")
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
	if c.OnChange != nil {
		c.OnChange(s)
	}
}
