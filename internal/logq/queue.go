// Package logq carries user-facing log lines from background goroutines to
// the goroutine that owns the log widget.
package logq

import (
	"log/slog"
	"sync"
)

// Queue is an append-only line queue. Post never blocks; Drain hands back
// everything posted since the previous Drain, in post order.
type Queue struct {
	mu      sync.Mutex
	pending []string
	notify  chan struct{}
	log     *slog.Logger
}

// New returns a queue that also mirrors every line to logger when it is not nil.
func New(logger *slog.Logger) *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
		log:    logger,
	}
}

func (q *Queue) Post(line string) {
	q.mu.Lock()
	q.pending = append(q.pending, line)
	q.mu.Unlock()

	if q.log != nil {
		q.log.Info(line)
	}

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Drain returns and forgets all pending lines.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	lines := q.pending
	q.pending = nil
	return lines
}

// Notify receives a value whenever lines may be pending.
func (q *Queue) Notify() <-chan struct{} {
	return q.notify
}
