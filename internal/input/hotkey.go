package input

import (
	"context"
	"fmt"

	hook "github.com/robotn/gohook"
)

// Bindings names the global start and stop keys, e.g. "space" and "esc".
type Bindings struct {
	Start, Stop string
}

func (b Bindings) Validate() error {
	for _, k := range []string{b.Start, b.Stop} {
		if _, ok := hook.Keycode[k]; !ok {
			return fmt.Errorf("unknown hotkey %q", k)
		}
	}
	return nil
}

// Listen registers the bindings and dispatches key presses until ctx ends.
// The callbacks run on the hook goroutine and should not block.
func Listen(ctx context.Context, b Bindings, onStart, onStop func()) error {
	if err := b.Validate(); err != nil {
		return err
	}

	hook.Register(hook.KeyDown, []string{b.Start}, func(hook.Event) { onStart() })
	hook.Register(hook.KeyDown, []string{b.Stop}, func(hook.Event) { onStop() })

	done := hook.Process(hook.Start())
	select {
	case <-ctx.Done():
		hook.End()
		<-done
	case <-done:
	}
	return nil
}
