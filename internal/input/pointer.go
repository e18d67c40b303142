// Package input drives the system pointer and listens for global hotkeys.
package input

import (
	"image"

	"github.com/go-vgo/robotgo"
)

// Mouse moves and clicks the real system pointer.
type Mouse struct{}

// Click moves to p in desktop coordinates and presses the left button once.
func (Mouse) Click(p image.Point) {
	robotgo.Move(p.X, p.Y)
	robotgo.Click("left", false)
}

// Nudge moves the pointer relative to where it is now.
func (Mouse) Nudge(dx, dy int) {
	robotgo.MoveRelative(dx, dy)
}
