// Package look turns raw arrow key flags into a single horizontal look request.
package look

import "chosenoffset.com/wireduck/internal/input"

// Intent is the resolved horizontal look direction.
type Intent int

const (
	None Intent = iota
	Left
	Right
)

// Resolve derives the look intent from the key flags. Holding both left and
// right cancels out to None. Up and down do not affect the result.
func Resolve(f input.Flags) Intent {
	switch {
	case f.LeftPressed && !f.RightPressed:
		return Left
	case f.RightPressed && !f.LeftPressed:
		return Right
	default:
		return None
	}
}

// Left reports whether the intent is a left look.
func (i Intent) Left() bool { return i == Left }

// Right reports whether the intent is a right look.
func (i Intent) Right() bool { return i == Right }

func (i Intent) String() string {
	switch i {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
