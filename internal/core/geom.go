// Package core provides fundamental types and utilities shared by games and
// the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredRect returns a w x h rectangle centered in an outer area of
// outerW x outerH, clamped to the top-left corner when it does not fit.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return NewRect(max(0, (outerW-w)/2), max(0, (outerH-h)/2), w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
