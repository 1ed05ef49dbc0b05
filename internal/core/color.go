package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorPink
	ColorGray
)

// Attr is a text attribute applied on top of a cell's color.
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota // Emphasized text
	AttrReverse                  // Swapped foreground/background, used for the cursor
	AttrBlink                    // Flashing, used for hints
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
