package core

// Color is a named palette entry shared by every frontend.
// The terminal maps it to ANSI 256-color codes, the desktop window to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)
