package core

// Color is a foreground color for a screen cell, in any form lipgloss
// accepts: an ANSI code ("9", "245") or a hex string ("#F7D54A").
// The empty Color means the terminal default.
type Color string

// Predefined colors for HUD and scenery.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "245"
)
