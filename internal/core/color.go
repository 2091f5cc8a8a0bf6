package core

// Color is a foreground color tag for a screen cell or a game entity.
// Values map to ANSI 256-color codes in the terminal front end.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// VehiclePalette lists the colors handed out to obstacles, one per lane in
// rotation. Purely cosmetic.
var VehiclePalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightMagenta,
	ColorBrightBlue,
	ColorBrightCyan,
	ColorYellow,
	ColorRed,
	ColorBlue,
}
