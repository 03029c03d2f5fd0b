package core

// Color represents a foreground color for a screen cell.
// Front ends translate it to ANSI 256-color codes or RGBA.
type Color uint8

// Predefined colors. The Tile* entries follow the classic 2048 palette
// from small values to large ones.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the palette entry for a tile value.
// Values above 2048 share ColorTileSuper; 0 maps to ColorGray.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	c := ColorTile2
	for v := 2; v < value && c < ColorTileSuper; v *= 2 {
		c++
	}
	return c
}
