package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Window palette.
var (
	backgroundColor = color.RGBA{250, 248, 239, 255}
	boardColor      = color.RGBA{187, 173, 160, 255}
	emptyTileColor  = color.RGBA{205, 193, 180, 255}
	textColor       = color.RGBA{119, 110, 101, 255}
	textColorLight  = color.RGBA{249, 246, 242, 255}
	buttonColor     = color.RGBA{143, 122, 102, 255}
	buttonHover     = color.RGBA{166, 144, 122, 255}
	focusColor      = color.RGBA{246, 124, 95, 255}
	overlayColor    = color.RGBA{238, 228, 218, 186}
	shadeColor      = color.RGBA{0, 0, 0, 96}

	tileColors = map[int]color.RGBA{
		2:    {238, 228, 218, 255},
		4:    {237, 224, 200, 255},
		8:    {242, 177, 121, 255},
		16:   {245, 149, 99, 255},
		32:   {246, 124, 95, 255},
		64:   {246, 94, 59, 255},
		128:  {237, 207, 114, 255},
		256:  {237, 204, 97, 255},
		512:  {237, 200, 80, 255},
		1024: {237, 197, 63, 255},
		2048: {237, 194, 46, 255},
	}
	superTileColor = color.RGBA{60, 58, 50, 255}
)

// tileColor returns the background of a tile with value v.
func tileColor(v int) color.RGBA {
	if c, ok := tileColors[v]; ok {
		return c
	}
	if v == 0 {
		return emptyTileColor
	}
	return superTileColor
}

// tileTextColor returns the digit color for value v.
func tileTextColor(v int) color.RGBA {
	if v <= 4 {
		return textColor
	}
	return textColorLight
}

// faces holds the fonts used by the window. Tile faces are created on
// demand per size.
type faces struct {
	source *text.GoTextFaceSource
	title  *text.GoTextFace
	normal *text.GoTextFace
	small  *text.GoTextFace
	tiles  map[float64]*text.GoTextFace
}

func loadFaces() (*faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: cannot load font: %w", err)
	}
	return &faces{
		source: src,
		title:  &text.GoTextFace{Source: src, Size: 48},
		normal: &text.GoTextFace{Source: src, Size: 24},
		small:  &text.GoTextFace{Source: src, Size: 16},
		tiles:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (f *faces) tile(size float64) *text.GoTextFace {
	if face, ok := f.tiles[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.tiles[size] = face
	return face
}
