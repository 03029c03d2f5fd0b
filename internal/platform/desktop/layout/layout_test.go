package layout

import (
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestTileSize(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{4, 100},
		{5, 78},
		{6, 63},
		{0, 0},
	}
	for _, tt := range tests {
		if got := TileSize(tt.n); got != tt.want {
			t.Errorf("TileSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBoardFitsArea(t *testing.T) {
	if got, want := Board(4), core.NewRect(20, HUDHeight, 450, 450); got != want {
		t.Errorf("Board(4) = %+v, want %+v", got, want)
	}

	for _, n := range []int{4, 5, 6} {
		b := Board(n)
		if b.X < 0 || b.Right() > ScreenWidth || b.Bottom() > ScreenHeight {
			t.Errorf("board %d out of screen: %+v", n, b)
		}
		if first := Tile(n, 0, 0); first.X != b.X+TileMargin || first.Y != b.Y+TileMargin {
			t.Errorf("n=%d: first tile %+v does not start one margin inside %+v", n, first, b)
		}
		last := Tile(n, n-1, n-1)
		if last.Right()+TileMargin != b.Right() || last.Bottom()+TileMargin != b.Bottom() {
			t.Errorf("n=%d: last tile %+v does not end one margin inside %+v", n, last, b)
		}
	}
}

func TestTileOriginInterpolates(t *testing.T) {
	x0, y0 := TileOrigin(4, 0, 0)
	x1, _ := TileOrigin(4, 1, 0)
	xh, yh := TileOrigin(4, 0.5, 0)
	if xh != (x0+x1)/2 || yh != y0 {
		t.Errorf("half step = (%v,%v), want (%v,%v)", xh, yh, (x0+x1)/2, y0)
	}
}

func TestTileFontSizeShrinks(t *testing.T) {
	prev := TileFontSize(4, 2)
	for _, v := range []int{128, 2048, 16384} {
		got := TileFontSize(4, v)
		if got >= prev {
			t.Errorf("font for %d (%v) should be smaller than %v", v, got, prev)
		}
		prev = got
	}
	if TileFontSize(6, 2) >= TileFontSize(4, 2) {
		t.Error("smaller tiles should use smaller fonts")
	}
}

func TestButtonsAndHitTest(t *testing.T) {
	rects := Buttons(4)
	for i := 1; i < len(rects); i++ {
		if rects[i].Y < rects[i-1].Bottom() {
			t.Errorf("button %d overlaps button %d", i, i-1)
		}
	}
	if last := rects[len(rects)-1]; last.Bottom() > ScreenHeight {
		t.Errorf("last button below the screen: %+v", last)
	}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first", rects[0].X + 1, rects[0].Y + 1, 0},
		{"third center", rects[2].X + ButtonWidth/2, rects[2].Y + ButtonHeight/2, 2},
		{"gap", rects[0].X + 1, rects[0].Bottom() + 1, -1},
		{"left of buttons", 0, rects[1].Y + 1, -1},
	}
	for _, tt := range tests {
		if got := HitTest(rects, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: HitTest = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDialogButtons(t *testing.T) {
	d := Dialog()
	yes, no := DialogButtons()
	for _, r := range []core.Rect{yes, no} {
		if r.X < d.X || r.Right() > d.Right() || r.Y < d.Y || r.Bottom() > d.Bottom() {
			t.Errorf("button %+v outside dialog %+v", r, d)
		}
	}
	if yes.Right() > no.X {
		t.Error("yes and no overlap")
	}
}
