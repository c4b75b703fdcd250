package hud

import (
	"image"
	"testing"

	"github.com/oskarmendel/mass/gfx"
)

// inked returns the bounding box of non-transparent pixels.
func inked(pm *gfx.Pixmap) image.Rectangle {
	var r image.Rectangle
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestTextComponentNormalizes(t *testing.T) {
	tc := NewTextComponent(DefaultFont(), "e\u0301", 0, 0)
	if tc.Text() != "\u00e9" {
		t.Errorf("Text() = %q, want precomposed %q", tc.Text(), "\u00e9")
	}
	tc.SetText("A\u030a")
	if tc.Text() != "\u00c5" {
		t.Errorf("SetText normalized = %q, want %q", tc.Text(), "\u00c5")
	}
}

func TestTextComponentAccessors(t *testing.T) {
	tc := NewTextComponent(DefaultFont(), "hi", 3, 4)
	if x, y := tc.Position(); x != 3 || y != 4 {
		t.Errorf("Position() = (%d, %d), want (3, 4)", x, y)
	}
	tc.SetPosition(7, 8)
	if x, y := tc.Position(); x != 7 || y != 8 {
		t.Errorf("Position() after SetPosition = (%d, %d), want (7, 8)", x, y)
	}
	if tc.Size() != DefaultTextSize {
		t.Errorf("Size() = %v, want %v", tc.Size(), DefaultTextSize)
	}
	tc.SetColor(gfx.Red)
	if tc.Color() != gfx.Red {
		t.Errorf("Color() = %+v, want red", tc.Color())
	}
}

func TestTextComponentWidth(t *testing.T) {
	f := DefaultFont()
	short := NewTextComponent(f, "ab", 0, 0)
	long := NewTextComponent(f, "abcdef", 0, 0)

	if short.Width() <= 0 {
		t.Fatalf("Width() = %v, want positive", short.Width())
	}
	if long.Width() <= short.Width() {
		t.Errorf("Width(%q) = %v, not wider than Width(%q) = %v",
			long.Text(), long.Width(), short.Text(), short.Width())
	}

	big := NewTextComponent(f, "ab", 0, 0)
	big.SetSize(DefaultTextSize * 2)
	if big.Width() <= short.Width() {
		t.Errorf("doubling size should widen text: %v <= %v", big.Width(), short.Width())
	}

	if w := NewTextComponent(f, "", 0, 0).Width(); w != 0 {
		t.Errorf("empty Width() = %v, want 0", w)
	}
}

func TestTextComponentDraw(t *testing.T) {
	pm := gfx.NewPixmap(200, 60)
	tc := NewTextComponent(DefaultFont(), "Mass", 10, 5)
	tc.SetSize(20)
	tc.Draw(pm)

	box := inked(pm)
	if box.Empty() {
		t.Fatal("Draw() left the pixmap empty")
	}
	if box.Min.X < 10 || box.Min.Y < 5 {
		t.Errorf("ink starts at %v, want at or after the anchor (10, 5)", box.Min)
	}
	if box.Max.Y > 5+20+2 {
		t.Errorf("ink ends at y=%d, want within one line below the top", box.Max.Y)
	}
}

func TestTextComponentDrawRightAligned(t *testing.T) {
	pm := gfx.NewPixmap(200, 60)
	tc := NewTextComponent(DefaultFont(), "Mass", 150, 5)
	tc.SetSize(20)
	tc.SetAlign(AlignRight)
	tc.Draw(pm)

	box := inked(pm)
	if box.Empty() {
		t.Fatal("Draw() left the pixmap empty")
	}
	if box.Max.X > 151 {
		t.Errorf("right-aligned ink ends at x=%d, want at or before 150", box.Max.X)
	}
}

func TestTextComponentDrawEmpty(t *testing.T) {
	pm := gfx.NewPixmap(10, 10)
	NewTextComponent(DefaultFont(), "", 0, 0).Draw(pm)
	NewTextComponent(nil, "x", 0, 0).Draw(pm)
	if !inked(pm).Empty() {
		t.Error("empty text or nil font should draw nothing")
	}
}
