package hud

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/oskarmendel/mass/gfx"
	"github.com/oskarmendel/mass/screen"
)

type recordingComponent struct {
	calls int
}

func (r *recordingComponent) Draw(dst *gfx.Pixmap) {
	r.calls++
	dst.SetPixel(0, 0, gfx.Blue)
}

func TestNewInvalid(t *testing.T) {
	opts := screen.NewOptionsBuilder().Build()

	if _, err := New(opts, DefaultFont(), 0, 600); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New(0x600) error = %v, want ErrInvalidSize", err)
	}
	if _, err := New(opts, nil, 800, 600); !errors.Is(err, ErrNilFont) {
		t.Errorf("New(nil font) error = %v, want ErrNilFont", err)
	}
}

func TestHudRenderCrosshairCentered(t *testing.T) {
	ch := NewCrosshairBuilder().Thickness(2).Size(4).Gap(1).Color(gfx.Green).Build()
	h, err := New(screen.NewOptionsBuilder().Build(), DefaultFont(), 40, 30, WithCrosshair(ch))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if h.Crosshair() != ch {
		t.Errorf("Crosshair() = %+v, want %+v", h.Crosshair(), ch)
	}

	pm := h.Render()
	if pm.Bounds() != h.Bounds() {
		t.Fatalf("Render() bounds = %v, want %v", pm.Bounds(), h.Bounds())
	}
	// Center (20, 15); right arm spans x [21, 25), rows 14 and 15.
	if got := pm.GetPixel(23, 14).NRGBA(); got != gfx.Green.NRGBA() {
		t.Errorf("right arm pixel = %v, want green", got)
	}
	if got := pm.GetPixel(20, 5); got != gfx.Transparent {
		t.Errorf("pixel far from the crosshair = %v, want transparent", got.NRGBA())
	}
}

func TestHudComponentsDrawnInOrder(t *testing.T) {
	rec := &recordingComponent{}
	h, err := New(screen.NewOptionsBuilder().Build(), DefaultFont(), 20, 20, WithComponents(rec))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	extra := &recordingComponent{}
	h.Add(extra)

	pm := h.Render()
	if rec.calls != 1 || extra.calls != 1 {
		t.Errorf("component calls = %d, %d, want 1, 1", rec.calls, extra.calls)
	}
	if got := pm.GetPixel(0, 0).NRGBA(); got != gfx.Blue.NRGBA() {
		t.Errorf("component pixel = %v, want blue", got)
	}
}

func TestHudRibbon(t *testing.T) {
	h, err := New(screen.NewOptionsBuilder().Build(), DefaultFont(), 300, 200, WithRibbon(true))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	pm := h.Render()
	if got := pm.GetPixel(5, 200-ribbonBottom+1).NRGBA(); got != RibbonColor.NRGBA() {
		t.Errorf("ribbon pixel = %v, want %v", got, RibbonColor.NRGBA())
	}
	if got := pm.GetPixel(5, 10); got != gfx.Transparent {
		t.Errorf("pixel above ribbon = %v, want transparent", got.NRGBA())
	}
}

func TestHudFPSOverlay(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	opts := screen.NewOptionsBuilder().ShowFPS(true).Build()
	h, err := New(opts, DefaultFont(), 200, 100, WithClock(clk.now))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	for i := 0; i < 30; i++ {
		clk.advance(34 * time.Millisecond)
		h.Frame()
	}
	if h.FPS() != 30 {
		t.Errorf("FPS() = %d, want 30", h.FPS())
	}
	if h.fpsText.Text() != "FPS: 30" {
		t.Errorf("FPS text = %q, want %q", h.fpsText.Text(), "FPS: 30")
	}

	box := inked(h.Render())
	if !box.Overlaps(image.Rect(0, 0, 100, fpsMargin+fpsTextSize+4)) {
		t.Errorf("no FPS text drawn in the top-left corner, ink at %v", box)
	}
}

func TestHudWithoutFPS(t *testing.T) {
	h, err := New(screen.NewOptionsBuilder().Build(), DefaultFont(), 200, 100)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	h.Frame()
	if h.FPS() != 0 {
		t.Errorf("FPS() = %d, want 0 when the overlay is off", h.FPS())
	}

	pm := h.Render()
	for y := 0; y < fpsMargin+fpsTextSize; y++ {
		for x := 0; x < 100; x++ {
			if pm.GetPixel(x, y).A != 0 {
				t.Fatalf("unexpected ink at (%d, %d) without ShowFPS", x, y)
			}
		}
	}
}

func TestHudAntialiasFollowsOptions(t *testing.T) {
	ch := DefaultCrosshair()
	aa, err := New(screen.NewOptionsBuilder().Antialiasing(true).Build(), DefaultFont(), 20, 20, WithCrosshair(ch))
	if err != nil {
		t.Fatal(err)
	}
	plain, err := New(screen.NewOptionsBuilder().Build(), DefaultFont(), 20, 20, WithCrosshair(ch))
	if err != nil {
		t.Fatal(err)
	}

	if a := aa.Render().GetPixel(12, 10).NRGBA().A; a == 0 || a == 255 {
		t.Errorf("antialiased arm alpha = %d, want partial coverage", a)
	}
	if a := plain.Render().GetPixel(12, 10).NRGBA().A; a != 255 {
		t.Errorf("aliased arm alpha = %d, want 255", a)
	}
}
