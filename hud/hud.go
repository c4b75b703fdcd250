package hud

import (
	"fmt"
	"image"
	"time"

	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
	"github.com/oskarmendel/mass/screen"
)

// Component is an element the HUD draws every frame.
type Component interface {
	Draw(dst *gfx.Pixmap)
}

// Layout of the FPS overlay and the ribbon.
const (
	fpsTextSize  = 16
	fpsMargin    = 8
	ribbonHeight = 50
	ribbonBottom = 100
)

// RibbonColor is the fill color of the HUD ribbon.
var RibbonColor = gfx.RGBA8(0x23, 0xa1, 0xf1, 200)

// Hud draws the in-game overlay: an optional ribbon, user components, the
// crosshair in the screen center and, when the options ask for it, the
// FPS counter.
type Hud struct {
	options    screen.Options
	font       *Font
	width      int
	height     int
	crosshair  Crosshair
	ribbon     bool
	clock      func() time.Time
	components []Component

	fps     *FPSCounter
	fpsText *TextComponent
}

// Option configures a Hud during creation.
type Option func(*Hud)

// WithCrosshair sets the crosshair. Without it DefaultCrosshair is used.
func WithCrosshair(c Crosshair) Option {
	return func(h *Hud) {
		h.crosshair = c
	}
}

// WithRibbon enables the translucent ribbon near the bottom of the screen.
func WithRibbon(on bool) Option {
	return func(h *Hud) {
		h.ribbon = on
	}
}

// WithClock sets the time source of the FPS counter.
func WithClock(now func() time.Time) Option {
	return func(h *Hud) {
		h.clock = now
	}
}

// WithComponents adds components drawn before the crosshair.
func WithComponents(cs ...Component) Option {
	return func(h *Hud) {
		h.components = append(h.components, cs...)
	}
}

// New creates a HUD for a width x height screen.
func New(options screen.Options, f *Font, width, height int, opts ...Option) (*Hud, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if f == nil {
		return nil, ErrNilFont
	}

	h := &Hud{
		options:   options,
		font:      f,
		width:     width,
		height:    height,
		crosshair: DefaultCrosshair(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if options.ShowFPS() {
		h.fps = NewFPSCounter(h.clock)
		h.fpsText = NewTextComponent(f, fpsLabel(0), fpsMargin, fpsMargin)
		h.fpsText.SetSize(fpsTextSize)
	}

	mass.Logger().Info("hud: created",
		"width", width, "height", height, "font", f.Name(),
		"antialias", options.Antialiasing(), "showFPS", options.ShowFPS())
	return h, nil
}

func fpsLabel(fps int) string {
	return fmt.Sprintf("FPS: %d", fps)
}

// Add appends a component drawn before the crosshair.
func (h *Hud) Add(c Component) {
	h.components = append(h.components, c)
}

// Crosshair returns the crosshair the HUD draws.
func (h *Hud) Crosshair() Crosshair {
	return h.crosshair
}

// SetCrosshair replaces the crosshair.
func (h *Hud) SetCrosshair(c Crosshair) {
	h.crosshair = c
}

// Bounds returns the HUD area.
func (h *Hud) Bounds() image.Rectangle {
	return image.Rect(0, 0, h.width, h.height)
}

// FPS returns the last measured frame rate, or 0 when the FPS overlay is
// disabled.
func (h *Hud) FPS() int {
	if h.fps == nil {
		return 0
	}
	return h.fps.FPS()
}

// Frame records a rendered frame for the FPS overlay. Call it once per
// game loop iteration.
func (h *Hud) Frame() {
	if h.fps == nil {
		return
	}
	if h.fps.Frame() {
		h.fpsText.SetText(fpsLabel(h.fps.FPS()))
	}
}

// Render draws the HUD onto a new transparent pixmap.
func (h *Hud) Render() *gfx.Pixmap {
	pm := gfx.NewPixmap(h.width, h.height)
	h.RenderTo(pm)
	return pm
}

// RenderTo draws the HUD onto dst, which should be the HUD size.
func (h *Hud) RenderTo(dst *gfx.Pixmap) {
	if h.ribbon {
		dst.FillRect(image.Rect(0, h.height-ribbonBottom, h.width, h.height-ribbonBottom+ribbonHeight), RibbonColor)
	}
	for _, c := range h.components {
		c.Draw(dst)
	}

	cx := float32(h.width) / 2
	cy := float32(h.height) / 2
	h.crosshair.Draw(dst, cx, cy, h.options.Antialiasing())

	if h.fpsText != nil {
		h.fpsText.Draw(dst)
	}
}
