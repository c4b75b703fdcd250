package hud

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
)

// Crosshair defaults.
const (
	DefaultAlpha     = 255
	DefaultThickness = float32(0.5)
	DefaultSize      = 5
	DefaultGap       = 0
	DefaultOutline   = 0
)

// DefaultColor is the crosshair color when none is set.
var DefaultColor = gfx.White

// Crosshair describes the on-screen aiming reticle. It is an immutable
// value; build one with CrosshairBuilder.
//
// No field is validated: alpha is clamped to 0-255 only when drawing.
type Crosshair struct {
	alpha     int
	thickness float32
	size      int
	gap       int
	outline   int
	color     gfx.Color
	dot       bool
}

// DefaultCrosshair returns a crosshair with every field at its default.
func DefaultCrosshair() Crosshair {
	return Crosshair{
		alpha:     DefaultAlpha,
		thickness: DefaultThickness,
		size:      DefaultSize,
		gap:       DefaultGap,
		outline:   DefaultOutline,
		color:     DefaultColor,
		dot:       false,
	}
}

// Alpha returns the opacity in the nominal range 0-255.
func (c Crosshair) Alpha() int { return c.alpha }

// Thickness returns the arm thickness in pixels.
func (c Crosshair) Thickness() float32 { return c.thickness }

// Size returns the arm length in pixels.
func (c Crosshair) Size() int { return c.size }

// Gap returns the distance in pixels from the center to each arm.
func (c Crosshair) Gap() int { return c.gap }

// Outline returns the width of the dark outline around the arms.
func (c Crosshair) Outline() int { return c.outline }

// Color returns the arm color.
func (c Crosshair) Color() gfx.Color { return c.color }

// Dot reports whether a center dot is drawn.
func (c Crosshair) Dot() bool { return c.dot }

type rect struct {
	x0, y0, x1, y1 float32
}

func (r rect) grow(d float32) rect {
	return rect{r.x0 - d, r.y0 - d, r.x1 + d, r.y1 + d}
}

// snap rounds r to whole pixels, keeping it at least one pixel wide.
func (r rect) snap() rect {
	round := func(v float32) float32 { return float32(math.Floor(float64(v) + 0.5)) }
	s := rect{round(r.x0), round(r.y0), round(r.x1), round(r.y1)}
	if s.x1 <= s.x0 {
		s.x1 = s.x0 + 1
	}
	if s.y1 <= s.y0 {
		s.y1 = s.y0 + 1
	}
	return s
}

// shapes returns the arm rectangles, plus the center dot when enabled.
func (c Crosshair) shapes(cx, cy float32) []rect {
	half := c.thickness / 2
	inner := float32(c.gap)
	outer := float32(c.gap + c.size)

	rs := make([]rect, 0, 5)
	if c.size > 0 {
		rs = append(rs,
			rect{cx + inner, cy - half, cx + outer, cy + half}, // right
			rect{cx - outer, cy - half, cx - inner, cy + half}, // left
			rect{cx - half, cy + inner, cx + half, cy + outer}, // down
			rect{cx - half, cy - outer, cx + half, cy - inner}, // up
		)
	}
	if c.dot {
		rs = append(rs, rect{cx - half, cy - half, cx + half, cy + half})
	}
	return rs
}

// Draw renders the crosshair centered at (cx, cy). The outline, if any, is
// drawn first in black, then the arms in the crosshair color. Without
// antialias every edge is snapped to whole pixels.
func (c Crosshair) Draw(dst *gfx.Pixmap, cx, cy float32, antialias bool) {
	if c.alpha < 0 || c.alpha > 255 {
		mass.Logger().Warn("hud: crosshair alpha out of range, clamping", "alpha", c.alpha)
	}
	if c.thickness <= 0 {
		return
	}

	arms := c.shapes(cx, cy)
	if len(arms) == 0 {
		return
	}

	if c.outline > 0 {
		outlined := make([]rect, len(arms))
		for i, r := range arms {
			outlined[i] = r.grow(float32(c.outline))
		}
		fillRects(dst, outlined, gfx.Black.WithAlpha8(c.alpha), antialias)
	}
	fillRects(dst, arms, c.color.WithAlpha8(c.alpha), antialias)
}

// fillRects rasterizes the union of rs and composites it onto dst.
func fillRects(dst *gfx.Pixmap, rs []rect, col gfx.Color, antialias bool) {
	if col.A == 0 {
		return
	}
	if !antialias {
		for i := range rs {
			rs[i] = rs[i].snap()
		}
	}

	bounds := image.Rectangle{}
	for _, r := range rs {
		bounds = bounds.Union(image.Rect(
			int(math.Floor(float64(r.x0))), int(math.Floor(float64(r.y0))),
			int(math.Ceil(float64(r.x1))), int(math.Ceil(float64(r.y1))),
		))
	}
	bounds = bounds.Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for _, r := range rs {
		z.MoveTo(r.x0-ox, r.y0-oy)
		z.LineTo(r.x1-ox, r.y0-oy)
		z.LineTo(r.x1-ox, r.y1-oy)
		z.LineTo(r.x0-ox, r.y1-oy)
		z.ClosePath()
	}

	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	dst.BlendMask(mask, col)
}
