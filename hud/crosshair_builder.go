package hud

import (
	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
)

// CrosshairBuilder accumulates crosshair settings. Each setter overwrites
// its field and returns the builder so calls can be chained:
//
//	ch := hud.NewCrosshairBuilder().Size(8).Gap(2).Color(gfx.Green).Build()
//
// There is no setter for the center dot; built crosshairs never have one.
type CrosshairBuilder struct {
	alpha     int
	thickness float32
	size      int
	gap       int
	outline   int
	color     gfx.Color
	dot       bool
}

// NewCrosshairBuilder returns a builder holding the default crosshair
// settings.
func NewCrosshairBuilder() *CrosshairBuilder {
	return &CrosshairBuilder{
		alpha:     DefaultAlpha,
		thickness: DefaultThickness,
		size:      DefaultSize,
		gap:       DefaultGap,
		outline:   DefaultOutline,
		color:     DefaultColor,
		dot:       false,
	}
}

// Alpha sets the opacity, nominally 0-255.
func (b *CrosshairBuilder) Alpha(alpha int) *CrosshairBuilder {
	b.alpha = alpha
	return b
}

// Thickness sets the arm thickness in pixels.
func (b *CrosshairBuilder) Thickness(thickness float32) *CrosshairBuilder {
	b.thickness = thickness
	return b
}

// Size sets the arm length in pixels.
func (b *CrosshairBuilder) Size(size int) *CrosshairBuilder {
	b.size = size
	return b
}

// Gap sets the distance from the center to each arm.
func (b *CrosshairBuilder) Gap(gap int) *CrosshairBuilder {
	b.gap = gap
	return b
}

// Outline sets the outline width.
func (b *CrosshairBuilder) Outline(outline int) *CrosshairBuilder {
	b.outline = outline
	return b
}

// Color sets the arm color.
func (b *CrosshairBuilder) Color(color gfx.Color) *CrosshairBuilder {
	b.color = color
	return b
}

// Build returns a Crosshair snapshot of the builder's current settings.
func (b *CrosshairBuilder) Build() Crosshair {
	c := Crosshair{
		alpha:     b.alpha,
		thickness: b.thickness,
		size:      b.size,
		gap:       b.gap,
		outline:   b.outline,
		color:     b.color,
		dot:       b.dot,
	}
	mass.Logger().Debug("hud: crosshair built",
		"alpha", c.alpha, "thickness", c.thickness, "size", c.size,
		"gap", c.gap, "outline", c.outline)
	return c
}
