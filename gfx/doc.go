// Package gfx provides the graphics primitives shared by the screen and hud
// packages: colors, the HUD pixel buffer, 4x4 matrices and view frustum
// culling.
package gfx
