// Package hud draws the in-game heads-up display.
//
// The crosshair is an immutable value built with CrosshairBuilder. A Hud
// combines it with text components and an FPS counter and renders the whole
// overlay in software onto a gfx.Pixmap.
//
// Example:
//
//	ch := hud.NewCrosshairBuilder().Size(6).Gap(2).Outline(1).Build()
//	h, err := hud.New(opts, hud.DefaultFont(), 800, 600, hud.WithCrosshair(ch))
//	if err != nil {
//	    return err
//	}
//	for running {
//	    h.Frame()
//	    frame := h.Render()
//	    // upload frame
//	}
package hud
