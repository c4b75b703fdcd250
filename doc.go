// Package mass holds the rendering configuration and HUD layer of the Mass
// game client.
//
// # Overview
//
// The library is organized into:
//   - screen: immutable render options, their builder, screen configuration
//     and the GPU pipeline state derived from the options
//   - hud: the crosshair descriptor and its builder, text components, the
//     FPS counter and the software HUD renderer
//   - gfx: colors, the HUD pixel buffer, 4x4 matrices and frustum culling
//
// # Quick Start
//
//	opts := screen.NewOptionsBuilder().
//	    Antialiasing(true).
//	    FrustumCulling(true).
//	    Build()
//
//	ch := hud.NewCrosshairBuilder().Size(8).Gap(3).Color(gfx.Hex("#00ff00")).Build()
//
//	h, err := hud.New(opts, hud.DefaultFont(), 800, 600, hud.WithCrosshair(ch))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame := h.Render()
//	_ = frame.SavePNG("hud.png")
//
// # Logging
//
// mass is silent by default. Call [SetLogger] to route diagnostics from every
// sub-package to a [log/slog] logger.
package mass

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
