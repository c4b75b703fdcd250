// Command massdemo renders one HUD frame built from command-line settings
// and saves it as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
	"github.com/oskarmendel/mass/hud"
	"github.com/oskarmendel/mass/screen"
)

func main() {
	var (
		width     = flag.Int("width", screen.DefaultWidth, "screen width")
		height    = flag.Int("height", screen.DefaultHeight, "screen height")
		output    = flag.String("output", "hud.png", "output file")
		verbose   = flag.Bool("v", false, "debug logging")
		fontPath  = flag.String("font", "", "TrueType font file (default Go Regular)")
		antialias = flag.Bool("antialias", true, "anti-aliased HUD drawing")
		showFPS   = flag.Bool("fps", true, "show the FPS counter")
		ribbon    = flag.Bool("ribbon", false, "draw the HUD ribbon")
		alpha     = flag.Int("alpha", hud.DefaultAlpha, "crosshair alpha (0-255)")
		thickness = flag.Float64("thickness", 2, "crosshair thickness")
		size      = flag.Int("size", 10, "crosshair arm length")
		gap       = flag.Int("gap", 4, "crosshair gap")
		outline   = flag.Int("outline", 1, "crosshair outline")
		color     = flag.String("color", "#00ff00", "crosshair color (hex)")
		label     = flag.String("text", "", "text drawn near the bottom right")
	)
	flag.Parse()

	if *verbose {
		mass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := screen.NewOptionsBuilder().
		Antialiasing(*antialias).
		ShowFPS(*showFPS).
		FrustumCulling(true).
		Build()

	cfg, err := screen.New(screen.WithSize(*width, *height), screen.WithOptions(opts))
	if err != nil {
		log.Fatalf("Invalid screen: %v", err)
	}

	font := hud.DefaultFont()
	if *fontPath != "" {
		if font, err = hud.LoadFont(*fontPath); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}

	ch := hud.NewCrosshairBuilder().
		Alpha(*alpha).
		Thickness(float32(*thickness)).
		Size(*size).
		Gap(*gap).
		Outline(*outline).
		Color(gfx.Hex(*color)).
		Build()

	var components []hud.Component
	if *label != "" {
		tc := hud.NewTextComponent(font, *label, cfg.Width()-20, cfg.Height()-95)
		tc.SetAlign(hud.AlignRight)
		components = append(components, tc)
	}

	h, err := hud.New(cfg.Options(), font, cfg.Width(), cfg.Height(),
		hud.WithCrosshair(ch),
		hud.WithRibbon(*ribbon),
		hud.WithComponents(components...),
	)
	if err != nil {
		log.Fatalf("Failed to create HUD: %v", err)
	}

	h.Frame()
	if err := h.Render().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	hints := cfg.Hints()
	log.Printf("HUD saved to %s (%dx%d, %s profile, %d samples)\n",
		*output, cfg.Width(), cfg.Height(), hints.Profile, hints.Samples)
}
