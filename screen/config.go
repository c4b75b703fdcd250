package screen

import (
	"errors"
	"fmt"
	"math"

	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
)

// Projection parameters shared by every screen.
const (
	// FieldOfView is the vertical field of view in radians (60 degrees).
	FieldOfView = float32(60 * math.Pi / 180)

	// ZNear is the distance to the near plane.
	ZNear = float32(0.01)

	// ZFar is the distance to the far plane.
	ZFar = float32(1000)
)

// Defaults used by New when no Option overrides them.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Mass"
)

// ErrInvalidSize is returned when a screen width or height is not positive.
var ErrInvalidSize = errors.New("screen: width and height must be positive")

// DefaultOptions returns the options the game starts with: every toggle off
// except frustum culling.
func DefaultOptions() Options {
	return NewOptionsBuilder().
		CullFace(false).
		ShowTriangles(false).
		ShowFPS(false).
		CompatibleProfile(false).
		Antialiasing(false).
		FrustumCulling(true).
		Build()
}

// Config describes a game screen: its size, title, v-sync and rendering
// options. Create one with New.
type Config struct {
	width   int
	height  int
	title   string
	vsync   bool
	options Options
}

// Option configures a Config during creation.
//
// Example:
//
//	cfg, err := screen.New(
//	    screen.WithSize(1280, 720),
//	    screen.WithOptions(screen.NewOptionsBuilder().Antialiasing(true).Build()),
//	)
type Option func(*Config)

// WithSize sets the screen size in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.width = width
		c.height = height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.title = title
	}
}

// WithVSync switches v-sync on or off.
func WithVSync(on bool) Option {
	return func(c *Config) {
		c.vsync = on
	}
}

// WithOptions sets the rendering options.
func WithOptions(o Options) Option {
	return func(c *Config) {
		c.options = o
	}
}

// New creates a screen configuration. It returns ErrInvalidSize if the
// resulting width or height is not positive.
func New(opts ...Option) (Config, error) {
	c := Config{
		width:   DefaultWidth,
		height:  DefaultHeight,
		title:   DefaultTitle,
		options: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.width <= 0 || c.height <= 0 {
		return Config{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.width, c.height)
	}

	mass.Logger().Debug("screen: config created",
		"width", c.width, "height", c.height, "title", c.title, "vsync", c.vsync)
	return c, nil
}

// Width returns the screen width in pixels.
func (c Config) Width() int { return c.width }

// Height returns the screen height in pixels.
func (c Config) Height() int { return c.height }

// Title returns the window title.
func (c Config) Title() string { return c.title }

// VSync reports whether v-sync is on.
func (c Config) VSync() bool { return c.vsync }

// Options returns the rendering options.
func (c Config) Options() Options { return c.options }

// AspectRatio returns width divided by height.
func (c Config) AspectRatio() float32 {
	return float32(c.width) / float32(c.height)
}

// Projection returns the perspective projection matrix for the screen.
func (c Config) Projection() gfx.Mat4 {
	return ProjectionFor(c.width, c.height)
}

// ProjectionFor returns the perspective projection matrix for a target of
// the given size, using FieldOfView, ZNear and ZFar.
func ProjectionFor(width, height int) gfx.Mat4 {
	return gfx.Perspective(FieldOfView, float32(width)/float32(height), ZNear, ZFar)
}

// FrustumFilter returns a frustum filter for the screen, or nil when
// frustum culling is disabled.
func (c Config) FrustumFilter() *gfx.FrustumFilter {
	if !c.options.frustumCulling {
		return nil
	}
	return gfx.NewFrustumFilter()
}
