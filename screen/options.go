package screen

import (
	"fmt"

	"github.com/oskarmendel/mass"
)

// Options holds the rendering toggles of a Screen. It is an immutable
// value produced by OptionsBuilder; the zero value has every toggle off.
type Options struct {
	cullFace          bool
	showTriangles     bool
	showFPS           bool
	compatibleProfile bool
	antialiasing      bool
	frustumCulling    bool
}

// CullFace reports whether back-face culling is enabled.
func (o Options) CullFace() bool { return o.cullFace }

// ShowTriangles reports whether geometry is drawn as wireframe.
func (o Options) ShowTriangles() bool { return o.showTriangles }

// ShowFPS reports whether the HUD shows the frames-per-second counter.
func (o Options) ShowFPS() bool { return o.showFPS }

// CompatibleProfile reports whether an OpenGL compatibility profile is
// requested instead of a forward-compatible core profile.
func (o Options) CompatibleProfile() bool { return o.compatibleProfile }

// Antialiasing reports whether multisampling and anti-aliased HUD drawing
// are enabled.
func (o Options) Antialiasing() bool { return o.antialiasing }

// FrustumCulling reports whether entities outside the view frustum are
// skipped during rendering.
func (o Options) FrustumCulling() bool { return o.frustumCulling }

// String implements fmt.Stringer.
func (o Options) String() string {
	return fmt.Sprintf("Options{cullFace=%t showTriangles=%t showFPS=%t compatibleProfile=%t antialiasing=%t frustumCulling=%t}",
		o.cullFace, o.showTriangles, o.showFPS, o.compatibleProfile, o.antialiasing, o.frustumCulling)
}

// OptionsBuilder accumulates rendering toggles for an Options value.
// Every setter overwrites its toggle and returns the builder so calls can
// be chained:
//
//	opts := screen.NewOptionsBuilder().
//	    CullFace(true).
//	    FrustumCulling(true).
//	    Build()
//
// A builder may be reused; Build snapshots the current state and later
// setter calls never affect Options already built.
type OptionsBuilder struct {
	opts Options
}

// NewOptionsBuilder returns a builder with every toggle off.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{}
}

// CullFace switches back-face culling on or off.
func (b *OptionsBuilder) CullFace(v bool) *OptionsBuilder {
	b.opts.cullFace = v
	return b
}

// ShowTriangles switches wireframe polygon mode on or off.
func (b *OptionsBuilder) ShowTriangles(v bool) *OptionsBuilder {
	b.opts.showTriangles = v
	return b
}

// ShowFPS switches the FPS overlay on or off.
func (b *OptionsBuilder) ShowFPS(v bool) *OptionsBuilder {
	b.opts.showFPS = v
	return b
}

// CompatibleProfile switches the OpenGL compatibility profile on or off.
func (b *OptionsBuilder) CompatibleProfile(v bool) *OptionsBuilder {
	b.opts.compatibleProfile = v
	return b
}

// Antialiasing switches anti-aliasing on or off.
func (b *OptionsBuilder) Antialiasing(v bool) *OptionsBuilder {
	b.opts.antialiasing = v
	return b
}

// FrustumCulling switches frustum culling on or off.
func (b *OptionsBuilder) FrustumCulling(v bool) *OptionsBuilder {
	b.opts.frustumCulling = v
	return b
}

// Build returns an Options snapshot of the builder's current toggles.
func (b *OptionsBuilder) Build() Options {
	mass.Logger().Debug("screen: options built", "options", b.opts)
	return b.opts
}
