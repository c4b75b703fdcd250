package screen

import "github.com/oskarmendel/mass"

// Profile selects the OpenGL context profile.
type Profile int

const (
	// ProfileCore is a forward-compatible core profile.
	ProfileCore Profile = iota
	// ProfileCompatibility keeps the deprecated fixed-function API.
	ProfileCompatibility
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	default:
		return "unknown"
	}
}

// PolygonMode selects how polygons are rasterized.
type PolygonMode int

const (
	// PolygonFill fills polygon interiors.
	PolygonFill PolygonMode = iota
	// PolygonLine draws polygon edges only.
	PolygonLine
)

// String returns the polygon mode name.
func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	default:
		return "unknown"
	}
}

// Context version requested for every screen.
const (
	ContextVersionMajor = 3
	ContextVersionMinor = 2
)

// Hints are the window and context settings a windowing backend applies
// when it opens the screen.
type Hints struct {
	ContextVersionMajor int
	ContextVersionMinor int
	Profile             Profile
	ForwardCompatible   bool
	Resizable           bool

	// SwapInterval is 1 with v-sync, 0 without.
	SwapInterval int
	// Samples is the multisample count; 0 disables multisampling.
	Samples int

	DepthTest     bool
	StencilTest   bool
	Blend         bool
	PolygonMode   PolygonMode
	CullBackFaces bool
}

// Hints derives the backend settings for the screen. Depth test, stencil
// test and alpha blending are always on; the rest follow the Options.
func (c Config) Hints() Hints {
	o := c.options
	h := Hints{
		ContextVersionMajor: ContextVersionMajor,
		ContextVersionMinor: ContextVersionMinor,
		Profile:             ProfileCore,
		ForwardCompatible:   true,
		DepthTest:           true,
		StencilTest:         true,
		Blend:               true,
		PolygonMode:         PolygonFill,
		CullBackFaces:       o.cullFace,
	}
	if o.compatibleProfile {
		h.Profile = ProfileCompatibility
		h.ForwardCompatible = false
	}
	if c.vsync {
		h.SwapInterval = 1
	}
	if o.antialiasing {
		h.Samples = SampleCount
	}
	if o.showTriangles {
		h.PolygonMode = PolygonLine
	}

	mass.Logger().Debug("screen: hints derived",
		"profile", h.Profile, "samples", h.Samples, "polygonMode", h.PolygonMode)
	return h
}
