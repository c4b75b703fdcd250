package gfx

import "math"

// Plane is a plane in Hessian normal form: N·p + D = 0.
// Points with N·p + D >= 0 are on the visible side.
type Plane struct {
	N Vec3
	D float32
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p Vec3) float32 {
	return pl.N.Dot(p) + pl.D
}

// Cullable is an entity the frustum filter can mark as visible or not.
type Cullable interface {
	Position() Vec3
	Scale() float32
	FrustumCullingDisabled() bool
	SetInsideFrustum(inside bool)
}

// MeshGroup is a set of entities sharing one mesh and its bounding radius.
type MeshGroup struct {
	BoundingRadius float32
	Entities       []Cullable
}

// FrustumFilter marks entities outside the camera view frustum so the
// renderer can skip them.
//
// The zero value accepts everything until Update is called.
type FrustumFilter struct {
	projView Mat4
	planes   [6]Plane
	valid    bool
}

// NewFrustumFilter creates a filter with no frustum set.
func NewFrustumFilter() *FrustumFilter {
	return &FrustumFilter{projView: Identity4()}
}

// Update recomputes the frustum planes from the projection and view
// matrices. Call it once per frame before filtering.
func (f *FrustumFilter) Update(proj, view Mat4) {
	f.projView = proj.Mul(view)
	m := f.projView

	row := func(r int) [4]float32 {
		return [4]float32{m[r], m[4+r], m[8+r], m[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f.planes = [6]Plane{
		plane(r3, r0, 1),  // left
		plane(r3, r0, -1), // right
		plane(r3, r1, 1),  // bottom
		plane(r3, r1, -1), // top
		plane(r3, r2, 1),  // near
		plane(r3, r2, -1), // far
	}
	f.valid = true
}

func plane(w, axis [4]float32, sign float32) Plane {
	a := w[0] + sign*axis[0]
	b := w[1] + sign*axis[1]
	c := w[2] + sign*axis[2]
	d := w[3] + sign*axis[3]

	l := float32(math.Sqrt(float64(a*a + b*b + c*c)))
	if l == 0 {
		return Plane{N: Vec3{X: a, Y: b, Z: c}, D: d}
	}
	return Plane{N: Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// ProjectionView returns the combined matrix from the last Update.
func (f *FrustumFilter) ProjectionView() Mat4 {
	return f.projView
}

// Planes returns the frustum planes in left, right, bottom, top, near, far
// order.
func (f *FrustumFilter) Planes() [6]Plane {
	return f.planes
}

// InsideFrustum reports whether the sphere at (x, y, z) with the given radius
// intersects the view frustum.
func (f *FrustumFilter) InsideFrustum(x, y, z, radius float32) bool {
	if !f.valid {
		return true
	}
	p := Vec3{X: x, Y: y, Z: z}
	for _, pl := range f.planes {
		if pl.Distance(p) < -radius {
			return false
		}
	}
	return true
}

// Filter marks every entity inside or outside the frustum. Each entity's
// bounding radius is its scale times meshRadius.
func (f *FrustumFilter) Filter(entities []Cullable, meshRadius float32) {
	for _, e := range entities {
		if e.FrustumCullingDisabled() {
			e.SetInsideFrustum(true)
			continue
		}
		p := e.Position()
		e.SetInsideFrustum(f.InsideFrustum(p.X, p.Y, p.Z, e.Scale()*meshRadius))
	}
}

// FilterGroups filters each mesh group with its own bounding radius.
func (f *FrustumFilter) FilterGroups(groups []MeshGroup) {
	for _, g := range groups {
		f.Filter(g.Entities, g.BoundingRadius)
	}
}
