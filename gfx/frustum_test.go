package gfx

import (
	"math"
	"testing"
)

type fakeEntity struct {
	pos      Vec3
	scale    float32
	disabled bool
	inside   bool
}

func (e *fakeEntity) Position() Vec3               { return e.pos }
func (e *fakeEntity) Scale() float32               { return e.scale }
func (e *fakeEntity) FrustumCullingDisabled() bool { return e.disabled }
func (e *fakeEntity) SetInsideFrustum(inside bool) { e.inside = inside }

func newTestFilter() *FrustumFilter {
	f := NewFrustumFilter()
	f.Update(
		Perspective(math.Pi/2, 1, 1, 100),
		LookAt(V3(0, 0, 0), V3(0, 0, -1), V3(0, 1, 0)),
	)
	return f
}

func TestFrustumFilter_InsideFrustum(t *testing.T) {
	f := newTestFilter()

	tests := []struct {
		name    string
		x, y, z float32
		radius  float32
		want    bool
	}{
		{"straight ahead", 0, 0, -10, 1, true},
		{"behind camera", 0, 0, 10, 1, false},
		{"beyond far plane", 0, 0, -200, 1, false},
		{"large sphere reaching far plane", 0, 0, -200, 150, true},
		{"far to the right", 20, 0, -10, 1, false},
		{"touching right plane", 10.5, 0, -10, 1, true},
		{"far above", 0, 30, -10, 1, false},
		{"closer than near plane", 0, 0, -0.5, 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.InsideFrustum(tt.x, tt.y, tt.z, tt.radius); got != tt.want {
				t.Errorf("InsideFrustum(%v, %v, %v, %v) = %v, want %v",
					tt.x, tt.y, tt.z, tt.radius, got, tt.want)
			}
		})
	}
}

func TestFrustumFilter_ZeroValueAcceptsAll(t *testing.T) {
	var f FrustumFilter
	if !f.InsideFrustum(0, 0, 1e6, 0) {
		t.Error("zero FrustumFilter should accept every sphere before Update")
	}
}

func TestFrustumFilter_PlanesNormalized(t *testing.T) {
	for i, pl := range newTestFilter().Planes() {
		if !near(pl.N.Length(), 1) {
			t.Errorf("plane %d normal length = %v, want 1", i, pl.N.Length())
		}
	}
}

func TestFrustumFilter_Filter(t *testing.T) {
	f := newTestFilter()

	visible := &fakeEntity{pos: V3(0, 0, -10), scale: 1}
	hidden := &fakeEntity{pos: V3(0, 0, 50), scale: 1, inside: true}
	scaledIn := &fakeEntity{pos: V3(13, 0, -10), scale: 3}
	alwaysOn := &fakeEntity{pos: V3(0, 0, 50), scale: 1, disabled: true}

	f.FilterGroups([]MeshGroup{
		{BoundingRadius: 1, Entities: []Cullable{visible, hidden}},
		{BoundingRadius: 2, Entities: []Cullable{scaledIn, alwaysOn}},
	})

	if !visible.inside {
		t.Error("entity in front of the camera should be inside")
	}
	if hidden.inside {
		t.Error("entity behind the camera should be outside")
	}
	if !scaledIn.inside {
		t.Error("entity radius should scale with the entity scale")
	}
	if !alwaysOn.inside {
		t.Error("entity with culling disabled should always be inside")
	}
}
