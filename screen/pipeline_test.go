package screen

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPrimitiveState(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		topology gputypes.PrimitiveTopology
		cull     gputypes.CullMode
	}{
		{"default", NewOptionsBuilder().Build(), gputypes.PrimitiveTopologyTriangleList, gputypes.CullModeNone},
		{"wireframe", NewOptionsBuilder().ShowTriangles(true).Build(), gputypes.PrimitiveTopologyLineList, gputypes.CullModeNone},
		{"cull face", NewOptionsBuilder().CullFace(true).Build(), gputypes.PrimitiveTopologyTriangleList, gputypes.CullModeBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := tt.opts.PrimitiveState()
			if ps.Topology != tt.topology {
				t.Errorf("Topology = %v, want %v", ps.Topology, tt.topology)
			}
			if ps.CullMode != tt.cull {
				t.Errorf("CullMode = %v, want %v", ps.CullMode, tt.cull)
			}
			if ps.FrontFace != gputypes.FrontFaceCCW {
				t.Errorf("FrontFace = %v, want CCW", ps.FrontFace)
			}
		})
	}
}

func TestMultisampleState(t *testing.T) {
	if got := NewOptionsBuilder().Build().MultisampleState().Count; got != 1 {
		t.Errorf("Count = %d, want 1 without anti-aliasing", got)
	}
	ms := NewOptionsBuilder().Antialiasing(true).Build().MultisampleState()
	if ms.Count != SampleCount {
		t.Errorf("Count = %d, want %d with anti-aliasing", ms.Count, SampleCount)
	}
	if ms.Mask != 0xFFFFFFFF {
		t.Errorf("Mask = %#x, want 0xFFFFFFFF", ms.Mask)
	}
}
