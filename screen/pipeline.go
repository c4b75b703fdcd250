package screen

import "github.com/gogpu/gputypes"

// SampleCount is the number of samples per pixel requested when
// anti-aliasing is enabled.
const SampleCount = 4

// PrimitiveState returns the WebGPU primitive state the options imply.
// Wireframe rendering switches the topology to line lists; cull-face
// culls back faces with counter-clockwise front faces.
func (o Options) PrimitiveState() gputypes.PrimitiveState {
	ps := gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	if o.showTriangles {
		ps.Topology = gputypes.PrimitiveTopologyLineList
	}
	if o.cullFace {
		ps.CullMode = gputypes.CullModeBack
	}
	return ps
}

// MultisampleState returns the WebGPU multisample state the options imply.
func (o Options) MultisampleState() gputypes.MultisampleState {
	ms := gputypes.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}
	if o.antialiasing {
		ms.Count = SampleCount
	}
	return ms
}
