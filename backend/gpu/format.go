//go:build !nogpu

package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/primkit/node"
)

// VertexFormatFor maps an array element type onto the wgpu vertex format
// with the same memory layout, so uploaded buffers can be bound directly
// as vertex attributes. Scalar-only types have no buffer form.
func VertexFormatFor(t node.ParamType) (gputypes.VertexFormat, bool) {
	switch t {
	case node.TypeFloat32:
		return gputypes.VertexFormatFloat32, true
	case node.TypeFloat32x2:
		return gputypes.VertexFormatFloat32x2, true
	case node.TypeFloat32x3:
		return gputypes.VertexFormatFloat32x3, true
	case node.TypeUint32:
		return gputypes.VertexFormatUint32, true
	case node.TypeSint32:
		return gputypes.VertexFormatSint32, true
	default:
		return 0, false
	}
}
