package node

import "github.com/gogpu/primkit"

// ParamType identifies a renderer-native element type. Array-capable types
// use WebGPU vertex format names so converted arrays map directly onto GPU
// buffers; TypeBool and TypeString exist for scalar declarations only.
type ParamType int

const (
	// TypeNone marks payloads the renderer has no type for.
	TypeNone ParamType = iota

	// TypeFloat32 is a one-component float element.
	TypeFloat32

	// TypeFloat32x2 is a two-component float element.
	TypeFloat32x2

	// TypeFloat32x3 is a three-component float element.
	TypeFloat32x3

	// TypeUint32 is an unsigned integer element (index arrays).
	TypeUint32

	// TypeSint32 is a signed integer element.
	TypeSint32

	// TypeBool is a scalar-only boolean.
	TypeBool

	// TypeString is a scalar-only string.
	TypeString
)

// String returns the declaration name of the type.
func (t ParamType) String() string {
	switch t {
	case TypeFloat32:
		return "float32"
	case TypeFloat32x2:
		return "float32x2"
	case TypeFloat32x3:
		return "float32x3"
	case TypeUint32:
		return "uint32"
	case TypeSint32:
		return "sint32"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "none"
	}
}

// Components returns the scalar component count of one element.
func (t ParamType) Components() int {
	switch t {
	case TypeFloat32, TypeUint32, TypeSint32, TypeBool, TypeString:
		return 1
	case TypeFloat32x2:
		return 2
	case TypeFloat32x3:
		return 3
	default:
		return 0
	}
}

// TypeFor returns the array element type for a list payload. Payloads with
// no array form (scalars, strings, booleans, unknown implementations)
// report false; the renderer can still take those as scalar constants.
func TypeFor(d primkit.Data) (ParamType, bool) {
	switch d.(type) {
	case primkit.FloatList:
		return TypeFloat32, true
	case primkit.IntList:
		return TypeSint32, true
	case primkit.Vec2List:
		return TypeFloat32x2, true
	case primkit.Vec3List:
		return TypeFloat32x3, true
	case primkit.RGBList:
		return TypeFloat32x3, true
	default:
		return TypeNone, false
	}
}

// ScalarTypeFor returns the declaration type for a scalar payload.
func ScalarTypeFor(d primkit.Data) (ParamType, bool) {
	switch d.(type) {
	case primkit.Float:
		return TypeFloat32, true
	case primkit.Int:
		return TypeSint32, true
	case primkit.Bool:
		return TypeBool, true
	case primkit.String:
		return TypeString, true
	case primkit.Vec2:
		return TypeFloat32x2, true
	case primkit.Vec3:
		return TypeFloat32x3, true
	case primkit.RGB:
		return TypeFloat32x3, true
	default:
		return TypeNone, false
	}
}
