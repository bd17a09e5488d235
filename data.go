package primkit

import "github.com/go-gl/mathgl/mgl32"

// Data is the payload of a primitive variable: either a single value or a
// flat list of values. The conversion layer inspects payloads by concrete
// type; payload types it does not recognize are skipped with a warning, so
// the interface is deliberately open.
type Data interface {
	// Len returns the number of elements in the payload.
	// Scalar payloads report 1.
	Len() int
}

// Scalar payloads.
type (
	// Float holds a single float32 value.
	Float float32

	// Int holds a single int32 value.
	Int int32

	// Bool holds a single boolean value.
	Bool bool

	// String holds a single string value.
	String string

	// Vec2 holds a single 2D vector.
	Vec2 mgl32.Vec2

	// Vec3 holds a single 3D vector.
	Vec3 mgl32.Vec3

	// RGB holds a single linear color value.
	RGB struct {
		R, G, B float32
	}
)

func (Float) Len() int  { return 1 }
func (Int) Len() int    { return 1 }
func (Bool) Len() int   { return 1 }
func (String) Len() int { return 1 }
func (Vec2) Len() int   { return 1 }
func (Vec3) Len() int   { return 1 }
func (RGB) Len() int    { return 1 }

// List payloads. Element order follows the primitive's topology for the
// variable's interpolation class.
type (
	// FloatList holds per-element float32 values.
	FloatList []float32

	// IntList holds per-element int32 values.
	IntList []int32

	// BoolList holds per-element boolean values.
	BoolList []bool

	// StringList holds per-element string values.
	StringList []string

	// Vec2List holds per-element 2D vectors (texture coordinates).
	Vec2List []mgl32.Vec2

	// Vec3List holds per-element 3D vectors (positions, normals, velocities).
	Vec3List []mgl32.Vec3

	// RGBList holds per-element linear colors.
	RGBList []RGB
)

func (d FloatList) Len() int  { return len(d) }
func (d IntList) Len() int    { return len(d) }
func (d BoolList) Len() int   { return len(d) }
func (d StringList) Len() int { return len(d) }
func (d Vec2List) Len() int   { return len(d) }
func (d Vec3List) Len() int   { return len(d) }
func (d RGBList) Len() int    { return len(d) }
