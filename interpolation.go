package primkit

import "fmt"

// Interpolation classifies how a variable's elements map onto a primitive's
// topology. The element count a primitive expects for each class comes from
// [Primitive.VariableSize].
type Interpolation int

const (
	// InterpolationInvalid is the zero value; variables carrying it are
	// never convertible.
	InterpolationInvalid Interpolation = iota

	// InterpolationConstant holds one value for the whole primitive.
	InterpolationConstant

	// InterpolationUniform holds one value per face or per curve.
	InterpolationUniform

	// InterpolationVertex holds one value per vertex.
	InterpolationVertex

	// InterpolationVarying holds one value per interpolation point.
	// For meshes and point clouds this matches Vertex; for cubic curves
	// it does not.
	InterpolationVarying

	// InterpolationFaceVarying holds one value per face-corner, allowing
	// discontinuities across shared vertices.
	InterpolationFaceVarying
)

// String returns the lowercase class name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationConstant:
		return "constant"
	case InterpolationUniform:
		return "uniform"
	case InterpolationVertex:
		return "vertex"
	case InterpolationVarying:
		return "varying"
	case InterpolationFaceVarying:
		return "facevarying"
	default:
		return "invalid"
	}
}

// ParseInterpolation returns the class named by s.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "constant":
		return InterpolationConstant, nil
	case "uniform":
		return InterpolationUniform, nil
	case "vertex":
		return InterpolationVertex, nil
	case "varying":
		return InterpolationVarying, nil
	case "facevarying":
		return InterpolationFaceVarying, nil
	default:
		return InterpolationInvalid, fmt.Errorf("primkit: unknown interpolation %q", s)
	}
}
