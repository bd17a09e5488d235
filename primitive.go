package primkit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidVariable is returned by Validate when a variable's payload does
// not fit the primitive's topology.
var ErrInvalidVariable = errors.New("primkit: invalid variable")

// Kind identifies a primitive's topology family.
type Kind int

const (
	// KindPoints is a point cloud.
	KindPoints Kind = iota

	// KindCurves is a set of linear or cubic curves.
	KindCurves

	// KindMesh is a polygon mesh.
	KindMesh
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindCurves:
		return "curves"
	case KindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// Primitive is a geometric object carrying named, interpolation-classified
// variables. The three concrete implementations are [Points], [Curves] and
// [Mesh].
type Primitive interface {
	// Kind reports the topology family.
	Kind() Kind

	// VariableSize returns the element count a variable of the given
	// interpolation class must carry on this primitive.
	VariableSize(i Interpolation) int

	// Variable returns the named variable and whether it exists.
	Variable(name string) (PrimVar, bool)

	// Variables returns the primitive's variables keyed by name.
	Variables() map[string]PrimVar

	// Bounds returns the bounding box of the vertex positions.
	Bounds() Box

	// Validate checks every variable's payload against the topology.
	Validate() error
}

// validateVariables checks each variable's payload length against the
// element count its interpolation class demands. Names are checked in
// sorted order so the first failure is deterministic.
func validateVariables(p Primitive) error {
	vars := p.Variables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := vars[name]
		if v.Data == nil {
			return fmt.Errorf("%w: %q has no payload", ErrInvalidVariable, name)
		}
		if v.Interpolation < InterpolationConstant || v.Interpolation > InterpolationFaceVarying {
			return fmt.Errorf("%w: %q has interpolation %v", ErrInvalidVariable, name, v.Interpolation)
		}
		want := p.VariableSize(v.Interpolation)
		if got := v.Data.Len(); got != want {
			return fmt.Errorf("%w: %q has %d elements, want %d for %v interpolation",
				ErrInvalidVariable, name, got, want, v.Interpolation)
		}
	}
	return nil
}

// positionsOf returns the "P" variable when it is a vertex-interpolated
// vector list, which is what every well-formed primitive carries.
func positionsOf(p Primitive) (Vec3List, bool) {
	v, ok := p.Variable("P")
	if !ok || v.Interpolation != InterpolationVertex {
		return nil, false
	}
	pos, ok := v.Data.(Vec3List)
	return pos, ok
}
