package primkit

import "fmt"

// Basis identifies the interpolation basis of a curve set.
type Basis int

const (
	// BasisLinear connects control points with straight segments.
	BasisLinear Basis = iota

	// BasisBezier is the cubic Bezier basis (vertex step 3).
	BasisBezier

	// BasisBSpline is the uniform cubic B-spline basis (vertex step 1).
	BasisBSpline

	// BasisCatmullRom is the cubic Catmull-Rom basis (vertex step 1).
	BasisCatmullRom
)

// String returns the basis name.
func (b Basis) String() string {
	switch b {
	case BasisLinear:
		return "linear"
	case BasisBezier:
		return "bezier"
	case BasisBSpline:
		return "b-spline"
	case BasisCatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// ParseBasis returns the basis named by s. Hyphenated and plain spellings
// are both accepted.
func ParseBasis(s string) (Basis, error) {
	switch s {
	case "linear":
		return BasisLinear, nil
	case "bezier":
		return BasisBezier, nil
	case "b-spline", "bspline":
		return BasisBSpline, nil
	case "catmull-rom", "catmullrom":
		return BasisCatmullRom, nil
	default:
		return 0, fmt.Errorf("primkit: unknown curve basis %q", s)
	}
}

// step returns the vertex stride between consecutive curve segments.
func (b Basis) step() int {
	if b == BasisBezier {
		return 3
	}
	return 1
}

func (b Basis) cubic() bool { return b != BasisLinear }

// Curves is a set of curves sharing one basis. Control points of all curves
// are concatenated in curve order; vertsPerCurve slices them apart.
//
// Vertex and Varying element counts differ on cubic curves: a cubic curve
// has one varying value per segment boundary, not per control point.
type Curves struct {
	variableSet
	basis         Basis
	periodic      bool
	vertsPerCurve []int
	numVerts      int
	numVarying    int
}

var _ Primitive = (*Curves)(nil)

// NewCurves creates a curve set. vertsPerCurve gives the control point
// count of each curve; p concatenates the control points of all curves.
func NewCurves(basis Basis, periodic bool, vertsPerCurve []int, p Vec3List) *Curves {
	c := &Curves{
		basis:         basis,
		periodic:      periodic,
		vertsPerCurve: append([]int(nil), vertsPerCurve...),
	}
	for _, n := range c.vertsPerCurve {
		c.numVerts += n
		c.numVarying += c.varyingSize(n)
	}
	c.SetVariable("P", PrimVar{Interpolation: InterpolationVertex, Data: p})
	return c
}

// Basis returns the curve basis.
func (c *Curves) Basis() Basis { return c.basis }

// Periodic reports whether the curves are closed.
func (c *Curves) Periodic() bool { return c.periodic }

// NumCurves returns the curve count.
func (c *Curves) NumCurves() int { return len(c.vertsPerCurve) }

// VerticesPerCurve returns the control point count of each curve.
func (c *Curves) VerticesPerCurve() []int { return c.vertsPerCurve }

// NumVertices returns the total control point count.
func (c *Curves) NumVertices() int { return c.numVerts }

// segments returns the segment count of a curve with n control points.
func (c *Curves) segments(n int) int {
	s := c.basis.step()
	if c.basis.cubic() {
		if c.periodic {
			return n / s
		}
		return (n-4)/s + 1
	}
	if c.periodic {
		return n
	}
	return n - 1
}

// varyingSize returns the varying element count of a curve with n control
// points: one value per segment boundary, shared at the seam when periodic.
func (c *Curves) varyingSize(n int) int {
	if c.periodic {
		return c.segments(n)
	}
	return c.segments(n) + 1
}

// Kind reports KindCurves.
func (c *Curves) Kind() Kind { return KindCurves }

// VariableSize implements Primitive. Uniform maps one element per curve,
// Vertex one per control point, Varying one per segment boundary.
// FaceVarying has no distinct meaning on curves and matches Varying.
func (c *Curves) VariableSize(i Interpolation) int {
	switch i {
	case InterpolationConstant:
		return 1
	case InterpolationUniform:
		return len(c.vertsPerCurve)
	case InterpolationVertex:
		return c.numVerts
	case InterpolationVarying, InterpolationFaceVarying:
		return c.numVarying
	default:
		return 0
	}
}

// Bounds returns the bounding box of the control points.
func (c *Curves) Bounds() Box { return boundsOf(c) }

// Validate checks the topology and every variable's payload.
func (c *Curves) Validate() error {
	for i, n := range c.vertsPerCurve {
		switch {
		case !c.basis.cubic() && n < 2:
			return fmt.Errorf("%w: curve %d has %d control points, want at least 2",
				ErrInvalidVariable, i, n)
		case c.basis.cubic() && !c.periodic && (n < 4 || (n-4)%c.basis.step() != 0):
			return fmt.Errorf("%w: curve %d has %d control points, invalid for a %v basis",
				ErrInvalidVariable, i, n, c.basis)
		case c.basis.cubic() && c.periodic && (n < 3 || n%c.basis.step() != 0):
			return fmt.Errorf("%w: curve %d has %d control points, invalid for a periodic %v basis",
				ErrInvalidVariable, i, n, c.basis)
		}
	}
	return validateVariables(c)
}
