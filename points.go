package primkit

// Points is a point cloud. Construction stores the vertex positions as the
// "P" variable; everything else (widths, colors, velocities) is attached
// through SetVariable.
type Points struct {
	variableSet
	numPoints int
}

var _ Primitive = (*Points)(nil)

// NewPoints creates a point cloud from vertex positions.
func NewPoints(p Vec3List) *Points {
	pts := &Points{numPoints: len(p)}
	pts.SetVariable("P", PrimVar{Interpolation: InterpolationVertex, Data: p})
	return pts
}

// NumPoints returns the point count.
func (p *Points) NumPoints() int { return p.numPoints }

// Kind reports KindPoints.
func (p *Points) Kind() Kind { return KindPoints }

// VariableSize implements Primitive. A point cloud has no faces, so Uniform
// holds a single value; the per-element classes all map one value per point.
func (p *Points) VariableSize(i Interpolation) int {
	switch i {
	case InterpolationConstant, InterpolationUniform:
		return 1
	case InterpolationVertex, InterpolationVarying, InterpolationFaceVarying:
		return p.numPoints
	default:
		return 0
	}
}

// Bounds returns the bounding box of the positions.
func (p *Points) Bounds() Box { return boundsOf(p) }

// Validate checks every variable's payload against the topology.
func (p *Points) Validate() error { return validateVariables(p) }
