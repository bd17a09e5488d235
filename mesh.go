package primkit

import "fmt"

// Mesh is a polygon mesh with shared vertices. Faces may mix arities.
type Mesh struct {
	variableSet
	vertsPerFace []int
	vertexIDs    []int
	numPoints    int
}

var _ Primitive = (*Mesh)(nil)

// NewMesh creates a polygon mesh. vertsPerFace gives each face's corner
// count, vertexIDs concatenates the position indices of all face corners,
// and p holds the shared vertex positions.
func NewMesh(vertsPerFace, vertexIDs []int, p Vec3List) *Mesh {
	m := &Mesh{
		vertsPerFace: append([]int(nil), vertsPerFace...),
		vertexIDs:    append([]int(nil), vertexIDs...),
		numPoints:    len(p),
	}
	m.SetVariable("P", PrimVar{Interpolation: InterpolationVertex, Data: p})
	return m
}

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.vertsPerFace) }

// VerticesPerFace returns the corner count of each face.
func (m *Mesh) VerticesPerFace() []int { return m.vertsPerFace }

// VertexIDs returns the position index of every face corner.
func (m *Mesh) VertexIDs() []int { return m.vertexIDs }

// NumVertices returns the shared vertex count.
func (m *Mesh) NumVertices() int { return m.numPoints }

// Kind reports KindMesh.
func (m *Mesh) Kind() Kind { return KindMesh }

// VariableSize implements Primitive. Uniform maps one element per face,
// Vertex and Varying one per shared vertex, FaceVarying one per face corner.
func (m *Mesh) VariableSize(i Interpolation) int {
	switch i {
	case InterpolationConstant:
		return 1
	case InterpolationUniform:
		return len(m.vertsPerFace)
	case InterpolationVertex, InterpolationVarying:
		return m.numPoints
	case InterpolationFaceVarying:
		return len(m.vertexIDs)
	default:
		return 0
	}
}

// Bounds returns the bounding box of the vertex positions.
func (m *Mesh) Bounds() Box { return boundsOf(m) }

// Validate checks the topology and every variable's payload.
func (m *Mesh) Validate() error {
	corners := 0
	for i, n := range m.vertsPerFace {
		if n < 3 {
			return fmt.Errorf("%w: face %d has %d corners, want at least 3",
				ErrInvalidVariable, i, n)
		}
		corners += n
	}
	if corners != len(m.vertexIDs) {
		return fmt.Errorf("%w: faces reference %d corners but %d vertex ids given",
			ErrInvalidVariable, corners, len(m.vertexIDs))
	}
	for i, id := range m.vertexIDs {
		if id < 0 || id >= m.numPoints {
			return fmt.Errorf("%w: corner %d references vertex %d of %d",
				ErrInvalidVariable, i, id, m.numPoints)
		}
	}
	return validateVariables(m)
}
