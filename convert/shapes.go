package convert

import (
	"fmt"
	"slices"

	"github.com/gogpu/primkit"
	"github.com/gogpu/primkit/node"
)

// PointCloud converts point cloud samples into a "points" node: positions,
// radii, the draw mode from a constant "type" string variable, then every
// remaining variable. Width and radius sources are consumed by the radius
// derivation and excluded from the generic pass.
func PointCloud(dst node.Node, samples ...*primkit.Points) error {
	prims := make([]primkit.Primitive, len(samples))
	for i, s := range samples {
		prims[i] = s
	}
	if err := Positions(dst, "points", prims...); err != nil {
		return err
	}
	if err := Radius(dst, prims...); err != nil {
		return err
	}

	mode := "disk"
	if v, ok := samples[0].Variable("type"); ok && v.Interpolation == primkit.InterpolationConstant {
		if s, ok := v.Data.(primkit.String); ok {
			mode = string(s)
		}
	}
	if err := dst.SetParam("mode", mode); err != nil {
		return err
	}

	Variables(dst, samples[0], "P", "width", "constantwidth", "radius", "type")
	return nil
}

// CurveSet converts curve samples into a "curves" node: per-curve vertex
// counts, the basis name, positions, radii and the remaining variables.
func CurveSet(dst node.Node, samples ...*primkit.Curves) error {
	prims := make([]primkit.Primitive, len(samples))
	for i, s := range samples {
		prims[i] = s
	}
	c := samples[0]
	for i, s := range samples[1:] {
		if s.Basis() != c.Basis() || s.Periodic() != c.Periodic() ||
			!slices.Equal(s.VerticesPerCurve(), c.VerticesPerCurve()) {
			return fmt.Errorf("%w: sample %d topology differs", ErrSampleMismatch, i+1)
		}
	}
	if err := Positions(dst, "points", prims...); err != nil {
		return err
	}
	if err := Radius(dst, prims...); err != nil {
		return err
	}

	num := node.NewArray(node.TypeUint32, c.NumCurves())
	for i, n := range c.VerticesPerCurve() {
		num.U32[i] = uint32(n)
	}
	if err := dst.SetArray("num_points", num); err != nil {
		return err
	}
	if err := dst.SetParam("basis", c.Basis().String()); err != nil {
		return err
	}

	Variables(dst, c, "P", "width", "constantwidth", "radius")
	return nil
}

// PolyMesh converts mesh samples into a "polymesh" node: face topology,
// positions, normals and texture coordinates into their indexed built-in
// pairs, then the remaining variables. Smoothing is enabled when no
// authored normals exist.
func PolyMesh(dst node.Node, samples ...*primkit.Mesh) error {
	prims := make([]primkit.Primitive, len(samples))
	for i, s := range samples {
		prims[i] = s
	}
	m := samples[0]
	for i, s := range samples[1:] {
		if !slices.Equal(s.VerticesPerFace(), m.VerticesPerFace()) ||
			!slices.Equal(s.VertexIDs(), m.VertexIDs()) {
			return fmt.Errorf("%w: sample %d topology differs", ErrSampleMismatch, i+1)
		}
	}
	if err := Positions(dst, "vlist", prims...); err != nil {
		return err
	}

	nsides := node.NewArray(node.TypeUint32, m.NumFaces())
	for i, n := range m.VerticesPerFace() {
		nsides.U32[i] = uint32(n)
	}
	if err := dst.SetArray("nsides", nsides); err != nil {
		return err
	}
	vidxs := node.NewArray(node.TypeUint32, len(m.VertexIDs()))
	for i, id := range m.VertexIDs() {
		vidxs.U32[i] = uint32(id)
	}
	if err := dst.SetArray("vidxs", vidxs); err != nil {
		return err
	}

	if v, ok := m.Variable("N"); ok {
		meshIndexed(dst, m, "N", v, node.TypeFloat32x3, "nlist", "nidxs")
	} else if err := dst.SetParam("smoothing", true); err != nil {
		return err
	}
	if v, ok := m.Variable("uv"); ok {
		meshIndexed(dst, m, "uv", v, node.TypeFloat32x2, "uvlist", "uvidxs")
	}

	Variables(dst, m, "P", "N", "uv")
	return nil
}

// MotionRange stamps the shutter interval covered by the motion samples of
// a previously converted shape.
func MotionRange(dst node.Node, start, end float32) error {
	if err := dst.SetParam("motion_start", start); err != nil {
		return err
	}
	return dst.SetParam("motion_end", end)
}

// meshIndexed writes a mesh variable into an indexed built-in pair
// (value list + face-corner indices). Vertex and Varying data reuse the
// mesh's vertex ids as indices; FaceVarying data is already per corner and
// gets identity indices. Anything else is skipped with a warning.
func meshIndexed(dst node.Node, m *primkit.Mesh, name string, v primkit.PrimVar, want node.ParamType, listParam, idxParam string) {
	log := primkit.Logger()

	t, ok := node.TypeFor(v.Data)
	if !ok || t != want {
		log.Warn("cannot convert mesh variable; unsupported payload type",
			"variable", name, "node", dst.Name())
		return
	}

	var idx *node.Array
	switch v.Interpolation {
	case primkit.InterpolationVertex, primkit.InterpolationVarying:
		ids := m.VertexIDs()
		idx = node.NewArray(node.TypeUint32, len(ids))
		for i, id := range ids {
			idx.U32[i] = uint32(id)
		}
	case primkit.InterpolationFaceVarying:
		idx = node.IdentityIndices(v.Data.Len())
	default:
		log.Warn("cannot convert mesh variable; unsupported interpolation",
			"variable", name, "interpolation", v.Interpolation.String(), "node", dst.Name())
		return
	}

	arr := dataToArray(t, v.Data)
	if arr == nil {
		log.Warn("failed to create array for parameter",
			"variable", name, "node", dst.Name())
		return
	}
	if err := dst.SetArray(listParam, arr); err != nil {
		log.Warn("unable to set parameter array",
			"variable", name, "node", dst.Name(), "err", err)
		return
	}
	if err := dst.SetArray(idxParam, idx); err != nil {
		log.Warn("unable to set index parameter",
			"variable", name, "node", dst.Name(), "err", err)
	}
}
