package convert

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/primkit"
	"github.com/gogpu/primkit/node"
)

// dataToArray flattens payload samples into a single renderer array with
// one motion key per sample. It returns nil when a payload has no array
// form, disagrees with the requested element type, or the samples differ
// in length.
func dataToArray(t node.ParamType, samples ...primkit.Data) *node.Array {
	if len(samples) == 0 {
		return nil
	}
	count := samples[0].Len()
	a := &node.Array{Type: t, Count: count, Keys: len(samples)}
	for _, s := range samples {
		if s == nil || s.Len() != count {
			return nil
		}
		switch d := s.(type) {
		case primkit.FloatList:
			if t != node.TypeFloat32 {
				return nil
			}
			a.F32 = append(a.F32, d...)
		case primkit.IntList:
			if t != node.TypeSint32 {
				return nil
			}
			a.I32 = append(a.I32, d...)
		case primkit.Vec2List:
			if t != node.TypeFloat32x2 {
				return nil
			}
			for _, v := range d {
				a.F32 = append(a.F32, v[0], v[1])
			}
		case primkit.Vec3List:
			if t != node.TypeFloat32x3 {
				return nil
			}
			for _, v := range d {
				a.F32 = append(a.F32, v[0], v[1], v[2])
			}
		case primkit.RGBList:
			if t != node.TypeFloat32x3 {
				return nil
			}
			for _, c := range d {
				a.F32 = append(a.F32, c.R, c.G, c.B)
			}
		default:
			return nil
		}
	}
	return a
}

// scalarValue unwraps a scalar payload into the plain Go value a node
// stores.
func scalarValue(d primkit.Data) any {
	switch v := d.(type) {
	case primkit.Float:
		return float32(v)
	case primkit.Int:
		return int32(v)
	case primkit.Bool:
		return bool(v)
	case primkit.String:
		return string(v)
	case primkit.Vec2:
		return mgl32.Vec2(v)
	case primkit.Vec3:
		return mgl32.Vec3(v)
	default:
		return d
	}
}

// setParameter writes a payload as a constant node parameter. Scalar
// payloads become plain values, list payloads become constant arrays;
// user parameter names are declared first, built-in names are set
// directly.
func setParameter(dst node.Node, name string, d primkit.Data) {
	log := primkit.Logger()

	if st, ok := node.ScalarTypeFor(d); ok {
		if !dst.IsBuiltin(name) {
			if err := dst.Declare(name, "constant "+st.String()); err != nil {
				log.Warn("unable to declare user parameter",
					"parameter", name, "node", dst.Name(), "err", err)
				return
			}
		}
		if err := dst.SetParam(name, scalarValue(d)); err != nil {
			log.Warn("unable to set parameter",
				"parameter", name, "node", dst.Name(), "err", err)
		}
		return
	}

	t, ok := node.TypeFor(d)
	if !ok {
		log.Warn("cannot set parameter of unsupported type",
			"parameter", name, "node", dst.Name())
		return
	}
	if !dst.IsBuiltin(name) {
		if err := dst.Declare(name, "constant "+t.String()+"[]"); err != nil {
			log.Warn("unable to declare user parameter",
				"parameter", name, "node", dst.Name(), "err", err)
			return
		}
	}
	a := dataToArray(t, d)
	if a == nil {
		log.Warn("failed to create array for parameter",
			"parameter", name, "node", dst.Name())
		return
	}
	if err := dst.SetArray(name, a); err != nil {
		log.Warn("unable to set parameter array",
			"parameter", name, "node", dst.Name(), "err", err)
	}
}
