// Package convert translates primitives into renderer node parameters:
// vertex positions, derived point radii and arbitrary user variables.
//
// Missing vertex positions are the only fatal condition. Every other
// mismatch between a variable and what the target node can express is
// reported through the primkit logger and skipped, leaving the node
// untouched for that variable.
package convert

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/primkit"
	"github.com/gogpu/primkit/node"
)

// Conversion errors.
var (
	// ErrNoSamples is returned when a conversion is invoked with no
	// primitive samples.
	ErrNoSamples = errors.New("convert: no samples")

	// ErrMissingPositions is returned when a primitive carries no
	// vertex-interpolated "P" vector variable.
	ErrMissingPositions = errors.New("convert: primitive has no vertex P variable")

	// ErrSampleMismatch is returned when motion samples disagree on
	// topology or payload length.
	ErrSampleMismatch = errors.New("convert: motion samples do not match")
)

// indexSuffix names the companion index parameter of an indexed user
// parameter: "<name>" holds the values, "<name>idxs" the indices.
const indexSuffix = "idxs"

// Positions writes the samples' vertex positions to the named node
// parameter as one array with a motion key per sample. The parameter is
// the position built-in of the target node type, "points" or "vlist".
//
// Every sample must carry "P" as a vertex-interpolated vector list and all
// samples must agree on length; nothing is written otherwise.
func Positions(dst node.Node, param string, samples ...primkit.Primitive) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w for %q", ErrNoSamples, param)
	}

	payloads := make([]primkit.Data, len(samples))
	count := -1
	for i, s := range samples {
		v, ok := s.Variable("P")
		if !ok || v.Interpolation != primkit.InterpolationVertex {
			return fmt.Errorf("%w (sample %d)", ErrMissingPositions, i)
		}
		p, ok := v.Data.(primkit.Vec3List)
		if !ok {
			return fmt.Errorf("%w (sample %d)", ErrMissingPositions, i)
		}
		if count >= 0 && len(p) != count {
			return fmt.Errorf("%w: sample %d has %d points, want %d",
				ErrSampleMismatch, i, len(p), count)
		}
		count = len(p)
		payloads[i] = p
	}

	arr := dataToArray(node.TypeFloat32x3, payloads...)
	if arr == nil {
		return fmt.Errorf("%w: positions for %q", ErrSampleMismatch, param)
	}
	return dst.SetArray(param, arr)
}

// Radius derives a per-point radius list from each sample and writes the
// node's "radius" parameter as one array with a motion key per sample.
//
// Derivation precedence per sample: an explicit "radius" variable always
// wins (per-element float list of any interpolation, then a constant float
// scalar); next a per-element "width" list halved; next a constant "width"
// or "constantwidth" scalar halved; finally the default width of 1.0,
// giving radius 0.5. The derived list always has at least one element.
//
// All samples are derived before anything is written, so a mismatch leaves
// the node untouched.
func Radius(dst node.Node, samples ...primkit.Primitive) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w for %q", ErrNoSamples, "radius")
	}

	lists := make([]primkit.Data, len(samples))
	count := -1
	for i, s := range samples {
		r := deriveRadius(s)
		if count >= 0 && len(r) != count {
			return fmt.Errorf("%w: sample %d derives %d radii, want %d",
				ErrSampleMismatch, i, len(r), count)
		}
		count = len(r)
		lists[i] = primkit.FloatList(r)
	}

	arr := dataToArray(node.TypeFloat32, lists...)
	if arr == nil {
		return fmt.Errorf("%w: radii", ErrSampleMismatch)
	}
	return dst.SetArray("radius", arr)
}

// deriveRadius computes the radius list for one sample.
func deriveRadius(p primkit.Primitive) []float32 {
	if v, ok := p.Variable("radius"); ok {
		if r, ok := v.Data.(primkit.FloatList); ok {
			return r
		}
		if v.Interpolation == primkit.InterpolationConstant {
			if r, ok := v.Data.(primkit.Float); ok {
				return []float32{float32(r)}
			}
		}
	}

	if v, ok := p.Variable("width"); ok {
		if w, ok := v.Data.(primkit.FloatList); ok {
			out := make([]float32, len(w))
			for i, x := range w {
				out[i] = x / 2
			}
			return out
		}
	}

	width := float32(1)
	if w, ok := constantFloat(p, "width"); ok {
		width = w
	} else if w, ok := constantFloat(p, "constantwidth"); ok {
		width = w
	}
	return []float32{width / 2}
}

// constantFloat returns the value of a constant float scalar variable.
func constantFloat(p primkit.Primitive, name string) (float32, bool) {
	v, ok := p.Variable(name)
	if !ok || v.Interpolation != primkit.InterpolationConstant {
		return 0, false
	}
	f, ok := v.Data.(primkit.Float)
	return float32(f), ok
}

// Variable converts one primitive variable into a user parameter on the
// node, under the externally visible name. The node is untouched on every
// skip path except a failed array construction, which leaves the declared
// parameter unset.
//
// The interpolation class picks the parameter mode: Constant, Uniform and
// Varying map to their renderer namesakes; FaceVarying maps to "indexed"
// on meshes and falls back to the Vertex rule elsewhere; Vertex maps to
// "varying" only when the primitive counts both classes the same. On point
// clouds "uniform" then degrades to "constant" and "varying" to "uniform",
// matching how a points node counts its elements.
func Variable(dst node.Node, name string, src primkit.Primitive, v primkit.PrimVar) {
	log := primkit.Logger()

	if dst.IsBuiltin(name) {
		log.Warn("cannot convert primitive variable; name clashes with a built-in parameter",
			"variable", name, "node", dst.Name())
		return
	}

	mode := ""
	switch v.Interpolation {
	case primkit.InterpolationConstant:
		mode = "constant"
	case primkit.InterpolationUniform:
		mode = "uniform"
	case primkit.InterpolationVarying:
		mode = "varying"
	case primkit.InterpolationFaceVarying:
		if src.Kind() == primkit.KindMesh {
			mode = "indexed"
			break
		}
		fallthrough
	case primkit.InterpolationVertex:
		if src.VariableSize(v.Interpolation) == src.VariableSize(primkit.InterpolationVarying) {
			mode = "varying"
		}
	}
	if mode == "" {
		log.Warn("cannot convert primitive variable; unsupported interpolation",
			"variable", name, "interpolation", v.Interpolation.String(), "node", dst.Name())
		return
	}

	if src.Kind() == primkit.KindPoints {
		switch mode {
		case "uniform":
			mode = "constant"
		case "varying":
			mode = "uniform"
		}
	}

	if mode == "constant" {
		setParameter(dst, name, v.Data)
		return
	}

	t, ok := node.TypeFor(v.Data)
	if !ok {
		log.Warn("cannot convert primitive variable; unsupported payload type",
			"variable", name, "node", dst.Name())
		return
	}

	if err := dst.Declare(name, mode+" "+t.String()); err != nil {
		log.Warn("unable to declare user parameter",
			"variable", name, "node", dst.Name(), "err", err)
		return
	}
	arr := dataToArray(t, v.Data)
	if arr == nil {
		log.Warn("failed to create array for parameter",
			"variable", name, "node", dst.Name())
		return
	}
	if err := dst.SetArray(name, arr); err != nil {
		log.Warn("unable to set parameter array",
			"variable", name, "node", dst.Name(), "err", err)
		return
	}

	if mode == "indexed" {
		idx := name + indexSuffix
		if err := dst.Declare(idx, "indexed uint32"); err != nil {
			log.Warn("unable to declare index parameter",
				"variable", name, "node", dst.Name(), "err", err)
			return
		}
		if err := dst.SetArray(idx, node.IdentityIndices(arr.Count)); err != nil {
			log.Warn("unable to set index parameter",
				"variable", name, "node", dst.Name(), "err", err)
		}
	}
}

// Variables converts every primitive variable except the ignored names.
// Names are processed in sorted order so repeated runs produce identical
// parameters and diagnostics.
func Variables(dst node.Node, src primkit.Primitive, ignore ...string) {
	vars := src.Variables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if slices.Contains(ignore, name) {
			continue
		}
		Variable(dst, name, src, vars[name])
	}
}
