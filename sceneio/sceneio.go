// Package sceneio loads primitive scene descriptions from YAML.
//
// A scene file names each primitive and gives its positions, topology and
// variables:
//
//	primitives:
//	  - name: dust
//	    type: points
//	    p: [[0, 0, 0], [1, 0, 0]]
//	    variables:
//	      width: {interpolation: varying, type: float, data: [0.2, 0.3]}
//	      Cs: {interpolation: varying, type: rgb, data: [[1, 0, 0], [0, 1, 0]]}
//
// Every primitive is validated before it is returned, so a loaded scene
// is ready for conversion.
package sceneio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/primkit"
)

// Loader errors.
var (
	// ErrUnknownKind is returned for a primitive type name the loader
	// has no builder for.
	ErrUnknownKind = errors.New("sceneio: unknown primitive type")

	// ErrUnknownPayload is returned for a variable payload type name the
	// loader cannot decode.
	ErrUnknownPayload = errors.New("sceneio: unknown payload type")

	// ErrMissingData is returned when a variable entry has no data field.
	ErrMissingData = errors.New("sceneio: variable has no data")
)

// SceneDesc holds the primitives of a loaded scene in file order.
type SceneDesc struct {
	Primitives []NamedPrimitive
}

// NamedPrimitive pairs a primitive with its scene name. The name becomes
// the node name when the primitive is converted.
type NamedPrimitive struct {
	Name string
	Prim primkit.Primitive
}

// sceneFile mirrors the YAML document layout.
type sceneFile struct {
	Primitives []primitiveDesc `yaml:"primitives"`
}

type primitiveDesc struct {
	Name          string                  `yaml:"name"`
	Type          string                  `yaml:"type"`
	P             [][3]float32            `yaml:"p"`
	Basis         string                  `yaml:"basis,omitempty"`
	Periodic      bool                    `yaml:"periodic,omitempty"`
	VertsPerCurve []int                   `yaml:"verts_per_curve,omitempty"`
	VertsPerFace  []int                   `yaml:"verts_per_face,omitempty"`
	VertexIDs     []int                   `yaml:"vertex_ids,omitempty"`
	Variables     map[string]variableDesc `yaml:"variables,omitempty"`
}

type variableDesc struct {
	Interpolation string    `yaml:"interpolation"`
	Type          string    `yaml:"type"`
	Data          yaml.Node `yaml:"data"`
}

// LoadFile loads a scene description from a YAML file.
func LoadFile(path string) (*SceneDesc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a scene description and builds a validated primitive for
// each entry. Unnamed primitives get positional names.
func Load(r io.Reader) (*SceneDesc, error) {
	var file sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("sceneio: decode scene: %w", err)
	}

	scene := &SceneDesc{Primitives: make([]NamedPrimitive, 0, len(file.Primitives))}
	for i, d := range file.Primitives {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("prim%d", i)
		}
		p, err := buildPrimitive(&d)
		if err != nil {
			return nil, fmt.Errorf("sceneio: primitive %q: %w", name, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("sceneio: primitive %q: %w", name, err)
		}
		scene.Primitives = append(scene.Primitives, NamedPrimitive{Name: name, Prim: p})
	}
	return scene, nil
}

// variablePrimitive is what every concrete primitive offers the loader.
type variablePrimitive interface {
	primkit.Primitive
	SetVariable(name string, v primkit.PrimVar)
}

func buildPrimitive(d *primitiveDesc) (primkit.Primitive, error) {
	p := make(primkit.Vec3List, len(d.P))
	for i, v := range d.P {
		p[i] = v
	}

	var prim variablePrimitive
	switch d.Type {
	case "points":
		prim = primkit.NewPoints(p)
	case "curves":
		basis := primkit.BasisLinear
		if d.Basis != "" {
			b, err := primkit.ParseBasis(d.Basis)
			if err != nil {
				return nil, err
			}
			basis = b
		}
		prim = primkit.NewCurves(basis, d.Periodic, d.VertsPerCurve, p)
	case "polymesh":
		prim = primkit.NewMesh(d.VertsPerFace, d.VertexIDs, p)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, d.Type)
	}

	names := make([]string, 0, len(d.Variables))
	for name := range d.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := d.Variables[name]
		pv, err := decodeVariable(&v)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		prim.SetVariable(name, pv)
	}
	return prim, nil
}

func decodeVariable(v *variableDesc) (primkit.PrimVar, error) {
	interp, err := primkit.ParseInterpolation(v.Interpolation)
	if err != nil {
		return primkit.PrimVar{}, err
	}
	if v.Data.Kind == 0 {
		return primkit.PrimVar{}, ErrMissingData
	}
	data, err := decodeData(v.Type, &v.Data)
	if err != nil {
		return primkit.PrimVar{}, err
	}
	return primkit.PrimVar{Interpolation: interp, Data: data}, nil
}

// decodeData decodes a payload by declared type name. A YAML sequence
// becomes the list form, a single value the scalar form; for vector types
// the scalar form is itself a sequence of components, so nesting decides.
func decodeData(typ string, n *yaml.Node) (primkit.Data, error) {
	switch typ {
	case "float":
		if n.Kind == yaml.SequenceNode {
			var d primkit.FloatList
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.Float
		err := n.Decode(&d)
		return d, err
	case "int":
		if n.Kind == yaml.SequenceNode {
			var d primkit.IntList
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.Int
		err := n.Decode(&d)
		return d, err
	case "bool":
		if n.Kind == yaml.SequenceNode {
			var d primkit.BoolList
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.Bool
		err := n.Decode(&d)
		return d, err
	case "string":
		if n.Kind == yaml.SequenceNode {
			var d primkit.StringList
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.String
		err := n.Decode(&d)
		return d, err
	case "vec2":
		if nested(n) {
			var d primkit.Vec2List
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.Vec2
		err := n.Decode(&d)
		return d, err
	case "vec3":
		if nested(n) {
			var d primkit.Vec3List
			err := n.Decode(&d)
			return d, err
		}
		var d primkit.Vec3
		err := n.Decode(&d)
		return d, err
	case "rgb":
		if nested(n) {
			var raw [][3]float32
			if err := n.Decode(&raw); err != nil {
				return nil, err
			}
			d := make(primkit.RGBList, len(raw))
			for i, c := range raw {
				d[i] = primkit.RGB{R: c[0], G: c[1], B: c[2]}
			}
			return d, nil
		}
		var c [3]float32
		if err := n.Decode(&c); err != nil {
			return nil, err
		}
		return primkit.RGB{R: c[0], G: c[1], B: c[2]}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPayload, typ)
	}
}

// nested reports whether a sequence node holds sequences, i.e. the list
// form of a vector payload.
func nested(n *yaml.Node) bool {
	if n.Kind != yaml.SequenceNode {
		return false
	}
	return len(n.Content) == 0 || n.Content[0].Kind == yaml.SequenceNode
}
