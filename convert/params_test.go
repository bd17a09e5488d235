package convert

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/primkit"
	"github.com/gogpu/primkit/node"
)

func TestDataToArray(t *testing.T) {
	tests := []struct {
		name    string
		typ     node.ParamType
		samples []primkit.Data
		wantNil bool
		wantF32 []float32
		wantU32 []uint32
		wantI32 []int32
	}{
		{
			name:    "float list",
			typ:     node.TypeFloat32,
			samples: []primkit.Data{primkit.FloatList{1, 2, 3}},
			wantF32: []float32{1, 2, 3},
		},
		{
			name:    "int list",
			typ:     node.TypeSint32,
			samples: []primkit.Data{primkit.IntList{-1, 7}},
			wantI32: []int32{-1, 7},
		},
		{
			name:    "vec2 list flattens",
			typ:     node.TypeFloat32x2,
			samples: []primkit.Data{primkit.Vec2List{{0, 1}, {2, 3}}},
			wantF32: []float32{0, 1, 2, 3},
		},
		{
			name:    "vec3 list flattens",
			typ:     node.TypeFloat32x3,
			samples: []primkit.Data{primkit.Vec3List{{1, 2, 3}, {4, 5, 6}}},
			wantF32: []float32{1, 2, 3, 4, 5, 6},
		},
		{
			name:    "rgb list flattens",
			typ:     node.TypeFloat32x3,
			samples: []primkit.Data{primkit.RGBList{{R: 1, G: 0, B: 0}, {R: 0, G: 0.5, B: 1}}},
			wantF32: []float32{1, 0, 0, 0, 0.5, 1},
		},
		{
			name: "motion samples concatenate",
			typ:  node.TypeFloat32,
			samples: []primkit.Data{
				primkit.FloatList{1, 2},
				primkit.FloatList{3, 4},
			},
			wantF32: []float32{1, 2, 3, 4},
		},
		{
			name:    "no samples",
			typ:     node.TypeFloat32,
			samples: nil,
			wantNil: true,
		},
		{
			name:    "nil sample",
			typ:     node.TypeFloat32,
			samples: []primkit.Data{nil},
			wantNil: true,
		},
		{
			name: "length mismatch",
			typ:  node.TypeFloat32,
			samples: []primkit.Data{
				primkit.FloatList{1, 2},
				primkit.FloatList{1},
			},
			wantNil: true,
		},
		{
			name: "type mismatch across samples",
			typ:  node.TypeFloat32,
			samples: []primkit.Data{
				primkit.FloatList{1},
				primkit.IntList{1},
			},
			wantNil: true,
		},
		{
			name:    "wrong target type",
			typ:     node.TypeFloat32x3,
			samples: []primkit.Data{primkit.FloatList{1, 2, 3}},
			wantNil: true,
		},
		{
			name:    "string list has no array form",
			typ:     node.TypeFloat32,
			samples: []primkit.Data{primkit.StringList{"a"}},
			wantNil: true,
		},
		{
			name:    "scalar has no array form",
			typ:     node.TypeFloat32,
			samples: []primkit.Data{primkit.Float(1)},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dataToArray(tt.typ, tt.samples...)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("dataToArray() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("dataToArray() = nil, want array")
			}
			if got.Type != tt.typ {
				t.Errorf("Type = %v, want %v", got.Type, tt.typ)
			}
			if got.Keys != len(tt.samples) {
				t.Errorf("Keys = %d, want %d", got.Keys, len(tt.samples))
			}
			if got.Count != tt.samples[0].Len() {
				t.Errorf("Count = %d, want %d", got.Count, tt.samples[0].Len())
			}
			if tt.wantF32 != nil && !reflect.DeepEqual(got.F32, tt.wantF32) {
				t.Errorf("F32 = %v, want %v", got.F32, tt.wantF32)
			}
			if tt.wantU32 != nil && !reflect.DeepEqual(got.U32, tt.wantU32) {
				t.Errorf("U32 = %v, want %v", got.U32, tt.wantU32)
			}
			if tt.wantI32 != nil && !reflect.DeepEqual(got.I32, tt.wantI32) {
				t.Errorf("I32 = %v, want %v", got.I32, tt.wantI32)
			}
		})
	}
}

func TestSetParameterScalar(t *testing.T) {
	n := testNode(t, "points", "dust")

	setParameter(n, "temperature", primkit.Float(451))

	p, ok := n.Param("temperature")
	if !ok {
		t.Fatal("Param(temperature) missing after setParameter")
	}
	if p.Decl != "constant float32" {
		t.Errorf("Decl = %q, want %q", p.Decl, "constant float32")
	}
	if p.Value != float32(451) {
		t.Errorf("Value = %v, want 451", p.Value)
	}

	setParameter(n, "label", primkit.String("hero"))
	p, _ = n.Param("label")
	if p.Decl != "constant string" || p.Value != "hero" {
		t.Errorf("label = %q/%v, want constant string/hero", p.Decl, p.Value)
	}
}

func TestSetParameterBuiltin(t *testing.T) {
	n := testNode(t, "points", "dust")

	// Built-in names are set without a declaration.
	setParameter(n, "mode", primkit.String("sphere"))

	p, ok := n.Param("mode")
	if !ok {
		t.Fatal("Param(mode) missing")
	}
	if !p.Builtin {
		t.Error("Builtin = false, want true")
	}
	if p.Decl != "" {
		t.Errorf("Decl = %q, want empty for a built-in", p.Decl)
	}
	if p.Value != "sphere" {
		t.Errorf("Value = %v, want sphere", p.Value)
	}
}

func TestSetParameterConstantList(t *testing.T) {
	n := testNode(t, "points", "dust")

	setParameter(n, "offsets", primkit.FloatList{1, 2, 3})

	p, ok := n.Param("offsets")
	if !ok {
		t.Fatal("Param(offsets) missing")
	}
	if p.Decl != "constant float32[]" {
		t.Errorf("Decl = %q, want %q", p.Decl, "constant float32[]")
	}
	if p.Array == nil || p.Array.Count != 3 {
		t.Fatalf("Array = %v, want 3 elements", p.Array)
	}
	if !reflect.DeepEqual(p.Array.F32, []float32{1, 2, 3}) {
		t.Errorf("Array.F32 = %v", p.Array.F32)
	}
}

func TestSetParameterUnsupported(t *testing.T) {
	n := testNode(t, "points", "dust")
	buf := captureLog(t)

	setParameter(n, "weird", opaqueData{})

	if len(n.ParamNames()) != 0 {
		t.Errorf("node has params %v, want none", n.ParamNames())
	}
	if !strings.Contains(buf.String(), "unsupported type") {
		t.Errorf("log = %q, want unsupported type warning", buf.String())
	}
}
