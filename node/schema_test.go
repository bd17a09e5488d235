package node

import (
	"slices"
	"testing"
)

func TestSchemaFor(t *testing.T) {
	for _, typ := range []string{"points", "curves", "polymesh"} {
		s, ok := SchemaFor(typ)
		if !ok {
			t.Fatalf("SchemaFor(%q) not registered", typ)
		}
		if s.Type != typ {
			t.Errorf("SchemaFor(%q).Type = %q", typ, s.Type)
		}
	}

	if _, ok := SchemaFor("implicit"); ok {
		t.Error("SchemaFor(implicit) = ok, want not registered")
	}
}

func TestSchemaBuiltins(t *testing.T) {
	tests := []struct {
		typ     string
		builtin string
		want    ParamType
	}{
		{"points", "points", TypeFloat32x3},
		{"points", "radius", TypeFloat32},
		{"curves", "num_points", TypeUint32},
		{"curves", "basis", TypeString},
		{"polymesh", "vlist", TypeFloat32x3},
		{"polymesh", "vidxs", TypeUint32},
		{"polymesh", "smoothing", TypeBool},
	}

	for _, tt := range tests {
		s, ok := SchemaFor(tt.typ)
		if !ok {
			t.Fatalf("SchemaFor(%q) not registered", tt.typ)
		}
		if !s.IsBuiltin(tt.builtin) {
			t.Errorf("%s: IsBuiltin(%q) = false", tt.typ, tt.builtin)
			continue
		}
		if got := s.Builtins[tt.builtin]; got != tt.want {
			t.Errorf("%s.%s type = %v, want %v", tt.typ, tt.builtin, got, tt.want)
		}
	}
}

func TestRegisterSchema(t *testing.T) {
	RegisterSchema(&Schema{
		Type:     "disk",
		Builtins: map[string]ParamType{"center": TypeFloat32x3},
	})

	s, ok := SchemaFor("disk")
	if !ok {
		t.Fatal("SchemaFor(disk) not found after RegisterSchema")
	}
	if !s.IsBuiltin("center") {
		t.Error("IsBuiltin(center) = false")
	}

	types := SchemaTypes()
	if !slices.Contains(types, "disk") {
		t.Errorf("SchemaTypes() = %v, want it to contain disk", types)
	}
	if !slices.IsSorted(types) {
		t.Errorf("SchemaTypes() = %v, want sorted order", types)
	}
}
