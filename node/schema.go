package node

import (
	"sort"
	"sync"
)

// Schema lists the built-in parameters of a node type. Conversion refuses
// to declare user parameters over built-in names, so the schema is the
// collision authority.
type Schema struct {
	Type     string
	Builtins map[string]ParamType
}

// IsBuiltin reports whether the schema defines the parameter.
func (s *Schema) IsBuiltin(name string) bool {
	_, ok := s.Builtins[name]
	return ok
}

// registry holds registered schemas.
var (
	schemaMu sync.RWMutex
	schemas  = make(map[string]*Schema)
)

// RegisterSchema registers a node type's schema, replacing any previous
// registration of the same type. Renderer integrations with extra node
// types call this from init().
func RegisterSchema(s *Schema) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemas[s.Type] = s
}

// SchemaFor returns the schema registered for the node type.
func SchemaFor(typ string) (*Schema, bool) {
	schemaMu.RLock()
	defer schemaMu.RUnlock()
	s, ok := schemas[typ]
	return s, ok
}

// SchemaTypes returns the registered node type names, sorted.
func SchemaTypes() []string {
	schemaMu.RLock()
	defer schemaMu.RUnlock()

	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterSchema(&Schema{
		Type: "points",
		Builtins: map[string]ParamType{
			"points":       TypeFloat32x3,
			"radius":       TypeFloat32,
			"mode":         TypeString,
			"motion_start": TypeFloat32,
			"motion_end":   TypeFloat32,
		},
	})
	RegisterSchema(&Schema{
		Type: "curves",
		Builtins: map[string]ParamType{
			"points":       TypeFloat32x3,
			"radius":       TypeFloat32,
			"num_points":   TypeUint32,
			"basis":        TypeString,
			"mode":         TypeString,
			"motion_start": TypeFloat32,
			"motion_end":   TypeFloat32,
		},
	})
	RegisterSchema(&Schema{
		Type: "polymesh",
		Builtins: map[string]ParamType{
			"vlist":        TypeFloat32x3,
			"vidxs":        TypeUint32,
			"nsides":       TypeUint32,
			"nlist":        TypeFloat32x3,
			"nidxs":        TypeUint32,
			"uvlist":       TypeFloat32x2,
			"uvidxs":       TypeUint32,
			"smoothing":    TypeBool,
			"motion_start": TypeFloat32,
			"motion_end":   TypeFloat32,
		},
	})
}
