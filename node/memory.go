package node

import (
	"fmt"
	"sort"
)

// Param is a parameter slot on a MemoryNode.
type Param struct {
	Decl    string // declaration string for user parameters
	Value   any    // scalar value, nil until set
	Array   *Array // array value, nil until set
	Builtin bool
}

// Unset reports whether the parameter was declared but never given a
// value. Conversion leaves parameters in this state when array
// construction fails; it is a recorded, legitimate outcome.
func (p *Param) Unset() bool {
	return p.Value == nil && p.Array == nil
}

// MemoryNode is the in-memory Node implementation: full parameter
// bookkeeping with no renderer attached. It backs the memory backend and
// is the inspection target for tests.
type MemoryNode struct {
	name   string
	typ    string
	schema *Schema
	params map[string]*Param
}

var _ Node = (*MemoryNode)(nil)

// NewMemoryNode creates a node of a registered schema type.
func NewMemoryNode(typ, name string) (*MemoryNode, error) {
	s, ok := SchemaFor(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, typ)
	}
	return &MemoryNode{
		name:   name,
		typ:    typ,
		schema: s,
		params: make(map[string]*Param),
	}, nil
}

// Name returns the node's instance name.
func (n *MemoryNode) Name() string { return n.name }

// Type returns the node's schema type.
func (n *MemoryNode) Type() string { return n.typ }

// IsBuiltin implements Node.
func (n *MemoryNode) IsBuiltin(name string) bool {
	return n.schema.IsBuiltin(name)
}

// Declare implements Node. Built-in names cannot be redeclared and user
// names can be declared once.
func (n *MemoryNode) Declare(name, decl string) error {
	if n.schema.IsBuiltin(name) {
		return fmt.Errorf("%w: %q on %s", ErrBuiltinParam, name, n.typ)
	}
	if _, ok := n.params[name]; ok {
		return fmt.Errorf("%w: %q", ErrRedeclaredParam, name)
	}
	n.params[name] = &Param{Decl: decl}
	return nil
}

// SetParam implements Node.
func (n *MemoryNode) SetParam(name string, v any) error {
	p, err := n.slot(name)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

// SetArray implements Node.
func (n *MemoryNode) SetArray(name string, a *Array) error {
	if a == nil {
		return fmt.Errorf("%w: %q", ErrNilArray, name)
	}
	p, err := n.slot(name)
	if err != nil {
		return err
	}
	p.Array = a
	return nil
}

// slot returns the parameter slot for a write, materializing built-in
// slots on first use.
func (n *MemoryNode) slot(name string) (*Param, error) {
	if p, ok := n.params[name]; ok {
		return p, nil
	}
	if n.schema.IsBuiltin(name) {
		p := &Param{Builtin: true}
		n.params[name] = p
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q on %s", ErrUndeclaredParam, name, n.typ)
}

// Param returns the named parameter slot, if it was declared or written.
func (n *MemoryNode) Param(name string) (*Param, bool) {
	p, ok := n.params[name]
	return p, ok
}

// ParamNames returns the declared or written parameter names, sorted.
func (n *MemoryNode) ParamNames() []string {
	names := make([]string, 0, len(n.params))
	for name := range n.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
