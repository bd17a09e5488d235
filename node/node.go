// Package node defines the renderer-side vocabulary that primitives are
// converted into: parameter declarations, flat typed arrays and node
// schemas. The Node interface is what the convert package writes to; the
// backend package decides which implementation stands behind it.
package node

import "errors"

// Common node errors.
var (
	// ErrUnknownNodeType is returned when creating a node of a type no
	// schema is registered for.
	ErrUnknownNodeType = errors.New("node: unknown node type")

	// ErrUndeclaredParam is returned when setting a parameter that is
	// neither built in nor declared.
	ErrUndeclaredParam = errors.New("node: parameter not declared")

	// ErrRedeclaredParam is returned when declaring a name twice.
	ErrRedeclaredParam = errors.New("node: parameter already declared")

	// ErrBuiltinParam is returned when declaring a name the node's
	// schema already defines.
	ErrBuiltinParam = errors.New("node: parameter is built in")

	// ErrNilArray is returned when attaching a nil array.
	ErrNilArray = errors.New("node: nil array")
)

// Node is a renderer scene-description node. Built-in parameters come from
// the node type's [Schema]; user parameters must be declared before they
// are set. A declared parameter with no value attached yet is a legitimate
// state, not an error.
type Node interface {
	// Name returns the node's instance name.
	Name() string

	// Type returns the node's schema type, for example "points" or
	// "polymesh".
	Type() string

	// IsBuiltin reports whether the node's schema defines the parameter.
	IsBuiltin(name string) bool

	// Declare creates a user parameter. decl is "<mode> <element type>",
	// for example "varying float32x3" or "constant float32[]".
	Declare(name, decl string) error

	// SetParam stores a scalar value on a built-in or declared parameter.
	SetParam(name string, v any) error

	// SetArray stores a flat array on a built-in or declared parameter.
	SetArray(name string, a *Array) error
}
