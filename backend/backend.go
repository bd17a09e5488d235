package backend

import (
	"errors"

	"github.com/gogpu/primkit/node"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend is the interface for node backends. It abstracts where converted
// primitives end up, allowing the library to target multiple sinks
// (in-memory inspection, GPU buffers via wgpu, etc.).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "memory", "gpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any nodes are created.
	Init() error

	// Close releases all backend resources, including every node the
	// backend created. Nodes must not be used after Close.
	Close()

	// NewNode creates a node of a registered schema type. Conversions
	// populate the node's parameters; what the backend does with them
	// (keeps them host-side, mirrors arrays into GPU buffers) is its own
	// business.
	NewNode(typ, name string) (node.Node, error)
}
