package backend

import (
	"github.com/gogpu/primkit/node"
)

// Backend name constants.
const (
	// BackendMemory is the name of the host-side memory backend.
	BackendMemory = "memory"
	// BackendGPU is the name of the GPU buffer backend (gogpu/wgpu).
	BackendGPU = "gpu"
)

// MemoryBackend keeps converted nodes host-side. It wraps node.MemoryNode
// and tracks every node it creates, which makes it the backend of choice
// for inspection and tests.
type MemoryBackend struct {
	initialized bool
	nodes       []*node.MemoryNode
}

// init registers the memory backend on package import.
func init() {
	Register(BackendMemory, func() Backend {
		return &MemoryBackend{}
	})
}

// NewMemoryBackend creates a new host-side memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Name returns the backend identifier.
func (b *MemoryBackend) Name() string {
	return BackendMemory
}

// Init initializes the backend.
func (b *MemoryBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all nodes created by the backend.
func (b *MemoryBackend) Close() {
	b.nodes = nil
	b.initialized = false
}

// NewNode creates a host-side node of a registered schema type.
func (b *MemoryBackend) NewNode(typ, name string) (node.Node, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	n, err := node.NewMemoryNode(typ, name)
	if err != nil {
		return nil, err
	}
	b.nodes = append(b.nodes, n)
	return n, nil
}

// Nodes returns every node created since Init, in creation order.
func (b *MemoryBackend) Nodes() []*node.MemoryNode {
	return b.nodes
}
