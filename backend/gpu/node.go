//go:build !nogpu

package gpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/primkit/node"
)

// Node wraps a host-side memory node and mirrors every array parameter
// into a GPU buffer. The memory node stays authoritative: inspection and
// scalar parameters go through it unchanged.
type Node struct {
	owner   *Backend
	mem     *node.MemoryNode
	buffers map[string]hal.Buffer
}

var _ node.Node = (*Node)(nil)

// Name returns the node name.
func (n *Node) Name() string { return n.mem.Name() }

// Type returns the node's schema type.
func (n *Node) Type() string { return n.mem.Type() }

// IsBuiltin reports whether the named parameter is a schema built-in.
func (n *Node) IsBuiltin(name string) bool { return n.mem.IsBuiltin(name) }

// Declare declares a user parameter on the host-side node.
func (n *Node) Declare(name, decl string) error { return n.mem.Declare(name, decl) }

// SetParam sets a scalar parameter on the host-side node.
func (n *Node) SetParam(name string, v any) error { return n.mem.SetParam(name, v) }

// SetArray stores the array host-side, then uploads its bytes into a GPU
// buffer when a device is ready. Setting a parameter again replaces its
// buffer.
func (n *Node) SetArray(name string, a *node.Array) error {
	if err := n.mem.SetArray(name, a); err != nil {
		return err
	}
	n.owner.upload(n, name, a)
	return nil
}

// Param exposes the host-side parameter for inspection.
func (n *Node) Param(name string) (*node.Param, bool) { return n.mem.Param(name) }

// ParamNames returns the node's parameter names in sorted order.
func (n *Node) ParamNames() []string { return n.mem.ParamNames() }

// Buffer returns the GPU buffer backing an array parameter, if one was
// uploaded.
func (n *Node) Buffer(name string) (hal.Buffer, bool) {
	n.owner.mu.Lock()
	defer n.owner.mu.Unlock()
	buf, ok := n.buffers[name]
	return buf, ok
}

// releaseLocked destroys the node's buffers. The owner's lock is held.
func (n *Node) releaseLocked() {
	for name, buf := range n.buffers {
		n.owner.device.DestroyBuffer(buf)
		delete(n.buffers, name)
	}
}
