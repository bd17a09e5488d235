//go:build !nogpu

// Package gpu provides a node backend that mirrors converted arrays into
// GPU buffers using gogpu/wgpu's HAL.
//
// Import this package to make "gpu" the default backend:
//
//	import _ "github.com/gogpu/primkit/backend/gpu"
//
// If GPU initialization fails (no Vulkan available, no adapters), the
// backend keeps working with host-side parameters only, so conversion
// never fails for lack of hardware.
package gpu

import (
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/primkit/backend"
	"github.com/gogpu/primkit/node"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Backend creates nodes whose array parameters are uploaded into GPU
// buffers as conversions set them. Scalar parameters have no device form
// and stay host-side.
type Backend struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	nodes []*Node

	preferLowPower bool
	adapterIndex   int

	initialized    bool
	gpuReady       bool
	externalDevice bool // true when using shared device (don't destroy on Close)
}

var _ backend.Backend = (*Backend)(nil)

// init registers the gpu backend on package import.
func init() {
	backend.Register(backend.BackendGPU, func() backend.Backend {
		return New()
	})
}

// BackendOption configures a Backend before Init.
type BackendOption func(*Backend)

// WithLowPower prefers an integrated adapter over a discrete one.
// Default is the highest-power adapter available.
func WithLowPower() BackendOption {
	return func(b *Backend) {
		b.preferLowPower = true
	}
}

// WithAdapter forces a specific adapter index, bypassing the device type
// preference. Useful on multi-GPU machines.
func WithAdapter(index int) BackendOption {
	return func(b *Backend) {
		b.adapterIndex = index
	}
}

// New creates a GPU buffer backend.
func New(opts ...BackendOption) *Backend {
	b := &Backend{adapterIndex: -1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendGPU }

// Init opens a GPU device. A device failure is not fatal: the backend
// logs the reason and keeps arrays host-side.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	if b.gpuReady {
		return nil
	}
	if err := b.initGPU(); err != nil {
		log.Printf("gpu backend: device init failed, arrays stay host-side: %v", err)
	}
	return nil
}

func (b *Backend) initGPU() error {
	hb, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := hb.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	b.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	selected := b.pickAdapter(adapters)
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.gpuReady = true
	log.Printf("gpu backend: device initialized (%s)", selected.Info.Name)
	return nil
}

// pickAdapter selects an adapter honoring WithAdapter and WithLowPower.
func (b *Backend) pickAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	if b.adapterIndex >= 0 && b.adapterIndex < len(adapters) {
		return &adapters[b.adapterIndex]
	}

	want := gputypes.DeviceTypeDiscreteGPU
	fallback := gputypes.DeviceTypeIntegratedGPU
	if b.preferLowPower {
		want, fallback = fallback, want
	}
	for i := range adapters {
		if adapters[i].Info.DeviceType == want {
			return &adapters[i]
		}
	}
	for i := range adapters {
		if adapters[i].Info.DeviceType == fallback {
			return &adapters[i]
		}
	}
	return &adapters[0]
}

// SetDeviceProvider switches the backend to a shared GPU device from a
// host renderer's provider instead of creating its own. The provider must
// also implement HalDevice() any and HalQueue() any returning hal.Device
// and hal.Queue.
func (b *Backend) SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("gpu backend: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("gpu backend: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu backend: provider HalQueue is not hal.Queue")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Destroy own resources if we created them
	b.releaseNodesLocked()
	if !b.externalDevice && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}

	// Use provided resources
	b.device = device
	b.queue = queue
	b.externalDevice = true
	b.gpuReady = true
	b.initialized = true
	log.Printf("gpu backend: switched to shared GPU device")
	return nil
}

// Close destroys every node buffer and, when the backend owns them, the
// device and instance.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.releaseNodesLocked()
	b.nodes = nil
	if !b.externalDevice {
		if b.device != nil {
			b.device.Destroy()
			b.device = nil
		}
		if b.instance != nil {
			b.instance.Destroy()
			b.instance = nil
		}
	} else {
		// Don't destroy shared resources — we don't own them
		b.device = nil
		b.instance = nil
	}
	b.queue = nil
	b.gpuReady = false
	b.externalDevice = false
	b.initialized = false
}

func (b *Backend) releaseNodesLocked() {
	for _, n := range b.nodes {
		n.releaseLocked()
	}
}

// NewNode creates a node whose arrays are mirrored into GPU buffers.
func (b *Backend) NewNode(typ, name string) (node.Node, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	mem, err := node.NewMemoryNode(typ, name)
	if err != nil {
		return nil, err
	}
	n := &Node{owner: b, mem: mem, buffers: make(map[string]hal.Buffer)}
	b.nodes = append(b.nodes, n)
	return n, nil
}

// upload mirrors array bytes into a GPU buffer named after the node and
// parameter. Upload problems are logged, never fatal: the host-side copy
// stays authoritative.
func (b *Backend) upload(n *Node, name string, a *node.Array) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gpuReady {
		return
	}
	data := a.Bytes()
	if len(data) == 0 {
		return
	}
	if old, ok := n.buffers[name]; ok {
		b.device.DestroyBuffer(old)
		delete(n.buffers, name)
	}
	usage := gputypes.BufferUsageVertex | gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst
	if a.Type == node.TypeUint32 {
		// Index arrays double as index buffers.
		usage |= gputypes.BufferUsageIndex
	}
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: n.mem.Name() + "." + name,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		log.Printf("gpu backend: create buffer for %s.%s: %v", n.mem.Name(), name, err)
		return
	}
	b.queue.WriteBuffer(buf, 0, data)
	n.buffers[name] = buf
}
