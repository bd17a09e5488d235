// Package backend provides a pluggable node backend abstraction.
//
// The backend package allows primkit to target multiple sinks for
// converted primitives. The memory backend keeps node parameters
// host-side; the gpu backend additionally mirrors arrays into GPU
// buffers via gogpu/wgpu.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The memory backend is automatically registered on import:
//
//	import _ "github.com/gogpu/primkit/backend"
//
// The gpu backend registers when its package is imported:
//
//	import _ "github.com/gogpu/primkit/backend/gpu"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("memory")
//
// # Usage with Conversions
//
// The backend provides nodes that implement node.Node:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	n, err := b.NewNode("points", "dust")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := convert.PointCloud(n, cloud); err != nil {
//		log.Fatal(err)
//	}
//
// # Available Backends
//
// - "memory": host-side parameter storage (always available)
// - "gpu": array upload into GPU buffers via gogpu/wgpu
package backend
