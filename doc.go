// Package primkit converts geometric primitives into renderer node parameters.
//
// # Overview
//
// primkit is the bridge between authored scene data and a renderer's node
// graph in the GoGPU ecosystem. A primitive (point cloud, curve set, polygon
// mesh) carries named variables classified by interpolation: per-object
// constants, per-face values, per-vertex values, and so on. A renderer node
// speaks a different language: flat typed arrays, declaration strings, and
// built-in parameters. The convert package translates the former into the
// latter, skipping what the target cannot express instead of failing.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/primkit"
//	    "github.com/gogpu/primkit/backend"
//	    "github.com/gogpu/primkit/convert"
//	)
//
//	// Build a point cloud with a per-point width.
//	pts := primkit.NewPoints(primkit.Vec3List{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
//	pts.SetVariable("width", primkit.PrimVar{
//	    Interpolation: primkit.InterpolationVarying,
//	    Data:          primkit.FloatList{0.2, 0.4, 0.2},
//	})
//
//	// Hand it to a renderer node.
//	b, _ := backend.InitDefault()
//	n, _ := b.NewNode("points", "dust")
//	if err := convert.PointCloud(n, pts); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Root: the data model (payloads, interpolation classes, primitives)
//   - node: the renderer-side vocabulary (parameter types, arrays, schemas)
//   - convert: the translation core (positions, radius, variables)
//   - backend: renderer integrations (in-memory, GPU staging via gogpu/wgpu)
//   - sceneio: YAML scene descriptions
//
// # Conversion Policy
//
// Missing vertex positions are the only fatal condition. Everything else a
// node cannot take (name clashes with a built-in, interpolation the target
// cannot express, payload types with no array form) is skipped with a
// warning through the package logger and conversion continues.
package primkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
