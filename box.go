package primkit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl32.Vec3
}

// EmptyBox returns an empty box (inverted bounds for union operations).
func EmptyBox() Box {
	return Box{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// IsEmpty returns true if the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Min: mgl32.Vec3{
			math32.Min(b.Min.X(), other.Min.X()),
			math32.Min(b.Min.Y(), other.Min.Y()),
			math32.Min(b.Min.Z(), other.Min.Z()),
		},
		Max: mgl32.Vec3{
			math32.Max(b.Max.X(), other.Max.X()),
			math32.Max(b.Max.Y(), other.Max.Y()),
			math32.Max(b.Max.Z(), other.Max.Z()),
		},
	}
}

// UnionPoint expands the box to include the point.
func (b Box) UnionPoint(p mgl32.Vec3) Box {
	return Box{
		Min: mgl32.Vec3{
			math32.Min(b.Min.X(), p.X()),
			math32.Min(b.Min.Y(), p.Y()),
			math32.Min(b.Min.Z(), p.Z()),
		},
		Max: mgl32.Vec3{
			math32.Max(b.Max.X(), p.X()),
			math32.Max(b.Max.Y(), p.Y()),
			math32.Max(b.Max.Z(), p.Z()),
		},
	}
}

// Size returns the box extent per axis, or the zero vector for an empty box.
func (b Box) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint, or the zero vector for an empty box.
func (b Box) Center() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// boundsOf folds vertex positions into a box.
func boundsOf(p Primitive) Box {
	box := EmptyBox()
	pos, ok := positionsOf(p)
	if !ok {
		return box
	}
	for _, v := range pos {
		box = box.UnionPoint(v)
	}
	return box
}
