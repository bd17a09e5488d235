package node

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Array is a flat block of renderer-native elements. Motion-blurred
// parameters carry one key per motion sample, all of equal element count,
// laid out back to back. Exactly one backing slice is populated, matching
// Type; its length is Keys * Count * Components.
type Array struct {
	Type  ParamType
	Count int // elements per key
	Keys  int // motion keys

	F32 []float32
	U32 []uint32
	I32 []int32
}

// NewArray allocates a single-key array of count elements.
func NewArray(t ParamType, count int) *Array {
	return NewArrayKeys(t, count, 1)
}

// NewArrayKeys allocates an array of count elements per key across keys
// motion keys. Types with no array form get no backing storage.
func NewArrayKeys(t ParamType, count, keys int) *Array {
	a := &Array{Type: t, Count: count, Keys: keys}
	n := count * keys * t.Components()
	switch t {
	case TypeFloat32, TypeFloat32x2, TypeFloat32x3:
		a.F32 = make([]float32, n)
	case TypeUint32:
		a.U32 = make([]uint32, n)
	case TypeSint32:
		a.I32 = make([]int32, n)
	}
	return a
}

// Len returns the total scalar component count across all keys.
func (a *Array) Len() int {
	return a.Keys * a.Count * a.Type.Components()
}

// Bytes serializes the backing slice little-endian for buffer upload.
func (a *Array) Bytes() []byte {
	switch {
	case a.F32 != nil:
		out := make([]byte, 4*len(a.F32))
		for i, f := range a.F32 {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
		}
		return out
	case a.U32 != nil:
		out := make([]byte, 4*len(a.U32))
		for i, u := range a.U32 {
			binary.LittleEndian.PutUint32(out[i*4:], u)
		}
		return out
	case a.I32 != nil:
		out := make([]byte, 4*len(a.I32))
		for i, v := range a.I32 {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
		return out
	}
	return nil
}

// String summarizes the array for diagnostics.
func (a *Array) String() string {
	if a.Keys > 1 {
		return fmt.Sprintf("%v[%d]x%d", a.Type, a.Count, a.Keys)
	}
	return fmt.Sprintf("%v[%d]", a.Type, a.Count)
}

// IdentityIndices returns a single-key uint32 array holding 0..n-1, the
// index array attached alongside indexed parameters.
func IdentityIndices(n int) *Array {
	a := NewArray(TypeUint32, n)
	for i := range a.U32 {
		a.U32[i] = uint32(i)
	}
	return a
}
