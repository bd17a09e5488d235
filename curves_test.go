package primkit

import (
	"errors"
	"testing"
)

// flatP builds n placeholder control points.
func flatP(n int) Vec3List {
	p := make(Vec3List, n)
	for i := range p {
		p[i] = [3]float32{float32(i), 0, 0}
	}
	return p
}

func TestCurvesVariableSize(t *testing.T) {
	tests := []struct {
		name        string
		basis       Basis
		periodic    bool
		verts       []int
		wantUniform int
		wantVertex  int
		wantVarying int
	}{
		{
			name:  "linear open single",
			basis: BasisLinear, verts: []int{4},
			wantUniform: 1, wantVertex: 4, wantVarying: 4,
		},
		{
			name:  "linear closed single",
			basis: BasisLinear, periodic: true, verts: []int{4},
			wantUniform: 1, wantVertex: 4, wantVarying: 4,
		},
		{
			name:  "bspline open",
			basis: BasisBSpline, verts: []int{10},
			wantUniform: 1, wantVertex: 10, wantVarying: 8,
		},
		{
			name:  "bezier open",
			basis: BasisBezier, verts: []int{7},
			wantUniform: 1, wantVertex: 7, wantVarying: 3,
		},
		{
			name:  "bezier closed",
			basis: BasisBezier, periodic: true, verts: []int{6},
			wantUniform: 1, wantVertex: 6, wantVarying: 2,
		},
		{
			name:  "catmull-rom open",
			basis: BasisCatmullRom, verts: []int{6},
			wantUniform: 1, wantVertex: 6, wantVarying: 4,
		},
		{
			name:  "bspline open two curves",
			basis: BasisBSpline, verts: []int{10, 7},
			wantUniform: 2, wantVertex: 17, wantVarying: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, n := range tt.verts {
				total += n
			}
			c := NewCurves(tt.basis, tt.periodic, tt.verts, flatP(total))

			if got := c.VariableSize(InterpolationUniform); got != tt.wantUniform {
				t.Errorf("VariableSize(uniform) = %d, want %d", got, tt.wantUniform)
			}
			if got := c.VariableSize(InterpolationVertex); got != tt.wantVertex {
				t.Errorf("VariableSize(vertex) = %d, want %d", got, tt.wantVertex)
			}
			if got := c.VariableSize(InterpolationVarying); got != tt.wantVarying {
				t.Errorf("VariableSize(varying) = %d, want %d", got, tt.wantVarying)
			}
			// FaceVarying has no curve meaning of its own.
			if got := c.VariableSize(InterpolationFaceVarying); got != tt.wantVarying {
				t.Errorf("VariableSize(facevarying) = %d, want %d", got, tt.wantVarying)
			}
			if got := c.VariableSize(InterpolationConstant); got != 1 {
				t.Errorf("VariableSize(constant) = %d, want 1", got)
			}
		})
	}
}

func TestCurvesValidate(t *testing.T) {
	tests := []struct {
		name     string
		basis    Basis
		periodic bool
		verts    []int
		wantErr  bool
	}{
		{"linear ok", BasisLinear, false, []int{2, 5}, false},
		{"linear degenerate", BasisLinear, false, []int{1}, true},
		{"bezier ok", BasisBezier, false, []int{7}, false},
		{"bezier broken stride", BasisBezier, false, []int{6}, true},
		{"bezier closed ok", BasisBezier, true, []int{6}, false},
		{"bezier closed broken stride", BasisBezier, true, []int{7}, true},
		{"bspline too short", BasisBSpline, false, []int{3}, true},
		{"catmull-rom ok", BasisCatmullRom, false, []int{4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, n := range tt.verts {
				total += n
			}
			c := NewCurves(tt.basis, tt.periodic, tt.verts, flatP(total))
			err := c.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidVariable) {
				t.Errorf("Validate() = %v, want ErrInvalidVariable", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestParseBasis(t *testing.T) {
	tests := []struct {
		in      string
		want    Basis
		wantErr bool
	}{
		{"linear", BasisLinear, false},
		{"bezier", BasisBezier, false},
		{"b-spline", BasisBSpline, false},
		{"bspline", BasisBSpline, false},
		{"catmull-rom", BasisCatmullRom, false},
		{"catmullrom", BasisCatmullRom, false},
		{"hermite", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBasis(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBasis(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBasis(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBasis(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, err := ParseBasis(got.String()); err != nil || back != got {
			t.Errorf("ParseBasis(%v.String()) = %v, %v; want %v", got, back, err, got)
		}
	}
}
