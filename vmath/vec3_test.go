package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Add", V3(1, 2, 3).Add(V3(4, 5, 6)), V3(5, 7, 9)},
		{"Sub", V3(4, 5, 6).Sub(V3(1, 2, 3)), V3(3, 3, 3)},
		{"Mul", V3(1, -2, 3).Mul(2), V3(2, -4, 6)},
		{"Div", V3(2, -4, 6).Div(2), V3(1, -2, 3)},
		{"Cross unit axes", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"Lerp midpoint", V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.5), V3(1, 2, 3)},
		{"Min", V3(1, 5, -2).Min(V3(3, 2, -4)), V3(1, 2, -4)},
		{"Max", V3(1, 5, -2).Max(V3(3, 2, -4)), V3(3, 5, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, tt.got)
			}
		})
	}
}

func TestVec3Length(t *testing.T) {
	v := V3(3, 4, 0)
	if !almostEqual(v.Length(), 5) {
		t.Errorf("Expected length 5, got %f", v.Length())
	}
	if !almostEqual(v.LengthSq(), 25) {
		t.Errorf("Expected squared length 25, got %f", v.LengthSq())
	}
	if !almostEqual(V3(1, 1, 1).Distance(V3(1, 1, 3)), 2) {
		t.Errorf("Expected distance 2, got %f", V3(1, 1, 1).Distance(V3(1, 1, 3)))
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(0, 10, 0).Normalize()
	if !vecAlmostEqual(v, V3(0, 1, 0)) {
		t.Errorf("Expected unit Y vector, got %+v", v)
	}

	// Zero vector must stay zero, never NaN
	z := Vec3{}.Normalize()
	if !z.IsZero() {
		t.Errorf("Expected zero vector, got %+v", z)
	}
	if math.IsNaN(z.X) || math.IsNaN(z.Y) || math.IsNaN(z.Z) {
		t.Error("Normalize of zero vector produced NaN")
	}
}

func TestVec3DotOrthogonal(t *testing.T) {
	a := V3(2, 0, 0)
	b := V3(0, 3, 0)
	if d := a.Dot(b); !almostEqual(d, 0) {
		t.Errorf("Expected orthogonal dot product 0, got %f", d)
	}
	if d := a.Dot(a); !almostEqual(d, 4) {
		t.Errorf("Expected self dot 4, got %f", d)
	}
}

func TestScalarHelpers(t *testing.T) {
	if !almostEqual(Radians(180), math.Pi) {
		t.Errorf("Radians(180) = %f, want pi", Radians(180))
	}
	if !almostEqual(Degrees(math.Pi/2), 90) {
		t.Errorf("Degrees(pi/2) = %f, want 90", Degrees(math.Pi/2))
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %f, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %f, want 0", got)
	}
	if got := Lerp(2, 4, 0.25); !almostEqual(got, 2.5) {
		t.Errorf("Lerp(2,4,0.25) = %f, want 2.5", got)
	}
}
