package vmath

import (
	"math"
	"testing"
)

func TestRotateQuarterTurns(t *testing.T) {
	quarter := math.Pi / 2

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"X axis sends Y to Z", V3(0, 1, 0).RotateX(quarter), V3(0, 0, 1)},
		{"X axis leaves X alone", V3(1, 0, 0).RotateX(quarter), V3(1, 0, 0)},
		{"Y axis sends Z to X", V3(0, 0, 1).RotateY(quarter), V3(1, 0, 0)},
		{"Y axis leaves Y alone", V3(0, 1, 0).RotateY(quarter), V3(0, 1, 0)},
		{"Z axis sends X to Y", V3(1, 0, 0).RotateZ(quarter), V3(0, 1, 0)},
		{"Z axis leaves Z alone", V3(0, 0, 1).RotateZ(quarter), V3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, tt.got)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3(1.5, -2.25, 3.75)
	angles := V3(0.3, 1.1, -2.6)
	rotated := v.Rotate(angles)
	if !almostEqual(v.Length(), rotated.Length()) {
		t.Errorf("Rotation changed length: %f -> %f", v.Length(), rotated.Length())
	}
}

func TestRotateZeroAnglesIsIdentity(t *testing.T) {
	v := V3(1, 2, 3)
	if got := v.Rotate(Vec3{}); got != v {
		t.Errorf("Expected identity, got %+v", got)
	}
}

func TestRotateAxisOrder(t *testing.T) {
	// A unit X vector rotated a quarter turn around Z lands on Y; rotating the
	// result a quarter turn around X lands on Z. Rotate applies X first, so the
	// combined call must NOT equal the Z-then-X sequence.
	quarter := math.Pi / 2
	combined := V3(1, 0, 0).Rotate(V3(quarter, 0, quarter))
	sequential := V3(1, 0, 0).RotateX(quarter).RotateY(0).RotateZ(quarter)
	if !vecAlmostEqual(combined, sequential) {
		t.Errorf("Rotate order mismatch: combined %+v, sequential %+v", combined, sequential)
	}

	zFirst := V3(1, 0, 0).RotateZ(quarter).RotateX(quarter)
	if vecAlmostEqual(combined, zFirst) {
		t.Error("Rotate appears to apply Z before X")
	}
}
