package particle

import (
	"testing"
)

func TestRainbowOrder(t *testing.T) {
	// Violet first, red last.
	if Rainbow[0].R != 128 || Rainbow[0].B != 128 {
		t.Errorf("Expected violet first, got %+v", Rainbow[0])
	}
	if Rainbow[6].R != 255 || Rainbow[6].G != 0 || Rainbow[6].B != 0 {
		t.Errorf("Expected red last, got %+v", Rainbow[6])
	}
}

func TestGradientEndpoints(t *testing.T) {
	g := Gradient(Rainbow[0], Rainbow[6], 10)
	if len(g) != 10 {
		t.Fatalf("Expected 10 steps, got %d", len(g))
	}
	if g[0] != Rainbow[0] {
		t.Errorf("Expected gradient to start at %+v, got %+v", Rainbow[0], g[0])
	}
	if g[9] != Rainbow[6] {
		t.Errorf("Expected gradient to end at %+v, got %+v", Rainbow[6], g[9])
	}
}

func TestGradientDegenerate(t *testing.T) {
	if g := Gradient(Rainbow[0], Rainbow[6], 0); g != nil {
		t.Errorf("Expected nil for 0 steps, got %v", g)
	}
	g := Gradient(Rainbow[0], Rainbow[6], 1)
	if len(g) != 1 || g[0] != Rainbow[0] {
		t.Errorf("Expected single-step gradient to return the start color, got %v", g)
	}
}

func TestRainbowAtClamps(t *testing.T) {
	if RainbowAt(-1) != Rainbow[0] {
		t.Error("Expected t<0 to clamp to violet")
	}
	if RainbowAt(2) != Rainbow[6] {
		t.Error("Expected t>1 to clamp to red")
	}
	if RainbowAt(0) != Rainbow[0] {
		t.Error("Expected t=0 to be violet")
	}
	if RainbowAt(1) != Rainbow[6] {
		t.Error("Expected t=1 to be red")
	}
}

func TestRandomDustSizeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := RandomDust()
		if d.Size < 50 || d.Size > 100 {
			t.Fatalf("Expected dust size in [50,100], got %v", d.Size)
		}
		if d.Color.A != 255 {
			t.Fatalf("Expected opaque dust color, got alpha %d", d.Color.A)
		}
	}
}

func TestRandomRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Random(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("Expected value in [-2,3), got %v", v)
		}
		n := RandInt(1, 4)
		if n < 1 || n > 4 {
			t.Fatalf("Expected int in [1,4], got %d", n)
		}
	}
}
