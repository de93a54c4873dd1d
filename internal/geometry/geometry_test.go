package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToNormalizedClampsToRange(t *testing.T) {
	container := Bounds{Width: 600, Height: 400}

	cases := []struct {
		name string
		in   Point
		want NormPoint
	}{
		{"center", Point{X: 300, Y: 200}, NormPoint{X: 50, Y: 50}},
		{"origin", Point{X: 0, Y: 0}, NormPoint{X: 0, Y: 0}},
		{"beyond right edge", Point{X: 900, Y: 200}, NormPoint{X: 100, Y: 50}},
		{"negative", Point{X: -50, Y: -50}, NormPoint{X: 0, Y: 0}},
		{"far outside both", Point{X: 10000, Y: -10000}, NormPoint{X: 100, Y: 0}},
	}

	for _, tc := range cases {
		got := ToNormalized(tc.in, container)
		if !almostEqual(got.X, tc.want.X) || !almostEqual(got.Y, tc.want.Y) {
			t.Errorf("%s: got (%v,%v), want (%v,%v)", tc.name, got.X, got.Y, tc.want.X, tc.want.Y)
		}
	}
}

func TestToNormalizedDegenerateContainer(t *testing.T) {
	got := ToNormalized(Point{X: 10, Y: 10}, Bounds{})
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("zero bounds should map to origin, got (%v,%v)", got.X, got.Y)
	}
}

func TestToAbsolute(t *testing.T) {
	target := Bounds{Width: 1200, Height: 800}
	got := ToAbsolute(NormPoint{X: 40, Y: 55}, target)
	if !almostEqual(got.X, 480) || !almostEqual(got.Y, 440) {
		t.Fatalf("got (%v,%v), want (480,440)", got.X, got.Y)
	}
}

func TestToAbsoluteClampsInput(t *testing.T) {
	target := Bounds{Width: 100, Height: 100}
	got := ToAbsolute(NormPoint{X: 150, Y: -20}, target)
	if !almostEqual(got.X, 100) || !almostEqual(got.Y, 0) {
		t.Fatalf("got (%v,%v), want (100,0)", got.X, got.Y)
	}
}

func TestRoundTripPreservesPosition(t *testing.T) {
	container := Bounds{Width: 640, Height: 480}
	for _, p := range []Point{{X: 0, Y: 0}, {X: 320, Y: 120}, {X: 640, Y: 480}} {
		n := ToNormalized(p, container)
		back := ToAbsolute(n, container)
		if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
			t.Errorf("round trip of (%v,%v) produced (%v,%v)", p.X, p.Y, back.X, back.Y)
		}
	}
}

func TestDeltaToNormalizedKeepsSign(t *testing.T) {
	container := Bounds{Width: 500, Height: 200}
	got := DeltaToNormalized(Point{X: -50, Y: 10}, container)
	if !almostEqual(got.X, -10) || !almostEqual(got.Y, 5) {
		t.Fatalf("got (%v,%v), want (-10,5)", got.X, got.Y)
	}
}

func TestAddClamps(t *testing.T) {
	got := NormPoint{X: 95, Y: 5}.Add(NormPoint{X: 20, Y: -20})
	if !almostEqual(got.X, 100) || !almostEqual(got.Y, 0) {
		t.Fatalf("got (%v,%v), want (100,0)", got.X, got.Y)
	}
}

func TestScaleFactor(t *testing.T) {
	screen := Bounds{Width: 600, Height: 850}
	target := Bounds{Width: 1800, Height: 2550}
	if got := ScaleFactor(screen, target); !almostEqual(got, 3) {
		t.Fatalf("got %v, want 3", got)
	}
	if got := ScaleFactor(Bounds{}, target); !almostEqual(got, 1) {
		t.Fatalf("degenerate screen bounds should fall back to 1, got %v", got)
	}
}
