package interp

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if !almostEqual(got, tc.w, 1e-12) {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestHermite4Endpoints(t *testing.T) {
	xm1, x0, x1, x2 := 0.3, 0.9, 0.1, 0.7
	if got := Hermite4(0, xm1, x0, x1, x2); got != x0 {
		t.Fatalf("t=0: got %v want %v", got, x0)
	}
	if got := Hermite4(1, xm1, x0, x1, x2); !almostEqual(got, x1, 1e-12) {
		t.Fatalf("t=1: got %v want %v", got, x1)
	}
}

func TestHermite4Overshoot(t *testing.T) {
	// A unit step next to zeros undershoots below zero between samples.
	got := Hermite4(0.5, 1, 0, 0, 0)
	if got >= 0 {
		t.Fatalf("expected undershoot below zero, got %v", got)
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}
	if got := Linear2(0, 2, 4); got != 2 {
		t.Fatalf("t=0: got %v want 2", got)
	}
	if got := Linear2(1, 2, 4); got != 4 {
		t.Fatalf("t=1: got %v want 4", got)
	}
}

func TestAtLinear(t *testing.T) {
	samples := []float64{0, 1, 2, 3}
	for _, tc := range []struct {
		pos  float64
		want float64
	}{
		{pos: 0, want: 0},
		{pos: 0.5, want: 0.5},
		{pos: 1.25, want: 1.25},
		{pos: 3, want: 3},
		{pos: -1, want: 0},
		{pos: 10, want: 3},
	} {
		got := At(samples, tc.pos, ModeLinear)
		if !almostEqual(got, tc.want, 1e-12) {
			t.Fatalf("pos=%v: got %v want %v", tc.pos, got, tc.want)
		}
	}
}

func TestAtNearest(t *testing.T) {
	samples := []float64{10, 20, 30}
	for _, tc := range []struct {
		pos  float64
		want float64
	}{
		{pos: 0.4, want: 10},
		{pos: 0.5, want: 20}, // ties round up
		{pos: 1.49, want: 20},
		{pos: 2.9, want: 30},
		{pos: -0.4, want: 10},
	} {
		got := At(samples, tc.pos, ModeNearest)
		if got != tc.want {
			t.Fatalf("pos=%v: got %v want %v", tc.pos, got, tc.want)
		}
	}
}

func TestAtCubic(t *testing.T) {
	ramp := []float64{0, 1, 2, 3, 4}
	for _, pos := range []float64{0.5, 1.5, 2.25, 3.75} {
		got := At(ramp, pos, ModeCubic)
		if !almostEqual(got, pos, 1e-12) {
			t.Fatalf("pos=%v: got %v want %v", pos, got, pos)
		}
	}

	// Neighbor indexes clamp at the edges instead of wrapping.
	got := At([]float64{1, 2}, 0.5, ModeCubic)
	if !almostEqual(got, 1.5, 1e-12) {
		t.Fatalf("edge cubic: got %v want 1.5", got)
	}
}

func TestAtCubicUndershoot(t *testing.T) {
	samples := []float64{1, 0, 0, 0}
	got := At(samples, 1.5, ModeCubic)
	if got >= 0 {
		t.Fatalf("expected value below zero, got %v", got)
	}
}

func TestAtDegenerateSlices(t *testing.T) {
	if got := At(nil, 1.5, ModeLinear); got != 0 {
		t.Fatalf("empty: got %v want 0", got)
	}
	for _, mode := range []Mode{ModeNearest, ModeLinear, ModeCubic} {
		if got := At([]float64{7}, 3.2, mode); got != 7 {
			t.Fatalf("%v single: got %v want 7", mode, got)
		}
	}
}

func TestModeFromName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Mode
	}{
		{name: "nearest", want: ModeNearest},
		{name: "Linear", want: ModeLinear},
		{name: "CUBIC", want: ModeCubic},
		{name: " cubic ", want: ModeCubic},
		{name: "unknown", want: ModeLinear},
		{name: "", want: ModeLinear},
	} {
		if got := ModeFromName(tc.name); got != tc.want {
			t.Fatalf("%q: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		want string
	}{
		{mode: ModeNearest, want: "nearest"},
		{mode: ModeLinear, want: "linear"},
		{mode: ModeCubic, want: "cubic"},
		{mode: Mode(99), want: "linear"},
	} {
		if got := tc.mode.String(); got != tc.want {
			t.Fatalf("%d: got %q want %q", int(tc.mode), got, tc.want)
		}
	}
}
