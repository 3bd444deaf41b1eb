package formation

import (
	"math"
	"testing"
)

func testCurve() CurveParams {
	return CurveParams{
		EmergeEnd:     0.35,
		DissolveStart: 0.75,
		RiseExponent:  0.55,
		FadeExponent:  1.6,
		ScaleExponent: 0.45,
	}
}

func TestEmergenceRange(t *testing.T) {
	p := testCurve()
	for progress := -0.1; progress <= 2.0; progress += 0.001 {
		e := p.Emergence(progress)
		if e < 0 || e > 1 {
			t.Fatalf("emergence(%v) = %v outside [0,1]", progress, e)
		}
	}
}

func TestEmergencePhases(t *testing.T) {
	p := testCurve()

	if e := p.Emergence(0); e != 0 {
		t.Errorf("emergence(0) = %v, want 0", e)
	}
	// Sustained plateau is exactly 1, no drift.
	for _, progress := range []float64{0.35, 0.5, 0.6, 0.75} {
		if e := p.Emergence(progress); e != 1 {
			t.Errorf("emergence(%v) = %v, want exactly 1", progress, e)
		}
	}
	if e := p.Emergence(1.0); e != 0 {
		t.Errorf("emergence(1) = %v, want 0", e)
	}
	// Past end of life stays pinned at 0, never negative.
	if e := p.Emergence(1.5); e != 0 {
		t.Errorf("emergence(1.5) = %v, want 0", e)
	}

	// Emerging-phase formula spot check.
	want := math.Pow(0.1/0.35, 0.55)
	if e := p.Emergence(0.1); math.Abs(e-want) > 1e-12 {
		t.Errorf("emergence(0.1) = %v, want %v", e, want)
	}
}

func TestEmergenceMonotonicity(t *testing.T) {
	p := testCurve()

	// Non-decreasing while emerging.
	prev := -1.0
	for progress := 0.0; progress <= p.EmergeEnd; progress += 0.0005 {
		e := p.Emergence(progress)
		if e < prev {
			t.Fatalf("emerging not monotone at %v: %v < %v", progress, e, prev)
		}
		prev = e
	}

	// Non-increasing while dissolving.
	prev = 2.0
	for progress := p.DissolveStart; progress <= 1.2; progress += 0.0005 {
		e := p.Emergence(progress)
		if e > prev {
			t.Fatalf("dissolving not monotone at %v: %v > %v", progress, e, prev)
		}
		prev = e
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.3, 0.3}, {1, 1}, {1.7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
