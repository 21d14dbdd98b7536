package text

import (
	"math"
	"testing"
)

func TestShaper_Shape(t *testing.T) {
	s := NewShaper()
	face := Builtin().Face()

	run := s.Shape([]rune("Hello"), face, 16, DirectionLTR)

	if len(run.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(run.Glyphs))
	}
	if run.Advance <= 0 {
		t.Errorf("run advance = %v, want > 0", run.Advance)
	}
	if run.Ascent <= 0 || run.Descent <= 0 {
		t.Errorf("metrics ascent %v descent %v, want both > 0", run.Ascent, run.Descent)
	}

	// Pen positions accumulate left to right.
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X < run.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v is left of glyph %d at x=%v",
				i, run.Glyphs[i].X, i-1, run.Glyphs[i-1].X)
		}
	}

	// Clusters index back into the input runes, in order.
	for i, g := range run.Glyphs {
		if g.Cluster < 0 || g.Cluster >= 5 {
			t.Errorf("glyph %d cluster %d out of range", i, g.Cluster)
		}
	}
}

func TestShaper_Shape_AdvanceSum(t *testing.T) {
	s := NewShaper()
	face := Builtin().Face()

	run := s.Shape([]rune("penrose"), face, 14, DirectionLTR)

	var sum float64
	for _, g := range run.Glyphs {
		sum += g.Advance
	}
	if math.Abs(sum-run.Advance) > 0.01 {
		t.Errorf("glyph advances sum to %v, run advance is %v", sum, run.Advance)
	}
}

func TestShaper_Shape_Empty(t *testing.T) {
	s := NewShaper()
	face := Builtin().Face()

	tests := []struct {
		name  string
		runes []rune
	}{
		{name: "nil runes", runes: nil},
		{name: "empty runes", runes: []rune{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := s.Shape(tt.runes, face, 16, DirectionLTR)
			if len(run.Glyphs) != 0 || run.Advance != 0 {
				t.Errorf("got %d glyphs advance %v, want empty run", len(run.Glyphs), run.Advance)
			}
		})
	}
}

func TestShaper_Shape_NilFace(t *testing.T) {
	s := NewShaper()

	run := s.Shape([]rune("x"), nil, 16, DirectionLTR)
	if len(run.Glyphs) != 0 {
		t.Errorf("got %d glyphs for nil face, want 0", len(run.Glyphs))
	}
}

func TestShaper_Shape_SizeScales(t *testing.T) {
	s := NewShaper()
	face := Builtin().Face()

	small := s.Shape([]rune("width"), face, 10, DirectionLTR)
	large := s.Shape([]rune("width"), face, 20, DirectionLTR)

	if large.Advance <= small.Advance {
		t.Errorf("advance at size 20 (%v) not larger than at size 10 (%v)",
			large.Advance, small.Advance)
	}
	if large.Ascent <= small.Ascent {
		t.Errorf("ascent at size 20 (%v) not larger than at size 10 (%v)",
			large.Ascent, small.Ascent)
	}
}

func TestShaper_Concurrent(t *testing.T) {
	s := NewShaper()
	src := Builtin()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			face := src.Face()
			for j := 0; j < 50; j++ {
				run := s.Shape([]rune("concurrent shaping"), face, 12, DirectionLTR)
				if len(run.Glyphs) == 0 {
					t.Error("concurrent shape returned no glyphs")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func BenchmarkShaper_Shape(b *testing.B) {
	s := NewShaper()
	face := Builtin().Face()
	runes := []rune("the quick brown fox jumps over the lazy dog")

	for i := 0; i < b.N; i++ {
		s.Shape(runes, face, 14, DirectionLTR)
	}
}
