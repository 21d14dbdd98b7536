package text

import "testing"

func TestSegmentText_LTR(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "ascii", in: "hello world"},
		{name: "latin with punctuation", in: "load: 0.42, mem: 61%"},
		{name: "multibyte ltr", in: "Grüße aus Köln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.in)
			segs := segmentText(tt.in, len(runes))

			if len(segs) != 1 {
				t.Fatalf("got %d segments, want 1", len(segs))
			}
			want := segment{start: 0, end: len(runes), dir: DirectionLTR}
			if segs[0] != want {
				t.Errorf("segment = %+v, want %+v", segs[0], want)
			}
		})
	}
}

func TestSegmentText_Empty(t *testing.T) {
	if segs := segmentText("", 0); segs != nil {
		t.Errorf("got %v for empty text, want nil", segs)
	}
}

func TestSegmentText_RTL(t *testing.T) {
	in := "שלום"
	runes := []rune(in)

	segs := segmentText(in, len(runes))

	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].dir != DirectionRTL {
		t.Errorf("direction = %v, want DirectionRTL", segs[0].dir)
	}
	if segs[0].start != 0 || segs[0].end != len(runes) {
		t.Errorf("segment bounds [%d,%d), want [0,%d)", segs[0].start, segs[0].end, len(runes))
	}
}

func TestSegmentText_Mixed(t *testing.T) {
	in := "abc שלום xyz"
	runes := []rune(in)

	segs := segmentText(in, len(runes))

	if len(segs) < 2 {
		t.Fatalf("got %d segments for mixed-direction text, want at least 2", len(segs))
	}

	var sawRTL bool
	covered := make([]bool, len(runes))
	for _, seg := range segs {
		if seg.start < 0 || seg.end > len(runes) || seg.start >= seg.end {
			t.Fatalf("segment %+v out of bounds for %d runes", seg, len(runes))
		}
		for i := seg.start; i < seg.end; i++ {
			if covered[i] {
				t.Fatalf("rune %d covered by more than one segment", i)
			}
			covered[i] = true
		}
		if seg.dir == DirectionRTL {
			sawRTL = true
		}
	}

	for i, ok := range covered {
		if !ok {
			t.Errorf("rune %d not covered by any segment", i)
		}
	}
	if !sawRTL {
		t.Error("no RTL segment found in mixed-direction text")
	}
}
