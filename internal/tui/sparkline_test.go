package tui

import (
	"strings"
	"testing"
)

func TestRingBufferPushAndSlice(t *testing.T) {
	rb := NewRingBuffer(3)
	if rb.Len() != 0 {
		t.Fatalf("new buffer Len = %d", rb.Len())
	}

	rb.Push(1)
	rb.Push(2)
	got := rb.Slice()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Slice = %v, want [1 2]", got)
	}

	// Overwrite the oldest once full.
	rb.Push(3)
	rb.Push(4)
	got = rb.Slice()
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("Slice after wrap = %v, want [2 3 4]", got)
	}
}

func TestRingBufferZeroCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	rb.Push(9)
	if got := rb.Slice(); len(got) != 1 || got[0] != 9 {
		t.Errorf("Slice = %v, want [9]", got)
	}
}

func TestRenderSparklineScaling(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input = %q", got)
	}

	out := RenderSparkline([]float64{0, 50, 100})
	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("length = %d", len(runes))
	}
	if runes[0] != '▁' {
		t.Errorf("minimum sample = %c, want lowest block", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("maximum sample = %c, want full block", runes[2])
	}

	// All-equal samples scale to full blocks rather than dividing by zero.
	flat := RenderSparkline([]float64{5, 5, 5})
	if flat != strings.Repeat("█", 3) {
		t.Errorf("flat samples = %q", flat)
	}
}
