package wheel

import (
	"math"
	"testing"

	"github.com/lixenwraith/prize-wheel/constants"
)

func TestAngleForIndexExact(t *testing.T) {
	for i := 0; i < constants.SegmentCount; i++ {
		want := -(float64(i) * 45) * math.Pi / 180
		got := AngleForIndex(i)
		if got != want {
			t.Errorf("AngleForIndex(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestAngleForIndexMonotonic(t *testing.T) {
	prev := AngleForIndex(0)
	if prev != 0 {
		t.Fatalf("segment 0 must rest at zero rotation, got %v", prev)
	}
	for i := 1; i < constants.SegmentCount; i++ {
		a := AngleForIndex(i)
		if a >= prev {
			t.Errorf("AngleForIndex not strictly decreasing at %d: %v >= %v", i, a, prev)
		}
		prev = a
	}
	// All indices stay within one revolution
	if last := AngleForIndex(constants.SegmentCount - 1); last <= -2*math.Pi {
		t.Errorf("last segment angle %v exceeds one revolution", last)
	}
}
