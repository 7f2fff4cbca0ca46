package wheel

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/prize-wheel/constants"
)

func TestParseRewardID(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"0", 0, true},
		{"3", 3, true},
		{"7", 7, true},
		{"8", NoRequest, false},
		{"-1", NoRequest, false},
		{"+3", NoRequest, false},
		{"", NoRequest, false},
		{"abc", NoRequest, false},
		{"3.5", NoRequest, false},
		{" 3", NoRequest, false},
	}
	for _, tt := range tests {
		got, ok := ParseRewardID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseRewardID(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPickIndexForced(t *testing.T) {
	// A forced index must win regardless of the random stream
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for k := 0; k < constants.SegmentCount; k++ {
			if got := PickIndex(rng, k); got != k {
				t.Fatalf("seed %d: PickIndex(rng, %d) = %d", seed, k, got)
			}
		}
	}
}

func TestPickIndexUniform(t *testing.T) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))

	var counts [constants.SegmentCount]int
	for i := 0; i < n; i++ {
		idx := PickIndex(rng, NoRequest)
		if idx < 0 || idx >= constants.SegmentCount {
			t.Fatalf("PickIndex out of range: %d", idx)
		}
		counts[idx]++
	}

	// Chi-square goodness of fit against uniform, df=7.
	// 24.322 is the critical value at p=0.001.
	expected := float64(n) / constants.SegmentCount
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 24.322 {
		t.Errorf("distribution not uniform: chi2 = %v, counts = %v", chi2, counts)
	}
}
