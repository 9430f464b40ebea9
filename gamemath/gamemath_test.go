package gamemath

import (
	"math"
	"testing"
)

func TestPickTier_Empty(t *testing.T) {
	var table PayoutTable
	if _, ok := table.PickTier(0.5); ok {
		t.Fatal("nil table should return false")
	}
	if _, ok := (PayoutTable{}).PickTier(0.5); ok {
		t.Fatal("empty table should return false")
	}
}

func TestPickTier_Boundaries(t *testing.T) {
	table := DefaultPayoutTable()
	cases := []struct {
		w          float64
		tier       string
		multiplier float64
		reward     float64
	}{
		{0, "T1", 2, 2},
		{0.5, "T1", 2, 2},
		{0.8699999, "T1", 2, 2},
		{0.87, "T2", 3, 13},
		{0.9699999, "T2", 3, 13},
		{0.97, "T3", 5, 20},
		{0.9999999, "T3", 5, 20},
		{1, "T3", 5, 20},
	}
	for _, c := range cases {
		tier, ok := table.PickTier(c.w)
		if !ok {
			t.Fatalf("w=%v: PickTier failed", c.w)
		}
		if tier.Tier != c.tier || tier.Multiplier != c.multiplier || tier.RewardMultiplier != c.reward {
			t.Errorf("w=%v: got %+v want %s %vx reward %vx", c.w, tier, c.tier, c.multiplier, c.reward)
		}
	}
}

func TestPickTier_Distribution(t *testing.T) {
	// T1 87%, T2 10%, T3 3%
	table := DefaultPayoutTable()
	src := NewSeededSource(7)
	const rounds = 100_000
	count := map[string]int{}
	for i := 0; i < rounds; i++ {
		tier, _ := table.PickTier(src.Float64())
		count[tier.Tier]++
	}
	if p := float64(count["T1"]) / rounds; p < 0.86 || p > 0.88 {
		t.Errorf("T1 proportion %.4f want ~0.87", p)
	}
	if p := float64(count["T2"]) / rounds; p < 0.09 || p > 0.11 {
		t.Errorf("T2 proportion %.4f want ~0.10", p)
	}
	if p := float64(count["T3"]) / rounds; p < 0.025 || p > 0.035 {
		t.Errorf("T3 proportion %.4f want ~0.03", p)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultPayoutTable().Validate(); err != nil {
		t.Fatalf("default table: %v", err)
	}
	bad := []PayoutTable{
		nil,
		{{Tier: "A", Below: 0.5, Multiplier: 2, RewardMultiplier: 2}, {Tier: "B", Below: 0.5, Multiplier: 3, RewardMultiplier: 3}},
		{{Tier: "A", Below: 1, Multiplier: 0, RewardMultiplier: 2}},
		{{Tier: "A", Below: 0.9, Multiplier: 2, RewardMultiplier: 2}},
	}
	for i, table := range bad {
		if err := table.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestExpectedMultiplier(t *testing.T) {
	// 0.87*2 + 0.10*3 + 0.03*5 = 2.19
	got := DefaultPayoutTable().ExpectedMultiplier()
	if math.Abs(got-2.19) > 1e-9 {
		t.Errorf("ExpectedMultiplier %.6f want 2.19", got)
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	a, b := NewSeededSource(42), NewSeededSource(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}

func TestCryptoSource_Range(t *testing.T) {
	src := NewCryptoSource()
	for i := 0; i < 1000; i++ {
		if v := src.Float64(); v < 0 || v >= 1 {
			t.Fatalf("draw out of range: %v", v)
		}
	}
}

func TestUniform(t *testing.T) {
	src := NewSeededSource(1)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, DriftMin, DriftMax)
		if v < DriftMin || v >= DriftMax {
			t.Fatalf("uniform draw out of [%v,%v): %v", DriftMin, DriftMax, v)
		}
	}
}

func TestSequenceSource_Wraps(t *testing.T) {
	src := NewSequenceSource(0.1, 0.2)
	want := []float64{0.1, 0.2, 0.1}
	for i, w := range want {
		if got := src.Float64(); got != w {
			t.Errorf("draw %d: got %v want %v", i, got, w)
		}
	}
	if src.Consumed() != 3 {
		t.Errorf("Consumed %d want 3", src.Consumed())
	}
	if v := NewSequenceSource().Float64(); v != 0 {
		t.Errorf("empty sequence should yield 0, got %v", v)
	}
}
