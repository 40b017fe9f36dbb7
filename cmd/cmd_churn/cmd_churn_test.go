package cmd_churn

import (
	"testing"
)

func TestRun(t *testing.T) {
	res, err := Run(Config{Slots: 64, Ops: 10_000, Burst: 8})
	if err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if res.Mismatches != 0 {
		t.Errorf("Expected %v, got %v", 0, res.Mismatches)
	}
	if res.FailedAllocs != 0 {
		t.Errorf("Expected %v, got %v", 0, res.FailedAllocs)
	}
	if res.Frees != 80_000 {
		t.Errorf("Expected %v, got %v", 80_000, res.Frees)
	}
	if res.Allocs != 64+80_000 {
		t.Errorf("Expected %v, got %v", 64+80_000, res.Allocs)
	}
}

func TestRun_singleSlot(t *testing.T) {
	res, err := Run(Config{Slots: 1, Ops: 100, Burst: 1})
	if err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if res.Mismatches != 0 {
		t.Errorf("Expected %v, got %v", 0, res.Mismatches)
	}
}

func TestRun_fullBurst(t *testing.T) {
	res, err := Run(Config{Slots: 10, Ops: 50, Burst: 10})
	if err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if res.Mismatches != 0 {
		t.Errorf("Expected %v, got %v", 0, res.Mismatches)
	}
}

func TestRun_invalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Slots: 0, Ops: 1, Burst: 1},
		{Slots: 4, Ops: 1, Burst: 0},
		{Slots: 4, Ops: 1, Burst: 5},
	} {
		if _, err := Run(cfg); err == nil {
			t.Errorf("Expected error for %+v", cfg)
		}
	}
}

func TestStrideFor(t *testing.T) {
	for n := 1; n < 200; n++ {
		s := strideFor(n)
		if s <= 0 || gcd(s, n) != 1 {
			t.Fatalf("Expected stride coprime with %d, got %d", n, s)
		}
	}
}
