package core

import (
	"math"
	"testing"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min      int
		max      int
		expected int
	}{
		{name: "inside", value: 5, min: 0, max: 10, expected: 5},
		{name: "below", value: -3, min: 0, max: 10, expected: 0},
		{name: "above", value: 12, min: 0, max: 10, expected: 10},
		{name: "swapped", value: 12, min: 10, max: 0, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampInt(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("ClampInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBPowerConversions(t *testing.T) {
	// 3 dB power ~ 2x linear power
	p := DBPowerToLinear(3)
	if !NearlyEqual(p, 2.0, 0.01) {
		t.Fatalf("DBPowerToLinear(3) = %v, want ~2.0", p)
	}

	db := LinearPowerToDB(p)
	if !NearlyEqual(db, 3.0, 1e-10) {
		t.Fatalf("LinearPowerToDB(DBPowerToLinear(3)) = %v, want 3", db)
	}

	if DBPowerToLinear(0) != 1 {
		t.Fatal("expected exact unity for 0 dB")
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}

func TestPowerRatioDB(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "equal", a: 4, b: 4, want: 0},
		{name: "ten dB above", a: 10, b: 1, want: 10},
		{name: "ten dB below", a: 1, b: 10, want: 10},
		{name: "both zero", a: 0, b: 0, want: 0},
		{name: "one zero", a: 0, b: 1, want: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PowerRatioDB(tt.a, tt.b)
			if math.IsInf(tt.want, 1) {
				if !math.IsInf(got, 1) {
					t.Fatalf("PowerRatioDB(%v, %v) = %v, want +Inf", tt.a, tt.b, got)
				}
				return
			}
			if !NearlyEqual(got, tt.want, 1e-12) {
				t.Fatalf("PowerRatioDB(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if !math.IsNaN(PowerRatioDB(-1, 1)) {
		t.Fatal("expected NaN for negative power")
	}
}
