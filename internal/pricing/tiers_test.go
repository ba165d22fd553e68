package pricing

import "testing"

func TestVolumeDiscountTierBoundaries(t *testing.T) {
	cases := []struct {
		quantity int
		want     float64
	}{
		{1, 0},
		{9, 0},
		{10, 0.2},
		{49, 0.2},
		{50, 0.3},
		{199, 0.3},
		{200, 0}, // above every tier: no discount
	}
	for _, tc := range cases {
		if got := VolumeDiscount(tc.quantity); got != tc.want {
			t.Errorf("VolumeDiscount(%d) = %.2f, want %.2f", tc.quantity, got, tc.want)
		}
	}
}

func TestBatchEfficiencyTierBoundaries(t *testing.T) {
	cases := []struct {
		quantity int
		want     float64
	}{
		{1, 1},
		{9, 1},
		{10, 0.6},
		{49, 0.6},
		{50, 0.4},
		{99, 0.4},
		{100, 1}, // above every tier: full time
	}
	for _, tc := range cases {
		if got := BatchEfficiencyFactor(tc.quantity); got != tc.want {
			t.Errorf("BatchEfficiencyFactor(%d) = %.2f, want %.2f", tc.quantity, got, tc.want)
		}
	}
}

func TestLookupIsTotalForAnyQuantity(t *testing.T) {
	for _, qty := range []int{-100, -1, 0, 1, 10000, 1 << 30} {
		VolumeDiscount(qty)
		BatchEfficiencyFactor(qty)
	}
	if got := VolumeDiscount(-5); got != 0 {
		t.Errorf("negative quantity should get no discount, got %.2f", got)
	}
	if got := BatchEfficiencyFactor(-5); got != 1 {
		t.Errorf("negative quantity should get factor 1, got %.2f", got)
	}
}

func TestVolumeDiscountLabel(t *testing.T) {
	if got := VolumeDiscountLabel(25); got != "Small wholesale (10-49 units)" {
		t.Errorf("unexpected label for qty 25: %q", got)
	}
	if got := VolumeDiscountLabel(5); got != "" {
		t.Errorf("expected empty label below minimum quantity, got %q", got)
	}
}
