package format

import "testing"

func TestCurrencyIndianGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{458.28, "₹458.28"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{1234567.89, "₹12,34,567.89"},
		{-50.5, "-₹50.50"},
		{999.999, "₹1,000.00"},
	}
	for _, tc := range cases {
		if got := Currency(tc.amount); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(40); got != "40%" {
		t.Errorf("Percent(40) = %q", got)
	}
	if got := Percent(32.5); got != "32.5%" {
		t.Errorf("Percent(32.5) = %q", got)
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		minutes float64
		want    string
	}{
		{45, "45 minutes"},
		{60, "1 hour"},
		{120, "2 hours"},
		{150, "2h 30m"},
		{0, "0 minutes"},
	}
	for _, tc := range cases {
		if got := Time(tc.minutes); got != tc.want {
			t.Errorf("Time(%v) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestWeight(t *testing.T) {
	if got := Weight(10); got != "10 g" {
		t.Errorf("Weight(10) = %q", got)
	}
	if got := Weight(1500); got != "1.50 kg" {
		t.Errorf("Weight(1500) = %q", got)
	}
}
