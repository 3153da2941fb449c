package service

import "testing"

func TestFormatCurrency(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{84267, "84,267"},
		{100000, "1,00,000"},
		{1369440, "13,69,440"},
		{10000000, "1,00,00,000"},
		{1234567.891, "12,34,567.891"},
		{1500.5, "1,500.5"},
		{3333.33333, "3,333.333"},
		{-84267, "-84,267"},
	} {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
