package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"1234.5", 123450, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestCentsFromFloat(t *testing.T) {
	cases := []struct {
		in  float64
		out int64
	}{
		{0, 0},
		{12.34, 1234},
		{1234.5, 123450},
		{0.1, 10},
		{-42.42, -4242},
	}
	for _, tc := range cases {
		if got := CentsFromFloat(tc.in); got != tc.out {
			t.Errorf("CentsFromFloat(%v) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestMoneyFloat(t *testing.T) {
	if got := (Money{Cents: 123450}).Float(); got != 1234.5 {
		t.Errorf("Float() = %v, want 1234.5", got)
	}
}
