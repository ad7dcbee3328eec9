package core

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{0, "PHP", "₱0"},
		{1234, "PHP", "₱1,234"},
		{1234.5, "PHP", "₱1,234.5"},
		{1234.56, "PHP", "₱1,234.56"},
		{1000000, "USD", "$1,000,000"},
		{99.99, "EUR", "€99.99"},
		{500, "JPY", "¥500"},
		{12.3, "GBP", "£12.3"},
		{1, "AUD", "A$1"},
		{1, "CAD", "C$1"},
		{1, "SGD", "S$1"},
		{5, "XYZ", "XYZ5"}, // unknown code prints the code itself
		{-1234.5, "PHP", "₱-1,234.5"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount, tc.code); got != tc.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(Money{Cents: 123450}, "PHP"); got != "₱1,234.5" {
		t.Errorf("FormatMoney(123450 cents) = %q, want ₱1,234.5", got)
	}
	if got := FormatMoney(Money{}, "PHP"); got != "₱0" {
		t.Errorf("FormatMoney(zero) = %q, want ₱0", got)
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := CurrencySymbol("PHP"); got != "₱" {
		t.Errorf("CurrencySymbol(PHP) = %q", got)
	}
	if got := CurrencySymbol("BTC"); got != "BTC" {
		t.Errorf("CurrencySymbol(BTC) = %q, want fallback to code", got)
	}
}
