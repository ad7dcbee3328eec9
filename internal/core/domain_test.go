package core

import (
	"errors"
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Merchant: "SM Supermarket",
		Amount:   Money{Cents: 15000},
		Category: "groceries",
		Payment:  Straight,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		err    error
	}{
		{"empty merchant", func(tx *Transaction) { tx.Merchant = "  " }, ErrEmptyMerchant},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -100} }, ErrInvalidAmount},
		{"empty category", func(tx *Transaction) { tx.Category = "" }, ErrEmptyCategory},
		{"installment term too short", func(tx *Transaction) { tx.Payment = Installment; tx.Term = 1 }, ErrInvalidTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := valid
			tc.mutate(&bad)
			if err := bad.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("error = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestGranularityValidate(t *testing.T) {
	for _, g := range []Granularity{Daily, Monthly, Yearly} {
		if err := g.Validate(); err != nil {
			t.Errorf("%q rejected: %v", g, err)
		}
	}
	if err := Granularity("weekly").Validate(); !errors.Is(err, ErrInvalidGranularity) {
		t.Errorf("weekly accepted, want %v", ErrInvalidGranularity)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28},
		{2024, 2, 29},
		{2026, 4, 30},
		{2026, 12, 31},
	}
	for _, tc := range cases {
		if got := NewDate(tc.year, tc.month, 1).DaysInMonth(); got != tc.want {
			t.Errorf("DaysInMonth(%d-%02d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestSnapshotLookups(t *testing.T) {
	snap := Snapshot{
		Wallets: []Wallet{{ID: 1, Name: "Main"}, {ID: 2, Name: "Backup"}},
		Categories: []Category{
			{Code: "food", Budget: Money{Cents: 500000}},
			{Code: CategoryIncome},
			{Code: "bills", Budget: Money{Cents: 300000}},
		},
	}

	if w, ok := snap.WalletByID(2); !ok || w.Name != "Backup" {
		t.Errorf("WalletByID(2) = %v/%v", w, ok)
	}
	if _, ok := snap.WalletByID(9); ok {
		t.Error("WalletByID(9) found a wallet that does not exist")
	}
	if c, ok := snap.CategoryByCode("bills"); !ok || c.Budget.Cents != 300000 {
		t.Errorf("CategoryByCode(bills) = %v/%v", c, ok)
	}
	if got := snap.ExpenseCategories(); len(got) != 2 {
		t.Errorf("ExpenseCategories returned %d, want income excluded", len(got))
	}
	if got := snap.TotalBudget(); got.Cents != 800000 {
		t.Errorf("TotalBudget = %d, want 800000", got.Cents)
	}
}
