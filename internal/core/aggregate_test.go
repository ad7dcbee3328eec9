package core

import "testing"

func tx(id int64, amount int64, category string, billing Date) Transaction {
	return Transaction{
		ID:          id,
		Merchant:    "m",
		Amount:      Money{Cents: amount},
		Category:    category,
		Date:        billing,
		BillingDate: billing,
		WalletID:    1,
		Payment:     Straight,
	}
}

func TestFilterByPeriod(t *testing.T) {
	txs := []Transaction{
		tx(1, 1000, "food", NewDate(2026, 2, 7)),
		tx(2, 2000, "food", NewDate(2026, 2, 20)),
		tx(3, 3000, "food", NewDate(2026, 3, 7)),
		tx(4, 4000, "food", NewDate(2025, 2, 7)),
	}

	cases := []struct {
		name string
		ref  Date
		g    Granularity
		want []int64
	}{
		{"monthly", NewDate(2026, 2, 15), Monthly, []int64{1, 2}},
		{"daily", NewDate(2026, 2, 7), Daily, []int64{1}},
		{"yearly", NewDate(2026, 6, 1), Yearly, []int64{1, 2, 3}},
		{"empty period", NewDate(2027, 1, 1), Monthly, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByPeriod(txs, tc.ref, tc.g)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d transactions, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("tx[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

// Period membership follows the billing date, not the occurrence date.
func TestFilterByPeriodUsesBillingDate(t *testing.T) {
	purchase := tx(1, 5000, "shopping", NewDate(2026, 3, 5))
	purchase.Date = NewDate(2026, 1, 5) // occurred two months earlier

	got := FilterByPeriod([]Transaction{purchase}, NewDate(2026, 1, 15), Monthly)
	if len(got) != 0 {
		t.Fatalf("occurrence month matched, want billing month only")
	}
	got = FilterByPeriod([]Transaction{purchase}, NewDate(2026, 3, 15), Monthly)
	if len(got) != 1 {
		t.Fatalf("billing month did not match")
	}
}

func TestCategoryTotals(t *testing.T) {
	txs := []Transaction{
		tx(1, 1000, "food", NewDate(2026, 2, 1)),
		tx(2, 2500, "food", NewDate(2026, 2, 2)),
		tx(3, 4000, "transport", NewDate(2026, 2, 3)),
		tx(4, 99999, CategoryIncome, NewDate(2026, 2, 4)),
	}
	got := CategoryTotals(txs)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2 (income excluded, empty omitted)", len(got))
	}
	// Sorted by amount descending.
	if got[0].Code != "transport" || got[0].Amount.Cents != 4000 {
		t.Errorf("top category = %s/%d, want transport/4000", got[0].Code, got[0].Amount.Cents)
	}
	if got[1].Code != "food" || got[1].Amount.Cents != 3500 {
		t.Errorf("second category = %s/%d, want food/3500", got[1].Code, got[1].Amount.Cents)
	}
}

func TestCategoryTotalsAlwaysExcludesIncome(t *testing.T) {
	txs := []Transaction{tx(1, 1000, CategoryIncome, NewDate(2026, 2, 1))}
	if got := CategoryTotals(txs); len(got) != 0 {
		t.Fatalf("income leaked into expense aggregation: %v", got)
	}
	if got := ExpenseTotal(txs); got.Cents != 0 {
		t.Errorf("ExpenseTotal = %d, want 0", got.Cents)
	}
	if got := IncomeTotal(txs); got.Cents != 1000 {
		t.Errorf("IncomeTotal = %d, want 1000", got.Cents)
	}
}

func TestBudgetUtilization(t *testing.T) {
	cases := []struct {
		name    string
		spend   int64
		budget  int64
		percent int
		over    bool
	}{
		{"under budget", 5000, 10000, 50, false},
		{"exactly at budget - not over", 10000, 10000, 100, false},
		{"one cent over - clamped display but flagged", 10001, 10000, 100, true},
		{"far over", 25000, 10000, 100, true},
		{"no budget configured", 5000, 0, 0, false},
		{"zero spend", 0, 10000, 0, false},
		{"rounding to nearest percent", 333, 1000, 33, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BudgetUtilization(Money{Cents: tc.spend}, Money{Cents: tc.budget})
			if got.Percent != tc.percent {
				t.Errorf("Percent = %d, want %d", got.Percent, tc.percent)
			}
			if got.Over != tc.over {
				t.Errorf("Over = %v, want %v", got.Over, tc.over)
			}
		})
	}
}

func TestCashbackUtilization(t *testing.T) {
	cases := []struct {
		name    string
		earned  int64
		cap     int64
		percent int
		badge   CashbackBadge
	}{
		{"no cap means no badge and no division", 800000, 0, 0, CashbackNone},
		{"normal", 500000, 1000000, 50, CashbackNone},
		{"just under warn threshold", 799999, 1000000, 80, CashbackNone},
		{"near cap", 850000, 1000000, 85, CashbackNear},
		{"capped", 1000000, 1000000, 100, CashbackCapped},
		{"beyond cap still reads capped", 1200000, 1000000, 100, CashbackCapped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CashbackUtilization(Money{Cents: tc.earned}, Money{Cents: tc.cap})
			if got.Percent != tc.percent {
				t.Errorf("Percent = %d, want %d", got.Percent, tc.percent)
			}
			if got.Badge != tc.badge {
				t.Errorf("Badge = %q, want %q", got.Badge, tc.badge)
			}
		})
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := []Transaction{
		tx(1, 1000, "food", NewDate(2026, 2, 1)),
		tx(2, 2000, CategoryIncome, NewDate(2026, 2, 2)),
		tx(3, 3000, "transport", NewDate(2026, 2, 3)),
	}
	txs[2].WalletID = 7

	if got := FilterTransactions(txs, TxFilter{Direction: "income"}); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("income filter = %v", got)
	}
	if got := FilterTransactions(txs, TxFilter{Direction: "expense"}); len(got) != 2 {
		t.Errorf("expense filter returned %d, want 2", len(got))
	}
	if got := FilterTransactions(txs, TxFilter{WalletID: 7}); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("wallet filter = %v", got)
	}
	if got := FilterTransactions(txs, TxFilter{Direction: "expense", WalletID: 7}); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("composed filter = %v", got)
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(Money{Cents: 2500}, Money{Cents: 10000}); got != 25 {
		t.Errorf("GoalProgress = %d, want 25", got)
	}
	if got := GoalProgress(Money{Cents: 20000}, Money{Cents: 10000}); got != 100 {
		t.Errorf("GoalProgress over target = %d, want 100", got)
	}
	if got := GoalProgress(Money{Cents: 2500}, Money{}); got != 0 {
		t.Errorf("GoalProgress with no target = %d, want 0", got)
	}
}

func TestCreditUtilization(t *testing.T) {
	if got := CreditUtilization(Money{Cents: 4000}, Money{Cents: 10000}); got != 40 {
		t.Errorf("CreditUtilization = %d, want 40", got)
	}
	if got := CreditUtilization(Money{Cents: 4000}, Money{}); got != 0 {
		t.Errorf("CreditUtilization without limit = %d, want 0", got)
	}
}

func TestSavingsRate(t *testing.T) {
	net, rate := SavingsRate(Money{Cents: 100000}, Money{Cents: 75000})
	if net.Cents != 25000 {
		t.Errorf("net = %d, want 25000", net.Cents)
	}
	if rate != 25 {
		t.Errorf("rate = %v, want 25", rate)
	}

	net, rate = SavingsRate(Money{Cents: 100000}, Money{Cents: 150000})
	if net.Cents != 0 || rate != 0 {
		t.Errorf("overspent month: net=%d rate=%v, want 0/0", net.Cents, rate)
	}

	net, rate = SavingsRate(Money{}, Money{Cents: 5000})
	if net.Cents != 0 || rate != 0 {
		t.Errorf("zero income: net=%d rate=%v, want 0/0", net.Cents, rate)
	}
}
