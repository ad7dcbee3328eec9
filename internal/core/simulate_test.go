package core

import (
	"errors"
	"testing"
)

func simSnapshot() Snapshot {
	return Snapshot{
		Wallets: []Wallet{
			{
				ID:          1,
				Name:        "Amore Cashback",
				Kind:        CreditWallet,
				CycleAnchor: MustMonthlyAnchor(5),
				RewardRates: map[string]float64{"groceries": 6},
				CashbackCap: Money{Cents: 100000},
				CashbackMTD: Money{Cents: 79000},
			},
			{ID: 2, Name: "Payroll Debit", Kind: DebitWallet},
		},
		Transactions: []Transaction{
			tx(1, 800000, "groceries", NewDate(2026, 2, 3)),
		},
		Categories: []Category{
			{Code: "groceries", Label: "Groceries", Budget: Money{Cents: 1000000}},
		},
		Currency:      "PHP",
		ReferenceDate: NewDate(2026, 2, 7),
	}
}

func TestSimulateStraight(t *testing.T) {
	res, err := Simulate(SimulationRequest{
		Amount:   Money{Cents: 150000},
		WalletID: 1,
		Category: "groceries",
		Payment:  Straight,
	}, simSnapshot())
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if res.Term != 1 || res.MonthlyShare.Cents != 150000 {
		t.Errorf("term=%d share=%d, want 1/150000", res.Term, res.MonthlyShare.Cents)
	}
	if res.Cycle.Timing != TimingGreat { // day 7, anchor 5
		t.Errorf("cycle timing = %q, want great", res.Cycle.Timing)
	}
	// 8000 spent + 1500 share against a 10000 budget.
	if res.Budget.Percent != 95 || res.Budget.Over {
		t.Errorf("budget = %d%%/over=%v, want 95%%/false", res.Budget.Percent, res.Budget.Over)
	}
	// 6% of 1500 is 90, under the 210 headroom left this month.
	if res.Cashback.Cents != 9000 {
		t.Errorf("cashback = %d, want 9000", res.Cashback.Cents)
	}
	if res.CashbackAfter.Badge != CashbackNear {
		t.Errorf("badge after = %q, want near-cap", res.CashbackAfter.Badge)
	}
}

func TestSimulateInstallmentSplitsShare(t *testing.T) {
	res, err := Simulate(SimulationRequest{
		Amount:   Money{Cents: 1200000},
		WalletID: 1,
		Category: "groceries",
		Payment:  Installment,
		Term:     12,
	}, simSnapshot())
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if res.Term != 12 || res.MonthlyShare.Cents != 100000 {
		t.Errorf("term=%d share=%d, want 12/100000", res.Term, res.MonthlyShare.Cents)
	}
}

func TestSimulateCashbackRespectsCapHeadroom(t *testing.T) {
	snap := simSnapshot()
	snap.Wallets[0].CashbackMTD = Money{Cents: 99500} // 500 headroom

	res, err := Simulate(SimulationRequest{
		Amount:   Money{Cents: 500000},
		WalletID: 1,
		Category: "groceries",
		Payment:  Straight,
	}, snap)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if res.Cashback.Cents != 500 {
		t.Errorf("cashback = %d, want headroom-trimmed 500", res.Cashback.Cents)
	}
	if res.CashbackAfter.Badge != CashbackCapped {
		t.Errorf("badge = %q, want capped", res.CashbackAfter.Badge)
	}
}

func TestSimulateDebitWalletHasNoCycle(t *testing.T) {
	res, err := Simulate(SimulationRequest{
		Amount:   Money{Cents: 10000},
		WalletID: 2,
		Category: "groceries",
		Payment:  Straight,
	}, simSnapshot())
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if res.Cycle.Timing != TimingNA {
		t.Errorf("debit wallet timing = %q, want na", res.Cycle.Timing)
	}
	if res.Cashback.Cents != 0 {
		t.Errorf("no reward table should mean zero cashback, got %d", res.Cashback.Cents)
	}
}

func TestSimulateValidation(t *testing.T) {
	snap := simSnapshot()
	cases := []struct {
		name string
		req  SimulationRequest
		err  error
	}{
		{"zero amount", SimulationRequest{WalletID: 1, Category: "groceries", Payment: Straight}, ErrInvalidAmount},
		{"missing category", SimulationRequest{Amount: Money{Cents: 100}, WalletID: 1, Payment: Straight}, ErrEmptyCategory},
		{"installment needs term", SimulationRequest{Amount: Money{Cents: 100}, WalletID: 1, Category: "groceries", Payment: Installment, Term: 1}, ErrInvalidTerm},
		{"unknown wallet", SimulationRequest{Amount: Money{Cents: 100}, WalletID: 99, Category: "groceries", Payment: Straight}, ErrUnknownWallet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Simulate(tc.req, snap); !errors.Is(err, tc.err) {
				t.Errorf("error = %v, want %v", err, tc.err)
			}
		})
	}
}
