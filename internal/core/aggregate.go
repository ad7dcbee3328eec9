package core

import "sort"

// CategoryAmount is a spend total for one category code.
type CategoryAmount struct {
	Code   string
	Amount Money
}

// BudgetStatus is the derived state of one category against its ceiling.
// Percent is clamped at 100 for display; Over comes from the unclamped
// ratio so "exactly at budget" and "over budget" stay distinguishable.
type BudgetStatus struct {
	Percent int
	Over    bool
}

// CashbackBadge is the display state of a wallet's monthly cashback cap.
type CashbackBadge string

const (
	CashbackNone   CashbackBadge = ""
	CashbackNear   CashbackBadge = "near-cap"
	CashbackCapped CashbackBadge = "capped"
)

// CashbackStatus is one wallet's progress toward its monthly cap.
type CashbackStatus struct {
	Percent int
	Badge   CashbackBadge
}

// TxFilter narrows a transaction list for the history view. Zero values
// mean "no filtering" on that axis.
type TxFilter struct {
	Direction string // "", "expense" or "income"
	WalletID  int64  // 0 means all wallets
}

// InPeriod reports whether the billing date falls inside the period the
// reference date names at the given granularity. The billing date, not
// the occurrence date, decides membership: an installment purchase occurs
// once but its lines post across several statements.
func InPeriod(billing, ref Date, g Granularity) bool {
	if billing.IsEmpty() {
		return false
	}
	switch g {
	case Daily:
		return billing.Year() == ref.Year() && billing.Month() == ref.Month() && billing.Day() == ref.Day()
	case Monthly:
		return billing.Year() == ref.Year() && billing.Month() == ref.Month()
	case Yearly:
		return billing.Year() == ref.Year()
	default:
		return false
	}
}

// FilterByPeriod selects the transactions whose billing date falls in the
// requested period. An empty result is a valid, expected outcome, not an
// error.
func FilterByPeriod(txs []Transaction, ref Date, g Granularity) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if InPeriod(t.BillingDate, ref, g) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTransactions applies the history view's direction and wallet
// filters on top of a period selection.
func FilterTransactions(txs []Transaction, f TxFilter) []Transaction {
	var out []Transaction
	for _, t := range txs {
		switch f.Direction {
		case "income":
			if !t.IsIncome() {
				continue
			}
		case "expense":
			if t.IsIncome() {
				continue
			}
		}
		if f.WalletID != 0 && t.WalletID != f.WalletID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CategoryTotals groups transactions by category code and sums amounts,
// excluding income. Categories with no matching transactions are omitted;
// callers that need the full catalog merge against it separately,
// defaulting missing entries to zero spend.
func CategoryTotals(txs []Transaction) []CategoryAmount {
	sums := make(map[string]int64)
	for _, t := range txs {
		if t.IsIncome() {
			continue
		}
		sums[t.Category] += t.Amount.Cents
	}
	out := make([]CategoryAmount, 0, len(sums))
	for code, cents := range sums {
		out = append(out, CategoryAmount{Code: code, Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// ExpenseTotal sums non-income amounts.
func ExpenseTotal(txs []Transaction) Money {
	var cents int64
	for _, t := range txs {
		if !t.IsIncome() {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// IncomeTotal sums income amounts.
func IncomeTotal(txs []Transaction) Money {
	var cents int64
	for _, t := range txs {
		if t.IsIncome() {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// BudgetUtilization derives a category's budget state. A missing or zero
// ceiling is a soft condition: 0% and not over, never an error.
func BudgetUtilization(spend, budget Money) BudgetStatus {
	if budget.Cents <= 0 {
		return BudgetStatus{}
	}
	return BudgetStatus{
		Percent: clampedPercent(spend.Cents, budget.Cents),
		Over:    spend.Cents > budget.Cents,
	}
}

// CashbackUtilization derives a wallet's monthly cap state. A zero or
// absent cap yields 0% with no badge rather than dividing by zero; the
// badge is purely a display state, the backend governs the actual cap.
func CashbackUtilization(earned, cap Money) CashbackStatus {
	if cap.Cents <= 0 {
		return CashbackStatus{}
	}
	// Badge thresholds use the unrounded ratio so 79.6% does not warn.
	raw := float64(earned.Cents) / float64(cap.Cents) * 100
	st := CashbackStatus{Percent: clampedPercent(earned.Cents, cap.Cents)}
	switch {
	case raw >= 100:
		st.Badge = CashbackCapped
	case raw >= 80:
		st.Badge = CashbackNear
	}
	return st
}

// GoalProgress is the percent of a savings goal reached, clamped at 100.
func GoalProgress(current, target Money) int {
	if target.Cents <= 0 {
		return 0
	}
	return clampedPercent(current.Cents, target.Cents)
}

// CreditUtilization is the percent of a credit limit in use, clamped at
// 100 for the progress bar. No limit means nothing to report.
func CreditUtilization(balance, limit Money) int {
	if limit.Cents <= 0 {
		return 0
	}
	return clampedPercent(balance.Cents, limit.Cents)
}

// SavingsRate returns net savings (floored at zero) and the savings rate
// against income in percent. Zero income yields a zero rate.
func SavingsRate(income, expenses Money) (Money, float64) {
	net := income.Cents - expenses.Cents
	if net < 0 {
		net = 0
	}
	if income.Cents <= 0 {
		return Money{Cents: net}, 0
	}
	return Money{Cents: net}, float64(net) / float64(income.Cents) * 100
}

// clampedPercent rounds part/whole to the nearest whole percent and caps
// the result at 100. Callers guarantee whole > 0.
func clampedPercent(part, whole int64) int {
	if part <= 0 {
		return 0
	}
	pct := int((part*100 + whole/2) / whole)
	if pct > 100 {
		pct = 100
	}
	return pct
}
