package core

// Snapshot is the read-only application state one rendering pass computes
// from. The backend owns every entity in it; a refresh replaces the whole
// value rather than mutating fields in place, so derived numbers are
// always pure functions of a single consistent snapshot.
//
// ReferenceDate is the "current" date for all relative calculations. It is
// supplied by the caller, never read from the system clock, so historical
// and simulated dates evaluate identically to "now".
type Snapshot struct {
	Wallets       []Wallet
	Transactions  []Transaction
	Categories    []Category
	Goals         []Goal
	TotalIncome   Money
	Currency      string
	ReferenceDate Date
}

// WalletByID finds a wallet in the snapshot. The second return is false
// when the transaction references a wallet the snapshot does not carry.
func (s Snapshot) WalletByID(id int64) (Wallet, bool) {
	for _, w := range s.Wallets {
		if w.ID == id {
			return w, true
		}
	}
	return Wallet{}, false
}

// CategoryByCode finds a category in the snapshot's catalog.
func (s Snapshot) CategoryByCode(code string) (Category, bool) {
	for _, c := range s.Categories {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

// ExpenseCategories returns the catalog without the income pseudo-category,
// preserving catalog order.
func (s Snapshot) ExpenseCategories() []Category {
	out := make([]Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		if c.Code != CategoryIncome {
			out = append(out, c)
		}
	}
	return out
}

// TotalBudget sums the configured category ceilings.
func (s Snapshot) TotalBudget() Money {
	var cents int64
	for _, c := range s.Categories {
		if c.Code != CategoryIncome {
			cents += c.Budget.Cents
		}
	}
	return Money{Cents: cents}
}

// TotalCashbackYTD sums year-to-date cashback across wallets.
func (s Snapshot) TotalCashbackYTD() Money {
	var cents int64
	for _, w := range s.Wallets {
		cents += w.CashbackYTD.Cents
	}
	return Money{Cents: cents}
}

// TotalCashbackMTD sums month-to-date cashback across wallets.
func (s Snapshot) TotalCashbackMTD() Money {
	var cents int64
	for _, w := range s.Wallets {
		cents += w.CashbackMTD.Cents
	}
	return Money{Cents: cents}
}
