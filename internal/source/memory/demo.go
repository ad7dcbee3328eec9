package memory

import "waiswallet/internal/core"

// DemoSnapshot builds the dataset served when no backend is configured.
// Amounts are in PHP and the reference date is pinned so every derived
// view (cycle timing, monthly aggregates, budget bars) renders the same
// on every run.
func DemoSnapshot() core.Snapshot {
	ref := core.NewDate(2026, 2, 7)

	wallets := []core.Wallet{
		{
			ID:          1,
			Name:        "Everyday Card",
			Provider:    "Metrobank",
			Kind:        core.CreditWallet,
			Balance:     core.Money{Cents: -1854375},
			Limit:       core.Money{Cents: 8000000},
			CycleAnchor: core.MustMonthlyAnchor(28),
			DueAnchor:   core.MustMonthlyAnchor(15),
			RewardRates: map[string]float64{"groceries": 6, "dining": 4},
			CashbackCap: core.Money{Cents: 30000},
			CashbackMTD: core.Money{Cents: 9000},
			CashbackYTD: core.Money{Cents: 74050},
			Color:       "#0ea5e9",
			Icon:        "card",
		},
		{
			ID:          2,
			Name:        "Travel Card",
			Provider:    "UnionBank",
			Kind:        core.CreditWallet,
			Balance:     core.Money{Cents: -420000},
			Limit:       core.Money{Cents: 15000000},
			CycleAnchor: core.MustMonthlyAnchor(10),
			DueAnchor:   core.MustMonthlyAnchor(28),
			RewardRates: map[string]float64{"travel": 3},
			CashbackCap: core.Money{Cents: 100000},
			CashbackMTD: core.Money{Cents: 100000},
			CashbackYTD: core.Money{Cents: 215000},
			Color:       "#8b5cf6",
			Icon:        "plane",
		},
		{
			ID:      3,
			Name:    "Payroll",
			Provider: "BPI",
			Kind:    core.DebitWallet,
			Balance: core.Money{Cents: 4521010},
			Color:   "#10b981",
			Icon:    "bank",
		},
	}

	categories := []core.Category{
		{Code: "groceries", Label: "Groceries", Color: "#f59e0b", Icon: "cart", Budget: core.Money{Cents: 1200000}},
		{Code: "dining", Label: "Dining", Color: "#ef4444", Icon: "utensils", Budget: core.Money{Cents: 600000}},
		{Code: "transport", Label: "Transport", Color: "#3b82f6", Icon: "bus", Budget: core.Money{Cents: 400000}},
		{Code: "utilities", Label: "Utilities", Color: "#64748b", Icon: "bolt", Budget: core.Money{Cents: 500000}},
		{Code: "travel", Label: "Travel", Color: "#8b5cf6", Icon: "plane", Budget: core.Money{}},
		{Code: "home", Label: "Home", Color: "#14b8a6", Icon: "house", Budget: core.Money{Cents: 800000}},
		{Code: core.CategoryIncome, Label: "Income", Color: "#22c55e", Icon: "coins"},
	}

	txs := []core.Transaction{
		{ID: 101, Merchant: "Acme Corp", Amount: core.Money{Cents: 3800000}, Category: core.CategoryIncome,
			Date: core.NewDate(2026, 2, 1), BillingDate: core.NewDate(2026, 2, 1), WalletID: 3, Payment: core.Straight, Term: 1},
		{ID: 102, Merchant: "SM Supermarket", Amount: core.Money{Cents: 235025}, Category: "groceries",
			Date: core.NewDate(2026, 2, 3), BillingDate: core.NewDate(2026, 2, 3), WalletID: 1, Payment: core.Straight, Term: 1,
			Cashback: core.Money{Cents: 14102}},
		{ID: 103, Merchant: "Landers", Amount: core.Money{Cents: 412050}, Category: "groceries",
			Date: core.NewDate(2026, 2, 6), BillingDate: core.NewDate(2026, 2, 6), WalletID: 1, Payment: core.Straight, Term: 1},
		{ID: 104, Merchant: "Mendokoro", Amount: core.Money{Cents: 98000}, Category: "dining",
			Date: core.NewDate(2026, 2, 5), BillingDate: core.NewDate(2026, 2, 5), WalletID: 1, Payment: core.Straight, Term: 1,
			Cashback: core.Money{Cents: 3920}},
		{ID: 105, Merchant: "Grab", Amount: core.Money{Cents: 45500}, Category: "transport",
			Date: core.NewDate(2026, 2, 4), BillingDate: core.NewDate(2026, 2, 4), WalletID: 3, Payment: core.Straight, Term: 1},
		{ID: 106, Merchant: "Meralco", Amount: core.Money{Cents: 387210}, Category: "utilities",
			Date: core.NewDate(2026, 2, 2), BillingDate: core.NewDate(2026, 2, 2), WalletID: 3, Payment: core.Straight, Term: 1},
		{ID: 107, Merchant: "Cebu Pacific", Amount: core.Money{Cents: 650000}, Category: "travel",
			Date: core.NewDate(2026, 1, 18), BillingDate: core.NewDate(2026, 2, 10), WalletID: 2, Payment: core.Straight, Term: 1},
		// Six-month appliance plan: occurred in January, bills monthly from February.
		{ID: 108, Merchant: "Appliance Center", Amount: core.Money{Cents: 4200000}, Category: "home",
			Date: core.NewDate(2026, 1, 31), BillingDate: core.NewDate(2026, 1, 31), WalletID: 1, Payment: core.Installment, Term: 6},
		// Prior-month spend for the yearly and history views.
		{ID: 109, Merchant: "SM Supermarket", Amount: core.Money{Cents: 801500}, Category: "groceries",
			Date: core.NewDate(2026, 1, 12), BillingDate: core.NewDate(2026, 1, 12), WalletID: 1, Payment: core.Straight, Term: 1},
		{ID: 110, Merchant: "Shell", Amount: core.Money{Cents: 250000}, Category: "transport",
			Date: core.NewDate(2026, 1, 20), BillingDate: core.NewDate(2026, 1, 20), WalletID: 3, Payment: core.Straight, Term: 1},
	}

	goals := []core.Goal{
		{ID: 1, Name: "Emergency Fund", Current: core.Money{Cents: 6000000}, Target: core.Money{Cents: 12000000}, Color: "#ef4444", Icon: "shield"},
		{ID: 2, Name: "Japan Trip", Current: core.Money{Cents: 1500000}, Target: core.Money{Cents: 5000000}, Color: "#8b5cf6", Icon: "plane"},
	}

	return core.Snapshot{
		Wallets:       wallets,
		Transactions:  core.ExpandInstallments(txs),
		Categories:    categories,
		Goals:         goals,
		TotalIncome:   core.Money{Cents: 3800000},
		Currency:      "PHP",
		ReferenceDate: ref,
	}
}
