package api

import (
	"fmt"

	"waiswallet/internal/core"
)

// Wire types for the backend JSON API. Amounts come over the wire as
// decimal numbers and are converted to cents on the boundary so nothing
// past this package touches floats for money.

type walletDTO struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Provider    string             `json:"provider"`
	Kind        string             `json:"kind"`
	Balance     float64            `json:"balance"`
	Limit       float64            `json:"limit"`
	CycleDay    *int               `json:"cycle_day"`
	DueDay      *int               `json:"due_day"`
	RewardRates map[string]float64 `json:"reward_rates"`
	CashbackCap float64            `json:"cashback_cap"`
	CashbackMTD float64            `json:"cashback_mtd"`
	CashbackYTD float64            `json:"cashback_ytd"`
	Color       string             `json:"color"`
	Icon        string             `json:"icon"`
}

type transactionDTO struct {
	ID          int64   `json:"id"`
	WalletID    int64   `json:"wallet_id"`
	Merchant    string  `json:"merchant"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Cashback    float64 `json:"cashback"`
	Date        string  `json:"date"`
	BillingDate string  `json:"billing_date"`
	Payment     string  `json:"payment"`
	Term        int     `json:"term"`
}

type categoryDTO struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Icon   string  `json:"icon"`
	Budget float64 `json:"budget"`
}

type goalDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Color   string  `json:"color"`
	Icon    string  `json:"icon"`
}

type overviewDTO struct {
	Currency      string  `json:"currency"`
	TotalIncome   float64 `json:"total_income"`
	ReferenceDate string  `json:"reference_date"`
}

func assemble(wallets []walletDTO, txs []transactionDTO, categories []categoryDTO, goals []goalDTO, ov overviewDTO) (core.Snapshot, error) {
	snap := core.Snapshot{
		Currency:    ov.Currency,
		TotalIncome: core.MoneyFromFloat(ov.TotalIncome),
	}

	ref, err := core.ParseDate(ov.ReferenceDate)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("overview reference_date: %w", err)
	}
	snap.ReferenceDate = ref

	snap.Wallets = make([]core.Wallet, 0, len(wallets))
	for _, w := range wallets {
		cw, err := convertWallet(w)
		if err != nil {
			return core.Snapshot{}, err
		}
		snap.Wallets = append(snap.Wallets, cw)
	}

	snap.Transactions = make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		ct, err := convertTransaction(t)
		if err != nil {
			return core.Snapshot{}, err
		}
		snap.Transactions = append(snap.Transactions, ct)
	}
	// The backend sends one row per purchase; views and aggregations work
	// on one line per posting period.
	snap.Transactions = core.ExpandInstallments(snap.Transactions)

	snap.Categories = make([]core.Category, 0, len(categories))
	for _, c := range categories {
		snap.Categories = append(snap.Categories, core.Category{
			Code:   c.Code,
			Label:  c.Label,
			Color:  c.Color,
			Icon:   c.Icon,
			Budget: core.MoneyFromFloat(c.Budget),
		})
	}

	snap.Goals = make([]core.Goal, 0, len(goals))
	for _, g := range goals {
		snap.Goals = append(snap.Goals, core.Goal{
			ID:      g.ID,
			Name:    g.Name,
			Current: core.MoneyFromFloat(g.Current),
			Target:  core.MoneyFromFloat(g.Target),
			Color:   g.Color,
			Icon:    g.Icon,
		})
	}

	return snap, nil
}

func convertWallet(w walletDTO) (core.Wallet, error) {
	cw := core.Wallet{
		ID:          w.ID,
		Name:        w.Name,
		Provider:    w.Provider,
		Kind:        core.WalletKind(w.Kind),
		Balance:     core.MoneyFromFloat(w.Balance),
		Limit:       core.MoneyFromFloat(w.Limit),
		RewardRates: w.RewardRates,
		CashbackCap: core.MoneyFromFloat(w.CashbackCap),
		CashbackMTD: core.MoneyFromFloat(w.CashbackMTD),
		CashbackYTD: core.MoneyFromFloat(w.CashbackYTD),
		Color:       w.Color,
		Icon:        w.Icon,
	}
	if w.CycleDay != nil {
		a, err := core.NewMonthlyAnchor(*w.CycleDay)
		if err != nil {
			return core.Wallet{}, fmt.Errorf("wallet %d cycle_day: %w", w.ID, err)
		}
		cw.CycleAnchor = &a
	}
	if w.DueDay != nil {
		a, err := core.NewMonthlyAnchor(*w.DueDay)
		if err != nil {
			return core.Wallet{}, fmt.Errorf("wallet %d due_day: %w", w.ID, err)
		}
		cw.DueAnchor = &a
	}
	return cw, nil
}

func convertTransaction(t transactionDTO) (core.Transaction, error) {
	date, err := core.ParseDate(t.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d date: %w", t.ID, err)
	}
	billing := date
	if t.BillingDate != "" {
		billing, err = core.ParseDate(t.BillingDate)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("transaction %d billing_date: %w", t.ID, err)
		}
	}

	payment := core.Straight
	if t.Payment != "" {
		payment = core.PaymentKind(t.Payment)
	}
	term := t.Term
	if payment == core.Straight {
		term = 1
	}

	return core.Transaction{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Merchant:    t.Merchant,
		Category:    t.Category,
		Amount:      core.MoneyFromFloat(t.Amount),
		Cashback:    core.MoneyFromFloat(t.Cashback),
		Date:        date,
		BillingDate: billing,
		Payment:     payment,
		Term:        term,
	}, nil
}
