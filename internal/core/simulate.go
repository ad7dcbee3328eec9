package core

// SimulationRequest is a what-if purchase scenario entered by the user.
// This is the one place the core validates input, because it is typed by
// hand rather than synchronized from the backend.
type SimulationRequest struct {
	Amount   Money
	WalletID int64
	Category string
	Payment  PaymentKind
	Term     int
}

// SimulationResult projects the scenario against the current snapshot:
// the monthly cash-flow share, the resulting budget state for the chosen
// category, the wallet's cycle timing, and the cashback the purchase
// would earn given the wallet's reward table and remaining monthly cap.
type SimulationResult struct {
	Amount        Money
	MonthlyShare  Money
	Term          int
	Wallet        Wallet
	Cycle         CycleStatus
	Budget        BudgetStatus
	Cashback      Money
	CashbackAfter CashbackStatus
}

// Validate checks the scenario before projection.
func (r SimulationRequest) Validate() error {
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if r.Category == "" {
		return ErrEmptyCategory
	}
	if r.Payment == Installment && r.Term < 2 {
		return ErrInvalidTerm
	}
	return nil
}

// Simulate projects a purchase scenario. It never mutates the snapshot;
// repeated calls with the same inputs return the same result.
func Simulate(req SimulationRequest, snap Snapshot) (SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return SimulationResult{}, err
	}
	wallet, ok := snap.WalletByID(req.WalletID)
	if !ok {
		return SimulationResult{}, ErrUnknownWallet
	}

	term := 1
	if req.Payment == Installment {
		term = req.Term
	}
	res := SimulationResult{
		Amount:       req.Amount,
		MonthlyShare: Money{Cents: req.Amount.Cents / int64(term)},
		Term:         term,
		Wallet:       wallet,
		Cycle:        ClassifyCycle(wallet.CycleAnchor, snap.ReferenceDate),
	}

	// Budget impact: the first month's share lands on top of the current
	// month's spend in the chosen category.
	monthly := FilterByPeriod(snap.Transactions, snap.ReferenceDate, Monthly)
	var spend Money
	for _, ca := range CategoryTotals(monthly) {
		if ca.Code == req.Category {
			spend = ca.Amount
			break
		}
	}
	var budget Money
	if cat, ok := snap.CategoryByCode(req.Category); ok {
		budget = cat.Budget
	}
	res.Budget = BudgetUtilization(spend.Add(res.MonthlyShare), budget)

	res.Cashback = estimateCashback(wallet, req.Category, res.MonthlyShare)
	res.CashbackAfter = CashbackUtilization(wallet.CashbackMTD.Add(res.Cashback), wallet.CashbackCap)
	return res, nil
}

// estimateCashback applies the wallet's reward rate for the category and
// trims the estimate to the cap headroom left this month. Display math
// only; the backend governs what actually accrues.
func estimateCashback(w Wallet, category string, share Money) Money {
	rate, ok := w.RewardRates[category]
	if !ok || rate <= 0 {
		return Money{}
	}
	earned := Money{Cents: int64(float64(share.Cents)*rate/100 + 0.5)}
	if w.CashbackCap.Cents > 0 {
		headroom := w.CashbackCap.Cents - w.CashbackMTD.Cents
		if headroom < 0 {
			headroom = 0
		}
		if earned.Cents > headroom {
			earned.Cents = headroom
		}
	}
	return earned
}
