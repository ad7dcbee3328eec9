package http

import (
	"sort"

	"waiswallet/internal/core"
)

// View models are plain data for the templates: everything pre-formatted,
// no computation left to template logic. Each builder is a pure function
// of a snapshot plus the request parameters, which is what makes rendered
// views cacheable.

type CategoryRow struct {
	Code    string
	Label   string
	Color   string
	Icon    string
	Amount  string
	Budget  string
	Percent int
	Over    bool
}

type GoalRow struct {
	Name    string
	Color   string
	Icon    string
	Current string
	Target  string
	Percent int
}

type DashboardView struct {
	PeriodLabel string
	Granularity core.Granularity
	Expenses    string
	Income      string
	Saved       string
	SavingsRate int
	Categories  []CategoryRow
	Goals       []GoalRow
}

type WalletCard struct {
	ID          int64
	Name        string
	Provider    string
	Kind        core.WalletKind
	Color       string
	Icon        string
	Balance     string
	Limit       string
	CreditUsed  int
	Cycle       core.CycleStatus
	NextDue     string
	HasDue      bool
}

type WalletsView struct {
	Cards []WalletCard
}

type CashbackRow struct {
	Name   string
	Color  string
	Earned string
	Cap    string
	Capped bool
	Status core.CashbackStatus
}

type CashbackView struct {
	TotalMTD string
	TotalYTD string
	Rows     []CashbackRow
}

type SliceRow struct {
	core.PieSlice
	Amount string
}

type ReportView struct {
	PeriodLabel string
	Granularity core.Granularity
	HasChart    bool
	Total       string
	Slices      []SliceRow
}

type HistoryRow struct {
	Date        string
	Merchant    string
	Category    string
	CategoryCol string
	Wallet      string
	Amount      string
	Income      bool
	Installment bool
	Term        int
}

type HistoryView struct {
	PeriodLabel string
	Granularity core.Granularity
	Direction   string
	WalletID    int64
	Wallets     []core.Wallet
	Rows        []HistoryRow
	Total       string

	// Statement-of-account subtotals, shown when one wallet is selected.
	Statement   bool
	TotalSpend  string
	TotalIncome string
}

type SimulationView struct {
	Amount        string
	MonthlyShare  string
	Term          int
	WalletName    string
	Cycle         core.CycleStatus
	Budget        core.BudgetStatus
	Cashback      string
	HasCashback   bool
	CashbackAfter core.CashbackStatus
}

func buildDashboardView(snap core.Snapshot, ref core.Date, g core.Granularity) DashboardView {
	period := core.FilterByPeriod(snap.Transactions, ref, g)
	expenses := core.ExpenseTotal(period)
	income := core.IncomeTotal(period)
	saved, rate := core.SavingsRate(income, expenses)

	view := DashboardView{
		PeriodLabel: periodLabel(ref, g),
		Granularity: g,
		Expenses:    core.FormatMoney(expenses, snap.Currency),
		Income:      core.FormatMoney(income, snap.Currency),
		Saved:       core.FormatMoney(saved, snap.Currency),
		SavingsRate: int(rate + 0.5),
	}

	// Spend totals ordered largest-first, joined against the catalog for
	// labels, colors, and budget ceilings.
	for _, ca := range core.CategoryTotals(period) {
		row := CategoryRow{
			Code:   ca.Code,
			Label:  ca.Code,
			Amount: core.FormatMoney(ca.Amount, snap.Currency),
		}
		if cat, ok := snap.CategoryByCode(ca.Code); ok {
			row.Label = cat.Label
			row.Color = cat.Color
			row.Icon = cat.Icon
			if !cat.Budget.IsZero() {
				row.Budget = core.FormatMoney(cat.Budget, snap.Currency)
			}
			status := core.BudgetUtilization(ca.Amount, cat.Budget)
			row.Percent = status.Percent
			row.Over = status.Over
		}
		view.Categories = append(view.Categories, row)
	}

	for _, goal := range snap.Goals {
		view.Goals = append(view.Goals, GoalRow{
			Name:    goal.Name,
			Color:   goal.Color,
			Icon:    goal.Icon,
			Current: core.FormatMoney(goal.Current, snap.Currency),
			Target:  core.FormatMoney(goal.Target, snap.Currency),
			Percent: core.GoalProgress(goal.Current, goal.Target),
		})
	}

	return view
}

func buildWalletsView(snap core.Snapshot) WalletsView {
	var view WalletsView
	for _, w := range snap.Wallets {
		card := WalletCard{
			ID:         w.ID,
			Name:       w.Name,
			Provider:   w.Provider,
			Kind:       w.Kind,
			Color:      w.Color,
			Icon:       w.Icon,
			Balance:    core.FormatMoney(w.Balance, snap.Currency),
			CreditUsed: core.CreditUtilization(absMoney(w.Balance), w.Limit),
			Cycle:      core.ClassifyCycle(w.CycleAnchor, snap.ReferenceDate),
		}
		if !w.Limit.IsZero() {
			card.Limit = core.FormatMoney(w.Limit, snap.Currency)
		}
		if w.DueAnchor != nil {
			due := nextAnchorDate(*w.DueAnchor, snap.ReferenceDate)
			card.NextDue = due.Format("Jan 2")
			card.HasDue = true
		}
		view.Cards = append(view.Cards, card)
	}
	return view
}

func buildCashbackView(snap core.Snapshot) CashbackView {
	view := CashbackView{
		TotalMTD: core.FormatMoney(snap.TotalCashbackMTD(), snap.Currency),
		TotalYTD: core.FormatMoney(snap.TotalCashbackYTD(), snap.Currency),
	}
	for _, w := range snap.Wallets {
		if w.Kind != core.CreditWallet {
			continue
		}
		row := CashbackRow{
			Name:   w.Name,
			Color:  w.Color,
			Earned: core.FormatMoney(w.CashbackMTD, snap.Currency),
			Capped: !w.CashbackCap.IsZero(),
			Status: core.CashbackUtilization(w.CashbackMTD, w.CashbackCap),
		}
		if row.Capped {
			row.Cap = core.FormatMoney(w.CashbackCap, snap.Currency)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func buildReportView(snap core.Snapshot, ref core.Date, g core.Granularity) ReportView {
	period := core.FilterByPeriod(snap.Transactions, ref, g)
	totals := core.CategoryTotals(period)
	total := core.ExpenseTotal(period)

	data := make([]core.ChartDatum, 0, len(totals))
	for _, ca := range totals {
		d := core.ChartDatum{Label: ca.Code, Value: ca.Amount}
		if cat, ok := snap.CategoryByCode(ca.Code); ok {
			d.Label = cat.Label
			d.Color = cat.Color
		}
		data = append(data, d)
	}

	view := ReportView{
		PeriodLabel: periodLabel(ref, g),
		Granularity: g,
		Total:       core.FormatMoney(total, snap.Currency),
	}
	slices, ok := core.PieSlices(data, total)
	if !ok {
		return view
	}
	view.HasChart = true
	for _, s := range slices {
		view.Slices = append(view.Slices, SliceRow{
			PieSlice: s,
			Amount:   core.FormatMoney(s.Value, snap.Currency),
		})
	}
	return view
}

func buildHistoryView(snap core.Snapshot, ref core.Date, g core.Granularity, filter core.TxFilter) HistoryView {
	period := core.FilterByPeriod(snap.Transactions, ref, g)
	rows := core.FilterTransactions(period, filter)

	// Newest first; equal dates keep backend order by id.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].BillingDate.Equal(rows[j].BillingDate.Time) {
			return rows[i].BillingDate.After(rows[j].BillingDate.Time)
		}
		return rows[i].ID > rows[j].ID
	})

	view := HistoryView{
		PeriodLabel: periodLabel(ref, g),
		Granularity: g,
		Direction:   filter.Direction,
		WalletID:    filter.WalletID,
		Wallets:     snap.Wallets,
	}

	var total, spend, income core.Money
	for _, t := range rows {
		row := HistoryRow{
			Date:        t.BillingDate.Format("Jan 2"),
			Merchant:    t.Merchant,
			Category:    t.Category,
			Amount:      core.FormatMoney(t.Amount, snap.Currency),
			Income:      t.IsIncome(),
			Installment: t.Payment == core.Installment,
			Term:        t.Term,
		}
		if cat, ok := snap.CategoryByCode(t.Category); ok {
			row.Category = cat.Label
			row.CategoryCol = cat.Color
		}
		if w, ok := snap.WalletByID(t.WalletID); ok {
			row.Wallet = w.Name
		}
		view.Rows = append(view.Rows, row)
		if t.IsIncome() {
			total = total.Add(t.Amount)
			income = income.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
			spend = spend.Add(t.Amount)
		}
	}
	view.Total = core.FormatMoney(total, snap.Currency)
	if filter.WalletID != 0 {
		view.Statement = true
		view.TotalSpend = core.FormatMoney(spend, snap.Currency)
		view.TotalIncome = core.FormatMoney(income, snap.Currency)
	}
	return view
}

func buildSimulationView(res core.SimulationResult, currency string) SimulationView {
	return SimulationView{
		Amount:        core.FormatMoney(res.Amount, currency),
		MonthlyShare:  core.FormatMoney(res.MonthlyShare, currency),
		Term:          res.Term,
		WalletName:    res.Wallet.Name,
		Cycle:         res.Cycle,
		Budget:        res.Budget,
		Cashback:      core.FormatMoney(res.Cashback, currency),
		HasCashback:   !res.Cashback.IsZero(),
		CashbackAfter: res.CashbackAfter,
	}
}

func periodLabel(ref core.Date, g core.Granularity) string {
	switch g {
	case core.Daily:
		return ref.Format("January 2, 2006")
	case core.Yearly:
		return ref.Format("2006")
	default:
		return ref.Format("January 2006")
	}
}

// nextAnchorDate resolves an anchor to its next occurrence on or after the
// reference date.
func nextAnchorDate(a core.MonthlyAnchor, ref core.Date) core.Date {
	d := a.DateIn(ref.Year(), ref.Month())
	if d.Before(ref.Time) {
		year, month := ref.Year(), ref.Month()+1
		if month > 12 {
			month = 1
			year++
		}
		d = a.DateIn(year, month)
	}
	return d
}

func absMoney(m core.Money) core.Money {
	if m.Cents < 0 {
		return core.Money{Cents: -m.Cents}
	}
	return m
}
