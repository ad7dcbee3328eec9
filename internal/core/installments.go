package core

// ExpandInstallments turns raw installment purchases into one line per
// posting period, leaving straight transactions untouched. Views and
// aggregations only ever see expanded lines: each carries its own billing
// date and its own share of the amount, which is what makes billing-date
// period filtering correct for multi-month purchases.
//
// The amount splits evenly across the term with the remainder cents kept
// on the first line, so the expansion always preserves the original total.
// Billing dates advance month by month from the purchase's billing date,
// with the day-of-month clamped to each month's actual length.
func ExpandInstallments(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Payment != Installment || t.Term < 2 {
			out = append(out, t)
			continue
		}
		out = append(out, expand(t)...)
	}
	return out
}

func expand(t Transaction) []Transaction {
	term := int64(t.Term)
	share := t.Amount.Cents / term
	remainder := t.Amount.Cents - share*term

	base := t.BillingDate
	if base.IsEmpty() {
		base = t.Date
	}
	anchor, err := NewMonthlyAnchor(base.Day())
	if err != nil {
		// Defect in upstream data; pass the line through unexpanded rather
		// than guessing a schedule.
		return []Transaction{t}
	}

	lines := make([]Transaction, 0, t.Term)
	year, month := base.Year(), base.Month()
	for i := 0; i < t.Term; i++ {
		line := t
		line.Amount = Money{Cents: share}
		if i == 0 {
			line.Amount.Cents += remainder
		}
		line.BillingDate = anchor.DateIn(year, month)
		lines = append(lines, line)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return lines
}
