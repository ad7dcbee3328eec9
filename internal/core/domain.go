package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

const (
	Straight    PaymentKind = "straight"
	Installment PaymentKind = "installment"
)

const (
	CreditWallet WalletKind = "credit"
	DebitWallet  WalletKind = "debit"
	CashWallet   WalletKind = "cash"
)

// CategoryIncome is the reserved category code for inflows. Transactions
// carrying it are excluded from every expense aggregation.
const CategoryIncome = "income"

type (
	// Granularity selects how a reference date is matched against billing
	// dates: exact day, same year+month, or same year.
	Granularity string

	PaymentKind string

	WalletKind string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Wallet is a card or account as the backend reports it. The core only
	// reads wallets; all mutation happens on the backend.
	Wallet struct {
		ID          int64
		Name        string
		Provider    string
		Kind        WalletKind
		Balance     Money
		Limit       Money // zero means no credit limit
		CycleAnchor *MonthlyAnchor
		DueAnchor   *MonthlyAnchor
		RewardRates map[string]float64 // category code -> percent
		CashbackCap Money              // monthly cap, zero means uncapped/unknown
		CashbackMTD Money
		CashbackYTD Money
		Color       string
		Icon        string
	}

	// Transaction is one per-billing-period line. An installment purchase
	// occurs once but posts across several statements; by the time a
	// transaction reaches the core it carries its own billing date and its
	// own share of the amount.
	Transaction struct {
		ID          int64
		Merchant    string
		Amount      Money
		Category    string
		Date        Date // occurrence date
		BillingDate Date // statement posting date
		WalletID    int64
		Payment     PaymentKind
		Term        int // months, only for installments
		Cashback    Money
	}

	Category struct {
		Code   string
		Label  string
		Color  string
		Icon   string
		Budget Money // monthly ceiling, zero means no budget configured
	}

	Goal struct {
		ID      int64
		Name    string
		Current Money
		Target  Money
		Color   string
		Icon    string
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidTerm        = errors.New("invalid installment term")
	ErrEmptyMerchant      = errors.New("empty merchant")
	ErrEmptyCategory      = errors.New("empty category")
	ErrUnknownWallet      = errors.New("unknown wallet")
	ErrInvalidAnchor      = errors.New("anchor day must be between 1 and 31")
	ErrInvalidGranularity = errors.New("invalid granularity")
)

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as an int (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// IsEmpty reports whether the date is unset (optional billing dates).
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// DaysInMonth returns the number of days in the date's month (28-31).
func (d Date) DaysInMonth() int {
	return daysInMonth(d.Year(), d.Month())
}

// daysInMonth uses the day-0-of-next-month trick so leap years fall out of
// the time package rather than a table here.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g Granularity) Validate() error {
	switch g {
	case Daily, Monthly, Yearly:
		return nil
	default:
		return ErrInvalidGranularity
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsIncome reports whether the transaction is an inflow rather than spend.
func (t Transaction) IsIncome() bool {
	return t.Category == CategoryIncome
}

// Validate guards locally-entered transactions (the simulation form).
// Backend snapshots are never validated here; data integrity is the
// backend's responsibility.
func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Merchant)) == 0 {
		return ErrEmptyMerchant
	}
	if len(t.Merchant) > 200 {
		return errors.New("merchant too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Payment == Installment && t.Term < 2 {
		return ErrInvalidTerm
	}
	return nil
}

// HasCycle reports whether the wallet carries a statement cycle. Debit and
// cash instruments do not.
func (w Wallet) HasCycle() bool {
	return w.CycleAnchor != nil
}
