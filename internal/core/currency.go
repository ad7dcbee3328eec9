package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps the currency codes the backend may report to their
// display symbols. Unknown codes fall back to printing the code itself.
var currencySymbols = map[string]string{
	"PHP": "₱",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
}

var currencyPrinter = message.NewPrinter(language.English)

// CurrencySymbol resolves a currency code to its display symbol, or the
// code itself when the lookup fails. Never errors.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// FormatCurrency renders an amount as a localized currency string: grouped
// thousands, no fraction digits for whole values, at most two otherwise.
// This is a display convention applied at presentation time only; amounts
// used elsewhere in computation are never rounded here.
func FormatCurrency(amount float64, code string) string {
	formatted := currencyPrinter.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2)))
	return CurrencySymbol(code) + formatted
}

// FormatMoney renders a cents amount using FormatCurrency.
func FormatMoney(m Money, code string) string {
	return FormatCurrency(m.Float(), code)
}
