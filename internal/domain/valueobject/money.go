package valueobject

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code used when an account has no explicit currency.
const DefaultCurrency = "BRL"

// FormatMoney renders amount (in major units) using the display rules of the
// given currency, e.g. "R$1.234,56" for BRL. Unknown codes fall back to DefaultCurrency.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
