// Package format renders money and timestamps the way the store frontend
// displays them.
package format

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// moneyScale is the fixed number of fraction digits for every money field,
// regardless of the currency's native minor unit.
const moneyScale = 2

// MoneyFormatter formats amounts with the store's currency symbol and locale
// digit rules. Negative amounts render with a leading minus, never brackets.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter builds a formatter for a BCP 47 locale ("en-US") and an
// ISO 4217 currency code ("USD").
func NewMoneyFormatter(locale, currencyCode string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", currencyCode, err)
	}
	printer := message.NewPrinter(tag)
	return &MoneyFormatter{
		printer: printer,
		symbol:  printer.Sprint(currency.Symbol(unit)),
	}, nil
}

// Format renders v as a display string, e.g. "$1,234.50".
func (f *MoneyFormatter) Format(v float64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(v, number.Scale(moneyScale)))
}
