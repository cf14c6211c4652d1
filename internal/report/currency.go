package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"plantoes/internal/core"
)

// CurrencyFormatter renders amounts with the Brazilian convention: "." for
// thousands, "," for decimals, always two fraction digits (9.600,00). The
// integer part goes through an x/text printer so grouping follows the
// locale; the cents are appended from exact integer arithmetic.
type CurrencyFormatter struct {
	printer *message.Printer
}

func NewCurrencyFormatter() *CurrencyFormatter {
	return &CurrencyFormatter{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// Format renders a non-negative amount. Negative amounts never occur in this
// domain; one reaching the formatter is a caller contract violation and
// returns ErrInvalidAmount.
func (f *CurrencyFormatter) Format(m core.Money) (string, error) {
	if m.Cents < 0 {
		return "", core.ErrInvalidAmount
	}
	units := m.Cents / 100
	frac := m.Cents % 100
	return f.printer.Sprintf("%d", units) + fmt.Sprintf(",%02d", frac), nil
}
