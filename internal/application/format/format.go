// Package format da formato de presentación a importes, cantidades y fechas.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

func printer() *message.Printer { return message.NewPrinter(language.English) }

// Count entero con separador de miles: 12,450.
func Count(n int) string {
	return printer().Sprintf("%d", n)
}

// Money importe con símbolo y dos decimales: $1,234.50. Currency vacío = USD.
func Money(amount decimal.Decimal, currency string) string {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = "USD"
	}
	sym, ok := symbols[cur]
	if !ok {
		sym = cur + " "
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	amount = amount.Round(2)
	whole := amount.Truncate(0)
	frac := amount.Sub(whole).StringFixed(2)[1:] // ".50"
	return sign + sym + printer().Sprintf("%d", whole.IntPart()) + frac
}

// Price importe en USD.
func Price(amount decimal.Decimal) string { return Money(amount, "USD") }

// Percent variación con signo: +12.5%, -3.0%.
func Percent(p decimal.Decimal) string {
	s := p.StringFixed(1) + "%"
	if p.IsPositive() {
		return "+" + s
	}
	return s
}

// Date fecha corta de listados: Oct 24, 2023.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// DateTime fecha y hora del detalle: Oct 24, 2023 10:42 AM.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
