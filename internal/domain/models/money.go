package models

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// USD renders v as a dollar string with thousands separators, e.g.
// "$1,234.56". NaN renders as zero, matching the computation rules.
func USD(v float64) string {
	if math.IsNaN(v) {
		v = 0
	}
	cents := decimal.NewFromFloat(v).Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// Grouped renders v with thousands separators and the given number of
// decimals, e.g. Grouped(1234.5, 1) == "1,234.5".
func Grouped(v float64, decimals int) string {
	if math.IsNaN(v) {
		v = 0
	}
	return printer.Sprintf("%.*f", decimals, v)
}
