package output

import (
	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/pkg/money"
)

// FormatCurrency formats a decimal as USD rounded to the nearest whole
// dollar. Summary sections never show fractional cents.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewFromDecimal(amount).FormatDollar()
}

// FormatCurrencyExact formats a decimal as USD with cents, used where the
// exact figure matters (per-period schedule rows).
func FormatCurrencyExact(amount decimal.Decimal) string {
	return money.NewFromDecimal(amount).Format()
}

// FormatPercent formats a decimal fraction (0.30) as a percentage ("30.0%").
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatPercentValue formats a value already expressed in percent points.
func FormatPercentValue(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }
