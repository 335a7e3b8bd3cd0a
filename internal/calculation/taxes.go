package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. Federal brackets: 2024 single-filer table, no inflation indexing.
//    Standard deduction: $14,600.
// 2. FICA: Social Security 6.2% up to the $168,600 wage cap; Medicare 1.45%
//    on the full gross with no cap. No additional Medicare surtax.
// 3. State tax: flat 5% approximation. Per-state bracket tables are supplied
//    by callers as data when they need more fidelity.

// FederalTaxCalculator walks a progressive bracket table after applying the
// standard deduction.
type FederalTaxCalculator struct {
	StandardDeduction decimal.Decimal
	Brackets          []domain.TaxBracket
}

// NewFederalTaxCalculator creates a calculator from configured rules. An
// entirely empty section selects the built-in table; a populated section is
// taken verbatim, so a configured zero deduction stays zero.
func NewFederalTaxCalculator(rules domain.FederalTaxRules) *FederalTaxCalculator {
	if len(rules.Brackets) == 0 && rules.StandardDeduction.IsZero() {
		rules = domain.FederalTaxRules{
			StandardDeduction: DefaultStandardDeduction(),
			Brackets:          DefaultFederalBrackets(),
		}
	}
	return &FederalTaxCalculator{
		StandardDeduction: rules.StandardDeduction,
		Brackets:          rules.Brackets,
	}
}

// DefaultStandardDeduction returns the 2024 single-filer standard deduction.
func DefaultStandardDeduction() decimal.Decimal {
	return decimal.NewFromInt(14600)
}

// DefaultFederalBrackets returns the 2024 single-filer bracket table.
func DefaultFederalBrackets() []domain.TaxBracket {
	upper := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []domain.TaxBracket{
		{Upper: upper(11600), Rate: decimal.NewFromFloat(0.10)},
		{Upper: upper(47150), Rate: decimal.NewFromFloat(0.12)},
		{Upper: upper(100525), Rate: decimal.NewFromFloat(0.22)},
		{Upper: upper(191950), Rate: decimal.NewFromFloat(0.24)},
		{Upper: upper(243725), Rate: decimal.NewFromFloat(0.32)},
		{Upper: upper(609350), Rate: decimal.NewFromFloat(0.35)},
		{Upper: nil, Rate: decimal.NewFromFloat(0.37)},
	}
}

// CalculateFederalTax integrates the bracket table over taxable income.
// Amounts at exactly a bracket boundary are taxed at the lower bracket's rate.
func (ftc *FederalTaxCalculator) CalculateFederalTax(grossIncome decimal.Decimal) decimal.Decimal {
	taxableIncome := grossIncome.Sub(ftc.StandardDeduction)
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	totalTax := decimal.Zero
	previousUpper := decimal.Zero
	remaining := taxableIncome
	for _, bracket := range ftc.Brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		width := remaining
		if bracket.Upper != nil {
			width = decimal.Min(remaining, bracket.Upper.Sub(previousUpper))
			previousUpper = *bracket.Upper
		}
		if width.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(width.Mul(bracket.Rate))
			remaining = remaining.Sub(width)
		}
	}
	return totalTax
}

// FICACalculator handles Social Security and Medicare payroll taxes.
type FICACalculator struct {
	SocialSecurityRate    decimal.Decimal
	SocialSecurityWageCap decimal.Decimal
	MedicareRate          decimal.Decimal
}

// NewFICACalculator creates a calculator from configured rules. An entirely
// empty section selects the built-in parameters; a populated section is taken
// verbatim, so a configured zero rate stays zero.
func NewFICACalculator(rules domain.FICARules) *FICACalculator {
	if rules.SocialSecurityRate.IsZero() && rules.SocialSecurityWageCap.IsZero() && rules.MedicareRate.IsZero() {
		rules = domain.FICARules{
			SocialSecurityRate:    decimal.NewFromFloat(0.062),
			SocialSecurityWageCap: decimal.NewFromInt(168600),
			MedicareRate:          decimal.NewFromFloat(0.0145),
		}
	}
	return &FICACalculator{
		SocialSecurityRate:    rules.SocialSecurityRate,
		SocialSecurityWageCap: rules.SocialSecurityWageCap,
		MedicareRate:          rules.MedicareRate,
	}
}

// CalculateFICA calculates combined Social Security and Medicare tax.
// Social Security is capped at the wage base; Medicare is not.
func (fc *FICACalculator) CalculateFICA(grossIncome decimal.Decimal) decimal.Decimal {
	ssWages := decimal.Min(grossIncome, fc.SocialSecurityWageCap)
	ssTax := ssWages.Mul(fc.SocialSecurityRate)
	medicareTax := grossIncome.Mul(fc.MedicareRate)
	return ssTax.Add(medicareTax)
}

// StateTaxCalculator applies a flat state-rate approximation to gross income.
type StateTaxCalculator struct {
	Rate decimal.Decimal
}

// NewStateTaxCalculator creates a calculator from configured rules. A nil
// rate selects the built-in default; an explicit zero rate is honored.
func NewStateTaxCalculator(rules domain.StateTaxRules) *StateTaxCalculator {
	if rules.FlatRate == nil {
		return &StateTaxCalculator{Rate: decimal.NewFromFloat(0.05)}
	}
	return &StateTaxCalculator{Rate: *rules.FlatRate}
}

// CalculateTax applies the flat rate to gross income.
func (stc *StateTaxCalculator) CalculateTax(grossIncome decimal.Decimal) decimal.Decimal {
	return grossIncome.Mul(stc.Rate)
}

// TaxEstimator composes the federal, FICA, and state calculators.
type TaxEstimator struct {
	FederalCalc *FederalTaxCalculator
	FICACalc    *FICACalculator
	StateCalc   *StateTaxCalculator
	Logger      Logger
}

// NewTaxEstimator creates a tax estimator from the configured rule set.
func NewTaxEstimator(rules *domain.Rules, logger Logger) *TaxEstimator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &TaxEstimator{
		FederalCalc: NewFederalTaxCalculator(rules.Federal),
		FICACalc:    NewFICACalculator(rules.FICA),
		StateCalc:   NewStateTaxCalculator(rules.State),
		Logger:      logger,
	}
}

// Estimate computes the full withholding estimate for an annual gross figure.
func (te *TaxEstimator) Estimate(grossAnnualIncome decimal.Decimal) (*domain.TaxEstimate, error) {
	if grossAnnualIncome.IsNegative() {
		return nil, fmt.Errorf("%w: gross income cannot be negative", domain.ErrInvalidInput)
	}

	federalTax := te.FederalCalc.CalculateFederalTax(grossAnnualIncome)
	ficaTax := te.FICACalc.CalculateFICA(grossAnnualIncome)
	stateTax := te.StateCalc.CalculateTax(grossAnnualIncome)
	totalTax := federalTax.Add(ficaTax).Add(stateTax)

	estimate := &domain.TaxEstimate{
		GrossIncome: grossAnnualIncome,
		FederalTax:  federalTax,
		FICATax:     ficaTax,
		StateTax:    stateTax,
		TotalTax:    totalTax,
		NetIncome:   grossAnnualIncome.Sub(totalTax),
	}

	te.Logger.Debugf("tax estimate for gross %s: federal %s, fica %s, state %s",
		grossAnnualIncome.StringFixed(2), federalTax.StringFixed(2),
		ficaTax.StringFixed(2), stateTax.StringFixed(2))

	return estimate, nil
}
