package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInput carries the raw figures for a year-to-date income projection.
type ProjectionInput struct {
	StartDate        time.Time       `json:"start_date"`
	AsOfDate         time.Time       `json:"as_of_date"`
	YearToDateIncome decimal.Decimal `json:"year_to_date_income"`
}

// ProjectionResult holds the rates derived from a year-to-date figure.
// Annualization always multiplies the daily rate by 365, leap years included.
type ProjectionResult struct {
	DaysWorked  int             `json:"days_worked"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	WeeklyRate  decimal.Decimal `json:"weekly_rate"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	AnnualRate  decimal.Decimal `json:"annual_rate"`
}

// TaxEstimate breaks an annual gross figure into withholding components.
// TotalTax is always the sum of the three components and NetIncome is gross
// minus TotalTax.
type TaxEstimate struct {
	GrossIncome decimal.Decimal `json:"gross_income"`
	FederalTax  decimal.Decimal `json:"federal_tax"`
	FICATax     decimal.Decimal `json:"fica_tax"`
	StateTax    decimal.Decimal `json:"state_tax"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	NetIncome   decimal.Decimal `json:"net_income"`
}

// EffectiveRate returns total tax as a fraction of gross income, zero when
// gross income is zero.
func (te TaxEstimate) EffectiveRate() decimal.Decimal {
	if te.GrossIncome.IsZero() {
		return decimal.Zero
	}
	return te.TotalTax.Div(te.GrossIncome)
}

// BudgetAllocation splits a net monthly figure into needs/wants/savings.
type BudgetAllocation struct {
	NetMonthlyIncome decimal.Decimal `json:"net_monthly_income"`
	Needs            decimal.Decimal `json:"needs"`
	Wants            decimal.Decimal `json:"wants"`
	Savings          decimal.Decimal `json:"savings"`
}

// LoanParameters describes a fixed-payment loan.
type LoanParameters struct {
	Principal         decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	TermMonths        int             `json:"term_months" yaml:"term_months"`
}

// AmortizationEntry is one period of an amortization schedule.
type AmortizationEntry struct {
	Period           int             `json:"period"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// AmortizationResult is the full fixed-payment schedule for a loan.
type AmortizationResult struct {
	Parameters     LoanParameters      `json:"parameters"`
	MonthlyPayment decimal.Decimal     `json:"monthly_payment"`
	TotalInterest  decimal.Decimal     `json:"total_interest"`
	TotalPaid      decimal.Decimal     `json:"total_paid"`
	Schedule       []AmortizationEntry `json:"schedule"`
}

// AffordabilityResult is the outcome of a ratio-based affordability screen.
// IsAffordable is meaningful only when a candidate amount was evaluated.
type AffordabilityResult struct {
	RuleName        string           `json:"rule_name,omitempty"`
	IncomeFigure    decimal.Decimal  `json:"income_figure"`
	Ratio           decimal.Decimal  `json:"ratio"`
	MaxAffordable   decimal.Decimal  `json:"max_affordable"`
	CandidateAmount *decimal.Decimal `json:"candidate_amount,omitempty"`
	IsAffordable    *bool            `json:"is_affordable,omitempty"`
}

// InflationPoint is the purchasing-power projection at one year offset.
type InflationPoint struct {
	YearOffset      int             `json:"year_offset"`
	PurchasingPower decimal.Decimal `json:"purchasing_power"`
	PercentLoss     decimal.Decimal `json:"percent_loss"`
	RaiseNeeded     decimal.Decimal `json:"raise_needed"`
}

// PaycheckSummary composes projection, withholding, and budget allocation for
// a single year-to-date input.
type PaycheckSummary struct {
	Projection ProjectionResult `json:"projection"`
	Taxes      TaxEstimate      `json:"taxes"`
	Budget     BudgetAllocation `json:"budget"`
}

// Report aggregates whichever results a single run produced. Formatters render
// the sections that are present and skip the rest.
type Report struct {
	GeneratedAt   time.Time            `json:"generated_at"`
	Projection    *ProjectionResult    `json:"projection,omitempty"`
	Taxes         *TaxEstimate         `json:"taxes,omitempty"`
	Budget        *BudgetAllocation    `json:"budget,omitempty"`
	Streams       *StreamSummary       `json:"streams,omitempty"`
	Loan          *AmortizationResult  `json:"loan,omitempty"`
	Affordability *AffordabilityResult `json:"affordability,omitempty"`
	Inflation     []InflationPoint     `json:"inflation,omitempty"`
}
