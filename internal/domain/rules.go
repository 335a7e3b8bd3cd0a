package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one rung of a progressive tax table. Upper is the inclusive
// top of the bracket; nil means the bracket is unbounded. Amounts at exactly
// the boundary are taxed at this bracket's rate, not the next one's.
type TaxBracket struct {
	Upper *decimal.Decimal `json:"upper,omitempty" yaml:"upper,omitempty"`
	Rate  decimal.Decimal  `json:"rate" yaml:"rate"`
}

// FederalTaxRules configures the progressive federal withholding estimate.
type FederalTaxRules struct {
	StandardDeduction decimal.Decimal `json:"standard_deduction" yaml:"standard_deduction"`
	Brackets          []TaxBracket    `json:"brackets" yaml:"brackets"`
}

// FICARules configures payroll tax computation. Social Security applies only
// up to the wage cap; Medicare applies to the full gross with no cap.
type FICARules struct {
	SocialSecurityRate    decimal.Decimal `json:"social_security_rate" yaml:"social_security_rate"`
	SocialSecurityWageCap decimal.Decimal `json:"social_security_wage_cap" yaml:"social_security_wage_cap"`
	MedicareRate          decimal.Decimal `json:"medicare_rate" yaml:"medicare_rate"`
}

// StateTaxRules holds the flat state-rate approximation used by the shared
// estimate. Per-state bracket tables are a data concern outside this engine.
// A nil rate means unset; an explicit zero models a no-income-tax state.
type StateTaxRules struct {
	FlatRate *decimal.Decimal `json:"flat_rate,omitempty" yaml:"flat_rate,omitempty"`
}

// BudgetRules holds the needs/wants/savings proportions. The three values
// must sum to 1.0 within tolerance.
type BudgetRules struct {
	Needs   decimal.Decimal `json:"needs" yaml:"needs"`
	Wants   decimal.Decimal `json:"wants" yaml:"wants"`
	Savings decimal.Decimal `json:"savings" yaml:"savings"`
}

// AffordabilityRule names a ratio threshold applied to a monthly income
// figure, such as the 30% rent rule.
type AffordabilityRule struct {
	Name  string          `json:"name" yaml:"name"`
	Ratio decimal.Decimal `json:"ratio" yaml:"ratio"`
}

// InflationRules lists the year offsets projected by default.
type InflationRules struct {
	Horizons []int `json:"horizons" yaml:"horizons"`
}

// Rules is the full injectable rule set for the calculation engine. It is
// loaded once at composition time and treated as immutable afterwards.
type Rules struct {
	Federal          FederalTaxRules         `json:"federal" yaml:"federal"`
	FICA             FICARules               `json:"fica" yaml:"fica"`
	State            StateTaxRules           `json:"state" yaml:"state"`
	Budget           BudgetRules             `json:"budget" yaml:"budget"`
	StabilityWeights map[int]decimal.Decimal `json:"stability_weights" yaml:"stability_weights"`
	Affordability    []AffordabilityRule     `json:"affordability" yaml:"affordability"`
	Inflation        InflationRules          `json:"inflation" yaml:"inflation"`
}

// AffordabilityRuleByName looks up a named ratio threshold.
func (r *Rules) AffordabilityRuleByName(name string) (AffordabilityRule, bool) {
	for _, rule := range r.Affordability {
		if rule.Name == name {
			return rule, true
		}
	}
	return AffordabilityRule{}, false
}
