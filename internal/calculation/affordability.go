package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// Standard affordability screen ratios applied to gross monthly income.
const (
	RuleRent            = "rent"
	RuleAutoPayment     = "auto-payment"
	RuleMortgageFront   = "mortgage-front-end"
	RuleMortgageBackEnd = "mortgage-back-end"
)

// DefaultAffordabilityRules returns the standard named ratio thresholds:
// 30% rent, 12% auto payment including insurance, 28% front-end DTI, and
// 36% back-end DTI.
func DefaultAffordabilityRules() []domain.AffordabilityRule {
	return []domain.AffordabilityRule{
		{Name: RuleRent, Ratio: decimal.NewFromFloat(0.30)},
		{Name: RuleAutoPayment, Ratio: decimal.NewFromFloat(0.12)},
		{Name: RuleMortgageFront, Ratio: decimal.NewFromFloat(0.28)},
		{Name: RuleMortgageBackEnd, Ratio: decimal.NewFromFloat(0.36)},
	}
}

// AffordabilityEvaluator applies ratio thresholds to income figures.
type AffordabilityEvaluator struct {
	Rules  []domain.AffordabilityRule
	Logger Logger
}

// NewAffordabilityEvaluator creates an evaluator from the configured rule set.
func NewAffordabilityEvaluator(rules *domain.Rules, logger Logger) *AffordabilityEvaluator {
	if logger == nil {
		logger = NopLogger{}
	}
	named := rules.Affordability
	if len(named) == 0 {
		named = DefaultAffordabilityRules()
	}
	return &AffordabilityEvaluator{Rules: named, Logger: logger}
}

// Evaluate computes the maximum affordable amount for an income figure and
// ratio. When candidateAmount is non-nil the result also carries a verdict.
func (ae *AffordabilityEvaluator) Evaluate(incomeFigure, ratio decimal.Decimal, candidateAmount *decimal.Decimal) (*domain.AffordabilityResult, error) {
	if incomeFigure.IsNegative() {
		return nil, fmt.Errorf("%w: income figure cannot be negative", domain.ErrInvalidInput)
	}
	if ratio.IsNegative() {
		return nil, fmt.Errorf("%w: affordability ratio cannot be negative", domain.ErrInvalidInput)
	}

	result := &domain.AffordabilityResult{
		IncomeFigure:  incomeFigure,
		Ratio:         ratio,
		MaxAffordable: incomeFigure.Mul(ratio),
	}
	if candidateAmount != nil {
		amount := *candidateAmount
		verdict := amount.LessThanOrEqual(result.MaxAffordable)
		result.CandidateAmount = &amount
		result.IsAffordable = &verdict
	}
	return result, nil
}

// EvaluateRule runs a named threshold against an income figure.
func (ae *AffordabilityEvaluator) EvaluateRule(name string, incomeFigure decimal.Decimal, candidateAmount *decimal.Decimal) (*domain.AffordabilityResult, error) {
	for _, rule := range ae.Rules {
		if rule.Name == name {
			result, err := ae.Evaluate(incomeFigure, rule.Ratio, candidateAmount)
			if err != nil {
				return nil, err
			}
			result.RuleName = rule.Name
			return result, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown affordability rule %q", domain.ErrInvalidInput, name)
}
