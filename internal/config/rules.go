package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finlens/finance-calculator/internal/calculation"
	"github.com/finlens/finance-calculator/internal/domain"
)

// RulesParser handles loading and validation of rule files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads a rule set from a YAML file and validates it.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.Rules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules validates a loaded rule set. Empty sections are allowed; the
// engine substitutes built-in defaults for them.
func (rp *RulesParser) ValidateRules(rules *domain.Rules) error {
	if err := rp.validateFederal(&rules.Federal); err != nil {
		return fmt.Errorf("federal tax rules: %w", err)
	}
	if err := rp.validateFICA(&rules.FICA); err != nil {
		return fmt.Errorf("fica rules: %w", err)
	}
	if err := rp.validateState(&rules.State); err != nil {
		return fmt.Errorf("state tax rules: %w", err)
	}
	if err := rp.validateBudget(&rules.Budget); err != nil {
		return fmt.Errorf("budget rules: %w", err)
	}
	if err := rp.validateStabilityWeights(rules.StabilityWeights); err != nil {
		return fmt.Errorf("stability weights: %w", err)
	}
	if err := rp.validateAffordability(rules.Affordability); err != nil {
		return fmt.Errorf("affordability rules: %w", err)
	}
	for _, horizon := range rules.Inflation.Horizons {
		if horizon < 0 {
			return fmt.Errorf("%w: inflation horizon %d cannot be negative", domain.ErrInvalidConfiguration, horizon)
		}
	}
	return nil
}

func (rp *RulesParser) validateFederal(federal *domain.FederalTaxRules) error {
	if federal.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: standard deduction cannot be negative", domain.ErrInvalidConfiguration)
	}
	if len(federal.Brackets) == 0 {
		if !federal.StandardDeduction.IsZero() {
			return fmt.Errorf("%w: bracket table is required when a standard deduction is set", domain.ErrInvalidConfiguration)
		}
		return nil
	}
	if federal.Brackets[len(federal.Brackets)-1].Upper != nil {
		return fmt.Errorf("%w: the last bracket must be unbounded", domain.ErrInvalidConfiguration)
	}
	previous := decimal.Zero
	for i, bracket := range federal.Brackets {
		if bracket.Rate.IsNegative() || bracket.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: bracket %d rate must be between 0 and 1", domain.ErrInvalidConfiguration, i)
		}
		if bracket.Upper == nil {
			if i != len(federal.Brackets)-1 {
				return fmt.Errorf("%w: only the last bracket may be unbounded", domain.ErrInvalidConfiguration)
			}
			continue
		}
		if bracket.Upper.LessThanOrEqual(previous) {
			return fmt.Errorf("%w: bracket %d upper bound %s must exceed %s",
				domain.ErrInvalidConfiguration, i, bracket.Upper.String(), previous.String())
		}
		previous = *bracket.Upper
	}
	return nil
}

func (rp *RulesParser) validateFICA(fica *domain.FICARules) error {
	if fica.SocialSecurityRate.IsNegative() || fica.SocialSecurityRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: social security rate must be between 0 and 1", domain.ErrInvalidConfiguration)
	}
	if fica.MedicareRate.IsNegative() || fica.MedicareRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: medicare rate must be between 0 and 1", domain.ErrInvalidConfiguration)
	}
	if fica.SocialSecurityWageCap.IsNegative() {
		return fmt.Errorf("%w: social security wage cap cannot be negative", domain.ErrInvalidConfiguration)
	}
	return nil
}

func (rp *RulesParser) validateState(state *domain.StateTaxRules) error {
	if state.FlatRate == nil {
		return nil
	}
	if state.FlatRate.IsNegative() || state.FlatRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: flat state rate must be between 0 and 1", domain.ErrInvalidConfiguration)
	}
	return nil
}

func (rp *RulesParser) validateBudget(budget *domain.BudgetRules) error {
	// An all-zero section means "use the 50/30/20 default".
	if budget.Needs.IsZero() && budget.Wants.IsZero() && budget.Savings.IsZero() {
		return nil
	}
	return calculation.ValidateProportions(*budget)
}

func (rp *RulesParser) validateStabilityWeights(weights map[int]decimal.Decimal) error {
	if len(weights) == 0 {
		return nil
	}
	previous := decimal.Zero
	for rating := 1; rating <= 5; rating++ {
		weight, ok := weights[rating]
		if !ok {
			return fmt.Errorf("%w: missing weight for stability rating %d", domain.ErrInvalidConfiguration, rating)
		}
		if weight.LessThanOrEqual(decimal.Zero) || weight.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: weight for rating %d must be in (0, 1]", domain.ErrInvalidConfiguration, rating)
		}
		if weight.LessThanOrEqual(previous) {
			return fmt.Errorf("%w: weights must strictly increase with rating", domain.ErrInvalidConfiguration)
		}
		previous = weight
	}
	if !weights[5].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: rating 5 must map to weight 1.0", domain.ErrInvalidConfiguration)
	}
	return nil
}

func (rp *RulesParser) validateAffordability(rules []domain.AffordabilityRule) error {
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			return fmt.Errorf("%w: affordability rule %d has no name", domain.ErrInvalidConfiguration, i)
		}
		if seen[rule.Name] {
			return fmt.Errorf("%w: duplicate affordability rule %q", domain.ErrInvalidConfiguration, rule.Name)
		}
		seen[rule.Name] = true
		if rule.Ratio.IsNegative() {
			return fmt.Errorf("%w: affordability rule %q ratio cannot be negative", domain.ErrInvalidConfiguration, rule.Name)
		}
	}
	return nil
}

// DefaultRules returns the built-in rule set: 2024 single-filer federal
// brackets and FICA parameters, a flat 5% state approximation, the 50/30/20
// split, the standard stability weights, and the standard affordability
// ratios.
func DefaultRules() *domain.Rules {
	stateRate := decimal.NewFromFloat(0.05)
	return &domain.Rules{
		Federal: domain.FederalTaxRules{
			StandardDeduction: calculation.DefaultStandardDeduction(),
			Brackets:          calculation.DefaultFederalBrackets(),
		},
		FICA: domain.FICARules{
			SocialSecurityRate:    decimal.NewFromFloat(0.062),
			SocialSecurityWageCap: decimal.NewFromInt(168600),
			MedicareRate:          decimal.NewFromFloat(0.0145),
		},
		State: domain.StateTaxRules{
			FlatRate: &stateRate,
		},
		Budget:           calculation.DefaultBudgetRules(),
		StabilityWeights: calculation.DefaultStabilityWeights(),
		Affordability:    calculation.DefaultAffordabilityRules(),
		Inflation: domain.InflationRules{
			Horizons: calculation.DefaultInflationHorizons(),
		},
	}
}

// WriteExampleRules writes the default rule set as YAML so users have a
// complete file to edit.
func (rp *RulesParser) WriteExampleRules(filename string) error {
	data, err := yaml.Marshal(DefaultRules())
	if err != nil {
		return fmt.Errorf("failed to marshal default rules: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
