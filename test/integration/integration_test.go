package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finance-calculator/internal/calculation"
	"github.com/finlens/finance-calculator/internal/config"
	"github.com/finlens/finance-calculator/internal/domain"
	"github.com/finlens/finance-calculator/internal/output"
)

// TestRulesFileToReportPipeline walks the full path a CLI invocation takes:
// write the default rules, load them back, run the engine, format the report.
func TestRulesFileToReportPipeline(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.yaml")

	parser := config.NewRulesParser()
	require.NoError(t, parser.WriteExampleRules(rulesPath))

	rules, err := parser.LoadFromFile(rulesPath)
	require.NoError(t, err)

	engine := calculation.NewEngineWithRules(rules, nil)

	summary, err := engine.RunPaycheck(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(45000),
	)
	require.NoError(t, err)

	// 181 days worked through June 30.
	assert.Equal(t, 181, summary.Projection.DaysWorked)
	assert.True(t, summary.Taxes.NetIncome.IsPositive())

	report := &domain.Report{
		GeneratedAt: time.Now(),
		Projection:  &summary.Projection,
		Taxes:       &summary.Taxes,
		Budget:      &summary.Budget,
	}

	for _, name := range output.AvailableFormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter, "formatter %s", name)
		data, err := formatter.Format(report)
		require.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data, "formatter %s", name)
	}
}

// TestAmortizationAcrossFormatters checks a loan run renders everywhere and
// that the JSON output carries the full schedule.
func TestAmortizationAcrossFormatters(t *testing.T) {
	engine := calculation.NewEngine()

	result, err := engine.AmortizeLoan(domain.LoanParameters{
		Principal:         decimal.NewFromInt(20000),
		AnnualRatePercent: decimal.NewFromInt(6),
		TermMonths:        60,
	})
	require.NoError(t, err)

	report := &domain.Report{GeneratedAt: time.Now(), Loan: result}

	data, err := output.GetFormatterByName("json").Format(report)
	require.NoError(t, err)

	var decoded struct {
		Loan struct {
			Schedule []struct {
				Period int `json:"period"`
			} `json:"schedule"`
		} `json:"loan"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Loan.Schedule, 60)
	assert.Equal(t, 1, decoded.Loan.Schedule[0].Period)
	assert.Equal(t, 60, decoded.Loan.Schedule[59].Period)

	csvData, err := output.GetFormatterByName("csv").Format(report)
	require.NoError(t, err)
	assert.NotEmpty(t, csvData)
}

// TestStreamsFileAggregation loads a streams file the way the CLI does and
// verifies the reliability weighting against hand-computed figures.
func TestStreamsFileAggregation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "streams.yaml")
	content := `streams:
  - id: salary
    name: Salary
    amount: 5000
    frequency: monthly
    type: w2
    stability_rating: 5
  - id: rental
    name: Duplex
    amount: 18000
    frequency: annually
    type: rental
    stability_rating: 4
  - id: gigs
    name: Rideshare
    amount: 250
    frequency: weekly
    type: gig
    stability_rating: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parser := config.NewRulesParser()
	streams, err := parser.LoadStreamsFromFile(path)
	require.NoError(t, err)

	engine := calculation.NewEngine()
	summary, err := engine.AggregateIncomeStreams(streams)
	require.NoError(t, err)

	// 60000 + 18000 + 13000 = 91000 total.
	assert.True(t, summary.TotalAnnual.Equal(decimal.NewFromInt(91000)),
		"total: got %s", summary.TotalAnnual)
	// 60000*1.0 + 18000*0.9 + 13000*0.65 = 84650 reliable.
	assert.True(t, summary.ReliableAnnual.Equal(decimal.NewFromInt(84650)),
		"reliable: got %s", summary.ReliableAnnual)
}
