package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finlens/finance-calculator/internal/calculation"
	"github.com/finlens/finance-calculator/internal/config"
	"github.com/finlens/finance-calculator/internal/domain"
	"github.com/finlens/finance-calculator/pkg/money"
)

const dateLayout = "2006-01-02"

// parseMoney parses a flag value into a decimal, rejecting malformed input
// with the flag name in the error.
func parseMoney(name, value string) (decimal.Decimal, error) {
	m, err := money.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return m.Decimal, nil
}

func parseDate(name, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q, expected YYYY-MM-DD: %w", name, value, err)
	}
	return t, nil
}

func newProjectCmd(a *app) *cobra.Command {
	var startFlag, asOfFlag, ytdFlag string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project year-to-date income to annualized rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate("start", startFlag)
			if err != nil {
				return err
			}
			asOf := time.Now()
			if asOfFlag != "" {
				if asOf, err = parseDate("as-of", asOfFlag); err != nil {
					return err
				}
			}
			ytd, err := parseMoney("ytd", ytdFlag)
			if err != nil {
				return err
			}

			result, err := a.engine.ProjectIncome(start, asOf, ytd)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Projection: result})
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "work start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "as-of date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&ytdFlag, "ytd", "", "year-to-date gross income")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("ytd")
	return cmd
}

func newTaxesCmd(a *app) *cobra.Command {
	var grossFlag string

	cmd := &cobra.Command{
		Use:   "taxes",
		Short: "Estimate federal, FICA, and state withholding for an annual gross figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := parseMoney("gross", grossFlag)
			if err != nil {
				return err
			}
			estimate, err := a.engine.EstimateTaxes(gross)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Taxes: estimate})
		},
	}
	cmd.Flags().StringVar(&grossFlag, "gross", "", "gross annual income")
	_ = cmd.MarkFlagRequired("gross")
	return cmd
}

func newBudgetCmd(a *app) *cobra.Command {
	var netFlag, needsFlag, wantsFlag, savingsFlag string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Split net monthly income into needs/wants/savings",
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := parseMoney("net-monthly", netFlag)
			if err != nil {
				return err
			}

			allocator := a.engine.Allocator
			if needsFlag != "" || wantsFlag != "" || savingsFlag != "" {
				if needsFlag == "" || wantsFlag == "" || savingsFlag == "" {
					return fmt.Errorf("--needs, --wants, and --savings must be provided together")
				}
				needs, err := parseMoney("needs", needsFlag)
				if err != nil {
					return err
				}
				wants, err := parseMoney("wants", wantsFlag)
				if err != nil {
					return err
				}
				savings, err := parseMoney("savings", savingsFlag)
				if err != nil {
					return err
				}
				override := *a.rules
				override.Budget = domain.BudgetRules{Needs: needs, Wants: wants, Savings: savings}
				allocator = calculation.NewBudgetAllocator(&override, calculation.NewZapLogger(a.logger))
			}

			allocation, err := allocator.Allocate(net)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Budget: allocation})
		},
	}
	cmd.Flags().StringVar(&netFlag, "net-monthly", "", "net monthly income")
	cmd.Flags().StringVar(&needsFlag, "needs", "", "needs proportion override (e.g. 0.50)")
	cmd.Flags().StringVar(&wantsFlag, "wants", "", "wants proportion override (e.g. 0.30)")
	cmd.Flags().StringVar(&savingsFlag, "savings", "", "savings proportion override (e.g. 0.20)")
	_ = cmd.MarkFlagRequired("net-monthly")
	return cmd
}

func newStreamsCmd(a *app) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "streams",
		Short: "Aggregate household income streams into total and reliability-weighted figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewRulesParser()
			streams, err := parser.LoadStreamsFromFile(fileFlag)
			if err != nil {
				return err
			}
			summary, err := a.engine.AggregateIncomeStreams(streams)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Streams: summary})
		},
	}
	cmd.Flags().StringVar(&fileFlag, "file", "", "path to a YAML income streams file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newAmortizeCmd(a *app) *cobra.Command {
	var principalFlag, rateFlag string
	var termFlag int

	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Compute a fixed-payment loan amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseMoney("principal", principalFlag)
			if err != nil {
				return err
			}
			rate, err := parseMoney("rate", rateFlag)
			if err != nil {
				return err
			}
			result, err := a.engine.AmortizeLoan(domain.LoanParameters{
				Principal:         principal,
				AnnualRatePercent: rate,
				TermMonths:        termFlag,
			})
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Loan: result})
		},
	}
	cmd.Flags().StringVar(&principalFlag, "principal", "", "loan principal")
	cmd.Flags().StringVar(&rateFlag, "rate", "", "annual interest rate in percent (e.g. 6.5)")
	cmd.Flags().IntVar(&termFlag, "term", 0, "loan term in months")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func newAffordCmd(a *app) *cobra.Command {
	var incomeFlag, ratioFlag, ruleFlag, amountFlag string

	cmd := &cobra.Command{
		Use:   "afford",
		Short: "Apply a ratio-based affordability screen to a monthly income figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := parseMoney("income", incomeFlag)
			if err != nil {
				return err
			}

			var candidate *decimal.Decimal
			if amountFlag != "" {
				amount, err := parseMoney("amount", amountFlag)
				if err != nil {
					return err
				}
				candidate = &amount
			}

			var result *domain.AffordabilityResult
			switch {
			case ruleFlag != "" && ratioFlag != "":
				return fmt.Errorf("--rule and --ratio are mutually exclusive")
			case ruleFlag != "":
				result, err = a.engine.Affordability.EvaluateRule(ruleFlag, income, candidate)
			case ratioFlag != "":
				var ratio decimal.Decimal
				if ratio, err = parseMoney("ratio", ratioFlag); err != nil {
					return err
				}
				result, err = a.engine.EvaluateAffordability(income, ratio, candidate)
			default:
				return fmt.Errorf("either --rule or --ratio is required")
			}
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Affordability: result})
		},
	}
	cmd.Flags().StringVar(&incomeFlag, "income", "", "monthly income figure")
	cmd.Flags().StringVar(&ratioFlag, "ratio", "", "affordability ratio (e.g. 0.30)")
	cmd.Flags().StringVar(&ruleFlag, "rule", "", "named rule: rent, auto-payment, mortgage-front-end, mortgage-back-end")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "candidate amount to screen (optional)")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func newInflationCmd(a *app) *cobra.Command {
	var valueFlag, rateFlag string
	var yearsFlag []int

	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Project purchasing-power decay over a set of year horizons",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseMoney("present-value", valueFlag)
			if err != nil {
				return err
			}
			rate, err := parseMoney("rate", rateFlag)
			if err != nil {
				return err
			}
			points, err := a.engine.ProjectInflationImpact(value, rate, yearsFlag)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{GeneratedAt: time.Now(), Inflation: points})
		},
	}
	cmd.Flags().StringVar(&valueFlag, "present-value", "", "present value to project")
	cmd.Flags().StringVar(&rateFlag, "rate", "", "annual inflation rate in percent (e.g. 3)")
	cmd.Flags().IntSliceVar(&yearsFlag, "years", nil, "year offsets (defaults to configured horizons)")
	_ = cmd.MarkFlagRequired("present-value")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newPaycheckCmd(a *app) *cobra.Command {
	var startFlag, asOfFlag, ytdFlag string

	cmd := &cobra.Command{
		Use:   "paycheck",
		Short: "Run the full pipeline: projection, withholding estimate, and budget split",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate("start", startFlag)
			if err != nil {
				return err
			}
			asOf := time.Now()
			if asOfFlag != "" {
				if asOf, err = parseDate("as-of", asOfFlag); err != nil {
					return err
				}
			}
			ytd, err := parseMoney("ytd", ytdFlag)
			if err != nil {
				return err
			}

			summary, err := a.engine.RunPaycheck(start, asOf, ytd)
			if err != nil {
				return err
			}
			return a.emit(&domain.Report{
				GeneratedAt: time.Now(),
				Projection:  &summary.Projection,
				Taxes:       &summary.Taxes,
				Budget:      &summary.Budget,
			})
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "work start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "as-of date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&ytdFlag, "ytd", "", "year-to-date gross income")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("ytd")
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage rule files",
	}

	var outFlag string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in default rule set as an editable YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewRulesParser()
			if err := parser.WriteExampleRules(outFlag); err != nil {
				return err
			}
			a.logger.Info("wrote default rules file")
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", outFlag)
			return nil
		},
	}
	initCmd.Flags().StringVar(&outFlag, "out", "fincalc-rules.yaml", "output path for the rules file")
	cmd.AddCommand(initCmd)
	return cmd
}
