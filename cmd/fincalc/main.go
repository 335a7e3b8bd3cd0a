package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/finlens/finance-calculator/internal/calculation"
	"github.com/finlens/finance-calculator/internal/config"
	"github.com/finlens/finance-calculator/internal/domain"
	"github.com/finlens/finance-calculator/internal/output"
)

// app carries the state shared by all subcommands. It is built once in the
// root command's PersistentPreRunE so nothing lives in module-level variables.
type app struct {
	rulesPath  string
	formatName string
	logLevel   string

	logger    *zap.Logger
	rules     *domain.Rules
	engine    *calculation.Engine
	formatter output.Formatter
}

// initializeLogger creates a zap logger honoring the CLI log-level override.
func initializeLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	conf := zap.NewDevelopmentConfig()
	conf.Level = zap.NewAtomicLevelAt(zapLevel)
	conf.OutputPaths = []string{"stderr"}
	return conf.Build()
}

// setup loads the rule set and wires the engine, logger, and formatter.
func (a *app) setup() error {
	logger, err := initializeLogger(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.rulesPath != "" {
		parser := config.NewRulesParser()
		rules, err := parser.LoadFromFile(a.rulesPath)
		if err != nil {
			return err
		}
		a.rules = rules
		a.logger.Debug("loaded rules file", zap.String("path", a.rulesPath))
	} else {
		a.rules = config.DefaultRules()
	}

	a.engine = calculation.NewEngineWithRules(a.rules, calculation.NewZapLogger(a.logger))

	a.formatter = output.GetFormatterByName(a.formatName)
	if a.formatter == nil {
		return fmt.Errorf("unknown output format %q, available: %v",
			a.formatName, output.AvailableFormatterNames())
	}
	return nil
}

// emit renders a report with the selected formatter and writes it to stdout.
func (a *app) emit(report *domain.Report) error {
	data, err := a.formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Deterministic personal-finance projection and affordability calculator",
		Long: `fincalc projects year-to-date income, estimates tax withholding,
allocates budgets, amortizes fixed-payment loans, screens affordability
ratios, and compounds inflation impact. All calculations are pure functions
of their inputs and the loaded rule set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "path to a YAML rules file (built-in defaults when omitted)")
	root.PersistentFlags().StringVar(&a.formatName, "format", "console", "output format: console, json, csv")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newProjectCmd(a),
		newTaxesCmd(a),
		newBudgetCmd(a),
		newStreamsCmd(a),
		newAmortizeCmd(a),
		newAffordCmd(a),
		newInflationCmd(a),
		newPaycheckCmd(a),
		newRulesCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
