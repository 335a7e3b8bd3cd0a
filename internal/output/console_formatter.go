package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/finlens/finance-calculator/internal/domain"
)

// ConsoleFormatter renders a report as plain text, one titled section per
// populated result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	if report.Projection != nil {
		p := report.Projection
		writeHeader(buf, "INCOME PROJECTION")
		fmt.Fprintf(buf, "Days worked:   %d\n", p.DaysWorked)
		fmt.Fprintf(buf, "Daily rate:    %s\n", FormatCurrency(p.DailyRate))
		fmt.Fprintf(buf, "Weekly rate:   %s\n", FormatCurrency(p.WeeklyRate))
		fmt.Fprintf(buf, "Monthly rate:  %s\n", FormatCurrency(p.MonthlyRate))
		fmt.Fprintf(buf, "Annual rate:   %s\n", FormatCurrency(p.AnnualRate))
	}

	if report.Taxes != nil {
		t := report.Taxes
		writeHeader(buf, "TAX ESTIMATE")
		fmt.Fprintf(buf, "Gross income:  %s\n", FormatCurrency(t.GrossIncome))
		fmt.Fprintf(buf, "Federal tax:   %s\n", FormatCurrency(t.FederalTax))
		fmt.Fprintf(buf, "FICA tax:      %s\n", FormatCurrency(t.FICATax))
		fmt.Fprintf(buf, "State tax:     %s\n", FormatCurrency(t.StateTax))
		fmt.Fprintf(buf, "Total tax:     %s\n", FormatCurrency(t.TotalTax))
		fmt.Fprintf(buf, "Net income:    %s\n", FormatCurrency(t.NetIncome))
		fmt.Fprintf(buf, "Effective:     %s\n", FormatPercent(t.EffectiveRate()))
	}

	if report.Budget != nil {
		b := report.Budget
		writeHeader(buf, "BUDGET ALLOCATION")
		fmt.Fprintf(buf, "Net monthly:   %s\n", FormatCurrency(b.NetMonthlyIncome))
		fmt.Fprintf(buf, "Needs:         %s\n", FormatCurrency(b.Needs))
		fmt.Fprintf(buf, "Wants:         %s\n", FormatCurrency(b.Wants))
		fmt.Fprintf(buf, "Savings:       %s\n", FormatCurrency(b.Savings))
	}

	if report.Streams != nil {
		s := report.Streams
		writeHeader(buf, "INCOME STREAMS")
		fmt.Fprintf(buf, "Streams:          %d\n", s.StreamCount)
		fmt.Fprintf(buf, "Total annual:     %s\n", FormatCurrency(s.TotalAnnual))
		fmt.Fprintf(buf, "Reliable annual:  %s\n", FormatCurrency(s.ReliableAnnual))
		types := make([]string, 0, len(s.ByType))
		for st := range s.ByType {
			types = append(types, string(st))
		}
		sort.Strings(types)
		for _, st := range types {
			fmt.Fprintf(buf, "  %-12s %s\n", st+":", FormatCurrency(s.ByType[domain.StreamType(st)]))
		}
	}

	if report.Loan != nil {
		l := report.Loan
		writeHeader(buf, "LOAN AMORTIZATION")
		fmt.Fprintf(buf, "Principal:        %s\n", FormatCurrency(l.Parameters.Principal))
		fmt.Fprintf(buf, "Rate:             %s%%\n", l.Parameters.AnnualRatePercent.String())
		fmt.Fprintf(buf, "Term:             %d months\n", l.Parameters.TermMonths)
		fmt.Fprintf(buf, "Monthly payment:  %s\n", FormatCurrencyExact(l.MonthlyPayment))
		fmt.Fprintf(buf, "Total interest:   %s\n", FormatCurrency(l.TotalInterest))
		fmt.Fprintf(buf, "Total paid:       %s\n", FormatCurrency(l.TotalPaid))
	}

	if report.Affordability != nil {
		a := report.Affordability
		writeHeader(buf, "AFFORDABILITY")
		if a.RuleName != "" {
			fmt.Fprintf(buf, "Rule:            %s\n", a.RuleName)
		}
		fmt.Fprintf(buf, "Income figure:   %s\n", FormatCurrency(a.IncomeFigure))
		fmt.Fprintf(buf, "Ratio:           %s\n", FormatPercent(a.Ratio))
		fmt.Fprintf(buf, "Max affordable:  %s\n", FormatCurrency(a.MaxAffordable))
		if a.CandidateAmount != nil && a.IsAffordable != nil {
			verdict := "within budget"
			if !*a.IsAffordable {
				verdict = "over budget"
			}
			fmt.Fprintf(buf, "Candidate:       %s (%s)\n", FormatCurrency(*a.CandidateAmount), verdict)
		}
	}

	if len(report.Inflation) > 0 {
		writeHeader(buf, "INFLATION IMPACT")
		fmt.Fprintf(buf, "%-8s %-18s %-12s %s\n", "Years", "Purchasing Power", "Loss", "Raise Needed")
		for _, point := range report.Inflation {
			fmt.Fprintf(buf, "%-8d %-18s %-12s %s\n",
				point.YearOffset,
				FormatCurrency(point.PurchasingPower),
				FormatPercentValue(point.PercentLoss),
				FormatPercentValue(point.RaiseNeeded))
		}
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, title string) {
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	fmt.Fprintf(buf, "=== %s ===\n", title)
}
