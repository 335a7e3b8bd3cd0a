package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finlens/finance-calculator/internal/domain"
)

// CSVFormatter exports the row-oriented report sections as CSV. The
// amortization schedule gets one row per period; the inflation projection one
// row per horizon. Scalar sections are emitted as name/value pairs so a
// single run always yields a parseable file.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if report.Loan != nil {
		if err := w.Write([]string{"Period", "Payment", "Interest", "Principal", "RemainingBalance"}); err != nil {
			return nil, err
		}
		for _, entry := range report.Loan.Schedule {
			row := []string{
				strconv.Itoa(entry.Period),
				report.Loan.MonthlyPayment.StringFixed(2),
				entry.InterestPortion.StringFixed(2),
				entry.PrincipalPortion.StringFixed(2),
				entry.RemainingBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if len(report.Inflation) > 0 {
		if err := w.Write([]string{"YearOffset", "PurchasingPower", "PercentLoss", "RaiseNeeded"}); err != nil {
			return nil, err
		}
		for _, point := range report.Inflation {
			row := []string{
				strconv.Itoa(point.YearOffset),
				point.PurchasingPower.StringFixed(2),
				point.PercentLoss.StringFixed(2),
				point.RaiseNeeded.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, err
	}
	rows := scalarRows(report)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func scalarRows(report *domain.Report) [][]string {
	var rows [][]string
	if report.Projection != nil {
		p := report.Projection
		rows = append(rows,
			[]string{"DaysWorked", strconv.Itoa(p.DaysWorked)},
			[]string{"DailyRate", p.DailyRate.StringFixed(2)},
			[]string{"WeeklyRate", p.WeeklyRate.StringFixed(2)},
			[]string{"MonthlyRate", p.MonthlyRate.StringFixed(2)},
			[]string{"AnnualRate", p.AnnualRate.StringFixed(2)},
		)
	}
	if report.Taxes != nil {
		t := report.Taxes
		rows = append(rows,
			[]string{"GrossIncome", t.GrossIncome.StringFixed(2)},
			[]string{"FederalTax", t.FederalTax.StringFixed(2)},
			[]string{"FICATax", t.FICATax.StringFixed(2)},
			[]string{"StateTax", t.StateTax.StringFixed(2)},
			[]string{"TotalTax", t.TotalTax.StringFixed(2)},
			[]string{"NetIncome", t.NetIncome.StringFixed(2)},
		)
	}
	if report.Budget != nil {
		b := report.Budget
		rows = append(rows,
			[]string{"NetMonthlyIncome", b.NetMonthlyIncome.StringFixed(2)},
			[]string{"Needs", b.Needs.StringFixed(2)},
			[]string{"Wants", b.Wants.StringFixed(2)},
			[]string{"Savings", b.Savings.StringFixed(2)},
		)
	}
	if report.Streams != nil {
		s := report.Streams
		rows = append(rows,
			[]string{"StreamCount", strconv.Itoa(s.StreamCount)},
			[]string{"TotalAnnual", s.TotalAnnual.StringFixed(2)},
			[]string{"ReliableAnnual", s.ReliableAnnual.StringFixed(2)},
		)
	}
	if report.Affordability != nil {
		a := report.Affordability
		rows = append(rows,
			[]string{"IncomeFigure", a.IncomeFigure.StringFixed(2)},
			[]string{"Ratio", a.Ratio.String()},
			[]string{"MaxAffordable", a.MaxAffordable.StringFixed(2)},
		)
		if a.CandidateAmount != nil {
			rows = append(rows, []string{"CandidateAmount", a.CandidateAmount.StringFixed(2)})
		}
		if a.IsAffordable != nil {
			rows = append(rows, []string{"IsAffordable", strconv.FormatBool(*a.IsAffordable)})
		}
	}
	return rows
}
