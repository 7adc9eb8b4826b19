package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/simaogato/budgetledger/internal/domain"
)

// Reporter is the read side of a budget ledger
type Reporter interface {
	Categories() []string
	CategoryTotals() map[string]decimal.Decimal
	UtilizationPercent() (map[string]decimal.Decimal, error)
	OverallSummary() domain.Summary
}

// DashboardService renders ledger reports as plain text
type DashboardService struct {
	Reporter Reporter
	Currency *money.Currency
}

// NewDashboardService creates a new DashboardService instance.
// currency is an ISO 4217 code known to go-money.
func NewDashboardService(reporter Reporter, currency string) (*DashboardService, error) {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}

	return &DashboardService{
		Reporter: reporter,
		Currency: cur,
	}, nil
}

// Render writes the category expenses, the per-category utilization and
// the overall summary to w.
func (s *DashboardService) Render(w io.Writer) error {
	// Utilization is the only report that can fail, so compute it before writing anything
	utilization, err := s.Reporter.UtilizationPercent()
	if err != nil {
		return fmt.Errorf("failed to compute utilization: %w", err)
	}

	categories := s.Reporter.Categories()
	totals := s.Reporter.CategoryTotals()
	summary := s.Reporter.OverallSummary()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Category Expenses\t")
	for _, category := range categories {
		fmt.Fprintf(tw, "  %s\t%s\t\n", category, s.Format(totals[category]))
	}

	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "Budget Utilization (%)\t")
	for _, category := range categories {
		fmt.Fprintf(tw, "  %s\t%s\t\n", category, utilization[category].StringFixed(domain.PercentPlaces))
	}

	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "Overall Summary\t")
	fmt.Fprintf(tw, "  Total Budget\t%s\t\n", s.Format(summary.TotalBudget))
	fmt.Fprintf(tw, "  Total Spent\t%s\t\n", s.Format(summary.TotalSpent))
	fmt.Fprintf(tw, "  Remaining\t%s\t\n", s.Format(summary.Remaining))
	fmt.Fprintf(tw, "  Utilization %%\t%s\t\n", summary.UtilizationPercent.StringFixed(domain.PercentPlaces))

	return tw.Flush()
}

// Format renders amount in the dashboard currency, rounded to its minor unit.
func (s *DashboardService) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(s.Currency.Fraction)).Round(0).IntPart()
	return money.New(minor, s.Currency.Code).Display()
}
