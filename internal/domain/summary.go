package domain

import "github.com/shopspring/decimal"

// Summary aggregates the whole budget against everything spent
type Summary struct {
	TotalBudget        decimal.Decimal
	TotalSpent         decimal.Decimal
	Remaining          decimal.Decimal // Negative when overspent
	UtilizationPercent decimal.Decimal
}

// NewSummary derives the remaining amount and utilization from the two totals.
// Utilization is 0 when nothing was budgeted.
func NewSummary(totalBudget, totalSpent decimal.Decimal) Summary {
	utilization := decimal.Zero
	if totalBudget.IsPositive() {
		utilization = Percent(totalSpent, totalBudget)
	}

	return Summary{
		TotalBudget:        totalBudget,
		TotalSpent:         totalSpent,
		Remaining:          totalBudget.Sub(totalSpent),
		UtilizationPercent: utilization,
	}
}
