package simulation

import "github.com/andresuchdata/invsim/internal/domain"

// Aggregate reduces a completed run into its KPI report. Zero-demand
// and zero-inventory runs take explicit fallbacks instead of dividing:
// no demand means perfect service, an empty shelf means zero turnover.
func Aggregate(run *RunResult) domain.KPIReport {
	report := domain.KPIReport{ServiceLevel: 1.0}

	if run.TotalDemand > 0 {
		report.ServiceLevel = float64(run.TotalServed) / float64(run.TotalDemand)
		report.ShortageRate = float64(run.TotalShortages) / float64(run.TotalDemand)
	}

	// Fill rate tracks service level until partial-line fills are modeled.
	report.FillRate = report.ServiceLevel

	if run.Horizon > 0 {
		report.StockoutRate = float64(run.StockoutDays) / float64(run.Horizon)
	}

	if len(run.History) > 0 {
		sum := 0
		for _, rec := range run.History {
			sum += rec.Stock
		}
		report.AvgInventory = float64(sum) / float64(len(run.History))
	}

	if report.AvgInventory > 0 {
		report.InventoryTurnover = float64(run.TotalServed) / report.AvgInventory
	}

	return report
}
