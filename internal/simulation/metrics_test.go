package simulation

import (
	"testing"

	"github.com/andresuchdata/invsim/internal/domain"
)

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}

func TestAggregate_BasicReduction(t *testing.T) {
	run := &RunResult{
		History: []domain.DayRecord{
			{Day: 0, Demand: 100, Stock: 300, Unmet: 0},
			{Day: 1, Demand: 100, Stock: 200, Unmet: 0},
			{Day: 2, Demand: 120, Stock: 100, Unmet: 20},
			{Day: 3, Demand: 100, Stock: 0, Unmet: 100},
		},
		TotalDemand:    420,
		TotalServed:    300,
		TotalShortages: 120,
		StockoutDays:   2,
		Horizon:        4,
	}

	report := Aggregate(run)

	if !almostEqual(report.ServiceLevel, 300.0/420.0) {
		t.Errorf("ServiceLevel = %v, want %v", report.ServiceLevel, 300.0/420.0)
	}
	if report.FillRate != report.ServiceLevel {
		t.Errorf("FillRate %v should mirror ServiceLevel %v", report.FillRate, report.ServiceLevel)
	}
	if !almostEqual(report.StockoutRate, 0.5) {
		t.Errorf("StockoutRate = %v, want 0.5", report.StockoutRate)
	}
	if !almostEqual(report.ShortageRate, 120.0/420.0) {
		t.Errorf("ShortageRate = %v, want %v", report.ShortageRate, 120.0/420.0)
	}
	if !almostEqual(report.AvgInventory, 150) {
		t.Errorf("AvgInventory = %v, want 150", report.AvgInventory)
	}
	if !almostEqual(report.InventoryTurnover, 2) {
		t.Errorf("InventoryTurnover = %v, want 2", report.InventoryTurnover)
	}
}

func TestAggregate_ZeroDemandConventions(t *testing.T) {
	run := &RunResult{
		History: []domain.DayRecord{
			{Day: 0, Stock: 500},
			{Day: 1, Stock: 500},
		},
		Horizon: 2,
	}

	report := Aggregate(run)

	if report.ServiceLevel != 1.0 {
		t.Errorf("ServiceLevel = %v, want 1.0 on zero demand", report.ServiceLevel)
	}
	if report.ShortageRate != 0 {
		t.Errorf("ShortageRate = %v, want 0", report.ShortageRate)
	}
	if report.InventoryTurnover != 0 {
		t.Errorf("InventoryTurnover = %v, want 0 with no units served", report.InventoryTurnover)
	}
}

func TestAggregate_ZeroInventoryTurnover(t *testing.T) {
	run := &RunResult{
		History: []domain.DayRecord{
			{Day: 0, Demand: 10, Stock: 0, Unmet: 10},
		},
		TotalDemand:    10,
		TotalShortages: 10,
		StockoutDays:   1,
		Horizon:        1,
	}

	report := Aggregate(run)

	if report.InventoryTurnover != 0 {
		t.Errorf("InventoryTurnover = %v, want 0 when avg inventory is 0", report.InventoryTurnover)
	}
	if report.ServiceLevel != 0 {
		t.Errorf("ServiceLevel = %v, want 0", report.ServiceLevel)
	}
}
