package domain

// Horizon bounds for a single simulation run.
const (
	MinHorizonDays = 1
	MaxHorizonDays = 365
)

// SimulationConfig is the validated, immutable input of one simulation run.
// Out-of-range values are clamped at construction, never rejected.
type SimulationConfig struct {
	ReplenishmentQty int
	LeadTime         int
	Horizon          int
	Scenario         Scenario
	BaseDemand       float64
}

// NewSimulationConfig clamps raw caller input into a valid configuration.
func NewSimulationConfig(qty, leadTime, days int, scenario string, demand float64) SimulationConfig {
	if qty < 1 {
		qty = 1
	}
	if leadTime < 1 {
		leadTime = 1
	}
	if days < MinHorizonDays {
		days = MinHorizonDays
	}
	if days > MaxHorizonDays {
		days = MaxHorizonDays
	}
	if demand < 0 {
		demand = 0
	}

	s, _ := ParseScenario(scenario)

	return SimulationConfig{
		ReplenishmentQty: qty,
		LeadTime:         leadTime,
		Horizon:          days,
		Scenario:         s,
		BaseDemand:       demand,
	}
}

// Policy holds the derived (Q, r) control parameters for a run.
type Policy struct {
	SafetyStock  int `json:"safety_stock"`
	ReorderPoint int `json:"reorder_point"`
	InitialStock int `json:"initial_stock"`
}

// DayRecord is one line of the simulation ledger. Stock is the
// post-fulfillment on-hand quantity for the day.
type DayRecord struct {
	Day               int `json:"day"`
	Demand            int `json:"demand"`
	Stock             int `json:"stock"`
	Unmet             int `json:"unmet"`
	InventoryPosition int `json:"inventory_position"`
}

// KPIReport is the reduction of a completed run into summary indicators.
//
// FillRate currently mirrors ServiceLevel; they are kept as separate
// fields because downstream consumers treat them as distinct measures
// and they may diverge once partial-line fills are modeled.
type KPIReport struct {
	ServiceLevel      float64 `json:"service_level"`
	FillRate          float64 `json:"fill_rate"`
	StockoutRate      float64 `json:"stockout_rate"`
	ShortageRate      float64 `json:"shortage_rate"`
	AvgInventory      float64 `json:"avg_inventory"`
	InventoryTurnover float64 `json:"inventory_turnover"`
}

// Severity ranks a recommendation by operational urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
)

// Decision is the rule-ladder output for a completed run.
type Decision struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// SimulationParams echoes the effective policy inputs back to the caller.
type SimulationParams struct {
	ReplenishmentQty int `json:"replenishment_qty"`
	ReorderPoint     int `json:"reorder_point"`
	SafetyStock      int `json:"safety_stock"`
	LeadTime         int `json:"lead_time"`
	Days             int `json:"days"`
	AvgDailyDemand   int `json:"avg_daily_demand"`
}

// FinalInventory summarizes the terminal state of the run.
type FinalInventory struct {
	Stock        int     `json:"stock"`
	Shortages    int     `json:"shortages"`
	ServiceLevel float64 `json:"service_level"`
	FillRate     float64 `json:"fill_rate"`
}

// SimulationMetrics holds the aggregate counters of a run.
// AvgInventory is truncated to whole units for display.
type SimulationMetrics struct {
	TotalDemand         int     `json:"total_demand"`
	TotalServed         int     `json:"total_served"`
	TotalUnmet          int     `json:"total_unmet"`
	PeakStock           int     `json:"peak_stock"`
	MinStock            int     `json:"min_stock"`
	AvgInventory        int     `json:"avg_inventory"`
	TotalReplenishments int     `json:"total_replenishments"`
	StockoutDays        int     `json:"stockout_days"`
	InventoryTurnover   float64 `json:"inventory_turnover"`
}

// ScenarioImpact expresses the scenario's relative effect on demand,
// cost and efficiency as percentages for the dashboard gauges.
type ScenarioImpact struct {
	Demand     int `json:"demand"`
	Cost       int `json:"cost"`
	Efficiency int `json:"efficiency"`
}

// SimulationResult is the full response payload of one simulation run.
type SimulationResult struct {
	RunID          string            `json:"run_id"`
	Title          string            `json:"title"`
	Scenario       Scenario          `json:"scenario"`
	Params         SimulationParams  `json:"params"`
	FinalInventory FinalInventory    `json:"final_inventory"`
	Metrics        SimulationMetrics `json:"metrics"`
	History        []DayRecord       `json:"history"`
	ScenarioImpact ScenarioImpact    `json:"scenario_impact"`
	Decision       string            `json:"decision"`
	DecisionType   Severity          `json:"decisionType"`
}

// ScenarioSummary is one row of a cross-scenario comparison.
type ScenarioSummary struct {
	Scenario     Scenario `json:"scenario"`
	Label        string   `json:"label"`
	Multiplier   float64  `json:"multiplier"`
	ServiceLevel float64  `json:"service_level"`
	StockoutDays int      `json:"stockout_days"`
	FinalStock   int      `json:"final_stock"`
	Decision     string   `json:"decision"`
	DecisionType Severity `json:"decisionType"`
}
