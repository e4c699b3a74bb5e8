package domain

import "strings"

// Scenario adjusts the baseline demand to model a market condition.
type Scenario string

const (
	ScenarioNormal   Scenario = "normal"
	ScenarioPromo    Scenario = "promo"
	ScenarioHoliday  Scenario = "holiday"
	ScenarioDownturn Scenario = "economic_downturn"
)

var scenarioMultipliers = map[Scenario]float64{
	ScenarioNormal:   1.0,
	ScenarioPromo:    1.3,
	ScenarioHoliday:  1.5,
	ScenarioDownturn: 0.8,
}

var scenarioLabels = map[Scenario]string{
	ScenarioNormal:   "Normal demand",
	ScenarioPromo:    "Promotional uplift",
	ScenarioHoliday:  "Holiday peak",
	ScenarioDownturn: "Economic downturn",
}

// Multiplier returns the demand multiplier for the scenario.
// Unknown scenarios behave as normal demand.
func (s Scenario) Multiplier() float64 {
	if m, ok := scenarioMultipliers[s]; ok {
		return m
	}

	return 1.0
}

// Label returns a human-readable description of the scenario.
func (s Scenario) Label() string {
	if label, ok := scenarioLabels[s]; ok {
		return label
	}

	return "Normal demand"
}

// ParseScenario returns the scenario for a given name (case-insensitive).
// Unrecognized names fall back to ScenarioNormal.
func ParseScenario(name string) (Scenario, bool) {
	s := Scenario(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := scenarioMultipliers[s]; ok {
		return s, true
	}

	return ScenarioNormal, false
}

// Scenarios lists all supported scenarios in a stable display order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioNormal, ScenarioPromo, ScenarioHoliday, ScenarioDownturn}
}
