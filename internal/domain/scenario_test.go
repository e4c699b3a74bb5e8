package domain

import "testing"

func TestScenarioMultipliers(t *testing.T) {
	tests := []struct {
		scenario Scenario
		want     float64
	}{
		{ScenarioNormal, 1.0},
		{ScenarioPromo, 1.3},
		{ScenarioHoliday, 1.5},
		{ScenarioDownturn, 0.8},
		{Scenario("black_friday"), 1.0},
	}

	for _, tt := range tests {
		if got := tt.scenario.Multiplier(); got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.scenario, got, tt.want)
		}
	}
}

func TestParseScenario(t *testing.T) {
	if s, ok := ParseScenario("  Promo "); !ok || s != ScenarioPromo {
		t.Errorf("ParseScenario(\"  Promo \") = %s, %v; want promo, true", s, ok)
	}

	if s, ok := ParseScenario("mystery"); ok || s != ScenarioNormal {
		t.Errorf("ParseScenario(\"mystery\") = %s, %v; want normal, false", s, ok)
	}
}

func TestNewSimulationConfig_Clamping(t *testing.T) {
	tests := []struct {
		name                string
		qty, leadTime, days int
		scenario            string
		demand              float64
		wantQty, wantLead   int
		wantDays            int
		wantScenario        Scenario
		wantDemand          float64
	}{
		{
			name: "valid input untouched",
			qty:  1000, leadTime: 2, days: 30, scenario: "promo", demand: 500,
			wantQty: 1000, wantLead: 2, wantDays: 30, wantScenario: ScenarioPromo, wantDemand: 500,
		},
		{
			name: "floors applied",
			qty:  -10, leadTime: 0, days: 0, scenario: "normal", demand: -5,
			wantQty: 1, wantLead: 1, wantDays: 1, wantScenario: ScenarioNormal, wantDemand: 0,
		},
		{
			name: "horizon capped at a year",
			qty:  100, leadTime: 1, days: 9999, scenario: "holiday", demand: 50,
			wantQty: 100, wantLead: 1, wantDays: 365, wantScenario: ScenarioHoliday, wantDemand: 50,
		},
		{
			name: "unknown scenario falls back to normal",
			qty:  100, leadTime: 1, days: 10, scenario: "meteor_strike", demand: 50,
			wantQty: 100, wantLead: 1, wantDays: 10, wantScenario: ScenarioNormal, wantDemand: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewSimulationConfig(tt.qty, tt.leadTime, tt.days, tt.scenario, tt.demand)

			if cfg.ReplenishmentQty != tt.wantQty {
				t.Errorf("ReplenishmentQty = %d, want %d", cfg.ReplenishmentQty, tt.wantQty)
			}
			if cfg.LeadTime != tt.wantLead {
				t.Errorf("LeadTime = %d, want %d", cfg.LeadTime, tt.wantLead)
			}
			if cfg.Horizon != tt.wantDays {
				t.Errorf("Horizon = %d, want %d", cfg.Horizon, tt.wantDays)
			}
			if cfg.Scenario != tt.wantScenario {
				t.Errorf("Scenario = %s, want %s", cfg.Scenario, tt.wantScenario)
			}
			if cfg.BaseDemand != tt.wantDemand {
				t.Errorf("BaseDemand = %v, want %v", cfg.BaseDemand, tt.wantDemand)
			}
		})
	}
}
