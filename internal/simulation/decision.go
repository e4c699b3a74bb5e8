package simulation

import (
	"fmt"
	"math"

	"github.com/andresuchdata/invsim/internal/domain"
)

// Business thresholds for the recommendation ladder. These are fixed
// policy constants agreed with operations, not derived values.
const (
	criticalServiceLevel = 0.90
	targetServiceLevel   = 0.95
	warningStockoutRate  = 0.05
	criticalStockoutRate = 0.15
	overstockCoverDays   = 15

	criticalQtyUplift = 1.5
	warningQtyUplift  = 1.2
	overstockQtyCut   = 0.8

	// Safety-stock top-up horizon for the below-target case, in days.
	topUpWindowDays = 30
)

// DecisionInput carries everything the ladder needs: the reduced KPIs
// plus the policy inputs the recommendations are phrased in terms of.
type DecisionInput struct {
	KPI              domain.KPIReport
	ReplenishmentQty int
	AvgDailyDemand   int
	Scenario         domain.Scenario
}

// decisionRule is one rung of the ladder: a predicate and the decision
// it produces when it is the first to match.
type decisionRule struct {
	name    string
	applies func(DecisionInput) bool
	build   func(DecisionInput) domain.Decision
}

// decisionLadder is evaluated top-down with first-match-wins semantics.
// The order encodes business severity ranking; do not reorder without a
// product decision.
var decisionLadder = []decisionRule{
	{
		name: "service level below critical floor",
		applies: func(in DecisionInput) bool {
			return in.KPI.ServiceLevel < criticalServiceLevel
		},
		build: func(in DecisionInput) domain.Decision {
			raised := int(float64(in.ReplenishmentQty) * criticalQtyUplift)
			return domain.Decision{
				Severity: domain.SeverityCritical,
				Message: fmt.Sprintf(
					"URGENT: service level %.1f%% is below the %.0f%% floor. Raise the replenishment quantity to %d units (+50%%), negotiate a shorter lead time with suppliers, and consider expedited shipping for open orders.",
					in.KPI.ServiceLevel*100, criticalServiceLevel*100, raised),
			}
		},
	},
	{
		name: "stockout rate above critical threshold",
		applies: func(in DecisionInput) bool {
			return in.KPI.StockoutRate > criticalStockoutRate
		},
		build: func(in DecisionInput) domain.Decision {
			return domain.Decision{
				Severity: domain.SeverityCritical,
				Message: fmt.Sprintf(
					"URGENT: stockouts on %.1f%% of days. Raise the reorder point by %d units (2x daily demand), increase safety stock, and review forecast accuracy.",
					in.KPI.StockoutRate*100, 2*in.AvgDailyDemand),
			}
		},
	},
	{
		name: "service level below target",
		applies: func(in DecisionInput) bool {
			return in.KPI.ServiceLevel < targetServiceLevel
		},
		build: func(in DecisionInput) domain.Decision {
			raised := int(float64(in.ReplenishmentQty) * warningQtyUplift)
			topUp := int(math.Round((targetServiceLevel - in.KPI.ServiceLevel) * float64(in.AvgDailyDemand) * topUpWindowDays))
			return domain.Decision{
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"Service level %.1f%% misses the %.0f%% target. Raise the replenishment quantity to %d units (+20%%) and add a safety stock top-up of %d units.",
					in.KPI.ServiceLevel*100, targetServiceLevel*100, raised, topUp),
			}
		},
	},
	{
		name: "stockout rate above warning threshold",
		applies: func(in DecisionInput) bool {
			return in.KPI.StockoutRate > warningStockoutRate
		},
		build: func(in DecisionInput) domain.Decision {
			return domain.Decision{
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"Stockouts on %.1f%% of days. Review the reorder point and consider more frequent, smaller replenishments.",
					in.KPI.StockoutRate*100),
			}
		},
	},
	{
		name: "average inventory above carrying-cost ceiling",
		applies: func(in DecisionInput) bool {
			return in.KPI.AvgInventory > float64(overstockCoverDays*in.AvgDailyDemand)
		},
		build: func(in DecisionInput) domain.Decision {
			reduced := int(float64(in.ReplenishmentQty) * overstockQtyCut)
			cover := 0.0
			if in.AvgDailyDemand > 0 {
				cover = in.KPI.AvgInventory / float64(in.AvgDailyDemand)
			}
			return domain.Decision{
				Severity: domain.SeverityInfo,
				Message: fmt.Sprintf(
					"Average inventory covers %.0f days of demand (ceiling %d). Reduce the replenishment quantity to %d units (-20%%) to cut carrying cost.",
					cover, overstockCoverDays, reduced),
			}
		},
	},
	{
		name: "policy on target",
		applies: func(in DecisionInput) bool {
			return in.KPI.ServiceLevel >= targetServiceLevel && in.KPI.StockoutRate <= warningStockoutRate
		},
		build: func(in DecisionInput) domain.Decision {
			msg := fmt.Sprintf(
				"Current policy is near-optimal: %.1f%% service level with stockouts on %.1f%% of days.",
				in.KPI.ServiceLevel*100, in.KPI.StockoutRate*100)
			switch in.Scenario {
			case domain.ScenarioPromo:
				msg += " The policy holds up under the promotional demand uplift."
			case domain.ScenarioHoliday:
				msg += " The policy absorbs the holiday peak without strain."
			}
			return domain.Decision{Severity: domain.SeveritySuccess, Message: msg}
		},
	},
}

// Decide walks the ladder and returns the first matching decision.
// The terminal fallback is unreachable in practice once the on-target
// rule's negation is considered, but it keeps the function total.
func Decide(in DecisionInput) domain.Decision {
	for _, rule := range decisionLadder {
		if rule.applies(in) {
			return rule.build(in)
		}
	}

	return domain.Decision{
		Severity: domain.SeveritySuccess,
		Message:  "Inventory policy is performing adequately.",
	}
}
