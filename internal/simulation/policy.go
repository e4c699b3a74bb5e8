package simulation

import (
	"math"

	"github.com/andresuchdata/invsim/internal/domain"
)

// serviceZScore sizes safety stock for roughly a 95th-percentile
// service target. It is a business constant, not configurable.
const serviceZScore = 1.65

// ComputePolicy derives the (Q, r) control parameters from the demand
// model and lead time:
//
//	safety_stock  = round(z * std * sqrt(lead_time))
//	reorder_point = avg_daily * lead_time + safety_stock
//	initial_stock = replenishment_qty * lead_time
func ComputePolicy(model DemandModel, leadTime, replenishmentQty int) domain.Policy {
	if leadTime < 1 {
		leadTime = 1
	}
	if replenishmentQty < 1 {
		replenishmentQty = 1
	}

	safetyStock := int(math.Round(serviceZScore * model.StdDev * math.Sqrt(float64(leadTime))))

	return domain.Policy{
		SafetyStock:  safetyStock,
		ReorderPoint: model.AvgDaily*leadTime + safetyStock,
		InitialStock: replenishmentQty * leadTime,
	}
}
