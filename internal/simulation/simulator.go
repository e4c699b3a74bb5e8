package simulation

import (
	"math"

	"github.com/andresuchdata/invsim/internal/domain"
)

// Simulator runs a continuous-review (Q, r) inventory simulation over a
// fixed horizon. Each day advances through the same transition order:
// order arrival, demand realization, fulfillment, reorder trigger,
// bookkeeping. A Simulator is single-use and not safe for concurrent
// calls; build one per run.
type Simulator struct {
	cfg    domain.SimulationConfig
	model  DemandModel
	policy domain.Policy
	source DemandSource

	// forecast, when set, supplies the daily demand directly and the
	// Gaussian source is bypassed.
	forecast []int
}

// runState is the mutable state of one run. It exists only for the
// duration of Run and is never shared.
type runState struct {
	stock    int
	position int
	pending  map[int]int // arrival day -> quantity; one order per arrival day

	totalDemand         int
	totalServed         int
	totalShortages      int
	totalReplenishments int
	stockoutDays        int
	peakStock           int
	minStock            int
}

// RunResult is the completed ledger plus the raw counters the metrics
// aggregation reduces.
type RunResult struct {
	History             []domain.DayRecord
	FinalStock          int
	InventoryPosition   int
	TotalDemand         int
	TotalServed         int
	TotalShortages      int
	TotalReplenishments int
	StockoutDays        int
	PeakStock           int
	MinStock            int
	Horizon             int
}

func New(cfg domain.SimulationConfig, model DemandModel, policy domain.Policy, source DemandSource) *Simulator {
	return &Simulator{
		cfg:    cfg,
		model:  model,
		policy: policy,
		source: source,
	}
}

// UseForecast replaces the Gaussian demand draws with an externally
// supplied daily series. The scenario multiplier is applied to each
// value; a series shorter than the horizon is padded with the average
// daily demand, a longer one is truncated.
func (s *Simulator) UseForecast(values []float64) {
	mult := s.cfg.Scenario.Multiplier()
	forecast := make([]int, s.cfg.Horizon)
	for day := 0; day < s.cfg.Horizon; day++ {
		if day < len(values) {
			v := int(math.Round(values[day] * mult))
			if v < 0 {
				v = 0
			}
			forecast[day] = v
		} else {
			forecast[day] = s.model.AvgDaily
		}
	}
	s.forecast = forecast
}

// Run executes the full horizon and returns the completed ledger.
// It never fails: configuration is clamped before construction and the
// loop is a pure in-memory computation.
func (s *Simulator) Run() *RunResult {
	st := &runState{
		stock:     s.policy.InitialStock,
		position:  s.policy.InitialStock,
		pending:   make(map[int]int),
		peakStock: s.policy.InitialStock,
		minStock:  s.policy.InitialStock,
	}

	history := make([]domain.DayRecord, 0, s.cfg.Horizon)
	for day := 0; day < s.cfg.Horizon; day++ {
		history = append(history, s.step(st, day))
	}

	return &RunResult{
		History:             history,
		FinalStock:          st.stock,
		InventoryPosition:   st.position,
		TotalDemand:         st.totalDemand,
		TotalServed:         st.totalServed,
		TotalShortages:      st.totalShortages,
		TotalReplenishments: st.totalReplenishments,
		StockoutDays:        st.stockoutDays,
		PeakStock:           st.peakStock,
		MinStock:            st.minStock,
		Horizon:             s.cfg.Horizon,
	}
}

// step advances the state machine by one day and returns its ledger entry.
func (s *Simulator) step(st *runState, day int) domain.DayRecord {
	// 1. Arrival: apply any order scheduled for today.
	if qty, ok := st.pending[day]; ok {
		st.stock += qty
		st.totalReplenishments += qty
		delete(st.pending, day)
	}

	// 2. Demand realization.
	demand := s.demandFor(day)

	// 3. Fulfillment. Unserved demand is lost, not backordered, so the
	// position only drops by what actually left the shelf.
	served := demand
	if served > st.stock {
		served = st.stock
	}
	shortage := demand - served
	st.stock -= served
	st.position -= served

	if shortage > 0 {
		st.stockoutDays++
	}
	st.totalDemand += demand
	st.totalServed += served
	st.totalShortages += shortage

	// 4. Reorder trigger (continuous review). The order book holds at
	// most one order per arrival day, so a trigger is skipped while an
	// order is already inbound for day+leadTime.
	arrival := day + s.cfg.LeadTime
	if st.position <= s.policy.ReorderPoint && arrival < s.cfg.Horizon {
		if _, inbound := st.pending[arrival]; !inbound {
			st.pending[arrival] = s.cfg.ReplenishmentQty
			st.position += s.cfg.ReplenishmentQty
		}
	}

	// 5. Bookkeeping.
	if st.stock > st.peakStock {
		st.peakStock = st.stock
	}
	if st.stock < st.minStock {
		st.minStock = st.stock
	}

	return domain.DayRecord{
		Day:               day,
		Demand:            demand,
		Stock:             st.stock,
		Unmet:             shortage,
		InventoryPosition: st.position,
	}
}

func (s *Simulator) demandFor(day int) int {
	if s.forecast != nil {
		return s.forecast[day]
	}

	draw := s.source.NextGaussian(float64(s.model.AvgDaily), s.model.StdDev)
	demand := int(math.Round(draw))
	if demand < 0 {
		demand = 0
	}
	return demand
}

// pendingTotal sums the quantities still on order.
func (st *runState) pendingTotal() int {
	total := 0
	for _, qty := range st.pending {
		total += qty
	}
	return total
}
