package simulation

import (
	"reflect"
	"testing"

	"github.com/andresuchdata/invsim/internal/domain"
)

func newTestSimulator(cfg domain.SimulationConfig, source DemandSource) (*Simulator, domain.Policy) {
	model := NewDemandModel(cfg.BaseDemand, cfg.Scenario)
	policy := ComputePolicy(model, cfg.LeadTime, cfg.ReplenishmentQty)
	return New(cfg, model, policy, source), policy
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSimulator_DeterministicGivenSeed(t *testing.T) {
	cfg := domain.NewSimulationConfig(1000, 2, 30, "promo", 500)

	first, _ := newTestSimulator(cfg, NewGaussianSource(42))
	second, _ := newTestSimulator(cfg, NewGaussianSource(42))

	runA := first.Run()
	runB := second.Run()

	if !reflect.DeepEqual(runA.History, runB.History) {
		t.Fatal("two runs with the same seed produced different ledgers")
	}
	if runA.TotalDemand != runB.TotalDemand || runA.TotalServed != runB.TotalServed {
		t.Fatal("two runs with the same seed produced different totals")
	}
}

func TestSimulator_AccountingIdentities(t *testing.T) {
	cfg := domain.NewSimulationConfig(300, 3, 90, "holiday", 250)
	sim, _ := newTestSimulator(cfg, NewGaussianSource(7))

	run := sim.Run()

	if len(run.History) != cfg.Horizon {
		t.Fatalf("history has %d entries, want %d", len(run.History), cfg.Horizon)
	}

	demandSum, unmetSum := 0, 0
	for _, rec := range run.History {
		if rec.Demand < 0 {
			t.Fatalf("day %d: negative demand %d", rec.Day, rec.Demand)
		}
		if rec.Unmet > rec.Demand {
			t.Fatalf("day %d: unmet %d exceeds demand %d", rec.Day, rec.Unmet, rec.Demand)
		}
		if rec.Stock < 0 {
			t.Fatalf("day %d: negative stock %d", rec.Day, rec.Stock)
		}
		demandSum += rec.Demand
		unmetSum += rec.Unmet
	}

	if demandSum != run.TotalDemand {
		t.Errorf("ledger demand sum %d != TotalDemand %d", demandSum, run.TotalDemand)
	}
	if unmetSum != run.TotalShortages {
		t.Errorf("ledger unmet sum %d != TotalShortages %d", unmetSum, run.TotalShortages)
	}
	if run.TotalServed+run.TotalShortages != run.TotalDemand {
		t.Errorf("served %d + shortages %d != demand %d",
			run.TotalServed, run.TotalShortages, run.TotalDemand)
	}
}

func TestSimulator_PositionInvariant(t *testing.T) {
	cfg := domain.NewSimulationConfig(500, 3, 60, "normal", 200)
	sim, policy := newTestSimulator(cfg, NewGaussianSource(11))

	st := &runState{
		stock:     policy.InitialStock,
		position:  policy.InitialStock,
		pending:   make(map[int]int),
		peakStock: policy.InitialStock,
		minStock:  policy.InitialStock,
	}

	for day := 0; day < cfg.Horizon; day++ {
		rec := sim.step(st, day)

		if want := st.stock + st.pendingTotal(); st.position != want {
			t.Fatalf("day %d: position %d != stock %d + pending %d",
				day, st.position, st.stock, st.pendingTotal())
		}
		if rec.InventoryPosition != st.position {
			t.Fatalf("day %d: ledger position %d != state position %d",
				day, rec.InventoryPosition, st.position)
		}
	}
}

func TestSimulator_ReorderTiming(t *testing.T) {
	// Deterministic demand of 50/day, Q=100, lead time 2, reorder point
	// 123. Orders fire on days 1 and 3 and land two days later; the
	// trigger on day 5 is suppressed because arrival would miss the
	// horizon.
	cfg := domain.NewSimulationConfig(100, 2, 6, "normal", 50)
	sim, _ := newTestSimulator(cfg, NewFixedSeries(repeat(50, 6)))

	run := sim.Run()

	wantStocks := []int{150, 100, 50, 100, 50, 100}
	for i, rec := range run.History {
		if rec.Stock != wantStocks[i] {
			t.Errorf("day %d: stock = %d, want %d", i, rec.Stock, wantStocks[i])
		}
	}

	if run.TotalReplenishments != 200 {
		t.Errorf("TotalReplenishments = %d, want 200", run.TotalReplenishments)
	}
	if run.StockoutDays != 0 {
		t.Errorf("StockoutDays = %d, want 0", run.StockoutDays)
	}
	if run.PeakStock != 200 || run.MinStock != 50 {
		t.Errorf("peak/min = %d/%d, want 200/50", run.PeakStock, run.MinStock)
	}
}

func TestSimulator_StockoutAccounting(t *testing.T) {
	// One unit of initial stock and no reachable replenishment: every
	// day after the first is a full stockout.
	cfg := domain.NewSimulationConfig(1, 1, 3, "normal", 10)
	sim, _ := newTestSimulator(cfg, NewFixedSeries(repeat(10, 3)))

	run := sim.Run()

	if run.StockoutDays != 3 {
		t.Errorf("StockoutDays = %d, want 3", run.StockoutDays)
	}
	if run.TotalServed+run.TotalShortages != run.TotalDemand {
		t.Errorf("served %d + shortages %d != demand %d",
			run.TotalServed, run.TotalShortages, run.TotalDemand)
	}
	for _, rec := range run.History {
		if rec.Stock < 0 {
			t.Fatalf("day %d: negative stock", rec.Day)
		}
	}
}

func TestSimulator_SingleDayHorizon(t *testing.T) {
	cfg := domain.NewSimulationConfig(1000, 1, 1, "normal", 500)
	sim, _ := newTestSimulator(cfg, NewGaussianSource(1))

	run := sim.Run()

	if len(run.History) != 1 {
		t.Fatalf("history has %d entries, want 1", len(run.History))
	}
	if run.History[0].Day != 0 {
		t.Errorf("first day = %d, want 0", run.History[0].Day)
	}
}

func TestSimulator_ZeroDemand(t *testing.T) {
	cfg := domain.NewSimulationConfig(1000, 2, 10, "normal", 0)
	sim, policy := newTestSimulator(cfg, NewGaussianSource(3))

	run := sim.Run()

	if run.TotalDemand != 0 {
		t.Fatalf("TotalDemand = %d, want 0", run.TotalDemand)
	}
	if run.FinalStock != policy.InitialStock {
		t.Errorf("FinalStock = %d, want %d", run.FinalStock, policy.InitialStock)
	}
}

func TestSimulator_ForecastSubstitution(t *testing.T) {
	cfg := domain.NewSimulationConfig(1000, 1, 5, "normal", 20)
	sim, _ := newTestSimulator(cfg, NewGaussianSource(99))
	sim.UseForecast([]float64{10, 20, 30})

	run := sim.Run()

	// Supplied values verbatim, then padded with the average daily demand.
	wantDemand := []int{10, 20, 30, 20, 20}
	for i, rec := range run.History {
		if rec.Demand != wantDemand[i] {
			t.Errorf("day %d: demand = %d, want %d", i, rec.Demand, wantDemand[i])
		}
	}
}

func TestSimulator_ForecastScenarioMultiplier(t *testing.T) {
	cfg := domain.NewSimulationConfig(1000, 1, 3, "promo", 100)
	sim, _ := newTestSimulator(cfg, NewGaussianSource(99))
	sim.UseForecast([]float64{100, 100, 100})

	run := sim.Run()

	for i, rec := range run.History {
		if rec.Demand != 130 {
			t.Errorf("day %d: demand = %d, want 130 (promo-adjusted)", i, rec.Demand)
		}
	}
}
