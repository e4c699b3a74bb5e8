package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/andresuchdata/invsim/internal/cache"
	"github.com/andresuchdata/invsim/internal/domain"
	"github.com/andresuchdata/invsim/internal/simulation"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SimulationInput is the raw, already-coerced caller input. Seed and
// Forecast are optional; either one makes the run deterministic.
type SimulationInput struct {
	Qty      int
	LeadTime int
	Days     int
	Scenario string
	Demand   float64
	Seed     *int64
	Forecast []float64
}

type SimulationService struct {
	cache cache.SimulationCache
}

func NewSimulationService(cacheImpl cache.SimulationCache) *SimulationService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopSimulationCache()
	}
	return &SimulationService{cache: cacheImpl}
}

// Run executes one simulation end to end: clamp the configuration,
// derive the policy, run the day loop, reduce the ledger and attach the
// recommendation. Deterministic runs are served from cache when possible.
func (s *SimulationService) Run(ctx context.Context, in SimulationInput) (*domain.SimulationResult, error) {
	cfg := domain.NewSimulationConfig(in.Qty, in.LeadTime, in.Days, in.Scenario, in.Demand)
	key := cache.RunKey{Config: cfg, Seed: in.Seed, Forecast: in.Forecast}

	if result, ok, err := s.cache.GetResult(ctx, key); err == nil && ok {
		return result, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("simulation: cache get failed")
	}

	result := s.execute(cfg, in)

	if err := s.cache.SetResult(ctx, key, result); err != nil {
		log.Warn().Err(err).Msg("simulation: cache set failed")
	}

	return result, nil
}

// Compare runs the same policy input under every supported scenario.
// All runs share one seed so the comparison isolates the multiplier
// effect instead of re-rolling the demand noise per scenario.
func (s *SimulationService) Compare(ctx context.Context, in SimulationInput) ([]domain.ScenarioSummary, error) {
	seed := time.Now().UnixNano()
	if in.Seed != nil {
		seed = *in.Seed
	}

	scenarios := domain.Scenarios()
	summaries := make([]domain.ScenarioSummary, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		i, scenario := i, scenario
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			scenarioIn := in
			scenarioIn.Scenario = string(scenario)
			scenarioIn.Seed = &seed

			result, err := s.Run(ctx, scenarioIn)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", scenario, err)
			}

			summaries[i] = domain.ScenarioSummary{
				Scenario:     scenario,
				Label:        scenario.Label(),
				Multiplier:   scenario.Multiplier(),
				ServiceLevel: result.FinalInventory.ServiceLevel,
				StockoutDays: result.Metrics.StockoutDays,
				FinalStock:   result.FinalInventory.Stock,
				Decision:     result.Decision,
				DecisionType: result.DecisionType,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// execute performs the actual run. It cannot fail: every input has
// already been clamped into a valid configuration.
func (s *SimulationService) execute(cfg domain.SimulationConfig, in SimulationInput) *domain.SimulationResult {
	model := simulation.NewDemandModel(cfg.BaseDemand, cfg.Scenario)
	policy := simulation.ComputePolicy(model, cfg.LeadTime, cfg.ReplenishmentQty)

	seed := time.Now().UnixNano()
	if in.Seed != nil {
		seed = *in.Seed
	}

	sim := simulation.New(cfg, model, policy, simulation.NewGaussianSource(seed))
	if len(in.Forecast) > 0 {
		sim.UseForecast(in.Forecast)
	}

	started := time.Now()
	run := sim.Run()
	kpi := simulation.Aggregate(run)

	decision := simulation.Decide(simulation.DecisionInput{
		KPI:              kpi,
		ReplenishmentQty: cfg.ReplenishmentQty,
		AvgDailyDemand:   model.AvgDaily,
		Scenario:         cfg.Scenario,
	})

	log.Debug().
		Str("scenario", string(cfg.Scenario)).
		Int("days", cfg.Horizon).
		Float64("service_level", kpi.ServiceLevel).
		Dur("elapsed", time.Since(started)).
		Msg("simulation completed")

	multiplier := cfg.Scenario.Multiplier()

	return &domain.SimulationResult{
		RunID:    uuid.NewString(),
		Title:    fmt.Sprintf("(Q, r) Inventory Simulation - %s", cfg.Scenario.Label()),
		Scenario: cfg.Scenario,
		Params: domain.SimulationParams{
			ReplenishmentQty: cfg.ReplenishmentQty,
			ReorderPoint:     policy.ReorderPoint,
			SafetyStock:      policy.SafetyStock,
			LeadTime:         cfg.LeadTime,
			Days:             cfg.Horizon,
			AvgDailyDemand:   model.AvgDaily,
		},
		FinalInventory: domain.FinalInventory{
			Stock:        run.FinalStock,
			Shortages:    run.TotalShortages,
			ServiceLevel: roundTo(kpi.ServiceLevel, 4),
			FillRate:     roundTo(kpi.FillRate, 4),
		},
		Metrics: domain.SimulationMetrics{
			TotalDemand:         run.TotalDemand,
			TotalServed:         run.TotalServed,
			TotalUnmet:          run.TotalShortages,
			PeakStock:           run.PeakStock,
			MinStock:            run.MinStock,
			AvgInventory:        int(kpi.AvgInventory),
			TotalReplenishments: run.TotalReplenishments,
			StockoutDays:        run.StockoutDays,
			InventoryTurnover:   roundTo(kpi.InventoryTurnover, 2),
		},
		History: run.History,
		ScenarioImpact: domain.ScenarioImpact{
			Demand:     int(multiplier * 100),
			Cost:       int((2 - multiplier) * 100),
			Efficiency: int(kpi.ServiceLevel * 100),
		},
		Decision:     decision.Message,
		DecisionType: decision.Severity,
	}
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
