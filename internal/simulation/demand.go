package simulation

import (
	"math"
	"math/rand"

	"github.com/andresuchdata/invsim/internal/domain"
)

// Coefficient of variation assumed for daily demand.
const demandCV = 0.2

// DemandModel holds the demand statistics a run is driven by.
// AvgDaily is the scenario-adjusted mean, rounded to whole units.
type DemandModel struct {
	AvgDaily int
	StdDev   float64
}

// NewDemandModel derives the demand statistics for a scenario.
func NewDemandModel(baseDemand float64, scenario domain.Scenario) DemandModel {
	avg := int(math.Round(baseDemand * scenario.Multiplier()))
	if avg < 0 {
		avg = 0
	}

	return DemandModel{
		AvgDaily: avg,
		StdDev:   demandCV * float64(avg),
	}
}

// DemandSource supplies the stochastic component of daily demand.
// Implementations must be safe for single-run sequential use only;
// each run owns its own source.
type DemandSource interface {
	NextGaussian(mean, std float64) float64
}

type gaussianSource struct {
	rng *rand.Rand
}

// NewGaussianSource returns a seeded Gaussian demand source. Two
// sources built from the same seed produce identical sequences.
func NewGaussianSource(seed int64) DemandSource {
	return &gaussianSource{rng: rand.New(rand.NewSource(seed))}
}

func (g *gaussianSource) NextGaussian(mean, std float64) float64 {
	return mean + g.rng.NormFloat64()*std
}

// FixedSeries replays a predetermined sequence of draws. Once the
// series is exhausted it returns the requested mean, so a short series
// degrades to deterministic average demand rather than failing.
type FixedSeries struct {
	values []float64
	next   int
}

func NewFixedSeries(values []float64) *FixedSeries {
	return &FixedSeries{values: values}
}

func (f *FixedSeries) NextGaussian(mean, _ float64) float64 {
	if f.next >= len(f.values) {
		return mean
	}

	v := f.values[f.next]
	f.next++
	return v
}
