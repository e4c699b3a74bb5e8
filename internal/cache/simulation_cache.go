package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andresuchdata/invsim/internal/config"
	"github.com/andresuchdata/invsim/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	simulationResultKeyPrefix = "simulation:result"
	simulationScanBatchSize   = 100
)

// RunKey identifies a deterministic simulation run. Only seeded or
// forecast-driven runs are cacheable; unseeded runs draw fresh noise
// on every call and must never be served from cache.
type RunKey struct {
	Config   domain.SimulationConfig
	Seed     *int64
	Forecast []float64
}

// Deterministic reports whether the run the key describes is reproducible.
func (k RunKey) Deterministic() bool {
	return k.Seed != nil || len(k.Forecast) > 0
}

type SimulationCache interface {
	GetResult(ctx context.Context, key RunKey) (*domain.SimulationResult, bool, error)
	SetResult(ctx context.Context, key RunKey, result *domain.SimulationResult) error
	InvalidateAll(ctx context.Context) error
}

type redisSimulationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSimulationCache struct{}

func NewSimulationCache(cfg config.CacheConfig) (SimulationCache, error) {
	if !cfg.Enabled {
		return &noopSimulationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisSimulationCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopSimulationCache() SimulationCache {
	return &noopSimulationCache{}
}

func (c *redisSimulationCache) GetResult(ctx context.Context, key RunKey) (*domain.SimulationResult, bool, error) {
	if !key.Deterministic() {
		return nil, false, nil
	}

	payload, err := c.client.Get(ctx, buildResultKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.SimulationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode simulation result cache: %w", err)
	}

	return &result, true, nil
}

func (c *redisSimulationCache) SetResult(ctx context.Context, key RunKey, result *domain.SimulationResult) error {
	if !key.Deterministic() {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode simulation result cache: %w", err)
	}

	if err := c.client.Set(ctx, buildResultKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisSimulationCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, simulationResultKeyPrefix, simulationScanBatchSize)
}

func (n *noopSimulationCache) GetResult(ctx context.Context, key RunKey) (*domain.SimulationResult, bool, error) {
	return nil, false, nil
}

func (n *noopSimulationCache) SetResult(ctx context.Context, key RunKey, result *domain.SimulationResult) error {
	return nil
}

func (n *noopSimulationCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildResultKey hashes the normalized run parameters into a stable key.
func buildResultKey(key RunKey) string {
	parts := []string{
		fmt.Sprintf("qty=%d", key.Config.ReplenishmentQty),
		fmt.Sprintf("lead_time=%d", key.Config.LeadTime),
		fmt.Sprintf("days=%d", key.Config.Horizon),
		"scenario=" + string(key.Config.Scenario),
		fmt.Sprintf("demand=%.4f", key.Config.BaseDemand),
	}

	if key.Seed != nil {
		parts = append(parts, fmt.Sprintf("seed=%d", *key.Seed))
	}
	if len(key.Forecast) > 0 {
		values := make([]string, len(key.Forecast))
		for i, v := range key.Forecast {
			values[i] = fmt.Sprintf("%.4f", v)
		}
		parts = append(parts, "forecast="+strings.Join(values, ","))
	}

	sort.Strings(parts)
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return simulationResultKeyPrefix + ":" + hex.EncodeToString(sum[:])
}
