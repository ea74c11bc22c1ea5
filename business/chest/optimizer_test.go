package chest

import (
	"context"
	"encoding/json"
	"testing"

	"chestAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver serves tier configs from an in-memory map, standing in for
// the tiered config cache.
type mapResolver struct {
	configs map[string]domain.ChestTierConfig
}

func (r *mapResolver) GetJSON(_ context.Context, key string, dest any) bool {
	cfg, ok := r.configs[key]
	if !ok {
		return false
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func resolverWith(configs ...domain.ChestTierConfig) *mapResolver {
	r := &mapResolver{configs: make(map[string]domain.ChestTierConfig)}
	for _, cfg := range configs {
		r.configs[TierConfigKey(cfg.TierID)] = cfg
	}
	return r
}

func TestOptimizeRanksByExpectedValue(t *testing.T) {
	resolver := resolverWith(
		domain.ChestTierConfig{TierID: domain.ChestBronze, SuccessRate: 0.8, MinValue: 10, MaxValue: 50},
		domain.ChestTierConfig{TierID: domain.ChestSilver, SuccessRate: 0.6, MinValue: 100, MaxValue: 200},
		domain.ChestTierConfig{TierID: domain.ChestGold, SuccessRate: 0.4, MinValue: 300, MaxValue: 400},
	)
	o := NewOptimizer(resolver)

	profile := domain.UserProfile{UserID: "u1", Score: 70, RiskLevel: domain.RiskMedium, HistoryLength: 5}
	dist := o.Optimize(context.Background(), profile, nil)

	// no score or risk multiplier applies, so potential == success rate
	require.Len(t, dist.Chests, 3)
	assert.Equal(t, domain.ChestGold, dist.Chests[0].TierID)
	assert.Equal(t, domain.ChestSilver, dist.Chests[1].TierID)
	assert.Equal(t, domain.ChestBronze, dist.Chests[2].TierID)

	assert.InDelta(t, 140.0, dist.Chests[0].ExpectedValue, 1e-9)
	assert.InDelta(t, 90.0, dist.Chests[1].ExpectedValue, 1e-9)
	assert.InDelta(t, 24.0, dist.Chests[2].ExpectedValue, 1e-9)

	// quantities follow the potential buckets: 0.4 -> 1, 0.6 -> 1, 0.8 -> 2
	assert.Equal(t, 1, dist.Chests[0].Quantity)
	assert.Equal(t, 1, dist.Chests[1].Quantity)
	assert.Equal(t, 2, dist.Chests[2].Quantity)

	assert.InDelta(t, 140+90+24*2, dist.TotalExpectedValue, 1e-9)
}

func TestOptimizeSkipsUnconfiguredTiers(t *testing.T) {
	resolver := resolverWith(
		domain.ChestTierConfig{TierID: domain.ChestBronze, SuccessRate: 0.9, MinValue: 10, MaxValue: 50},
	)
	o := NewOptimizer(resolver)

	profile := domain.UserProfile{UserID: "u1", Score: 50, RiskLevel: domain.RiskHigh}
	dist := o.Optimize(context.Background(), profile, []domain.ChestTier{domain.ChestBronze, domain.ChestDiamond})

	require.Len(t, dist.Chests, 1)
	assert.Equal(t, domain.ChestBronze, dist.Chests[0].TierID)
}

func TestOptimizeFiltersLowPotential(t *testing.T) {
	resolver := resolverWith(
		// exactly at the floor: excluded, the comparison is strict
		domain.ChestTierConfig{TierID: domain.ChestBronze, SuccessRate: 0.3, MinValue: 10, MaxValue: 50},
		// 0.4 * 0.7 (very_high risk) = 0.28: excluded
		domain.ChestTierConfig{TierID: domain.ChestSilver, SuccessRate: 0.4, MinValue: 100, MaxValue: 200},
		// 0.5 * 0.7 = 0.35: kept
		domain.ChestTierConfig{TierID: domain.ChestGold, SuccessRate: 0.5, MinValue: 300, MaxValue: 400},
	)
	o := NewOptimizer(resolver)

	profile := domain.UserProfile{UserID: "u1", Score: 50, RiskLevel: domain.RiskVeryHigh}
	dist := o.Optimize(context.Background(), profile, nil)

	require.Len(t, dist.Chests, 1)
	assert.Equal(t, domain.ChestGold, dist.Chests[0].TierID)
	assert.InDelta(t, 0.35, dist.Chests[0].Potential, 1e-9)
}

func TestOptimizeEmptyConfigSource(t *testing.T) {
	o := NewOptimizer(resolverWith())

	dist := o.Optimize(context.Background(), domain.UserProfile{UserID: "u1", Score: 50}, nil)

	assert.Empty(t, dist.Chests)
	assert.Zero(t, dist.TotalExpectedValue)
	// 0.5 base only: no history, score <= 60, empty distribution
	assert.InDelta(t, 0.5, dist.Confidence, 1e-9)
}

func TestAdjustPotentialClamp(t *testing.T) {
	profile := domain.UserProfile{Score: 90, RiskLevel: domain.RiskLow}

	// 0.95 * 1.2 * 1.1 exceeds 1 and must clamp
	assert.Equal(t, 1.0, adjustPotential(0.95, profile))
}

func TestAdjustPotentialMultipliers(t *testing.T) {
	cases := []struct {
		name    string
		profile domain.UserProfile
		want    float64
	}{
		{"high score", domain.UserProfile{Score: 85, RiskLevel: domain.RiskMedium}, 0.6},
		{"low score", domain.UserProfile{Score: 30, RiskLevel: domain.RiskMedium}, 0.4},
		{"low risk", domain.UserProfile{Score: 50, RiskLevel: domain.RiskLow}, 0.55},
		{"very high risk", domain.UserProfile{Score: 50, RiskLevel: domain.RiskVeryHigh}, 0.35},
		{"neutral", domain.UserProfile{Score: 50, RiskLevel: domain.RiskMedium}, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, adjustPotential(0.5, tc.profile), 1e-9)
		})
	}
}

func TestQuantityBuckets(t *testing.T) {
	assert.Equal(t, 3, quantityFor(0.81))
	assert.Equal(t, 2, quantityFor(0.8))
	assert.Equal(t, 2, quantityFor(0.61))
	assert.Equal(t, 1, quantityFor(0.6))
	assert.Equal(t, 1, quantityFor(0.31))
}

func TestConfidence(t *testing.T) {
	// short history, modest score, non-empty distribution
	c := confidence(domain.UserProfile{Score: 55, HistoryLength: 10}, 2)
	assert.InDelta(t, 0.6, c, 1e-9)

	// everything contributes and the sum stays at 1.0
	c = confidence(domain.UserProfile{Score: 95, HistoryLength: 50}, 3)
	assert.InDelta(t, 1.0, c, 1e-9)
}

func TestReasoningNotes(t *testing.T) {
	notes := reasoning(domain.UserProfile{Score: 90, RiskLevel: domain.RiskLow}, 3)
	assert.Len(t, notes, 3)

	notes = reasoning(domain.UserProfile{Score: 50, RiskLevel: domain.RiskHigh}, 1)
	assert.Empty(t, notes)
}
