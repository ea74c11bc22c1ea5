package reward

import (
	"context"
	"fmt"
	"math/rand"

	"chestAnalyzer/domain"
	"chestAnalyzer/pkg/logger"
)

// Rand is the random source behind reward sampling. The production source
// wraps math/rand; substituting a deterministic source makes Calculate
// fully reproducible.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ConfigResolver resolves named configuration values through the tiered
// cache.
type ConfigResolver interface {
	GetJSON(ctx context.Context, key string, dest any) bool
}

// RewardTableKey is the origin key a tier's reward table lives under.
func RewardTableKey(tier domain.ChestTier) string {
	return fmt.Sprintf("gamification.chests.%s.rewards", tier)
}

// Calculator draws a reward bundle for an opened chest and applies the
// loyalty/activity bonus multiplier.
type Calculator struct {
	resolver ConfigResolver
	rand     Rand
}

func NewCalculator(resolver ConfigResolver, rnd Rand) *Calculator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Calculator{resolver: resolver, rand: rnd}
}

type bonusRule struct {
	bonus float64
	match func(s domain.ActivitySignals) bool
}

// All applicable bonuses stack on the 1.0 base.
var bonusRules = []bonusRule{
	{0.2, func(s domain.ActivitySignals) bool { return s.RecentActivity > 0.8 }},
	{0.3, func(s domain.ActivitySignals) bool { return s.LoyaltyLevel == domain.LoyaltyVIP }},
	{0.15, func(s domain.ActivitySignals) bool { return s.LoyaltyLevel == domain.LoyaltyPremium }},
	{0.1, func(s domain.ActivitySignals) bool { return s.WeeklyVolume > 1000 }},
}

// Calculate opens a chest of the given tier: each reward table entry is an
// independent Bernoulli trial, and sampled values are scaled by the bonus
// multiplier. An unrecognized tier falls back to the lowest tier's table
// by design, not as an error.
func (c *Calculator) Calculate(ctx context.Context, signals domain.ActivitySignals, tier domain.ChestTier) domain.RewardResult {
	tier, table := c.rewardTable(ctx, tier)
	multiplier := bonusMultiplier(signals)

	items := make([]domain.RewardItem, 0, len(table))
	total := 0.0
	for _, entry := range table {
		if c.rand.Float64() >= entry.DropProbability {
			continue
		}
		value := entry.BaseValue * multiplier
		items = append(items, domain.RewardItem{Kind: entry.Kind, Value: value})
		total += value
	}

	logger.Debug("reward_calculate",
		"tier", tier,
		"items", len(items),
		"total_value", total,
		"multiplier", multiplier,
	)

	ChestsOpenedTotal.WithLabelValues(string(tier)).Inc()

	return domain.RewardResult{
		TierID:          tier,
		Items:           items,
		TotalValue:      total,
		BonusMultiplier: multiplier,
	}
}

// rewardTable resolves the tier's table through the config cache, falling
// back to the built-in default for the tier, or the bronze default when
// the tier itself is unknown.
func (c *Calculator) rewardTable(ctx context.Context, tier domain.ChestTier) (domain.ChestTier, []domain.RewardTableEntry) {
	if _, known := defaultRewardTables[tier]; !known {
		tier = domain.ChestBronze
	}

	var table []domain.RewardTableEntry
	if c.resolver != nil && c.resolver.GetJSON(ctx, RewardTableKey(tier), &table) && len(table) > 0 {
		return tier, table
	}
	return tier, defaultRewardTables[tier]
}

func bonusMultiplier(signals domain.ActivitySignals) float64 {
	m := 1.0
	for _, rule := range bonusRules {
		if rule.match(signals) {
			m += rule.bonus
		}
	}
	return m
}
