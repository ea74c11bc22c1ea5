package chest

import (
	"context"
	"fmt"
	"sort"

	"chestAnalyzer/domain"
	"chestAnalyzer/pkg/logger"
)

// minimum adjusted potential a tier needs to stay in the distribution
const potentialFloor = 0.3

// ConfigResolver resolves named configuration values through the tiered
// cache.
type ConfigResolver interface {
	GetJSON(ctx context.Context, key string, dest any) bool
}

// TierConfigKey is the origin key a tier's configuration lives under.
func TierConfigKey(tier domain.ChestTier) string {
	return fmt.Sprintf("gamification.chests.%s", tier)
}

// Optimizer ranks chest tiers by expected value for a scored user profile
// and proposes per-tier quantities plus a confidence figure.
type Optimizer struct {
	resolver ConfigResolver
}

func NewOptimizer(resolver ConfigResolver) *Optimizer {
	return &Optimizer{resolver: resolver}
}

// Optimize resolves each requested tier's configuration and builds the
// chest distribution. Unknown tier ids are skipped, not errors: a tier the
// config source does not know is simply not offered.
func (o *Optimizer) Optimize(ctx context.Context, profile domain.UserProfile, tiers []domain.ChestTier) domain.ChestDistribution {
	if len(tiers) == 0 {
		tiers = domain.AllChestTiers
	}

	potentials := make([]domain.ChestPotential, 0, len(tiers))
	for _, tier := range tiers {
		var cfg domain.ChestTierConfig
		if !o.resolver.GetJSON(ctx, TierConfigKey(tier), &cfg) {
			logger.Debug("chest tier not configured, skipping", "tier", tier)
			continue
		}

		potential := adjustPotential(cfg.SuccessRate, profile)
		if potential <= potentialFloor {
			continue
		}

		midpoint := (cfg.MinValue + cfg.MaxValue) / 2
		potentials = append(potentials, domain.ChestPotential{
			TierID:        tier,
			Potential:     potential,
			ExpectedValue: midpoint * potential,
		})
	}

	// descending expected value; ties keep resolution order
	sort.SliceStable(potentials, func(i, j int) bool {
		return potentials[i].ExpectedValue > potentials[j].ExpectedValue
	})

	chests := make([]domain.ChestAllocation, 0, len(potentials))
	totalEV := 0.0
	for _, p := range potentials {
		qty := quantityFor(p.Potential)
		chests = append(chests, domain.ChestAllocation{
			TierID:        p.TierID,
			Quantity:      qty,
			Potential:     p.Potential,
			ExpectedValue: p.ExpectedValue,
		})
		totalEV += p.ExpectedValue * float64(qty)
	}

	OptimizationsTotal.Inc()

	return domain.ChestDistribution{
		Chests:             chests,
		TotalExpectedValue: totalEV,
		Confidence:         confidence(profile, len(chests)),
		Reasoning:          reasoning(profile, len(chests)),
	}
}

// adjustPotential scales a tier's base success rate by the user's score
// and risk level, clamped to 1.0. There is no floor beyond the
// multiplications, so potential may legitimately fall toward zero.
func adjustPotential(successRate float64, profile domain.UserProfile) float64 {
	p := successRate

	if profile.Score > 80 {
		p *= 1.2
	} else if profile.Score < 40 {
		p *= 0.8
	}

	if profile.RiskLevel == domain.RiskLow {
		p *= 1.1
	} else if profile.RiskLevel == domain.RiskVeryHigh {
		p *= 0.7
	}

	if p > 1 {
		p = 1
	}
	return p
}

// quantityFor is a coarse three-bucket allocation: offer more of what the
// user is more likely to redeem.
func quantityFor(potential float64) int {
	switch {
	case potential > 0.8:
		return 3
	case potential > 0.6:
		return 2
	default:
		return 1
	}
}

func confidence(profile domain.UserProfile, distributionSize int) float64 {
	c := 0.5
	if profile.HistoryLength > 10 {
		c += 0.2
	}
	if profile.Score > 60 {
		c += 0.2
	}
	if distributionSize > 0 {
		c += 0.1
	}
	if c > 1 {
		c = 1
	}
	return c
}

// reasoning emits the explanatory notes gated by the same predicates that
// drive the potential adjustment. Purely informational.
func reasoning(profile domain.UserProfile, distributionSize int) []string {
	notes := make([]string, 0, 3)
	if profile.Score > 80 {
		notes = append(notes, "high behavior score boosts chest potential")
	}
	if profile.RiskLevel == domain.RiskLow {
		notes = append(notes, "low risk level increases the offered value")
	}
	if distributionSize > 1 {
		notes = append(notes, "multiple tiers qualify, offer is spread across them")
	}
	return notes
}
