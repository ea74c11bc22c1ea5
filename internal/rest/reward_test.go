package rest

import (
	"context"
	"net/http"
	"testing"

	"chestAnalyzer/domain"

	"github.com/stretchr/testify/assert"
)

type stubRewardCalculator struct {
	lastSignals domain.ActivitySignals
	lastTier    domain.ChestTier
}

func (s *stubRewardCalculator) Calculate(_ context.Context, signals domain.ActivitySignals, tier domain.ChestTier) domain.RewardResult {
	s.lastSignals = signals
	s.lastTier = tier
	return domain.RewardResult{TierID: tier, BonusMultiplier: 1.0}
}

func TestOpenChestSuccess(t *testing.T) {
	calc := &stubRewardCalculator{}
	h := NewRewardHandler(calc)

	body := `{"user_id": "u1", "tier": "gold", "recent_activity": 0.9, "loyalty_level": "vip", "weekly_volume": 1500}`
	rec := postJSON(t, h.Open, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ChestGold, calc.lastTier)
	assert.Equal(t, domain.LoyaltyVIP, calc.lastSignals.LoyaltyLevel)
	assert.Equal(t, 0.9, calc.lastSignals.RecentActivity)
	assert.Equal(t, 1500.0, calc.lastSignals.WeeklyVolume)
}

func TestOpenChestDefaultsLoyalty(t *testing.T) {
	calc := &stubRewardCalculator{}
	h := NewRewardHandler(calc)

	rec := postJSON(t, h.Open, `{"user_id": "u1", "tier": "bronze"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LoyaltyStandard, calc.lastSignals.LoyaltyLevel)
}

func TestOpenChestValidation(t *testing.T) {
	h := NewRewardHandler(&stubRewardCalculator{})

	cases := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"tier": "gold"}`},
		{"missing tier", `{"user_id": "u"}`},
		{"recent activity above 1", `{"user_id": "u", "tier": "gold", "recent_activity": 1.5}`},
		{"bad loyalty level", `{"user_id": "u", "tier": "gold", "loyalty_level": "platinum"}`},
		{"negative volume", `{"user_id": "u", "tier": "gold", "weekly_volume": -5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Open, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
