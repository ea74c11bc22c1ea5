package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"chestAnalyzer/business/chest"
	"chestAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOptimizer struct {
	lastProfile domain.UserProfile
	lastTiers   []domain.ChestTier
}

func (s *stubOptimizer) Optimize(_ context.Context, profile domain.UserProfile, tiers []domain.ChestTier) domain.ChestDistribution {
	s.lastProfile = profile
	s.lastTiers = tiers
	return domain.ChestDistribution{Confidence: 0.8}
}

type stubConfigReader struct {
	configs map[string]domain.ChestTierConfig
}

func (s *stubConfigReader) GetJSON(_ context.Context, key string, dest any) bool {
	cfg, ok := s.configs[key]
	if !ok {
		return false
	}
	raw, _ := json.Marshal(cfg)
	return json.Unmarshal(raw, dest) == nil
}

func TestOptimizeSuccess(t *testing.T) {
	opt := &stubOptimizer{}
	h := NewChestHandler(opt, &stubConfigReader{})

	body := `{"user_id": "u1", "score": 75, "risk_level": "medium", "history_length": 12, "tiers": ["gold"]}`
	rec := postJSON(t, h.Optimize, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", opt.lastProfile.UserID)
	assert.Equal(t, 75.0, opt.lastProfile.Score)
	assert.Equal(t, domain.RiskMedium, opt.lastProfile.RiskLevel)
	assert.Equal(t, 12, opt.lastProfile.HistoryLength)
	assert.Equal(t, []domain.ChestTier{domain.ChestGold}, opt.lastTiers)
}

func TestOptimizeValidation(t *testing.T) {
	h := NewChestHandler(&stubOptimizer{}, &stubConfigReader{})

	cases := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"score": 50, "risk_level": "low"}`},
		{"missing score", `{"user_id": "u", "risk_level": "low"}`},
		{"score out of range", `{"user_id": "u", "score": 120, "risk_level": "low"}`},
		{"bad risk level", `{"user_id": "u", "score": 50, "risk_level": "extreme"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Optimize, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// score 0 is a valid value and must pass the required check
func TestOptimizeZeroScore(t *testing.T) {
	opt := &stubOptimizer{}
	h := NewChestHandler(opt, &stubConfigReader{})

	rec := postJSON(t, h.Optimize, `{"user_id": "u", "score": 0, "risk_level": "very_high"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, opt.lastProfile.Score)
}

func TestConfigsListsOnlyResolvableTiers(t *testing.T) {
	reader := &stubConfigReader{configs: map[string]domain.ChestTierConfig{
		chest.TierConfigKey(domain.ChestBronze): {TierID: domain.ChestBronze, SuccessRate: 0.8, MinValue: 10, MaxValue: 50},
		chest.TierConfigKey(domain.ChestGold):   {TierID: domain.ChestGold, SuccessRate: 0.4, MinValue: 300, MaxValue: 400},
	}}
	h := NewChestHandler(&stubOptimizer{}, reader)

	rec := getJSON(t, h.Configs)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"bronze"`)
	assert.Contains(t, body, `"gold"`)
	assert.NotContains(t, body, `"diamond"`)
}
