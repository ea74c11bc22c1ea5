package domain

type ChestTier string

const (
	ChestBronze   ChestTier = "bronze"
	ChestSilver   ChestTier = "silver"
	ChestGold     ChestTier = "gold"
	ChestPlatinum ChestTier = "platinum"
	ChestDiamond  ChestTier = "diamond"
)

// AllChestTiers lists every tier in ascending order of value.
var AllChestTiers = []ChestTier{
	ChestBronze,
	ChestSilver,
	ChestGold,
	ChestPlatinum,
	ChestDiamond,
}

// ChestTierConfig is the per-tier configuration sourced from the config
// service. SuccessRate bounds the raw tier potential before any user
// adjustment; MinValue <= MaxValue.
type ChestTierConfig struct {
	TierID      ChestTier `json:"tier_id"`
	SuccessRate float64   `json:"success_rate"`
	MinValue    float64   `json:"min_value"`
	MaxValue    float64   `json:"max_value"`
}

// ChestPotential is an ephemeral per-tier score derived during
// optimization.
type ChestPotential struct {
	TierID        ChestTier `json:"tier_id"`
	Potential     float64   `json:"potential"`
	ExpectedValue float64   `json:"expected_value"`
}

type ChestAllocation struct {
	TierID        ChestTier `json:"tier_id"`
	Quantity      int       `json:"quantity"`
	Potential     float64   `json:"potential"`
	ExpectedValue float64   `json:"expected_value"`
}

// ChestDistribution is the ranked, quantity-weighted recommendation, sorted
// descending by per-tier expected value.
type ChestDistribution struct {
	Chests             []ChestAllocation `json:"chests"`
	TotalExpectedValue float64           `json:"total_expected_value"`
	Confidence         float64           `json:"confidence"`
	Reasoning          []string          `json:"reasoning"`
}

// UserProfile is the optimizer's view of a user: the behavior score/risk
// pair plus how much history backed it.
type UserProfile struct {
	UserID        string    `json:"user_id"`
	Score         float64   `json:"score"`
	RiskLevel     RiskLevel `json:"risk_level"`
	HistoryLength int       `json:"history_length"`
}
