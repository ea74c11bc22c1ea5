package domain

type LoyaltyLevel string

const (
	LoyaltyStandard LoyaltyLevel = "standard"
	LoyaltyPremium  LoyaltyLevel = "premium"
	LoyaltyVIP      LoyaltyLevel = "vip"
)

type RewardKind string

const (
	RewardCoins           RewardKind = "coins"
	RewardFreeSpins       RewardKind = "free_spins"
	RewardBonusMultiplier RewardKind = "bonus_multiplier"
)

// RewardTableEntry is one row of a tier's reward table. DropProbability is
// the independent Bernoulli chance the entry lands in an opened chest.
type RewardTableEntry struct {
	Kind            RewardKind `json:"kind"`
	BaseValue       float64    `json:"base_value"`
	DropProbability float64    `json:"drop_probability"`
}

type RewardItem struct {
	Kind  RewardKind `json:"kind"`
	Value float64    `json:"value"`
}

type RewardResult struct {
	TierID          ChestTier    `json:"tier_id"`
	Items           []RewardItem `json:"items"`
	TotalValue      float64      `json:"total_value"`
	BonusMultiplier float64      `json:"bonus_multiplier"`
}

// ActivitySignals are the short-term signals driving the reward bonus
// multiplier.
type ActivitySignals struct {
	RecentActivity float64      `json:"recent_activity"`
	LoyaltyLevel   LoyaltyLevel `json:"loyalty_level"`
	WeeklyVolume   float64      `json:"weekly_volume"`
}
